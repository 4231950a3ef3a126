package cli

import (
	"github.com/spf13/cobra"

	"github.com/idelgado/planweave/internal/summarize"
)

// App holds the collaborators CLI commands need.
type App struct {
	// Summarizer is nil when the model is disabled; the analyzer then
	// falls back to its sentence-based description.
	Summarizer summarize.Summarizer

	// IsInteractive reports whether stdin is an interactive terminal.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "planweave" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "planweave",
		Short: "Generate Gantt-style project schedules from documents",
	}

	root.AddCommand(
		newGenerateCmd(app),
		newShiftCmd(app),
		newValidateCmd(app),
		newChartCmd(app),
		newViewCmd(app),
	)

	return root
}
