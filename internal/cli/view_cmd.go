package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/idelgado/planweave/internal/cli/formatter"
	"github.com/idelgado/planweave/internal/export"
)

func newViewCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view <plan.csv>",
		Short: "Inspect and edit a plan in an interactive table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := export.ReadPlanFile(args[0])
			if err != nil {
				return fmt.Errorf("reading plan: %w", err)
			}

			// Plain table when stdout is not a terminal.
			if app.IsInteractive == nil || !app.IsInteractive() {
				fmt.Print(formatter.FormatPlan(plan))
				return nil
			}

			_, err = tea.NewProgram(newPlanModel(args[0], plan)).Run()
			return err
		},
	}
	return cmd
}
