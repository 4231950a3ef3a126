package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idelgado/planweave/internal/cli/formatter"
	"github.com/idelgado/planweave/internal/export"
)

func newChartCmd(app *App) *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:   "chart <plan.csv>",
		Short: "Render a plan as an ASCII Gantt chart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := export.ReadPlanFile(args[0])
			if err != nil {
				return fmt.Errorf("reading plan: %w", err)
			}

			fmt.Print(formatter.RenderGantt(plan, width))
			return nil
		},
	}

	cmd.Flags().IntVar(&width, "width", 100, "Chart width in columns")

	return cmd
}
