package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/idelgado/planweave/internal/cli/formatter"
	"github.com/idelgado/planweave/internal/domain"
	"github.com/idelgado/planweave/internal/export"
	"github.com/idelgado/planweave/internal/planner"
)

func newShiftCmd(app *App) *cobra.Command {
	var (
		startStr string
		outPath  string
	)

	cmd := &cobra.Command{
		Use:   "shift <plan.csv>",
		Short: "Shift every date in a plan to a new start date",
		Long: `Computes the day offset between the new start date and the plan's first
row and shifts every row's start and finish uniformly. Durations are
preserved. A plan with unparseable dates is left unmodified.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			newStart, err := time.Parse("2006-01-02", startStr)
			if err != nil {
				return fmt.Errorf("invalid start date %q (expected YYYY-MM-DD)", startStr)
			}

			plan, err := export.ReadPlanFile(args[0])
			if err != nil {
				if errors.Is(err, domain.ErrDateParse) {
					return fmt.Errorf("shift aborted, plan left unmodified: %w", err)
				}
				return fmt.Errorf("reading plan: %w", err)
			}

			shifted := planner.UpdatePlanDates(plan, newStart)

			target := outPath
			if target == "" {
				target = args[0]
			}
			if err := export.WritePlanFile(target, shifted); err != nil {
				return fmt.Errorf("writing plan: %w", err)
			}

			fmt.Print(formatter.FormatPlan(shifted))
			fmt.Printf("\nPlan written to %s\n", target)
			return nil
		},
	}

	cmd.Flags().StringVar(&startStr, "start", "", "New start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&outPath, "out", "", "Write to a different file instead of in place")
	cmd.MarkFlagRequired("start")

	return cmd
}
