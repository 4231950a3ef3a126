package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idelgado/planweave/internal/cli/formatter"
	"github.com/idelgado/planweave/internal/export"
)

func newValidateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <plan.csv>",
		Short: "Check an exported plan for structural problems",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			header, rows, err := export.ReadRecordsFile(args[0])
			if err != nil {
				return fmt.Errorf("reading plan: %w", err)
			}

			issues := export.ValidateRecords(header, rows)
			if len(issues) == 0 {
				fmt.Println(formatter.StyleGreen.Render("✓") + " plan is valid")
				return nil
			}

			for _, issue := range issues {
				fmt.Println(formatter.StyleRed.Render("✗") + " " + issue)
			}
			return fmt.Errorf("%d issue(s) found", len(issues))
		},
	}
	return cmd
}
