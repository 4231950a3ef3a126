package cli

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/idelgado/planweave/internal/analyzer"
	"github.com/idelgado/planweave/internal/cli/formatter"
	"github.com/idelgado/planweave/internal/domain"
	"github.com/idelgado/planweave/internal/export"
	"github.com/idelgado/planweave/internal/extract"
	"github.com/idelgado/planweave/internal/planner"
)

func newGenerateCmd(app *App) *cobra.Command {
	var (
		name     string
		startStr string
		outPath  string
		seed     int64
	)

	cmd := &cobra.Command{
		Use:   "generate <document>",
		Short: "Analyze a project document and generate a schedule",
		Long: `Extracts text from a PDF, DOCX or TXT document, analyzes it for tasks,
phases and timeline mentions, and writes a Gantt-style schedule as CSV.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Collect missing inputs interactively when possible.
			if (name == "" || startStr == "") && app.IsInteractive != nil && app.IsInteractive() {
				if err := runSetupWizard(&name, &startStr); err != nil {
					return err
				}
			}
			if name == "" {
				return fmt.Errorf("project name required (--name)")
			}

			start := domain.DateOnly(time.Now())
			if startStr != "" {
				parsed, err := time.Parse("2006-01-02", startStr)
				if err != nil {
					return fmt.Errorf("invalid start date %q (expected YYYY-MM-DD)", startStr)
				}
				start = domain.DateOnly(parsed)
			}

			text, err := extract.ExtractFile(args[0])
			if err != nil {
				switch {
				case errors.Is(err, domain.ErrUnsupportedFileType):
					return fmt.Errorf("unsupported document type: %w", err)
				case errors.Is(err, domain.ErrExtraction):
					return fmt.Errorf("could not extract text from %s: %w", args[0], err)
				}
				return err
			}

			var opts []analyzer.Option
			if cmd.Flags().Changed("seed") {
				opts = append(opts, analyzer.WithRand(rand.New(rand.NewSource(seed))))
			}
			an, err := analyzer.New(app.Summarizer, opts...)
			if err != nil {
				return err
			}

			info, err := an.Analyze(context.Background(), text, name)
			if err != nil {
				return fmt.Errorf("analyzing %s: %w", args[0], err)
			}

			plan := planner.New(planner.WithStartDate(start)).Generate(info)

			fmt.Print(formatter.FormatProjectInfo(info))
			fmt.Println()
			fmt.Print(formatter.FormatPlan(plan))

			if err := export.WritePlanFile(outPath, plan); err != nil {
				return fmt.Errorf("writing plan: %w", err)
			}
			fmt.Printf("\nPlan written to %s\n", outPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Project name")
	cmd.Flags().StringVar(&startStr, "start", "", "Project start date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&outPath, "out", "plan.csv", "Output CSV path")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Seed for the heuristic randomness (reproducible output)")

	return cmd
}
