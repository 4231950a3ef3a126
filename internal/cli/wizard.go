package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
)

// runSetupWizard collects the project name and start date interactively
// when they were not supplied as flags.
func runSetupWizard(name, startStr *string) error {
	var fields []huh.Field

	if *name == "" {
		fields = append(fields, huh.NewInput().
			Title("Project name").
			Placeholder("My Project").
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return fmt.Errorf("project name is required")
				}
				return nil
			}).
			Value(name))
	}

	if *startStr == "" {
		*startStr = time.Now().Format("2006-01-02")
		fields = append(fields, huh.NewInput().
			Title("Start date").
			Description("YYYY-MM-DD").
			Validate(func(s string) error {
				if _, err := time.Parse("2006-01-02", s); err != nil {
					return fmt.Errorf("expected YYYY-MM-DD")
				}
				return nil
			}).
			Value(startStr))
	}

	if len(fields) == 0 {
		return nil
	}
	return huh.NewForm(huh.NewGroup(fields...)).Run()
}
