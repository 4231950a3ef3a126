package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/idelgado/planweave/internal/domain"
)

// ReadRecordsFile reads a plan CSV as raw header and rows, without
// interpreting cell values. Validation works at this level so a file with
// malformed cells can still be inspected.
func ReadRecordsFile(path string) (header []string, rows [][]string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("reading records: %w", err)
	}
	if len(records) == 0 {
		return nil, nil, nil
	}
	return records[0], records[1:], nil
}

// requiredColumns must be present for a plan table to be usable at all.
var requiredColumns = []string{"ID", "Name", "Duration", "Start", "Finish"}

// ValidateRecords checks a raw plan table for structural problems: required
// columns present, no empty task names, and all Start/Finish values parsing
// under the plan date layout. Returns human-readable issues; empty = valid.
func ValidateRecords(header []string, rows [][]string) []string {
	var issues []string

	if len(rows) == 0 {
		issues = append(issues, "project plan is empty")
		return issues
	}

	idx := make(map[string]int, len(header))
	for i, col := range header {
		idx[strings.TrimSpace(col)] = i
	}

	var missing []string
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		issues = append(issues, fmt.Sprintf("missing columns: %s", strings.Join(missing, ", ")))
	}

	if nameIdx, ok := idx["Name"]; ok {
		for _, row := range rows {
			if nameIdx >= len(row) || strings.TrimSpace(row[nameIdx]) == "" {
				issues = append(issues, "some tasks have empty names")
				break
			}
		}
	}

	for _, col := range []string{"Start", "Finish"} {
		colIdx, ok := idx[col]
		if !ok {
			continue
		}
		for _, row := range rows {
			if colIdx >= len(row) {
				continue
			}
			if _, err := domain.ParsePlanDate(row[colIdx]); err != nil {
				issues = append(issues, "invalid date format detected")
				return issues
			}
		}
	}

	return issues
}

// ValidatePlan renders the plan to records and validates them. Convenience
// for callers holding a parsed plan rather than a raw table.
func ValidatePlan(plan []domain.ScheduledTask) []string {
	rows := make([][]string, len(plan))
	for i, t := range plan {
		rows[i] = recordFor(t)
	}
	return ValidateRecords(domain.PlanColumns, rows)
}
