// Package export reads and writes the plan table in its CSV wire format.
// The column set, order and cell formats are a fixed contract: plans must
// round-trip through ReadPlan/WritePlan without loss.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/idelgado/planweave/internal/domain"
)

// WritePlan writes the plan table as CSV with the exact column contract.
func WritePlan(w io.Writer, plan []domain.ScheduledTask) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(domain.PlanColumns); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, row := range plan {
		if err := cw.Write(recordFor(row)); err != nil {
			return fmt.Errorf("writing row %d: %w", row.ID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WritePlanFile writes the plan to a file, replacing any existing content.
func WritePlanFile(path string, plan []domain.ScheduledTask) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WritePlan(f, plan); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// recordFor renders one ScheduledTask as a CSV record.
func recordFor(t domain.ScheduledTask) []string {
	active := "Yes"
	if !t.Active {
		active = "No"
	}
	pred := ""
	if t.Predecessor != nil {
		pred = strconv.Itoa(*t.Predecessor)
	}
	return []string{
		strconv.Itoa(t.ID),
		t.Name,
		active,
		string(t.Mode),
		fmt.Sprintf("%d days", t.DurationDays),
		domain.FormatPlanDate(t.Start),
		domain.FormatPlanDate(t.Finish),
		pred,
		strconv.Itoa(t.OutlineLevel),
		t.Notes,
	}
}

// ReadPlan parses a CSV plan back into scheduled tasks. A row with outline
// level 0 is marked as the summary row. Start/Finish values that do not
// match the plan date layout return ErrDateParse.
func ReadPlan(r io.Reader) ([]domain.ScheduledTask, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	idx, missing := columnIndex(header)
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing columns: %s", strings.Join(missing, ", "))
	}

	var plan []domain.ScheduledTask
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row at line %d: %w", line, err)
		}

		task, err := taskFromRecord(record, idx)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		plan = append(plan, task)
	}
	return plan, nil
}

// ReadPlanFile parses a CSV plan from a file on disk.
func ReadPlanFile(path string) ([]domain.ScheduledTask, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadPlan(f)
}

func taskFromRecord(record []string, idx map[string]int) (domain.ScheduledTask, error) {
	get := func(col string) string {
		i := idx[col]
		if i < len(record) {
			return record[i]
		}
		return ""
	}

	var task domain.ScheduledTask
	var err error

	if task.ID, err = strconv.Atoi(get("ID")); err != nil {
		return task, fmt.Errorf("invalid ID %q", get("ID"))
	}
	task.Name = get("Name")
	task.Active = get("Active") == "Yes"

	task.Mode = domain.ModeAuto
	if get("Task Mode") == string(domain.ModeManual) {
		task.Mode = domain.ModeManual
	}

	if task.DurationDays, err = parseDuration(get("Duration")); err != nil {
		return task, err
	}
	if task.Start, err = domain.ParsePlanDate(get("Start")); err != nil {
		return task, fmt.Errorf("%w: Start %q", domain.ErrDateParse, get("Start"))
	}
	if task.Finish, err = domain.ParsePlanDate(get("Finish")); err != nil {
		return task, fmt.Errorf("%w: Finish %q", domain.ErrDateParse, get("Finish"))
	}

	if pred := get("Predecessors"); pred != "" {
		id, err := strconv.Atoi(pred)
		if err != nil {
			return task, fmt.Errorf("invalid predecessor %q", pred)
		}
		task.Predecessor = &id
	}

	if task.OutlineLevel, err = strconv.Atoi(get("Outline Level")); err != nil {
		return task, fmt.Errorf("invalid outline level %q", get("Outline Level"))
	}
	task.IsSummary = task.OutlineLevel == 0
	task.Notes = get("Notes")

	return task, nil
}

// parseDuration parses the literal "<N> days" cell format.
func parseDuration(s string) (int, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return 0, fmt.Errorf("invalid duration %q", s)
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid duration %q", s)
	}
	return n, nil
}

func columnIndex(header []string) (map[string]int, []string) {
	idx := make(map[string]int, len(header))
	for i, col := range header {
		idx[strings.TrimSpace(col)] = i
	}
	var missing []string
	for _, col := range domain.PlanColumns {
		if _, ok := idx[col]; !ok {
			missing = append(missing, col)
		}
	}
	return idx, missing
}
