package domain

import "time"

// TaskMode mirrors the scheduling mode column of the exported table.
type TaskMode string

const (
	ModeAuto   TaskMode = "Auto Scheduled"
	ModeManual TaskMode = "Manually Scheduled"
)

// PlanDateLayout is the wire format for Start/Finish values, e.g.
// "Mon 03/17/25". Exported plans must round-trip through this layout.
const PlanDateLayout = "Mon 01/02/06"

// PlanColumns is the exact column set of the exported plan table, in order.
var PlanColumns = []string{
	"ID", "Name", "Active", "Task Mode", "Duration",
	"Start", "Finish", "Predecessors", "Outline Level", "Notes",
}

// ScheduledTask is one row of the generated plan table.
//
// The summary row aggregates the whole project (duration = sum of the other
// rows, start/finish = min/max) and always sits first. It is marked with
// IsSummary rather than a magic ID; exported IDs are renumbered 1..N with
// the summary row as 1.
type ScheduledTask struct {
	ID           int
	Name         string
	Active       bool
	Mode         TaskMode
	DurationDays int
	Start        time.Time
	Finish       time.Time
	Predecessor  *int // heuristic, not a real dependency
	OutlineLevel int  // 0..3
	Notes        string
	IsSummary    bool
}

// FormatPlanDate renders t in the plan wire format.
func FormatPlanDate(t time.Time) string {
	return t.Format(PlanDateLayout)
}

// ParsePlanDate parses a value in the plan wire format.
func ParsePlanDate(s string) (time.Time, error) {
	t, err := time.Parse(PlanDateLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// DateOnly truncates t to midnight UTC. Plan arithmetic works in whole days.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the whole-day offset from a to b.
func DaysBetween(a, b time.Time) int {
	return int(DateOnly(b).Sub(DateOnly(a)).Hours() / 24)
}
