// Package planner synthesizes a Gantt-style task table from analyzed
// project information. Dates are synthetic: tasks start from a cursor that
// advances by half of each task's duration, so the schedule deliberately
// overlaps rather than running strictly sequentially.
package planner

import (
	"hash/fnv"
	"time"

	"github.com/idelgado/planweave/internal/domain"
)

// summaryNotes is the fixed note on the project summary row.
const summaryNotes = "This roadmap is intended to guide the project execution."

// Planner generates schedules from a fixed start date.
type Planner struct {
	start time.Time
}

// Option configures a Planner.
type Option func(*Planner)

// WithStartDate sets the date the first task starts on. Defaults to today.
func WithStartDate(t time.Time) Option {
	return func(p *Planner) { p.start = domain.DateOnly(t) }
}

// New creates a Planner.
func New(opts ...Option) *Planner {
	p := &Planner{start: domain.DateOnly(time.Now())}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Generate walks the task list in order and assigns ids, dates,
// predecessors, outline levels and notes. Degenerate input (nil info or an
// empty task list) yields the fixed default plan instead of an error.
//
// The first row is a synthesized project summary: duration is the sum of
// all other rows, start/finish the min/max. IDs are renumbered 1..N with
// the summary row as 1; the summary is identified by IsSummary, never by
// its id.
func (p *Planner) Generate(info *domain.ProjectInfo) []domain.ScheduledTask {
	if info == nil || len(info.Tasks) == 0 {
		return p.DefaultPlan()
	}

	rows := make([]domain.ScheduledTask, 0, len(info.Tasks)+1)
	cursor := p.start

	for i, task := range info.Tasks {
		duration := task.EstimatedDurationDays
		if duration < 1 {
			duration = 5
		}

		start := cursor
		row := domain.ScheduledTask{
			ID:           i + 1,
			Name:         task.Name,
			Active:       true,
			Mode:         domain.ModeAuto,
			DurationDays: duration,
			Start:        start,
			Finish:       start.AddDate(0, 0, duration),
			OutlineLevel: outlineLevel(task.Name),
			Notes:        taskNotes(task),
		}
		if i > 0 && hasPredecessor(task.Name) {
			prev := i // placeholder, re-pointed after renumbering
			row.Predecessor = &prev
		}
		rows = append(rows, row)

		// Overlap: the next task starts halfway through this one.
		advance := duration / 2
		if advance < 1 {
			advance = 1
		}
		cursor = start.AddDate(0, 0, advance)
	}

	plan := append([]domain.ScheduledTask{summaryRow(info.Name, rows)}, rows...)
	for i := range plan {
		plan[i].ID = i + 1
	}
	// Re-point predecessors at the renumbered id of the previous task.
	for i := 2; i < len(plan); i++ {
		if plan[i].Predecessor != nil {
			prev := plan[i-1].ID
			plan[i].Predecessor = &prev
		}
	}
	return plan
}

// hasPredecessor links a task to the previous one when the name-keyed hash
// lands under the 60% threshold. This is cosmetic, not a dependency solver.
func hasPredecessor(name string) bool {
	h := fnv.New32a()
	h.Write([]byte(name))
	return h.Sum32()%10 < 6
}

// summaryRow aggregates all task rows into the project-level row.
func summaryRow(projectName string, rows []domain.ScheduledTask) domain.ScheduledTask {
	total := 0
	minStart := rows[0].Start
	maxFinish := rows[0].Finish
	for _, r := range rows {
		total += r.DurationDays
		if r.Start.Before(minStart) {
			minStart = r.Start
		}
		if r.Finish.After(maxFinish) {
			maxFinish = r.Finish
		}
	}

	return domain.ScheduledTask{
		Name:         projectName,
		Active:       true,
		Mode:         domain.ModeAuto,
		DurationDays: total,
		Start:        minStart,
		Finish:       maxFinish,
		OutlineLevel: 0,
		Notes:        summaryNotes,
		IsSummary:    true,
	}
}

// DefaultPlan is the fixed 2-row plan substituted when generation has
// nothing to work with.
func (p *Planner) DefaultPlan() []domain.ScheduledTask {
	return []domain.ScheduledTask{
		{
			ID:           1,
			Name:         "Sample Project",
			Active:       true,
			Mode:         domain.ModeAuto,
			DurationDays: 30,
			Start:        p.start,
			Finish:       p.start.AddDate(0, 0, 30),
			OutlineLevel: 1,
			Notes:        "Default project plan generated",
		},
		{
			ID:           2,
			Name:         "Planning Phase",
			Active:       true,
			Mode:         domain.ModeAuto,
			DurationDays: 5,
			Start:        p.start,
			Finish:       p.start.AddDate(0, 0, 5),
			OutlineLevel: 2,
			Notes:        "Project planning and requirements gathering",
		},
	}
}

// UpdatePlanDates shifts every row's start and finish by the day offset
// between newStart and the current first row's start. Durations are
// preserved exactly, and shifting to the same target date twice is a no-op
// the second time. The input plan is not modified.
func UpdatePlanDates(plan []domain.ScheduledTask, newStart time.Time) []domain.ScheduledTask {
	if len(plan) == 0 {
		return plan
	}

	offset := domain.DaysBetween(plan[0].Start, newStart)
	shifted := make([]domain.ScheduledTask, len(plan))
	copy(shifted, plan)
	if offset == 0 {
		return shifted
	}

	for i := range shifted {
		shifted[i].Start = shifted[i].Start.AddDate(0, 0, offset)
		shifted[i].Finish = shifted[i].Finish.AddDate(0, 0, offset)
	}
	return shifted
}
