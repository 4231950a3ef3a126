package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idelgado/planweave/internal/cli/formatter"
	"github.com/idelgado/planweave/internal/domain"
	"github.com/idelgado/planweave/internal/export"
)

// planModel is the bubbletea model for the interactive plan editor.
// The table is freely editable: rows can be deactivated or deleted, and the
// summary row is recomputed after every edit.
type planModel struct {
	path   string
	plan   []domain.ScheduledTask
	table  table.Model
	status string
	dirty  bool
}

func newPlanModel(path string, plan []domain.ScheduledTask) planModel {
	columns := []table.Column{
		{Title: "ID", Width: 4},
		{Title: "Name", Width: 32},
		{Title: "Active", Width: 6},
		{Title: "Duration", Width: 9},
		{Title: "Start", Width: 12},
		{Title: "Finish", Width: 12},
		{Title: "Pred", Width: 5},
		{Title: "Lvl", Width: 3},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(planRows(plan)),
		table.WithFocused(true),
		table.WithHeight(18),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Foreground(formatter.ColorHeader).
		Bold(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(formatter.ColorDim).
		BorderBottom(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("#282828")).
		Background(formatter.ColorBlue)
	t.SetStyles(styles)

	return planModel{path: path, plan: plan, table: t}
}

func planRows(plan []domain.ScheduledTask) []table.Row {
	rows := make([]table.Row, len(plan))
	for i, t := range plan {
		active := "Yes"
		if !t.Active {
			active = "No"
		}
		pred := ""
		if t.Predecessor != nil {
			pred = strconv.Itoa(*t.Predecessor)
		}
		rows[i] = table.Row{
			strconv.Itoa(t.ID),
			t.Name,
			active,
			fmt.Sprintf("%d days", t.DurationDays),
			domain.FormatPlanDate(t.Start),
			domain.FormatPlanDate(t.Finish),
			pred,
			strconv.Itoa(t.OutlineLevel),
		}
	}
	return rows
}

func (m planModel) Init() tea.Cmd {
	return nil
}

func (m planModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit

		case "a":
			idx := m.table.Cursor()
			if idx >= 0 && idx < len(m.plan) {
				m.plan[idx].Active = !m.plan[idx].Active
				m.dirty = true
				m.status = fmt.Sprintf("toggled %q", m.plan[idx].Name)
				m.table.SetRows(planRows(m.plan))
			}
			return m, nil

		case "d":
			idx := m.table.Cursor()
			if idx >= 0 && idx < len(m.plan) && !m.plan[idx].IsSummary {
				name := m.plan[idx].Name
				m.plan = append(m.plan[:idx], m.plan[idx+1:]...)
				m.plan = recomputeSummary(m.plan)
				m.dirty = true
				m.status = fmt.Sprintf("deleted %q", name)
				m.table.SetRows(planRows(m.plan))
			}
			return m, nil

		case "s":
			if err := export.WritePlanFile(m.path, m.plan); err != nil {
				m.status = "save failed: " + err.Error()
			} else {
				m.dirty = false
				m.status = "saved to " + m.path
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m planModel) View() string {
	title := formatter.StyleHeader.Render("planweave")
	if m.dirty {
		title += formatter.StyleYellow.Render(" (unsaved changes)")
	}

	help := formatter.StyleDim.Render("↑/↓ move · a toggle active · d delete · s save · q quit")

	status := ""
	if m.status != "" {
		status = formatter.StyleDim.Render(m.status) + "\n"
	}

	return title + "\n\n" + m.table.View() + "\n" + status + help + "\n"
}

// recomputeSummary refreshes the summary row's aggregates after row edits
// and renumbers IDs contiguously.
func recomputeSummary(plan []domain.ScheduledTask) []domain.ScheduledTask {
	if len(plan) == 0 || !plan[0].IsSummary {
		for i := range plan {
			plan[i].ID = i + 1
		}
		return plan
	}
	if len(plan) == 1 {
		// Nothing left to aggregate.
		plan[0].ID = 1
		return plan
	}

	rest := plan[1:]
	total := 0
	minStart := rest[0].Start
	maxFinish := rest[0].Finish
	for _, r := range rest {
		total += r.DurationDays
		if r.Start.Before(minStart) {
			minStart = r.Start
		}
		if r.Finish.After(maxFinish) {
			maxFinish = r.Finish
		}
	}
	plan[0].DurationDays = total
	plan[0].Start = minStart
	plan[0].Finish = maxFinish

	for i := range plan {
		plan[i].ID = i + 1
	}
	return plan
}
