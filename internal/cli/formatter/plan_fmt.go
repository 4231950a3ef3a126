package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/idelgado/planweave/internal/domain"
)

// FormatPlan renders the plan table for the terminal. The summary row is
// bold, inactive rows are dimmed, and task names are indented by outline
// level.
func FormatPlan(plan []domain.ScheduledTask) string {
	rows := make([][]string, 0, len(plan))
	for _, t := range plan {
		name := strings.Repeat("  ", t.OutlineLevel) + t.Name

		active := "Yes"
		if !t.Active {
			active = "No"
		}
		pred := ""
		if t.Predecessor != nil {
			pred = strconv.Itoa(*t.Predecessor)
		}

		cells := []string{
			strconv.Itoa(t.ID),
			name,
			active,
			string(t.Mode),
			fmt.Sprintf("%d days", t.DurationDays),
			domain.FormatPlanDate(t.Start),
			domain.FormatPlanDate(t.Finish),
			pred,
			strconv.Itoa(t.OutlineLevel),
			t.Notes,
		}

		style := StyleFg
		if t.IsSummary {
			style = StyleBold
		} else if !t.Active {
			style = StyleDim
		}
		for i, c := range cells {
			cells[i] = style.Render(c)
		}
		rows = append(rows, cells)
	}

	return RenderTable(domain.PlanColumns, rows)
}

// FormatProjectInfo renders the analysis result shown alongside the plan.
func FormatProjectInfo(info *domain.ProjectInfo) string {
	var b strings.Builder

	b.WriteString(StyleHeader.Render(info.Name))
	b.WriteString("\n\n")
	b.WriteString(StyleFg.Render(info.Description))
	b.WriteString("\n")

	if len(info.Phases) > 0 {
		b.WriteString("\n" + StyleBold.Render("Phases") + "\n")
		for _, p := range info.Phases {
			b.WriteString("  " + StyleBlue.Render("•") + " " + p + "\n")
		}
	}

	if len(info.Timeline.MentionedDates) > 0 {
		b.WriteString("\n" + StyleBold.Render("Dates mentioned") + "\n")
		for _, d := range info.Timeline.MentionedDates {
			b.WriteString("  " + StylePurple.Render("•") + " " + d + "\n")
		}
	}
	if len(info.Timeline.Durations) > 0 {
		b.WriteString("\n" + StyleBold.Render("Durations mentioned") + "\n")
		for _, d := range info.Timeline.Durations {
			unit := d.Unit
			if d.Count != 1 {
				unit += "s"
			}
			fmt.Fprintf(&b, "  %s %d %s\n", StylePurple.Render("•"), d.Count, unit)
		}
	}

	if len(info.Tasks) > 0 {
		b.WriteString("\n" + StyleBold.Render("Extracted tasks") + "\n")
		for _, t := range info.Tasks {
			fmt.Fprintf(&b, "  %s %s (%d days)\n",
				PriorityStyle(t.Priority).Render("●"), t.Name, t.EstimatedDurationDays)
		}
	}

	return b.String()
}
