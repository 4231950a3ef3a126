package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idelgado/planweave/internal/domain"
)

const (
	ganttLabelWidth = 26
	ganttMinBar     = 1
)

// RenderGantt draws the plan as horizontal bars scaled to the project span.
// width is the total terminal width available; the summary row spans the
// whole chart.
func RenderGantt(plan []domain.ScheduledTask, width int) string {
	if len(plan) == 0 {
		return StyleDim.Render("(empty plan)") + "\n"
	}

	chartWidth := width - ganttLabelWidth - 2
	if chartWidth < 10 {
		chartWidth = 10
	}

	minStart := plan[0].Start
	maxFinish := plan[0].Finish
	for _, t := range plan {
		if t.Start.Before(minStart) {
			minStart = t.Start
		}
		if t.Finish.After(maxFinish) {
			maxFinish = t.Finish
		}
	}
	span := domain.DaysBetween(minStart, maxFinish)
	if span < 1 {
		span = 1
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s → %s\n\n",
		StyleBold.Render("Schedule"),
		StyleDim.Render(domain.FormatPlanDate(minStart)),
		StyleDim.Render(domain.FormatPlanDate(maxFinish)))

	for _, t := range plan {
		label := t.Name
		if lipgloss.Width(label) > ganttLabelWidth {
			label = label[:ganttLabelWidth-1] + "…"
		}

		offset := domain.DaysBetween(minStart, t.Start) * chartWidth / span
		length := t.DurationDays * chartWidth / span
		if length < ganttMinBar {
			length = ganttMinBar
		}
		if offset+length > chartWidth {
			length = chartWidth - offset
			if length < ganttMinBar {
				length = ganttMinBar
				offset = chartWidth - length
			}
		}

		style := StyleBlue
		switch {
		case t.IsSummary:
			style = StyleHeader
		case !t.Active:
			style = StyleDim
		case t.OutlineLevel == 3:
			style = StyleGreen
		}

		bar := strings.Repeat(" ", offset) + style.Render(strings.Repeat("█", length))
		fmt.Fprintf(&b, "%-*s  %s\n", ganttLabelWidth, label, bar)
	}

	return b.String()
}
