package cli

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelgado/planweave/internal/domain"
)

func modelPlan() []domain.ScheduledTask {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return []domain.ScheduledTask{
		{ID: 1, Name: "Proj", Active: true, Mode: domain.ModeAuto, DurationDays: 8,
			Start: start, Finish: start.AddDate(0, 0, 6), OutlineLevel: 0, IsSummary: true},
		{ID: 2, Name: "Alpha", Active: true, Mode: domain.ModeAuto, DurationDays: 5,
			Start: start, Finish: start.AddDate(0, 0, 5), OutlineLevel: 2},
		{ID: 3, Name: "Beta", Active: true, Mode: domain.ModeAuto, DurationDays: 3,
			Start: start.AddDate(0, 0, 2), Finish: start.AddDate(0, 0, 5), OutlineLevel: 3},
	}
}

func keyMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestPlanModel_ToggleActive(t *testing.T) {
	m := newPlanModel("plan.csv", modelPlan())

	updated, _ := m.Update(keyMsg('a'))
	pm := updated.(planModel)

	assert.False(t, pm.plan[0].Active)
	assert.True(t, pm.dirty)

	updated, _ = pm.Update(keyMsg('a'))
	pm = updated.(planModel)
	assert.True(t, pm.plan[0].Active)
}

func TestPlanModel_DeleteRecomputesSummary(t *testing.T) {
	m := newPlanModel("plan.csv", modelPlan())

	// Move the cursor off the summary row and delete "Alpha".
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	pm := updated.(planModel)
	updated, _ = pm.Update(keyMsg('d'))
	pm = updated.(planModel)

	require.Len(t, pm.plan, 2)
	assert.Equal(t, "Beta", pm.plan[1].Name)

	// Summary aggregates follow the remaining row.
	assert.Equal(t, 3, pm.plan[0].DurationDays)
	assert.True(t, pm.plan[0].Start.Equal(pm.plan[1].Start))
	assert.True(t, pm.plan[0].Finish.Equal(pm.plan[1].Finish))

	// IDs renumbered contiguously.
	assert.Equal(t, 1, pm.plan[0].ID)
	assert.Equal(t, 2, pm.plan[1].ID)
}

func TestPlanModel_SummaryRowCannotBeDeleted(t *testing.T) {
	m := newPlanModel("plan.csv", modelPlan())

	updated, _ := m.Update(keyMsg('d'))
	pm := updated.(planModel)
	assert.Len(t, pm.plan, 3)
}

func TestPlanModel_QuitKeys(t *testing.T) {
	m := newPlanModel("plan.csv", modelPlan())

	_, cmd := m.Update(keyMsg('q'))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
