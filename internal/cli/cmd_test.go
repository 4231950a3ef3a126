package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelgado/planweave/internal/domain"
	"github.com/idelgado/planweave/internal/export"
)

func testApp() *App {
	return &App{IsInteractive: func() bool { return false }}
}

func writeTestPlan(t *testing.T) string {
	t.Helper()
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	plan := []domain.ScheduledTask{
		{ID: 1, Name: "Proj", Active: true, Mode: domain.ModeAuto, DurationDays: 5,
			Start: start, Finish: start.AddDate(0, 0, 5), OutlineLevel: 0,
			Notes: "This roadmap is intended to guide the project execution.", IsSummary: true},
		{ID: 2, Name: "Work Item", Active: true, Mode: domain.ModeAuto, DurationDays: 5,
			Start: start, Finish: start.AddDate(0, 0, 5), OutlineLevel: 2, Notes: "Priority: Low. w"},
	}

	path := filepath.Join(t.TempDir(), "plan.csv")
	require.NoError(t, export.WritePlanFile(path, plan))
	return path
}

func execute(t *testing.T, args ...string) error {
	t.Helper()
	root := NewRootCmd(testApp())
	root.SetArgs(args)
	root.SilenceUsage = true
	return root.Execute()
}

func TestGenerateCmd_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	doc := filepath.Join(dir, "doc.txt")
	require.NoError(t, os.WriteFile(doc,
		[]byte("We will implement the login module in 5 days. Then we will test the module for 2 days."), 0o644))

	out := filepath.Join(dir, "plan.csv")
	err := execute(t, "generate", doc, "--name", "Auth", "--start", "2025-01-01", "--out", out, "--seed", "1")
	require.NoError(t, err)

	plan, err := export.ReadPlanFile(out)
	require.NoError(t, err)
	require.Len(t, plan, 3) // summary + 2 tasks

	assert.True(t, plan[0].IsSummary)
	assert.Equal(t, "Auth", plan[0].Name)
	assert.Equal(t, 7, plan[0].DurationDays)
	assert.Equal(t, 5, plan[1].DurationDays)
	assert.Equal(t, 2, plan[2].DurationDays)
	assert.True(t, plan[1].Start.Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestGenerateCmd_UnsupportedDocument(t *testing.T) {
	dir := t.TempDir()
	doc := filepath.Join(dir, "doc.pptx")
	require.NoError(t, os.WriteFile(doc, []byte("x"), 0o644))

	err := execute(t, "generate", doc, "--name", "X")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnsupportedFileType)
}

func TestGenerateCmd_EmptyDocument(t *testing.T) {
	dir := t.TempDir()
	doc := filepath.Join(dir, "doc.txt")
	require.NoError(t, os.WriteFile(doc, []byte("   \n  "), 0o644))

	err := execute(t, "generate", doc, "--name", "X")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrExtraction)
}

func TestGenerateCmd_NameRequiredWhenNotInteractive(t *testing.T) {
	dir := t.TempDir()
	doc := filepath.Join(dir, "doc.txt")
	require.NoError(t, os.WriteFile(doc, []byte("We will build a small tool."), 0o644))

	err := execute(t, "generate", doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "project name required")
}

func TestShiftCmd_ShiftsEveryRow(t *testing.T) {
	path := writeTestPlan(t)

	require.NoError(t, execute(t, "shift", path, "--start", "2025-02-01"))

	plan, err := export.ReadPlanFile(path)
	require.NoError(t, err)
	for _, row := range plan {
		assert.True(t, row.Start.After(time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)),
			"row %q not shifted", row.Name)
		assert.Equal(t, 5, row.DurationDays)
	}
	assert.True(t, plan[0].Start.Equal(time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)))
}

func TestShiftCmd_BadDateAbortsAndLeavesFileUnmodified(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.csv")
	bad := "ID,Name,Active,Task Mode,Duration,Start,Finish,Predecessors,Outline Level,Notes\n" +
		"1,Task,Yes,Auto Scheduled,5 days,2025-01-01,Mon 01/06/25,,2,\n"
	require.NoError(t, os.WriteFile(path, []byte(bad), 0o644))

	err := execute(t, "shift", path, "--start", "2025-02-01")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDateParse)

	after, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, bad, string(after), "file must be left unmodified")
}

func TestValidateCmd(t *testing.T) {
	path := writeTestPlan(t)
	assert.NoError(t, execute(t, "validate", path))

	badPath := filepath.Join(t.TempDir(), "bad.csv")
	bad := "ID,Name,Active,Task Mode,Duration,Start,Finish,Predecessors,Outline Level,Notes\n" +
		"1,,Yes,Auto Scheduled,5 days,Wed 01/01/25,Mon 01/06/25,,2,\n"
	require.NoError(t, os.WriteFile(badPath, []byte(bad), 0o644))

	err := execute(t, "validate", badPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "issue(s) found")
}

func TestChartCmd(t *testing.T) {
	path := writeTestPlan(t)
	assert.NoError(t, execute(t, "chart", path, "--width", "80"))
}

func TestViewCmd_NonInteractiveFallsBackToPlainTable(t *testing.T) {
	path := writeTestPlan(t)
	assert.NoError(t, execute(t, "view", path))
}
