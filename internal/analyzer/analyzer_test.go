package analyzer

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelgado/planweave/internal/domain"
)

// stubSummarizer returns a canned summary or error without any HTTP.
type stubSummarizer struct {
	text string
	err  error
}

func (s stubSummarizer) Summarize(ctx context.Context, text string) (string, error) {
	return s.text, s.err
}

func (s stubSummarizer) Available(ctx context.Context) bool { return s.err == nil }

func newTestAnalyzer(t *testing.T, summarizer *stubSummarizer) *Analyzer {
	t.Helper()
	var a *Analyzer
	var err error
	if summarizer == nil {
		a, err = New(nil, WithRand(rand.New(rand.NewSource(1))))
	} else {
		a, err = New(*summarizer, WithRand(rand.New(rand.NewSource(1))))
	}
	require.NoError(t, err)
	return a
}

func TestCleanText(t *testing.T) {
	got := cleanText("  Build\tthe   app™ now!  ")
	assert.Equal(t, "Build the app now!", got)
}

func TestAnalyze_LoginModuleScenario(t *testing.T) {
	a := newTestAnalyzer(t, nil)

	text := "We will implement the login module in 5 days. Then we will test the module for 2 days."
	info, err := a.Analyze(context.Background(), text, "Auth")
	require.NoError(t, err)

	assert.Equal(t, "Auth", info.Name)
	assert.NotEmpty(t, info.ID)
	require.Len(t, info.Tasks, 2)

	first := info.Tasks[0]
	assert.Contains(t, first.Name, "Implement")
	assert.Contains(t, first.Name, "Login Module")
	assert.Equal(t, 5, first.EstimatedDurationDays)

	second := info.Tasks[1]
	assert.Contains(t, second.Name, "Test")
	assert.Contains(t, second.Name, "Module")
	assert.Equal(t, 2, second.EstimatedDurationDays)

	// Both duration mentions show up in the timeline.
	require.Len(t, info.Timeline.Durations, 2)
	assert.Equal(t, domain.DurationMention{Count: 5, Unit: "day"}, info.Timeline.Durations[0])
	assert.Equal(t, domain.DurationMention{Count: 2, Unit: "day"}, info.Timeline.Durations[1])
}

func TestAnalyze_NoKeywordMatchesYieldsDefaultTasks(t *testing.T) {
	a := newTestAnalyzer(t, nil)

	info, err := a.Analyze(context.Background(), "The sun rose over quiet hills. Birds sang all morning.", "Nature")
	require.NoError(t, err)

	assert.Equal(t, DefaultTasks(), info.Tasks)
	require.Len(t, info.Tasks, 6)
}

func TestAnalyze_EmptyTextFails(t *testing.T) {
	a := newTestAnalyzer(t, nil)

	info, err := a.Analyze(context.Background(), "   \t\n  ", "Empty")
	assert.Nil(t, info)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAnalysis)
}

func TestAnalyze_SeededOutputIsReproducible(t *testing.T) {
	text := "We will build the reporting service. Later we deploy everything to staging."

	run := func() *domain.ProjectInfo {
		a, err := New(nil, WithRand(rand.New(rand.NewSource(42))))
		require.NoError(t, err)
		info, err := a.Analyze(context.Background(), text, "Repro")
		require.NoError(t, err)
		return info
	}

	first := run()
	second := run()

	require.Len(t, first.Tasks, len(second.Tasks))
	for i := range first.Tasks {
		assert.Equal(t, first.Tasks[i].Priority, second.Tasks[i].Priority)
		assert.Equal(t, first.Tasks[i].EstimatedDurationDays, second.Tasks[i].EstimatedDurationDays)
	}
}

func TestDescribe_UsesSummarizer(t *testing.T) {
	a := newTestAnalyzer(t, &stubSummarizer{text: "A concise project summary."})

	info, err := a.Analyze(context.Background(), "We will build a thing. It will be great. Everyone will use it.", "Summary")
	require.NoError(t, err)
	assert.Equal(t, "A concise project summary.", info.Description)
}

func TestDescribe_FallsBackToFirstThreeSentences(t *testing.T) {
	a := newTestAnalyzer(t, &stubSummarizer{err: errors.New("model offline")})

	text := "First sentence here. Second sentence here. Third sentence here. Fourth sentence here."
	info, err := a.Analyze(context.Background(), text, "Fallback")
	require.NoError(t, err)

	assert.Equal(t, "First sentence here. Second sentence here. Third sentence here.", info.Description)
}

func TestDescribe_NoSummarizerUsesFallback(t *testing.T) {
	a := newTestAnalyzer(t, nil)

	info, err := a.Analyze(context.Background(), "Only one sentence to build on.", "Tiny")
	require.NoError(t, err)
	assert.Equal(t, "Only one sentence to build on.", info.Description)
}

func TestTaskName_WindowAndTitleCase(t *testing.T) {
	name := taskName("We will implement the login module in 5 days.", "implement")
	assert.Equal(t, "Will Implement The Login Module", name)
}

func TestTaskName_KeywordAtSentenceStart(t *testing.T) {
	name := taskName("Implement caching for the API layer.", "implement")
	assert.Equal(t, "Implement Caching For The", name)
}

func TestExtractTasks_LongNamesDiscarded(t *testing.T) {
	a := newTestAnalyzer(t, nil)

	long := strings.Repeat("a", 40)
	text := "We implement " + long + " " + long + " " + long + "."
	info, err := a.Analyze(context.Background(), text, "Long")
	require.NoError(t, err)

	// The only candidate name is >= 100 chars, so defaults are substituted.
	assert.Equal(t, DefaultTasks(), info.Tasks)
	for _, task := range info.Tasks {
		assert.Less(t, len(task.Name), 100)
	}
}

func TestExtractTasks_ShortSentencesSkipped(t *testing.T) {
	a := newTestAnalyzer(t, nil)

	// Contains a keyword but only 3 words, so it never qualifies.
	info, err := a.Analyze(context.Background(), "We build things.", "Short")
	require.NoError(t, err)
	assert.Equal(t, DefaultTasks(), info.Tasks)
}

func TestExtractTasks_CappedAtFifteen(t *testing.T) {
	a := newTestAnalyzer(t, nil)

	var b strings.Builder
	for i := 0; i < 20; i++ {
		b.WriteString("We will implement another small feature soon. ")
	}
	info, err := a.Analyze(context.Background(), b.String(), "Many")
	require.NoError(t, err)
	assert.Len(t, info.Tasks, 15)
}

func TestEstimatePriority_HighOnUrgencyWords(t *testing.T) {
	a := newTestAnalyzer(t, nil)

	assert.Equal(t, domain.PriorityHigh, a.estimatePriority("This critical fix must ship."))
	assert.Equal(t, domain.PriorityHigh, a.estimatePriority("An essential upgrade."))

	p := a.estimatePriority("An ordinary piece of work.")
	assert.Contains(t, []domain.Priority{domain.PriorityMedium, domain.PriorityLow}, p)
}

func TestEstimateDuration_UnitsAndCap(t *testing.T) {
	a := newTestAnalyzer(t, nil)

	assert.Equal(t, 5, a.estimateDuration("takes 5 days"))
	assert.Equal(t, 14, a.estimateDuration("takes 2 weeks"))
	assert.Equal(t, 30, a.estimateDuration("takes 1 month"))
	assert.Equal(t, 30, a.estimateDuration("takes 3 months")) // capped
	assert.Equal(t, 30, a.estimateDuration("takes 45 days")) // capped

	fallback := a.estimateDuration("no mention at all")
	assert.GreaterOrEqual(t, fallback, 1)
	assert.LessOrEqual(t, fallback, 10)
}

func TestExtractPhases_DedupeAndCap(t *testing.T) {
	a := newTestAnalyzer(t, nil)

	text := "Phase one starts now. Phase one starts now. Phase two starts later."
	info, err := a.Analyze(context.Background(), text, "Phases")
	require.NoError(t, err)

	assert.Equal(t, []string{"Phase One Starts", "Phase Two Starts"}, info.Phases)

	// No output ever contains duplicates.
	seen := map[string]bool{}
	for _, p := range info.Phases {
		assert.False(t, seen[p], "duplicate phase %q", p)
		seen[p] = true
	}
}

func TestExtractPhases_CappedAtFive(t *testing.T) {
	sents := []string{
		"The planning effort begins today here.",
		"A design workshop follows next week.",
		"Development work kicks off after that.",
		"Testing starts once features land.",
		"Deployment happens at the very end.",
		"The release party wraps it up.",
	}
	phases := extractPhases(sents)
	assert.Len(t, phases, 5)
}

func TestExtractTimeline_DateShapes(t *testing.T) {
	text := "Kickoff on 01/15/2025, deadline 2025-03-01, launch March 5, 2026. Expect 3 weeks of work."
	timeline := extractTimeline(text)

	assert.Contains(t, timeline.MentionedDates, "01/15/2025")
	assert.Contains(t, timeline.MentionedDates, "2025-03-01")
	assert.Contains(t, timeline.MentionedDates, "march 5, 2026")
	assert.LessOrEqual(t, len(timeline.MentionedDates), 5)

	require.Len(t, timeline.Durations, 1)
	assert.Equal(t, domain.DurationMention{Count: 3, Unit: "week"}, timeline.Durations[0])
}

func TestExtractTimeline_Caps(t *testing.T) {
	text := "1/1/20 2/2/21 3/3/22 4/4/23 5/5/24 6/6/25 and 1 day 2 weeks 3 months 4 days of effort"
	timeline := extractTimeline(text)

	assert.Len(t, timeline.MentionedDates, 5)
	assert.Len(t, timeline.Durations, 3)
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Build The App", titleCase("build THE app"))
	assert.Equal(t, "", titleCase("   "))
}
