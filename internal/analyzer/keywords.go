package analyzer

import "regexp"

// taskKeywords marks sentences that describe actionable work.
var taskKeywords = []string{
	"implement", "develop", "create", "build", "design", "test", "deploy",
	"configure", "setup", "install", "analyze", "review", "prepare",
	"execute", "complete", "finish", "deliver", "validate", "verify",
}

// phaseKeywords marks sentences that describe project phases.
var phaseKeywords = []string{
	"phase", "stage", "milestone", "iteration", "sprint", "release",
	"planning", "analysis", "design", "development", "testing", "deployment",
}

// highPriorityWords bump a task to High priority.
var highPriorityWords = []string{"critical", "urgent", "important", "key", "essential"}

var (
	// whitespaceRe collapses runs of whitespace.
	whitespaceRe = regexp.MustCompile(`\s+`)

	// disallowedRe matches characters outside the allowed punctuation set.
	disallowedRe = regexp.MustCompile(`[^\w\s.,!?;:\-()]`)

	// nonWordRe strips punctuation out of task and phase names.
	nonWordRe = regexp.MustCompile(`[^\w\s]`)

	// durationRe matches "<N> day(s)|week(s)|month(s)" mentions.
	durationRe = regexp.MustCompile(`(\d+)\s*(day|week|month)s?`)

	// datePatterns match the three recognized date shapes, scanned against
	// lowercased text in this order.
	datePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\d{1,2}[/-]\d{1,2}[/-]\d{2,4}`),
		regexp.MustCompile(`\d{4}-\d{2}-\d{2}`),
		regexp.MustCompile(`(?:january|february|march|april|may|june|july|august|september|october|november|december)\s+\d{1,2},?\s+\d{4}`),
	}
)
