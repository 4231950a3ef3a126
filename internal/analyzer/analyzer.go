// Package analyzer extracts structured project information from plain
// document text using a summarization model plus keyword and regex
// heuristics. All heuristics are pure text-in/data-out scans; the only
// external call is the optional summarizer.
package analyzer

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"

	"github.com/idelgado/planweave/internal/domain"
	"github.com/idelgado/planweave/internal/summarize"
)

const (
	maxTasks        = 15
	maxPhases       = 5
	maxDates        = 5
	maxDurations    = 3
	maxSummaryInput = 1000
	maxTaskNameLen  = 100
	maxTaskDescLen  = 200
	maxDurationDays = 30
)

// Analyzer turns cleaned document text into a ProjectInfo record.
type Analyzer struct {
	summarizer summarize.Summarizer // nil = sentence fallback only
	tokenizer  *sentences.DefaultSentenceTokenizer
	rng        *rand.Rand
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithRand injects the randomness source used for the Medium/Low priority
// pick and the duration fallback. A fixed seed makes analysis reproducible.
func WithRand(rng *rand.Rand) Option {
	return func(a *Analyzer) { a.rng = rng }
}

// New creates an Analyzer. A nil summarizer disables the model call and
// descriptions come from the sentence fallback.
func New(summarizer summarize.Summarizer, opts ...Option) (*Analyzer, error) {
	tokenizer, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, fmt.Errorf("%w: loading sentence tokenizer: %v", domain.ErrAnalysis, err)
	}

	a := &Analyzer{
		summarizer: summarizer,
		tokenizer:  tokenizer,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Analyze extracts project information from document text. Failure is
// terminal for the document; the caller must not generate a plan from a
// nil result.
func (a *Analyzer) Analyze(ctx context.Context, text, projectName string) (*domain.ProjectInfo, error) {
	cleaned := cleanText(text)
	if cleaned == "" {
		return nil, fmt.Errorf("%w: no analyzable text", domain.ErrAnalysis)
	}

	sents := a.sentences(cleaned)

	info := &domain.ProjectInfo{
		ID:          uuid.NewString(),
		Name:        projectName,
		Description: a.describe(ctx, cleaned, sents),
		Tasks:       a.extractTasks(sents),
		Timeline:    extractTimeline(cleaned),
		Phases:      extractPhases(sents),
	}
	return info, nil
}

// cleanText collapses whitespace and strips characters outside the allowed
// punctuation set.
func cleanText(text string) string {
	text = whitespaceRe.ReplaceAllString(text, " ")
	text = disallowedRe.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// sentences splits cleaned text into trimmed sentences.
func (a *Analyzer) sentences(text string) []string {
	var out []string
	for _, s := range a.tokenizer.Tokenize(text) {
		trimmed := strings.TrimSpace(s.Text)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// describe summarizes the first 1000 characters of the text. When the model
// is unavailable or fails it falls back to the first three sentences.
func (a *Analyzer) describe(ctx context.Context, text string, sents []string) string {
	input := truncateRunes(text, maxSummaryInput)

	if a.summarizer != nil {
		if summary, err := a.summarizer.Summarize(ctx, input); err == nil {
			return summary
		}
	}

	if len(sents) == 0 {
		return "Project description not available"
	}
	n := 3
	if len(sents) < n {
		n = len(sents)
	}
	return strings.Join(sents[:n], " ")
}

// truncateRunes cuts s to at most n runes.
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// titleCase capitalizes the first letter of each word and lowercases the
// rest, the way the exported task names are formatted.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
