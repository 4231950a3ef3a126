package analyzer

import (
	"strconv"
	"strings"

	"github.com/idelgado/planweave/internal/domain"
)

// extractTasks scans sentences for task keywords. A sentence qualifies when
// it contains a keyword and has more than 3 words; only the first matching
// keyword per sentence counts. Original sentence order is preserved and the
// result is capped at 15 tasks. When nothing matches, the fixed default
// task set is substituted.
func (a *Analyzer) extractTasks(sents []string) []domain.Task {
	var tasks []domain.Task

	for _, sentence := range sents {
		lower := strings.ToLower(sentence)
		for _, keyword := range taskKeywords {
			if !strings.Contains(lower, keyword) {
				continue
			}
			if len(strings.Fields(sentence)) > 3 {
				name := taskName(sentence, keyword)
				if name != "" && len(name) < maxTaskNameLen {
					tasks = append(tasks, domain.Task{
						Name:                  name,
						Description:           truncateRunes(sentence, maxTaskDescLen),
						Priority:              a.estimatePriority(sentence),
						EstimatedDurationDays: a.estimateDuration(sentence),
					})
				}
			}
			break
		}
	}

	if len(tasks) == 0 {
		tasks = DefaultTasks()
	}
	if len(tasks) > maxTasks {
		tasks = tasks[:maxTasks]
	}
	return tasks
}

// taskName builds a name from the keyword, one word before it and up to
// three words after, cleaned of punctuation and title-cased. Returns ""
// when the keyword cannot be located as a word.
func taskName(sentence, keyword string) string {
	words := strings.Fields(sentence)

	keywordIdx := -1
	for i, w := range words {
		if strings.Contains(strings.ToLower(w), keyword) {
			keywordIdx = i
			break
		}
	}
	if keywordIdx == -1 {
		return ""
	}

	start := keywordIdx - 1
	if start < 0 {
		start = 0
	}
	end := keywordIdx + 4
	if end > len(words) {
		end = len(words)
	}

	name := strings.Join(words[start:end], " ")
	name = nonWordRe.ReplaceAllString(name, " ")
	name = strings.Join(strings.Fields(name), " ")
	if name == "" {
		return ""
	}
	return titleCase(name)
}

// estimatePriority returns High when the sentence carries an urgency word,
// otherwise a random pick between Medium and Low.
func (a *Analyzer) estimatePriority(sentence string) domain.Priority {
	lower := strings.ToLower(sentence)
	for _, w := range highPriorityWords {
		if strings.Contains(lower, w) {
			return domain.PriorityHigh
		}
	}
	if a.rng.Intn(2) == 0 {
		return domain.PriorityMedium
	}
	return domain.PriorityLow
}

// estimateDuration converts the first "<N> day/week/month(s)" mention to
// days (week x7, month x30), capped at 30. Without a mention it falls back
// to a random 1-10 days.
func (a *Analyzer) estimateDuration(sentence string) int {
	m := durationRe.FindStringSubmatch(strings.ToLower(sentence))
	if m == nil {
		return a.rng.Intn(10) + 1
	}

	days, err := strconv.Atoi(m[1])
	if err != nil {
		return a.rng.Intn(10) + 1
	}
	switch m[2] {
	case "week":
		days *= 7
	case "month":
		days *= 30
	}
	if days > maxDurationDays {
		days = maxDurationDays
	}
	return days
}
