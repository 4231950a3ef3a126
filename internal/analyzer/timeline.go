package analyzer

import (
	"strconv"
	"strings"

	"github.com/idelgado/planweave/internal/domain"
)

// extractTimeline collects raw date mentions (first 5, in pattern order)
// and duration mentions (first 3) from the cleaned text.
func extractTimeline(text string) domain.Timeline {
	lower := strings.ToLower(text)

	var timeline domain.Timeline
	for _, pattern := range datePatterns {
		for _, m := range pattern.FindAllString(lower, -1) {
			timeline.MentionedDates = append(timeline.MentionedDates, m)
		}
	}
	if len(timeline.MentionedDates) > maxDates {
		timeline.MentionedDates = timeline.MentionedDates[:maxDates]
	}

	for _, m := range durationRe.FindAllStringSubmatch(lower, -1) {
		count, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		timeline.Durations = append(timeline.Durations, domain.DurationMention{
			Count: count,
			Unit:  m[2],
		})
		if len(timeline.Durations) == maxDurations {
			break
		}
	}

	return timeline
}
