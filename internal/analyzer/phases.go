package analyzer

import "strings"

// extractPhases scans sentences for phase keywords. The phase name is the
// window from two words before the keyword through two words after,
// cleaned and title-cased. Duplicates are removed preserving the first
// occurrence; the result is capped at 5.
func extractPhases(sents []string) []string {
	var phases []string

	for _, sentence := range sents {
		lower := strings.ToLower(sentence)
		for _, keyword := range phaseKeywords {
			if !strings.Contains(lower, keyword) {
				continue
			}
			if name := phaseName(sentence, keyword); name != "" {
				phases = append(phases, name)
			}
			break
		}
	}

	seen := make(map[string]bool, len(phases))
	var unique []string
	for _, p := range phases {
		if seen[p] {
			continue
		}
		seen[p] = true
		unique = append(unique, p)
		if len(unique) == maxPhases {
			break
		}
	}
	return unique
}

// phaseName extracts the word window around the first occurrence of the
// keyword. Returns "" when the keyword is not found as a word.
func phaseName(sentence, keyword string) string {
	words := strings.Fields(sentence)
	for i, w := range words {
		if !strings.Contains(strings.ToLower(w), keyword) {
			continue
		}
		start := i - 2
		if start < 0 {
			start = 0
		}
		end := i + 3
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
	return ""
}
