package planner

import (
	"strings"

	"github.com/idelgado/planweave/internal/domain"
)

// Outline-level word lists, checked in order against the task name. This is
// a flat substring heuristic, not a hierarchy derived from the phase list.
var (
	level1Words = []string{"phase", "stage", "planning", "design", "development", "testing", "deployment"}
	level2Words = []string{"setup", "configure", "create", "implement"}
	level3Words = []string{"review", "validate", "test", "document"}
)

// outlineLevel derives the indentation depth of a task from its name.
// Defaults to level 2 when no list matches.
func outlineLevel(name string) int {
	lower := strings.ToLower(name)

	if containsAny(lower, level1Words) {
		return 1
	}
	if containsAny(lower, level2Words) {
		return 2
	}
	if containsAny(lower, level3Words) {
		return 3
	}
	return 2
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

// taskNotes renders the notes column: priority plus the task description
// ellipsis-truncated to 100 characters.
func taskNotes(task domain.Task) string {
	desc := task.Description
	if len(desc) > 100 {
		desc = desc[:97] + "..."
	}
	return "Priority: " + string(task.Priority) + ". " + desc
}
