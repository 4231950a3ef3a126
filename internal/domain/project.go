package domain

// Priority classifies how urgent an extracted task appears to be.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// Task is a single unit of work extracted from a document, before any
// scheduling has been applied.
type Task struct {
	Name        string
	Description string // first 200 chars of the source sentence
	Priority    Priority

	// EstimatedDurationDays is capped at 30.
	EstimatedDurationDays int
}

// DurationMention is a "<N> day/week/month(s)" phrase found in the text.
type DurationMention struct {
	Count int
	Unit  string // "day", "week" or "month"
}

// Timeline collects raw date and duration mentions from the document.
type Timeline struct {
	MentionedDates []string          // first 5 kept
	Durations      []DurationMention // first 3 kept
}

// ProjectInfo is the structured result of analyzing one document.
// It is created once per analysis run and only read afterward.
type ProjectInfo struct {
	ID          string // analysis run ID
	Name        string
	Description string
	Tasks       []Task
	Timeline    Timeline
	Phases      []string
}
