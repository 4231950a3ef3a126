package analyzer

import "github.com/idelgado/planweave/internal/domain"

// DefaultTasks is the fixed task set substituted when a document yields no
// keyword matches at all.
func DefaultTasks() []domain.Task {
	return []domain.Task{
		{Name: "Project Planning", Description: "Plan project scope and timeline", Priority: domain.PriorityHigh, EstimatedDurationDays: 3},
		{Name: "Requirements Analysis", Description: "Analyze project requirements", Priority: domain.PriorityHigh, EstimatedDurationDays: 5},
		{Name: "System Design", Description: "Design system architecture", Priority: domain.PriorityMedium, EstimatedDurationDays: 7},
		{Name: "Development Phase 1", Description: "Initial development phase", Priority: domain.PriorityHigh, EstimatedDurationDays: 10},
		{Name: "Testing", Description: "Test system functionality", Priority: domain.PriorityHigh, EstimatedDurationDays: 5},
		{Name: "Deployment", Description: "Deploy to production", Priority: domain.PriorityMedium, EstimatedDurationDays: 2},
	}
}
