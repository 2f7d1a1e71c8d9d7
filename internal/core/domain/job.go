package domain

import "time"

// JobStatus represents the lifecycle state of a posted job.
type JobStatus string

const (
	JobStatusOpen       JobStatus = "open"
	JobStatusQuoted     JobStatus = "quoted"
	JobStatusInProgress JobStatus = "in_progress"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusCancelled  JobStatus = "cancelled"
)

// validJobTransitions defines the allowed state machine transitions.
var validJobTransitions = map[JobStatus][]JobStatus{
	JobStatusOpen:       {JobStatusQuoted, JobStatusCancelled},
	JobStatusQuoted:     {JobStatusInProgress, JobStatusCancelled},
	JobStatusInProgress: {JobStatusCompleted, JobStatusCancelled},
}

// CanTransitionTo reports whether a transition from the current status to next is valid.
func (s JobStatus) CanTransitionTo(next JobStatus) bool {
	for _, allowed := range validJobTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ValidJobStatus reports whether s names a known job status.
func ValidJobStatus(s JobStatus) bool {
	switch s {
	case JobStatusOpen, JobStatusQuoted, JobStatusInProgress, JobStatusCompleted, JobStatusCancelled:
		return true
	}
	return false
}

// Job is a work request posted by a customer. It is owned by the customer
// who created it; while open it is visible to every professional.
type Job struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Location     string    `json:"location"`
	Urgency      string    `json:"urgency"`
	BudgetMin    *float64  `json:"budget_min,omitempty"`
	BudgetMax    *float64  `json:"budget_max,omitempty"`
	Status       JobStatus `json:"status"`
	CustomerID   int64     `json:"customer_id"`
	CustomerName string    `json:"customer_name"`
	ServiceID    *int64    `json:"service_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
