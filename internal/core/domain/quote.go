package domain

import "time"

// QuoteStatus represents the lifecycle state of a quote.
type QuoteStatus string

const (
	QuoteStatusPending  QuoteStatus = "pending"
	QuoteStatusAccepted QuoteStatus = "accepted"
	QuoteStatusRejected QuoteStatus = "rejected"
	QuoteStatusExpired  QuoteStatus = "expired"
)

// Quote is a professional's offer against a posted job.
//
// JobID is taken as-is from the submitting request; it is not checked
// against the job store, and CustomerID stays zero until an owner
// lookup exists. Both are pinned by tests in the quote service.
type Quote struct {
	ID               int64       `json:"id"`
	JobID            int64       `json:"job_id"`
	ProfessionalID   int64       `json:"professional_id"`
	ProfessionalName string      `json:"professional_name"`
	CustomerID       int64       `json:"customer_id"`
	Amount           float64     `json:"amount"`
	Notes            string      `json:"notes,omitempty"`
	Status           QuoteStatus `json:"status"`
	CreatedAt        time.Time   `json:"created_at"`
}
