package ports

import (
	"context"

	"github.com/handypro/connect-api/internal/core/domain"
)

// JobFilter carries the query parameters for listing jobs. Zero values
// mean "no filter"; the service layer sets CustomerID to scope
// non-professional callers to their own jobs.
type JobFilter struct {
	CustomerID int64
	Status     domain.JobStatus
}

// JobRepository defines persistence operations for jobs.
type JobRepository interface {
	// Create persists a new job and returns it with the assigned id.
	Create(ctx context.Context, job *domain.Job) (*domain.Job, error)
	// FindByID returns domain.ErrJobNotFound when no job has the id.
	FindByID(ctx context.Context, id int64) (*domain.Job, error)
	List(ctx context.Context, filter JobFilter) ([]*domain.Job, error)
	UpdateStatus(ctx context.Context, id int64, status domain.JobStatus) (*domain.Job, error)
}
