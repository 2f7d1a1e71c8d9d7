package ports

import (
	"context"

	"github.com/handypro/connect-api/internal/core/domain"
)

// CreateJobInput carries all data needed to post a new job.
type CreateJobInput struct {
	Title       string
	Description string
	Location    string
	Urgency     string // urgent, normal, flexible
	BudgetMin   *float64
	BudgetMax   *float64
	ServiceID   *int64
}

// JobService defines the role-gated job use cases. Every operation
// takes the resolved caller identity; visibility rules live in
// domain.CanAccess / domain.CanViewJob.
type JobService interface {
	Create(ctx context.Context, input CreateJobInput, actor *domain.User) (*domain.Job, error)
	// List returns all jobs for professionals and only the caller's
	// own jobs for every other role.
	List(ctx context.Context, actor *domain.User) ([]*domain.Job, error)
	// ListOpen returns open jobs; professional-only, otherwise
	// domain.ErrForbidden.
	ListOpen(ctx context.Context, actor *domain.User) ([]*domain.Job, error)
	// Get returns domain.ErrJobNotFound both when the job is absent
	// and when the caller may not see it.
	Get(ctx context.Context, id int64, actor *domain.User) (*domain.Job, error)
	// UpdateStatus applies a validated status transition; owner-only.
	UpdateStatus(ctx context.Context, id int64, status domain.JobStatus, actor *domain.User) (*domain.Job, error)
}
