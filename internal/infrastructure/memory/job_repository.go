package memory

import (
	"context"
	"sync"
	"time"

	"github.com/handypro/connect-api/internal/core/domain"
	"github.com/handypro/connect-api/internal/core/ports"
)

// JobRepository keeps jobs in insertion order.
type JobRepository struct {
	mu     sync.Mutex
	jobs   []*domain.Job
	nextID int64
}

func NewJobRepository() *JobRepository {
	return &JobRepository{}
}

func cloneJob(j *domain.Job) *domain.Job {
	clone := *j
	return &clone
}

func (r *JobRepository) Create(_ context.Context, job *domain.Job) (*domain.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	created := cloneJob(job)
	created.ID = r.nextID
	r.jobs = append(r.jobs, cloneJob(created))
	return created, nil
}

func (r *JobRepository) FindByID(_ context.Context, id int64) (*domain.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, j := range r.jobs {
		if j.ID == id {
			return cloneJob(j), nil
		}
	}
	return nil, domain.ErrJobNotFound
}

func (r *JobRepository) List(_ context.Context, filter ports.JobFilter) ([]*domain.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	matched := []*domain.Job{}
	for _, j := range r.jobs {
		if filter.CustomerID != 0 && j.CustomerID != filter.CustomerID {
			continue
		}
		if filter.Status != "" && j.Status != filter.Status {
			continue
		}
		matched = append(matched, cloneJob(j))
	}
	return matched, nil
}

func (r *JobRepository) UpdateStatus(_ context.Context, id int64, status domain.JobStatus) (*domain.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, j := range r.jobs {
		if j.ID == id {
			j.Status = status
			j.UpdatedAt = time.Now().UTC()
			return cloneJob(j), nil
		}
	}
	return nil, domain.ErrJobNotFound
}
