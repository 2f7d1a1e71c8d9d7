package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/handypro/connect-api/internal/core/domain"
	"github.com/handypro/connect-api/internal/core/ports"
)

// JobService implements the role-gated job use cases.
type JobService struct {
	repo ports.JobRepository
	log  zerolog.Logger
}

func NewJobService(repo ports.JobRepository, log zerolog.Logger) *JobService {
	return &JobService{repo: repo, log: log}
}

func (s *JobService) Create(ctx context.Context, input ports.CreateJobInput, actor *domain.User) (*domain.Job, error) {
	if !domain.CanAccess(actor, domain.ResourceJob, domain.ActionCreate) {
		return nil, domain.ErrForbidden
	}

	urgency := input.Urgency
	if urgency == "" {
		urgency = "normal"
	}

	now := time.Now().UTC()
	job := &domain.Job{
		Title:        input.Title,
		Description:  input.Description,
		Location:     input.Location,
		Urgency:      urgency,
		BudgetMin:    input.BudgetMin,
		BudgetMax:    input.BudgetMax,
		Status:       domain.JobStatusOpen,
		CustomerID:   actor.ID,
		CustomerName: actor.FullName,
		ServiceID:    input.ServiceID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, job)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create job")
		return nil, err
	}

	s.log.Info().Int64("job_id", created.ID).Int64("customer_id", actor.ID).Msg("job created")
	return created, nil
}

// List returns every job for professionals; all other roles are scoped
// to jobs they own.
func (s *JobService) List(ctx context.Context, actor *domain.User) ([]*domain.Job, error) {
	if !domain.CanAccess(actor, domain.ResourceJob, domain.ActionList) {
		return nil, domain.ErrForbidden
	}

	filter := ports.JobFilter{}
	if actor.Role != domain.RoleProfessional {
		filter.CustomerID = actor.ID
	}
	return s.repo.List(ctx, filter)
}

// ListOpen returns jobs with status open. Professional-only.
func (s *JobService) ListOpen(ctx context.Context, actor *domain.User) ([]*domain.Job, error) {
	if !domain.CanAccess(actor, domain.ResourceOpenJobs, domain.ActionList) {
		return nil, domain.ErrForbidden
	}
	return s.repo.List(ctx, ports.JobFilter{Status: domain.JobStatusOpen})
}

// Get returns ErrJobNotFound for both an absent job and a job the
// caller may not see, so the response never confirms record existence
// to unauthorized callers.
func (s *JobService) Get(ctx context.Context, id int64, actor *domain.User) (*domain.Job, error) {
	if !domain.CanAccess(actor, domain.ResourceJob, domain.ActionRead) {
		return nil, domain.ErrForbidden
	}

	job, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.CanViewJob(actor, job) {
		return nil, domain.ErrJobNotFound
	}
	return job, nil
}

// UpdateStatus applies a status transition. Only the owning customer
// may move a job through its lifecycle, and only along the transition
// table.
func (s *JobService) UpdateStatus(ctx context.Context, id int64, status domain.JobStatus, actor *domain.User) (*domain.Job, error) {
	if !domain.ValidJobStatus(status) {
		return nil, domain.ErrInvalidTransition
	}

	job, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if job.CustomerID != actor.ID {
		return nil, domain.ErrForbidden
	}
	if !job.Status.CanTransitionTo(status) {
		return nil, domain.ErrInvalidTransition
	}

	updated, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	s.log.Info().Int64("job_id", id).Str("from", string(job.Status)).Str("to", string(status)).Msg("job status updated")
	return updated, nil
}
