package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/handypro/connect-api/internal/core/domain"
	"github.com/handypro/connect-api/internal/core/ports"
)

// QuoteService implements quote submission and listing.
type QuoteService struct {
	repo ports.QuoteRepository
	log  zerolog.Logger
}

func NewQuoteService(repo ports.QuoteRepository, log zerolog.Logger) *QuoteService {
	return &QuoteService{repo: repo, log: log}
}

// Create stores a pending quote for the calling professional. The job
// id is recorded as received: it is not resolved against the job
// store, so the quote's CustomerID stays zero until an owner lookup
// exists. Both points are pinned by tests.
func (s *QuoteService) Create(ctx context.Context, input ports.CreateQuoteInput, actor *domain.User) (*domain.Quote, error) {
	if !domain.CanAccess(actor, domain.ResourceQuote, domain.ActionCreate) {
		return nil, domain.ErrForbidden
	}

	quote := &domain.Quote{
		JobID:            input.JobID,
		ProfessionalID:   actor.ID,
		ProfessionalName: actor.FullName,
		Amount:           input.Amount,
		Notes:            input.Notes,
		Status:           domain.QuoteStatusPending,
		CreatedAt:        time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, quote)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create quote")
		return nil, err
	}

	s.log.Info().Int64("quote_id", created.ID).Int64("job_id", created.JobID).Int64("professional_id", actor.ID).Msg("quote submitted")
	return created, nil
}

// List returns the caller's submitted quotes for professionals, and
// quotes against the caller's jobs for everyone else.
func (s *QuoteService) List(ctx context.Context, actor *domain.User) ([]*domain.Quote, error) {
	if !domain.CanAccess(actor, domain.ResourceQuote, domain.ActionList) {
		return nil, domain.ErrForbidden
	}

	filter := ports.QuoteFilter{}
	if actor.Role == domain.RoleProfessional {
		filter.ProfessionalID = actor.ID
	} else {
		filter.CustomerID = actor.ID
	}
	return s.repo.List(ctx, filter)
}
