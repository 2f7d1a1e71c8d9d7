package ports

import (
	"context"

	"github.com/handypro/connect-api/internal/core/domain"
)

// CreateQuoteInput carries a professional's offer on a job. JobID is
// stored as received; existence of the job is not verified.
type CreateQuoteInput struct {
	JobID  int64
	Amount float64
	Notes  string
}

// QuoteService defines the quote use cases.
type QuoteService interface {
	// Create stores a pending quote for the calling professional;
	// any other role gets domain.ErrForbidden.
	Create(ctx context.Context, input CreateQuoteInput, actor *domain.User) (*domain.Quote, error)
	// List returns the caller's submitted quotes for professionals,
	// and quotes on the caller's jobs for everyone else.
	List(ctx context.Context, actor *domain.User) ([]*domain.Quote, error)
}
