package ports

import (
	"context"

	"github.com/handypro/connect-api/internal/core/domain"
)

// QuoteFilter carries the query parameters for listing quotes. Zero
// values mean "no filter".
type QuoteFilter struct {
	ProfessionalID int64
	CustomerID     int64
}

// QuoteRepository defines persistence operations for quotes.
type QuoteRepository interface {
	// Create persists a new quote and returns it with the assigned id.
	Create(ctx context.Context, quote *domain.Quote) (*domain.Quote, error)
	List(ctx context.Context, filter QuoteFilter) ([]*domain.Quote, error)
}
