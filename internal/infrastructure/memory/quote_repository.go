package memory

import (
	"context"
	"sync"

	"github.com/handypro/connect-api/internal/core/domain"
	"github.com/handypro/connect-api/internal/core/ports"
)

// QuoteRepository keeps quotes in insertion order.
type QuoteRepository struct {
	mu     sync.Mutex
	quotes []*domain.Quote
	nextID int64
}

func NewQuoteRepository() *QuoteRepository {
	return &QuoteRepository{}
}

func cloneQuote(q *domain.Quote) *domain.Quote {
	clone := *q
	return &clone
}

func (r *QuoteRepository) Create(_ context.Context, quote *domain.Quote) (*domain.Quote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	created := cloneQuote(quote)
	created.ID = r.nextID
	r.quotes = append(r.quotes, cloneQuote(created))
	return created, nil
}

func (r *QuoteRepository) List(_ context.Context, filter ports.QuoteFilter) ([]*domain.Quote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	matched := []*domain.Quote{}
	for _, q := range r.quotes {
		if filter.ProfessionalID != 0 && q.ProfessionalID != filter.ProfessionalID {
			continue
		}
		if filter.CustomerID != 0 && q.CustomerID != filter.CustomerID {
			continue
		}
		matched = append(matched, cloneQuote(q))
	}
	return matched, nil
}
