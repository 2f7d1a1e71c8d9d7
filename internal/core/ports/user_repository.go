package ports

import (
	"context"

	"github.com/handypro/connect-api/internal/core/domain"
)

// UserRepository is the credential store. Email lookups are exact,
// case-sensitive matches. Create assigns the next monotonic id; the
// implementation owns the "read next id, insert" critical section so
// concurrent registrations never observe duplicate ids.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	// Create persists a new user and returns it with the assigned id.
	// Returns domain.ErrUserExists when the email is already taken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
}
