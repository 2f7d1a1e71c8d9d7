package ports

import (
	"context"

	"github.com/handypro/connect-api/internal/core/domain"
)

// RegisterInput carries the registration payload into AuthService.
type RegisterInput struct {
	Email    string
	FullName string
	Password string
	Phone    string
	Role     string // defaults to customer when empty
}

// ProfileUpdateInput carries the mutable profile fields.
type ProfileUpdateInput struct {
	FullName string
	Phone    string
}

// AuthService implements registration, login and profile maintenance.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login returns a signed bearer token and the authenticated user.
	// Unknown email and wrong password are indistinguishable to the
	// caller: both return domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	UpdateProfile(ctx context.Context, actor *domain.User, input ProfileUpdateInput) (*domain.User, error)
}
