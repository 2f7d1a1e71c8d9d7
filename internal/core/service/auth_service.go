package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/handypro/connect-api/internal/core/domain"
	"github.com/handypro/connect-api/internal/core/ports"
	"github.com/handypro/connect-api/pkg/password"
	"github.com/handypro/connect-api/pkg/token"
)

// AuthService implements registration, login and profile updates.
type AuthService struct {
	repo   ports.UserRepository
	hasher *password.Hasher
	tokens *token.Manager
	log    zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, hasher *password.Hasher, tokens *token.Manager, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, tokens: tokens, log: log}
}

func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	role := input.Role
	if role == "" {
		role = domain.RoleCustomer
	}
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidRole
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:          input.Email,
		FullName:       input.FullName,
		HashedPassword: hash,
		Phone:          input.Phone,
		Role:           role,
		Rating:         0.0,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("email", created.Email).Str("role", created.Role).Int64("user_id", created.ID).Msg("user registered")
	return created, nil
}

// Login authenticates by email and password. Unknown email and wrong
// password both come back as ErrInvalidCredentials so callers cannot
// enumerate accounts.
func (s *AuthService) Login(ctx context.Context, email, pass string) (string, *domain.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !s.hasher.Verify(pass, user.HashedPassword) {
		return "", nil, domain.ErrInvalidCredentials
	}

	signed, err := s.tokens.Issue(user.Email, user.Role)
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Str("email", user.Email).Msg("user logged in")
	return signed, user, nil
}

func (s *AuthService) UpdateProfile(ctx context.Context, actor *domain.User, input ports.ProfileUpdateInput) (*domain.User, error) {
	updated := *actor
	if input.FullName != "" {
		updated.FullName = input.FullName
	}
	if input.Phone != "" {
		updated.Phone = input.Phone
	}
	updated.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, &updated)
}
