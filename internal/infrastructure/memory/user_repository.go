// Package memory provides mutex-guarded in-memory repositories. It is
// the default demo backend and the reference implementation the Mongo
// repositories mirror. Each store owns a single lock covering the
// "read next id, insert" critical section, so concurrent writers never
// observe duplicate ids.
package memory

import (
	"context"
	"sync"

	"github.com/handypro/connect-api/internal/core/domain"
)

// UserRepository keeps users keyed by email (case-sensitive, exact).
type UserRepository struct {
	mu      sync.Mutex
	byEmail map[string]*domain.User
	nextID  int64
}

func NewUserRepository() *UserRepository {
	return &UserRepository{byEmail: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	clone := *u
	return &clone
}

func (r *UserRepository) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[user.Email]; exists {
		return nil, domain.ErrUserExists
	}

	r.nextID++
	created := cloneUser(user)
	created.ID = r.nextID
	r.byEmail[created.Email] = cloneUser(created)
	return created, nil
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *UserRepository) FindByID(_ context.Context, id int64) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.byEmail {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) Update(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[user.Email]; !ok {
		return nil, domain.ErrUserNotFound
	}
	r.byEmail[user.Email] = cloneUser(user)
	return cloneUser(user), nil
}
