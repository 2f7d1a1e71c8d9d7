package domain

import "time"

const (
	RoleCustomer     = "customer"
	RoleProfessional = "professional"
	RoleAdmin        = "admin"
)

// ValidRole reports whether role is one of the known user roles.
func ValidRole(role string) bool {
	switch role {
	case RoleCustomer, RoleProfessional, RoleAdmin:
		return true
	}
	return false
}

// User models an authenticated actor in the marketplace.
// Email is the unique lookup key (case-sensitive, exact match).
type User struct {
	ID             int64     `json:"id"`
	Email          string    `json:"email"`
	FullName       string    `json:"full_name"`
	HashedPassword string    `json:"-"`
	Phone          string    `json:"phone,omitempty"`
	Role           string    `json:"role"`
	Rating         float64   `json:"rating"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
