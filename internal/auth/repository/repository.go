package repository

import authdomain "classmon-backend/internal/auth/domain"

// UserRepository is the persistence boundary for accounts.
// Find methods return (nil, nil) when no row matches.
type UserRepository interface {
	Create(user *authdomain.User) error
	FindByEmail(email string) (*authdomain.User, error)
	FindByID(id string) (*authdomain.User, error)
	ListByRole(role authdomain.Role) ([]*authdomain.User, error)
	Delete(id string) error
}
