package userRepo

import (
	"errors"

	"fixmarkt/models"
)

var (
	// ErrNotFound is returned when no user matches the lookup.
	ErrNotFound = errors.New("user not found")
	// ErrDuplicate is returned when the unique email constraint rejects an insert.
	ErrDuplicate = errors.New("user already exists")
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByTokenHash(tokenHash string) (*models.User, error)
	UpdateTokenHash(id, tokenHash string) error
}
