package workshopRepo

import (
	"errors"

	"fixmarkt/models"
)

var (
	// ErrNotFound is returned when no workshop matches the lookup.
	ErrNotFound = errors.New("workshop not found")
	// ErrDuplicate is returned when the unique email constraint rejects an insert.
	ErrDuplicate = errors.New("workshop already exists")
)

// WorkshopRepository defines persistence operations for workshops.
type WorkshopRepository interface {
	Create(workshop *models.Workshop) error
	GetByID(id string) (*models.Workshop, error)
	GetByEmail(email string) (*models.Workshop, error)
	GetByTokenHash(tokenHash string) (*models.Workshop, error)
	UpdateTokenHash(id, tokenHash string) error
	Update(workshop *models.Workshop) error
}
