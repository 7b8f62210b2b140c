package reviewRepo

import (
	"errors"

	"fixmarkt/models"
)

var (
	// ErrNotFound is returned when no review matches the lookup.
	ErrNotFound = errors.New("review not found")
	// ErrDuplicate is returned when the unique booking_id constraint rejects
	// an insert. This backstops the pre-check against concurrent submissions.
	ErrDuplicate = errors.New("review already exists for this booking")
)

// ReviewRepository defines persistence operations for reviews.
type ReviewRepository interface {
	Create(review *models.Review) error
	GetByBookingID(bookingID string) (*models.Review, error)
	ListByWorkshop(workshopID string) ([]models.Review, error)
}
