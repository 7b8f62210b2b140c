package offerRepo

import (
	"errors"

	"fixmarkt/models"
)

var (
	// ErrNotFound is returned when no offer matches the lookup.
	ErrNotFound = errors.New("offer not found")
	// ErrDuplicate is returned when the unique (request, workshop) constraint
	// rejects an insert. This is the authoritative closer of the
	// check-then-act race on offer creation.
	ErrDuplicate = errors.New("offer already exists for this request and workshop")
)

// OfferRepository defines persistence operations for offers.
type OfferRepository interface {
	Create(offer *models.Offer) error
	GetByID(id string) (*models.Offer, error)
	ListByRequest(requestID string) ([]models.Offer, error)
	ListByWorkshop(workshopID string) ([]models.Offer, error)
	// RequestIDsWithOfferFrom returns the set of request IDs this workshop has
	// any offer on, regardless of that offer's status.
	RequestIDsWithOfferFrom(workshopID string) (map[string]bool, error)
	Update(offer *models.Offer) error
	// AcceptIfSent atomically flips the offer SENT -> ACCEPTED and reports
	// whether this caller won the flip. At most one caller ever wins.
	AcceptIfSent(id string) (bool, error)
}
