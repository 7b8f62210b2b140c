package bookingRepo

import (
	"errors"
	"time"

	"fixmarkt/models"
)

var (
	// ErrNotFound is returned when no booking matches the lookup.
	ErrNotFound = errors.New("booking not found")
	// ErrDuplicate is returned when the unique offer_id constraint rejects an
	// insert; a booking is created exactly once per accepted offer.
	ErrDuplicate = errors.New("booking already exists for this offer")
)

// PayoutRow is one per-workshop aggregation bucket over DONE bookings.
// WorkshopAmount is derived by the aggregator, not summed here.
type PayoutRow struct {
	WorkshopID  string  `bson:"_id"`
	TotalJobs   int     `bson:"total_jobs"`
	TotalAmount float64 `bson:"total_amount"`
	Commission  float64 `bson:"commission"`
}

// BookingRepository defines persistence operations for bookings.
type BookingRepository interface {
	Create(booking *models.Booking) error
	GetByID(id string) (*models.Booking, error)
	ListByCustomer(customerID string) ([]models.Booking, error)
	ListByWorkshop(workshopID string) ([]models.Booking, error)
	Update(booking *models.Booking) error
	// AggregatePayouts groups DONE bookings created within [from, to]
	// by workshop and sums their money fields.
	AggregatePayouts(from, to time.Time) ([]PayoutRow, error)
}
