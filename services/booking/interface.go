package booking

import (
	"time"

	"fixmarkt/models"
)

// CreateBookingInput carries the fields a customer submits when accepting an offer.
type CreateBookingInput struct {
	OfferID     string    `json:"offer_id"`
	ScheduledAt time.Time `json:"scheduled_at"`
	Notes       string    `json:"notes"`
}

// UpdateBookingInput is a partial booking update. Supplying only ScheduledAt
// reschedules the booking; rescheduling is a status transition, not a
// parallel attribute.
type UpdateBookingInput struct {
	Status      *string    `json:"status,omitempty"`
	ScheduledAt *time.Time `json:"scheduled_at,omitempty"`
	Notes       *string    `json:"notes,omitempty"`
}

// BookingService owns booking creation from accepted offers, the commission
// split, and post-booking status transitions cascading into the request
// lifecycle.
type BookingService interface {
	CreateFromOffer(customerID string, in CreateBookingInput) (*models.Booking, error)
	UpdateStatus(bookingID, principalID, role string, in UpdateBookingInput) (*models.Booking, error)
	GetByID(bookingID, principalID, role string) (*models.Booking, error)
	ListByCustomer(customerID string) ([]models.Booking, error)
	ListByWorkshop(workshopID string) ([]models.Booking, error)
}
