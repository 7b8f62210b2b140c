package models

import "time"

// Booking statuses.
const (
	BookingStatusConfirmed   = "CONFIRMED"
	BookingStatusRescheduled = "RESCHEDULED"
	BookingStatusCancelled   = "CANCELLED"
	BookingStatusDone        = "DONE"
	BookingStatusNoShow      = "NO_SHOW"
)

// Booking is the confirmed engagement created from an accepted Offer.
// TotalAmount = Commission + WorkshopAmount always.
type Booking struct {
	ID             string    `bson:"id" json:"id"`
	RequestID      string    `bson:"request_id" json:"request_id"`
	OfferID        string    `bson:"offer_id" json:"offer_id"`
	CustomerID     string    `bson:"customer_id" json:"customer_id"`
	WorkshopID     string    `bson:"workshop_id" json:"workshop_id"`
	ScheduledAt    time.Time `bson:"scheduled_at" json:"scheduled_at"`
	Notes          string    `bson:"notes,omitempty" json:"notes,omitempty"`
	Status         string    `bson:"status" json:"status"`
	TotalAmount    float64   `bson:"total_amount" json:"total_amount"`
	Commission     float64   `bson:"commission" json:"commission"`
	WorkshopAmount float64   `bson:"workshop_amount" json:"workshop_amount"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time `bson:"updated_at" json:"updated_at"`
}
