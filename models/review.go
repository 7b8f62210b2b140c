package models

import "time"

// Review is customer feedback attached to a booking. One review per booking,
// enforced by a unique index on booking_id.
type Review struct {
	ID         string    `bson:"id" json:"id"`
	BookingID  string    `bson:"booking_id" json:"booking_id"`
	CustomerID string    `bson:"customer_id" json:"customer_id"`
	WorkshopID string    `bson:"workshop_id" json:"workshop_id"`
	Rating     int       `bson:"rating" json:"rating"` // 1..5
	Comment    string    `bson:"comment,omitempty" json:"comment,omitempty"`
	Published  bool      `bson:"published" json:"published"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
}
