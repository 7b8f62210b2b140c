package models

import "time"

// Request statuses. Transitions only move forward along the lifecycle graph
// (see services/request).
const (
	RequestStatusNew           = "NEW"
	RequestStatusInBidding     = "IN_BIDDING"
	RequestStatusBiddingClosed = "BIDDING_CLOSED"
	RequestStatusBooked        = "BOOKED"
	RequestStatusCompleted     = "COMPLETED"
	RequestStatusCancelled     = "CANCELLED"
)

// Location is the place a request's vehicle is at.
type Location struct {
	Latitude   float64 `bson:"latitude" json:"latitude"`
	Longitude  float64 `bson:"longitude" json:"longitude"`
	Address    string  `bson:"address" json:"address"`
	City       string  `bson:"city" json:"city"`
	PostalCode string  `bson:"postal_code" json:"postal_code"`
	Country    string  `bson:"country" json:"country"`
}

// Request is a customer's posted repair job seeking bids.
type Request struct {
	ID          string    `bson:"id" json:"id"`
	CustomerID  string    `bson:"customer_id" json:"customer_id"`
	VehicleID   string    `bson:"vehicle_id" json:"vehicle_id"`
	ReportID    string    `bson:"report_id,omitempty" json:"report_id,omitempty"` // opaque inspection report identifier
	Description string    `bson:"description" json:"description"`
	Location    Location  `bson:"location" json:"location"`
	ExpiresAt   time.Time `bson:"expires_at" json:"expires_at"`
	Status      string    `bson:"status" json:"status"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

// AvailableRequest is a request returned to a browsing workshop,
// annotated with the computed distance.
type AvailableRequest struct {
	Request
	DistanceKm float64 `json:"distance_km"`
}
