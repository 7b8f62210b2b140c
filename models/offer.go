package models

import "time"

// Offer statuses.
const (
	OfferStatusSent     = "SENT"
	OfferStatusAccepted = "ACCEPTED"
	OfferStatusDeclined = "DECLINED"
	OfferStatusExpired  = "EXPIRED"
)

// Offer is a workshop's bid against a Request. At most one Offer exists
// per (request, workshop) pair, enforced by a unique compound index.
type Offer struct {
	ID                string      `bson:"id" json:"id"`
	RequestID         string      `bson:"request_id" json:"request_id"`
	WorkshopID        string      `bson:"workshop_id" json:"workshop_id"`
	Price             float64     `bson:"price" json:"price"`
	Note              string      `bson:"note,omitempty" json:"note,omitempty"`
	AvailableDates    []time.Time `bson:"available_dates,omitempty" json:"available_dates,omitempty"`
	EstimatedDuration int         `bson:"estimated_duration,omitempty" json:"estimated_duration,omitempty"` // minutes
	WarrantyMonths    int         `bson:"warranty_months,omitempty" json:"warranty_months,omitempty"`
	Status            string      `bson:"status" json:"status"`
	CreatedAt         time.Time   `bson:"created_at" json:"created_at"`
	UpdatedAt         time.Time   `bson:"updated_at" json:"updated_at"`
}

// OfferPatch carries a partial update to an offer. Nil fields are left untouched.
type OfferPatch struct {
	Price             *float64     `json:"price,omitempty"`
	Note              *string      `json:"note,omitempty"`
	AvailableDates    *[]time.Time `json:"available_dates,omitempty"`
	EstimatedDuration *int         `json:"estimated_duration,omitempty"`
	WarrantyMonths    *int         `json:"warranty_months,omitempty"`
	Status            *string      `json:"status,omitempty"` // lets a workshop withdraw/decline its own offer
}
