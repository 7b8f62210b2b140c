package models

import "time"

// OpeningHour is one weekday entry of a workshop's opening schedule.
type OpeningHour struct {
	Weekday string `bson:"weekday" json:"weekday"` // e.g. "monday"
	Opens   string `bson:"opens" json:"opens"`     // "08:00"
	Closes  string `bson:"closes" json:"closes"`   // "17:30"
}

// Workshop is a repair shop that bids on inspection requests.
type Workshop struct {
	ID           string        `bson:"id" json:"id"`
	Name         string        `bson:"name" json:"name"`
	Email        string        `bson:"email" json:"email"`
	Phone        string        `bson:"phone,omitempty" json:"phone,omitempty"`
	PasswordHash string        `bson:"password_hash" json:"-"`
	TokenHash    string        `bson:"token_hash,omitempty" json:"-"`
	Address      string        `bson:"address" json:"address"`
	City         string        `bson:"city" json:"city"`
	PostalCode   string        `bson:"postal_code" json:"postal_code"`
	Country      string        `bson:"country" json:"country"`
	Latitude     float64       `bson:"latitude" json:"latitude"`
	Longitude    float64       `bson:"longitude" json:"longitude"`
	Services     []string      `bson:"services,omitempty" json:"services,omitempty"`
	OpeningHours []OpeningHour `bson:"opening_hours,omitempty" json:"opening_hours,omitempty"`
	CreatedAt    time.Time     `bson:"created_at" json:"created_at"`
}
