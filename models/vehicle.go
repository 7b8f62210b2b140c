package models

import "time"

type Vehicle struct {
	ID           string    `bson:"id" json:"id"`
	CustomerID   string    `bson:"customer_id" json:"customer_id"`
	Make         string    `bson:"make" json:"make"`
	Model        string    `bson:"model" json:"model"`
	Year         int       `bson:"year" json:"year"`
	LicensePlate string    `bson:"license_plate,omitempty" json:"license_plate,omitempty"`
	VIN          string    `bson:"vin,omitempty" json:"vin,omitempty"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}
