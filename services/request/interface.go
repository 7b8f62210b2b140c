package request

import (
	"time"

	"fixmarkt/models"
)

// CreateRequestInput carries the fields a customer submits for a new request.
type CreateRequestInput struct {
	VehicleID   string          `json:"vehicle_id"`
	ReportID    string          `json:"report_id"`
	Description string          `json:"description"`
	Location    models.Location `json:"location"`
	ExpiresAt   time.Time       `json:"expires_at"`
}

// RequestService owns the request status state machine. Offer and booking
// operations drive it through Transition; they never touch statuses directly.
type RequestService interface {
	Create(customerID string, in CreateRequestInput) (*models.Request, error)
	GetByID(id, principalID, role string) (*models.Request, error)
	ListByCustomer(customerID string) ([]models.Request, error)
	Cancel(id, principalID, role string) error
	// Transition moves a request to the target status if one of the statuses
	// the lifecycle graph admits as a predecessor currently holds.
	Transition(id, to string) error
}
