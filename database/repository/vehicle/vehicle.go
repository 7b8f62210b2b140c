package vehicleRepo

import (
	"errors"

	"fixmarkt/models"
)

// ErrNotFound is returned when no vehicle matches the lookup.
var ErrNotFound = errors.New("vehicle not found")

// VehicleRepository defines persistence operations for vehicles.
type VehicleRepository interface {
	Create(vehicle *models.Vehicle) error
	GetByID(id string) (*models.Vehicle, error)
	ListByCustomer(customerID string) ([]models.Vehicle, error)
}
