package requestRepo

import (
	"errors"

	"fixmarkt/models"
)

// ErrNotFound is returned when no request matches the lookup.
var ErrNotFound = errors.New("request not found")

// RequestRepository defines persistence operations for repair requests.
type RequestRepository interface {
	Create(req *models.Request) error
	GetByID(id string) (*models.Request, error)
	ListByCustomer(customerID string) ([]models.Request, error)
	// ListOpen returns requests still eligible for workshop discovery:
	// status NEW or IN_BIDDING and not yet expired.
	ListOpen() ([]models.Request, error)
	// UpdateStatusWhere conditionally moves a request from one of the given
	// statuses to the target status. It reports whether a document matched,
	// so losing a concurrent transition is observable, not silent.
	UpdateStatusWhere(id, to string, from ...string) (bool, error)
}
