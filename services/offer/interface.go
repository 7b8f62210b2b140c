package offer

import (
	"time"

	"fixmarkt/models"
)

// CreateOfferInput carries the fields a workshop submits when bidding.
type CreateOfferInput struct {
	RequestID         string      `json:"request_id"`
	Price             float64     `json:"price"`
	Note              string      `json:"note"`
	AvailableDates    []time.Time `json:"available_dates"`
	EstimatedDuration int         `json:"estimated_duration"`
	WarrantyMonths    int         `json:"warranty_months"`
}

// OfferService owns offer creation and mutation, including the one-offer-per-
// workshop-per-request rule and the discovery query for browsing workshops.
type OfferService interface {
	Create(workshopID string, in CreateOfferInput) (*models.Offer, error)
	Update(offerID, workshopID string, patch models.OfferPatch) (*models.Offer, error)
	ListByRequest(requestID, principalID, role string) ([]models.Offer, error)
	ListByWorkshop(workshopID string) ([]models.Offer, error)
	// FindAvailable returns open, unexpired requests within radiusKm of the
	// given coordinates, excluding requests this workshop already has any
	// offer on, each annotated with the computed distance.
	FindAvailable(workshopID string, lat, lon, radiusKm float64) ([]models.AvailableRequest, error)
}
