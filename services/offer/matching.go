package offer

import (
	"sort"

	"fixmarkt/models"
	"fixmarkt/services/geo"
	"fixmarkt/utils"
)

// defaultRadiusKm is used when a workshop browses without supplying a radius.
const defaultRadiusKm = 50

// FindAvailable scans open requests and keeps those within radiusKm of the
// given coordinates. A linear scan is the accepted cost at this scale; there
// is no spatial index.
func (s *DefaultOfferService) FindAvailable(workshopID string, lat, lon, radiusKm float64) ([]models.AvailableRequest, error) {
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return nil, utils.NewValidationError("coordinates are out of range")
	}
	if radiusKm <= 0 {
		radiusKm = defaultRadiusKm
	}

	open, err := s.Requests.ListOpen()
	if err != nil {
		return nil, err
	}

	offered, err := s.Repo.RequestIDsWithOfferFrom(workshopID)
	if err != nil {
		return nil, err
	}

	available := []models.AvailableRequest{}
	for _, req := range open {
		// A workshop never sees a request it already has any offer on.
		if offered[req.ID] {
			continue
		}
		distanceKm := geo.Distance(lat, lon, req.Location.Latitude, req.Location.Longitude)
		if distanceKm > radiusKm {
			continue
		}
		available = append(available, models.AvailableRequest{Request: req, DistanceKm: distanceKm})
	}

	sort.Slice(available, func(i, j int) bool {
		return available[i].DistanceKm < available[j].DistanceKm
	})
	return available, nil
}
