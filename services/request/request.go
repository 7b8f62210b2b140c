package request

import (
	"errors"
	"time"

	requestRepo "fixmarkt/database/repository/request"
	vehicleRepo "fixmarkt/database/repository/vehicle"
	"fixmarkt/models"
	"fixmarkt/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// defaultBiddingWindow is applied when a customer does not set an expiry.
const defaultBiddingWindow = 14 * 24 * time.Hour

// transitionsInto maps each target status to the statuses a request may hold
// immediately before it. Statuses only move forward along this graph.
var transitionsInto = map[string][]string{
	models.RequestStatusInBidding: {models.RequestStatusNew},
	models.RequestStatusBooked: {
		models.RequestStatusNew,
		models.RequestStatusInBidding,
		models.RequestStatusBiddingClosed,
	},
	models.RequestStatusBiddingClosed: {models.RequestStatusBooked},
	models.RequestStatusCompleted:     {models.RequestStatusBooked},
	models.RequestStatusCancelled: {
		models.RequestStatusNew,
		models.RequestStatusInBidding,
		models.RequestStatusBooked,
		models.RequestStatusBiddingClosed,
	},
}

// DefaultRequestService implements RequestService.
type DefaultRequestService struct {
	Repo     requestRepo.RequestRepository
	Vehicles vehicleRepo.VehicleRepository
}

func (s *DefaultRequestService) Create(customerID string, in CreateRequestInput) (*models.Request, error) {
	if in.Description == "" {
		return nil, utils.NewValidationError("description is required")
	}
	if in.Location.Latitude < -90 || in.Location.Latitude > 90 ||
		in.Location.Longitude < -180 || in.Location.Longitude > 180 {
		return nil, utils.NewValidationError("location coordinates are out of range")
	}

	vehicle, err := s.Vehicles.GetByID(in.VehicleID)
	if err != nil {
		if errors.Is(err, vehicleRepo.ErrNotFound) {
			return nil, utils.NewNotFoundError("vehicle not found")
		}
		return nil, err
	}
	if vehicle.CustomerID != customerID {
		return nil, utils.NewForbiddenError("vehicle does not belong to caller")
	}

	now := time.Now()
	expiresAt := in.ExpiresAt
	if expiresAt.IsZero() {
		expiresAt = now.Add(defaultBiddingWindow)
	}
	if !expiresAt.After(now) {
		return nil, utils.NewValidationError("expires_at must be in the future")
	}

	req := &models.Request{
		ID:          uuid.New().String(),
		CustomerID:  customerID,
		VehicleID:   in.VehicleID,
		ReportID:    in.ReportID,
		Description: in.Description,
		Location:    in.Location,
		ExpiresAt:   expiresAt,
		Status:      models.RequestStatusNew,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Repo.Create(req); err != nil {
		return nil, err
	}

	zap.L().Info("request created",
		zap.String("requestId", req.ID),
		zap.String("customerId", customerID))
	return req, nil
}

func (s *DefaultRequestService) GetByID(id, principalID, role string) (*models.Request, error) {
	req, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, requestRepo.ErrNotFound) {
			return nil, utils.NewNotFoundError("request not found")
		}
		return nil, err
	}
	if role != models.RoleAdmin && req.CustomerID != principalID {
		return nil, utils.NewForbiddenError("request does not belong to caller")
	}
	return req, nil
}

func (s *DefaultRequestService) ListByCustomer(customerID string) ([]models.Request, error) {
	return s.Repo.ListByCustomer(customerID)
}

// Cancel moves a request to CANCELLED. Completed and already cancelled
// requests stay where they are.
func (s *DefaultRequestService) Cancel(id, principalID, role string) error {
	req, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, requestRepo.ErrNotFound) {
			return utils.NewNotFoundError("request not found")
		}
		return err
	}
	if role != models.RoleAdmin && req.CustomerID != principalID {
		return utils.NewForbiddenError("request does not belong to caller")
	}
	return s.Transition(id, models.RequestStatusCancelled)
}

func (s *DefaultRequestService) Transition(id, to string) error {
	from, ok := transitionsInto[to]
	if !ok {
		return utils.NewValidationError("unknown request status: " + to)
	}
	matched, err := s.Repo.UpdateStatusWhere(id, to, from...)
	if err != nil {
		return err
	}
	if !matched {
		// Distinguish a missing request from one in a non-admissible status.
		if _, getErr := s.Repo.GetByID(id); getErr != nil {
			if errors.Is(getErr, requestRepo.ErrNotFound) {
				return utils.NewNotFoundError("request not found")
			}
			return getErr
		}
		return utils.NewInvalidStateError("request cannot transition to " + to)
	}
	zap.L().Info("request status changed", zap.String("requestId", id), zap.String("status", to))
	return nil
}
