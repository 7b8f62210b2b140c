package offer

import (
	"errors"
	"time"

	offerRepo "fixmarkt/database/repository/offer"
	requestRepo "fixmarkt/database/repository/request"
	workshopRepo "fixmarkt/database/repository/workshop"
	"fixmarkt/models"
	"fixmarkt/services/request"
	"fixmarkt/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultOfferService implements OfferService.
type DefaultOfferService struct {
	Repo       offerRepo.OfferRepository
	Requests   requestRepo.RequestRepository
	Workshops  workshopRepo.WorkshopRepository
	RequestSvc request.RequestService
}

func (s *DefaultOfferService) Create(workshopID string, in CreateOfferInput) (*models.Offer, error) {
	if in.Price <= 0 {
		return nil, utils.NewValidationError("price must be positive")
	}

	if _, err := s.Workshops.GetByID(workshopID); err != nil {
		if errors.Is(err, workshopRepo.ErrNotFound) {
			return nil, utils.NewNotFoundError("workshop not found")
		}
		return nil, err
	}

	req, err := s.Requests.GetByID(in.RequestID)
	if err != nil {
		if errors.Is(err, requestRepo.ErrNotFound) {
			return nil, utils.NewNotFoundError("request not found")
		}
		return nil, err
	}
	if req.Status != models.RequestStatusNew && req.Status != models.RequestStatusInBidding {
		return nil, utils.NewInvalidStateError("request is no longer open for offers")
	}

	now := time.Now()
	o := &models.Offer{
		ID:                uuid.New().String(),
		RequestID:         in.RequestID,
		WorkshopID:        workshopID,
		Price:             in.Price,
		Note:              in.Note,
		AvailableDates:    in.AvailableDates,
		EstimatedDuration: in.EstimatedDuration,
		WarrantyMonths:    in.WarrantyMonths,
		Status:            models.OfferStatusSent,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := s.Repo.Create(o); err != nil {
		if errors.Is(err, offerRepo.ErrDuplicate) {
			return nil, utils.NewConflictError("workshop already has an offer on this request")
		}
		return nil, err
	}

	// First offer opens the bidding. A concurrent offer may have won this
	// transition already; that is not an error for this caller.
	if req.Status == models.RequestStatusNew {
		if err := s.RequestSvc.Transition(in.RequestID, models.RequestStatusInBidding); err != nil {
			if !utils.IsKind(err, utils.KindInvalidState) {
				zap.L().Warn("failed to move request into bidding",
					zap.String("requestId", in.RequestID), zap.Error(err))
			}
		}
	}

	zap.L().Info("offer created",
		zap.String("offerId", o.ID),
		zap.String("requestId", in.RequestID),
		zap.String("workshopId", workshopID))
	return o, nil
}

func (s *DefaultOfferService) Update(offerID, workshopID string, patch models.OfferPatch) (*models.Offer, error) {
	o, err := s.Repo.GetByID(offerID)
	if err != nil {
		if errors.Is(err, offerRepo.ErrNotFound) {
			return nil, utils.NewNotFoundError("offer not found")
		}
		return nil, err
	}
	if o.WorkshopID != workshopID {
		return nil, utils.NewForbiddenError("offer does not belong to caller")
	}
	if o.Status == models.OfferStatusAccepted {
		return nil, utils.NewInvalidStateError("accepted offers cannot be changed")
	}

	if patch.Price != nil {
		if *patch.Price <= 0 {
			return nil, utils.NewValidationError("price must be positive")
		}
		o.Price = *patch.Price
	}
	if patch.Note != nil {
		o.Note = *patch.Note
	}
	if patch.AvailableDates != nil {
		o.AvailableDates = *patch.AvailableDates
	}
	if patch.EstimatedDuration != nil {
		o.EstimatedDuration = *patch.EstimatedDuration
	}
	if patch.WarrantyMonths != nil {
		o.WarrantyMonths = *patch.WarrantyMonths
	}
	if patch.Status != nil {
		switch *patch.Status {
		case models.OfferStatusSent, models.OfferStatusDeclined, models.OfferStatusExpired:
			o.Status = *patch.Status
		case models.OfferStatusAccepted:
			// Acceptance only happens through booking creation.
			return nil, utils.NewValidationError("offers cannot be accepted directly")
		default:
			return nil, utils.NewValidationError("unknown offer status: " + *patch.Status)
		}
	}

	if err := s.Repo.Update(o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *DefaultOfferService) ListByRequest(requestID, principalID, role string) ([]models.Offer, error) {
	req, err := s.Requests.GetByID(requestID)
	if err != nil {
		if errors.Is(err, requestRepo.ErrNotFound) {
			return nil, utils.NewNotFoundError("request not found")
		}
		return nil, err
	}
	if role != models.RoleAdmin && req.CustomerID != principalID {
		return nil, utils.NewForbiddenError("request does not belong to caller")
	}
	return s.Repo.ListByRequest(requestID)
}

func (s *DefaultOfferService) ListByWorkshop(workshopID string) ([]models.Offer, error) {
	return s.Repo.ListByWorkshop(workshopID)
}
