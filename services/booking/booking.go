package booking

import (
	"errors"
	"time"

	bookingRepo "fixmarkt/database/repository/booking"
	offerRepo "fixmarkt/database/repository/offer"
	requestRepo "fixmarkt/database/repository/request"
	"fixmarkt/models"
	"fixmarkt/services/notification"
	"fixmarkt/services/request"
	"fixmarkt/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo           bookingRepo.BookingRepository
	Offers         offerRepo.OfferRepository
	Requests       requestRepo.RequestRepository
	RequestSvc     request.RequestService
	Notifier       notification.Service
	CommissionRate float64
}

// CreateFromOffer accepts an offer on behalf of the request's customer.
// The SENT -> ACCEPTED compare-and-swap on the offer gates everything that
// follows: of two concurrent calls, exactly one proceeds past it.
func (s *DefaultBookingService) CreateFromOffer(customerID string, in CreateBookingInput) (*models.Booking, error) {
	if in.ScheduledAt.IsZero() {
		return nil, utils.NewValidationError("scheduled_at is required")
	}

	o, err := s.Offers.GetByID(in.OfferID)
	if err != nil {
		if errors.Is(err, offerRepo.ErrNotFound) {
			return nil, utils.NewNotFoundError("offer not found")
		}
		return nil, err
	}
	if o.Status != models.OfferStatusSent {
		return nil, utils.NewInvalidStateError("offer is not open for acceptance")
	}

	req, err := s.Requests.GetByID(o.RequestID)
	if err != nil {
		if errors.Is(err, requestRepo.ErrNotFound) {
			return nil, utils.NewNotFoundError("request not found")
		}
		return nil, err
	}
	if req.CustomerID != customerID {
		return nil, utils.NewForbiddenError("offer belongs to another customer's request")
	}

	won, err := s.Offers.AcceptIfSent(in.OfferID)
	if err != nil {
		return nil, err
	}
	if !won {
		// Lost the race or the offer left SENT since the read above.
		return nil, utils.NewInvalidStateError("offer is not open for acceptance")
	}

	totalAmount, commission, workshopAmount := Split(o.Price, s.CommissionRate)

	now := time.Now()
	b := &models.Booking{
		ID:             uuid.New().String(),
		RequestID:      o.RequestID,
		OfferID:        o.ID,
		CustomerID:     customerID,
		WorkshopID:     o.WorkshopID,
		ScheduledAt:    in.ScheduledAt,
		Notes:          in.Notes,
		Status:         models.BookingStatusConfirmed,
		TotalAmount:    totalAmount,
		Commission:     commission,
		WorkshopAmount: workshopAmount,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.Repo.Create(b); err != nil {
		if errors.Is(err, bookingRepo.ErrDuplicate) {
			return nil, utils.NewConflictError("offer already has a booking")
		}
		return nil, err
	}

	// The booking and the accepted offer are committed; a failed request
	// transition is logged residue for reconciliation, not a caller error.
	if err := s.RequestSvc.Transition(o.RequestID, models.RequestStatusBooked); err != nil {
		zap.L().Error("booking created but request transition failed",
			zap.String("bookingId", b.ID),
			zap.String("requestId", o.RequestID),
			zap.Error(err))
	}

	if s.Notifier != nil {
		s.Notifier.RequestBooked(b)
	}

	zap.L().Info("booking created",
		zap.String("bookingId", b.ID),
		zap.String("offerId", o.ID),
		zap.Float64("totalAmount", totalAmount),
		zap.Float64("commission", commission))
	return b, nil
}

// UpdateStatus mutates a booking on behalf of its customer or an admin and
// cascades the relevant transitions back into the request lifecycle.
func (s *DefaultBookingService) UpdateStatus(bookingID, principalID, role string, in UpdateBookingInput) (*models.Booking, error) {
	b, err := s.Repo.GetByID(bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, utils.NewNotFoundError("booking not found")
		}
		return nil, err
	}
	if role != models.RoleAdmin && b.CustomerID != principalID {
		return nil, utils.NewForbiddenError("booking does not belong to caller")
	}
	if b.Status == models.BookingStatusCancelled || b.Status == models.BookingStatusDone {
		return nil, utils.NewInvalidStateError("booking is already " + b.Status)
	}

	newStatus := ""
	switch {
	case in.Status != nil:
		switch *in.Status {
		case models.BookingStatusRescheduled, models.BookingStatusCancelled,
			models.BookingStatusDone, models.BookingStatusNoShow:
			newStatus = *in.Status
		default:
			return nil, utils.NewValidationError("unknown booking status: " + *in.Status)
		}
	case in.ScheduledAt != nil:
		// A bare schedule change is a reschedule.
		newStatus = models.BookingStatusRescheduled
	default:
		return nil, utils.NewValidationError("nothing to update")
	}

	if in.ScheduledAt != nil {
		b.ScheduledAt = *in.ScheduledAt
	}
	if in.Notes != nil {
		b.Notes = *in.Notes
	}
	b.Status = newStatus

	if err := s.Repo.Update(b); err != nil {
		return nil, err
	}

	switch newStatus {
	case models.BookingStatusCancelled:
		// The request leaves BOOKED but stays closed to new offers.
		if err := s.RequestSvc.Transition(b.RequestID, models.RequestStatusBiddingClosed); err != nil {
			zap.L().Error("booking cancelled but request transition failed",
				zap.String("bookingId", b.ID), zap.Error(err))
		}
		if s.Notifier != nil {
			s.Notifier.BookingCancelled(b)
		}
	case models.BookingStatusDone:
		if err := s.RequestSvc.Transition(b.RequestID, models.RequestStatusCompleted); err != nil {
			zap.L().Error("booking done but request transition failed",
				zap.String("bookingId", b.ID), zap.Error(err))
		}
		if s.Notifier != nil {
			s.Notifier.RequestCompleted(b)
		}
	}
	// NO_SHOW updates the booking only; the request needs an explicit
	// product decision before it reopens or closes automatically.

	zap.L().Info("booking status changed",
		zap.String("bookingId", b.ID), zap.String("status", newStatus))
	return b, nil
}

func (s *DefaultBookingService) GetByID(bookingID, principalID, role string) (*models.Booking, error) {
	b, err := s.Repo.GetByID(bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, utils.NewNotFoundError("booking not found")
		}
		return nil, err
	}
	if role != models.RoleAdmin && b.CustomerID != principalID && b.WorkshopID != principalID {
		return nil, utils.NewForbiddenError("booking does not belong to caller")
	}
	return b, nil
}

func (s *DefaultBookingService) ListByCustomer(customerID string) ([]models.Booking, error) {
	return s.Repo.ListByCustomer(customerID)
}

func (s *DefaultBookingService) ListByWorkshop(workshopID string) ([]models.Booking, error) {
	return s.Repo.ListByWorkshop(workshopID)
}
