package review

import (
	"errors"
	"time"

	bookingRepo "fixmarkt/database/repository/booking"
	reviewRepo "fixmarkt/database/repository/review"
	"fixmarkt/models"
	"fixmarkt/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateReviewInput carries the fields a customer submits with feedback.
type CreateReviewInput struct {
	BookingID string `json:"booking_id"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}

// ReviewService enforces one review per booking, gated on booking ownership.
type ReviewService interface {
	Create(customerID string, in CreateReviewInput) (*models.Review, error)
	ListByWorkshop(workshopID string) ([]models.Review, error)
}

// DefaultReviewService implements ReviewService.
type DefaultReviewService struct {
	Repo     reviewRepo.ReviewRepository
	Bookings bookingRepo.BookingRepository
}

func (s *DefaultReviewService) Create(customerID string, in CreateReviewInput) (*models.Review, error) {
	if in.Rating < 1 || in.Rating > 5 {
		return nil, utils.NewValidationError("rating must be between 1 and 5")
	}

	b, err := s.Bookings.GetByID(in.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, utils.NewNotFoundError("booking not found")
		}
		return nil, err
	}
	if b.CustomerID != customerID {
		return nil, utils.NewForbiddenError("booking does not belong to caller")
	}

	// Pre-check for a friendly error; the unique booking_id index is the
	// authoritative closer of the race.
	if _, err := s.Repo.GetByBookingID(in.BookingID); err == nil {
		return nil, utils.NewConflictError("booking already has a review")
	} else if !errors.Is(err, reviewRepo.ErrNotFound) {
		return nil, err
	}

	r := &models.Review{
		ID:         uuid.New().String(),
		BookingID:  in.BookingID,
		CustomerID: customerID,
		WorkshopID: b.WorkshopID,
		Rating:     in.Rating,
		Comment:    in.Comment,
		Published:  true,
		CreatedAt:  time.Now(),
	}
	if err := s.Repo.Create(r); err != nil {
		if errors.Is(err, reviewRepo.ErrDuplicate) {
			return nil, utils.NewConflictError("booking already has a review")
		}
		return nil, err
	}

	zap.L().Info("review created",
		zap.String("reviewId", r.ID),
		zap.String("bookingId", in.BookingID),
		zap.Int("rating", in.Rating))
	return r, nil
}

func (s *DefaultReviewService) ListByWorkshop(workshopID string) ([]models.Review, error) {
	return s.Repo.ListByWorkshop(workshopID)
}
