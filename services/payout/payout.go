package payout

import (
	"time"

	bookingRepo "fixmarkt/database/repository/booking"
	"fixmarkt/models"
	"fixmarkt/utils"
)

// PayoutService derives per-workshop monthly payout summaries from completed
// bookings. Reports are recomputed on every call and never persisted, so the
// IsPaid flag always starts false.
type PayoutService interface {
	Aggregate(month, year int) ([]models.PayoutReport, error)
}

// DefaultPayoutService implements PayoutService.
type DefaultPayoutService struct {
	Bookings bookingRepo.BookingRepository
}

func (s *DefaultPayoutService) Aggregate(month, year int) ([]models.PayoutReport, error) {
	if month < 1 || month > 12 {
		return nil, utils.NewValidationError("month must be between 1 and 12")
	}
	if year < 1 {
		return nil, utils.NewValidationError("year is required")
	}

	from, to := MonthWindow(month, year)
	rows, err := s.Bookings.AggregatePayouts(from, to)
	if err != nil {
		return nil, err
	}

	reports := make([]models.PayoutReport, 0, len(rows))
	for _, row := range rows {
		reports = append(reports, models.PayoutReport{
			WorkshopID:  row.WorkshopID,
			Month:       month,
			Year:        year,
			TotalJobs:   row.TotalJobs,
			TotalAmount: row.TotalAmount,
			Commission:  row.Commission,
			// Derived from the group totals, independently of the
			// per-booking workshop_amount fields.
			WorkshopAmount: row.TotalAmount - row.Commission,
			IsPaid:         false,
		})
	}
	return reports, nil
}

// MonthWindow returns the calendar-month aggregation window
// [first of month 00:00:00, last of month 23:59:59].
func MonthWindow(month, year int) (time.Time, time.Time) {
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0).Add(-time.Second)
	return from, to
}
