package notification

import (
	"fmt"

	userRepo "fixmarkt/database/repository/user"
	workshopRepo "fixmarkt/database/repository/workshop"
	"fixmarkt/models"

	"go.uber.org/zap"
)

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Users     userRepo.UserRepository
	Workshops workshopRepo.WorkshopRepository
	Mailer    Mailer
}

func (s *DefaultNotificationService) WelcomeUser(u *models.User) {
	s.dispatch(u.Email, "Welcome to Fixmarkt",
		fmt.Sprintf("Hi %s,\n\nyour account is ready. Post a repair request to start collecting offers.", u.Name))
}

func (s *DefaultNotificationService) WelcomeWorkshop(w *models.Workshop) {
	s.dispatch(w.Email, "Welcome to Fixmarkt",
		fmt.Sprintf("Hi %s,\n\nyour workshop is registered. Browse open requests near you and place your first offer.", w.Name))
}

func (s *DefaultNotificationService) RequestBooked(b *models.Booking) {
	s.notifyBoth(b,
		"Booking confirmed",
		fmt.Sprintf("Your booking %s is confirmed for %s.", b.ID, b.ScheduledAt.Format("02.01.2006 15:04")))
}

func (s *DefaultNotificationService) BookingCancelled(b *models.Booking) {
	s.notifyBoth(b,
		"Booking cancelled",
		fmt.Sprintf("Booking %s has been cancelled.", b.ID))
}

func (s *DefaultNotificationService) RequestCompleted(b *models.Booking) {
	s.notifyBoth(b,
		"Job completed",
		fmt.Sprintf("Booking %s is done. Thanks for using Fixmarkt.", b.ID))
}

func (s *DefaultNotificationService) notifyBoth(b *models.Booking, subject, body string) {
	go func() {
		if u, err := s.Users.GetByID(b.CustomerID); err != nil {
			zap.L().Warn("notification: customer lookup failed",
				zap.String("customerId", b.CustomerID), zap.Error(err))
		} else {
			s.send(u.Email, subject, body)
		}
		if w, err := s.Workshops.GetByID(b.WorkshopID); err != nil {
			zap.L().Warn("notification: workshop lookup failed",
				zap.String("workshopId", b.WorkshopID), zap.Error(err))
		} else {
			s.send(w.Email, subject, body)
		}
	}()
}

func (s *DefaultNotificationService) dispatch(to, subject, body string) {
	go s.send(to, subject, body)
}

func (s *DefaultNotificationService) send(to, subject, body string) {
	if s.Mailer == nil || to == "" {
		return
	}
	if err := s.Mailer.Send(to, subject, body); err != nil {
		zap.L().Warn("notification: email dispatch failed",
			zap.String("to", to), zap.String("subject", subject), zap.Error(err))
	}
}
