package notification

import "fixmarkt/models"

// Mailer sends a single email message.
type Mailer interface {
	Send(to, subject, body string) error
}

// Service dispatches milestone emails. Every method is fire-and-forget:
// delivery failures are logged and never surface to the triggering operation.
type Service interface {
	WelcomeUser(u *models.User)
	WelcomeWorkshop(w *models.Workshop)
	RequestBooked(b *models.Booking)
	BookingCancelled(b *models.Booking)
	RequestCompleted(b *models.Booking)
}
