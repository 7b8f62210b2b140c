package handlers

import (
	userRepoPkg "fixmarkt/database/repository/user"
	workshopRepoPkg "fixmarkt/database/repository/workshop"
)

// HandlerBundle groups the HTTP handlers and the repositories the auth
// middleware needs for token verification.
type HandlerBundle struct {
	UserRepo     userRepoPkg.UserRepository
	WorkshopRepo workshopRepoPkg.WorkshopRepository

	Auth     *AuthHandler
	Vehicle  *VehicleHandler
	Request  *RequestHandler
	Offer    *OfferHandler
	Booking  *BookingHandler
	Review   *ReviewHandler
	Payout   *PayoutHandler
	Workshop *WorkshopHandler
	Storage  *StorageHandler
}
