package handlers

import (
	"net/http"

	"fixmarkt/middleware"
	"fixmarkt/models"
	"fixmarkt/services/booking"
	"fixmarkt/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler serves the booking endpoints.
type BookingHandler struct {
	Bookings booking.BookingService
}

func NewBookingHandler(bookings booking.BookingService) *BookingHandler {
	return &BookingHandler{Bookings: bookings}
}

// CreateBookingHandler accepts an offer on behalf of the calling customer.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	principalID, _ := middleware.Principal(c)
	var in booking.CreateBookingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	b, err := h.Bookings.CreateFromOffer(principalID, in)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// UpdateBookingHandler changes a booking's status or schedule.
func (h *BookingHandler) UpdateBookingHandler(c *gin.Context) {
	principalID, role := middleware.Principal(c)
	var in booking.UpdateBookingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	b, err := h.Bookings.UpdateStatus(c.Param("id"), principalID, role, in)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// GetBookingHandler returns one booking for an involved party or admin.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	principalID, role := middleware.Principal(c)
	b, err := h.Bookings.GetByID(c.Param("id"), principalID, role)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// ListMyBookingsHandler returns the caller's bookings, resolved by role.
func (h *BookingHandler) ListMyBookingsHandler(c *gin.Context) {
	principalID, role := middleware.Principal(c)

	var (
		bookings []models.Booking
		err      error
	)
	if role == models.RoleWorkshop {
		bookings, err = h.Bookings.ListByWorkshop(principalID)
	} else {
		bookings, err = h.Bookings.ListByCustomer(principalID)
	}
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}
