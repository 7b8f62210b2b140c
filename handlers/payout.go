package handlers

import (
	"net/http"
	"strconv"

	"fixmarkt/services/payout"
	"fixmarkt/utils"

	"github.com/gin-gonic/gin"
)

// PayoutHandler serves the admin payout report endpoint.
type PayoutHandler struct {
	Payouts payout.PayoutService
}

func NewPayoutHandler(payouts payout.PayoutService) *PayoutHandler {
	return &PayoutHandler{Payouts: payouts}
}

// AggregatePayoutsHandler computes per-workshop payout reports for a month.
func (h *PayoutHandler) AggregatePayoutsHandler(c *gin.Context) {
	month, errM := strconv.Atoi(c.Query("month"))
	year, errY := strconv.Atoi(c.Query("year"))
	if errM != nil || errY != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "month and year query parameters are required")
		return
	}
	reports, err := h.Payouts.Aggregate(month, year)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reports)
}
