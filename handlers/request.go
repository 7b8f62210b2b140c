package handlers

import (
	"net/http"
	"strconv"

	"fixmarkt/middleware"
	"fixmarkt/services/offer"
	"fixmarkt/services/request"
	"fixmarkt/utils"

	"github.com/gin-gonic/gin"
)

// RequestHandler serves the repair-request endpoints.
type RequestHandler struct {
	Requests request.RequestService
	Offers   offer.OfferService
}

func NewRequestHandler(requests request.RequestService, offers offer.OfferService) *RequestHandler {
	return &RequestHandler{Requests: requests, Offers: offers}
}

// CreateRequestHandler posts a new repair request for the calling customer.
func (h *RequestHandler) CreateRequestHandler(c *gin.Context) {
	principalID, _ := middleware.Principal(c)
	var in request.CreateRequestInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	req, err := h.Requests.Create(principalID, in)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, req)
}

// GetRequestHandler returns one request, owner or admin only.
func (h *RequestHandler) GetRequestHandler(c *gin.Context) {
	principalID, role := middleware.Principal(c)
	req, err := h.Requests.GetByID(c.Param("id"), principalID, role)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, req)
}

// ListMyRequestsHandler returns the calling customer's requests.
func (h *RequestHandler) ListMyRequestsHandler(c *gin.Context) {
	principalID, _ := middleware.Principal(c)
	requests, err := h.Requests.ListByCustomer(principalID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, requests)
}

// CancelRequestHandler cancels a request explicitly.
func (h *RequestHandler) CancelRequestHandler(c *gin.Context) {
	principalID, role := middleware.Principal(c)
	if err := h.Requests.Cancel(c.Param("id"), principalID, role); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

// FindAvailableRequestsHandler returns open requests near the calling
// workshop, annotated with distance in kilometers.
func (h *RequestHandler) FindAvailableRequestsHandler(c *gin.Context) {
	principalID, _ := middleware.Principal(c)

	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	lon, errLon := strconv.ParseFloat(c.Query("lon"), 64)
	if errLat != nil || errLon != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "lat and lon query parameters are required")
		return
	}
	radius, _ := strconv.ParseFloat(c.DefaultQuery("radius", "0"), 64)

	available, err := h.Offers.FindAvailable(principalID, lat, lon, radius)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, available)
}
