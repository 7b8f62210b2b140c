package handlers

import (
	"net/http"

	"fixmarkt/middleware"
	"fixmarkt/models"
	"fixmarkt/services/offer"
	"fixmarkt/utils"

	"github.com/gin-gonic/gin"
)

// OfferHandler serves the offer endpoints.
type OfferHandler struct {
	Offers offer.OfferService
}

func NewOfferHandler(offers offer.OfferService) *OfferHandler {
	return &OfferHandler{Offers: offers}
}

// CreateOfferHandler submits a bid for the calling workshop.
func (h *OfferHandler) CreateOfferHandler(c *gin.Context) {
	principalID, _ := middleware.Principal(c)
	var in offer.CreateOfferInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	o, err := h.Offers.Create(principalID, in)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, o)
}

// UpdateOfferHandler patches an offer; only the owning workshop may mutate.
func (h *OfferHandler) UpdateOfferHandler(c *gin.Context) {
	principalID, _ := middleware.Principal(c)
	var patch models.OfferPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	o, err := h.Offers.Update(c.Param("id"), principalID, patch)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

// ListRequestOffersHandler returns all offers on a request, owner or admin only.
func (h *OfferHandler) ListRequestOffersHandler(c *gin.Context) {
	principalID, role := middleware.Principal(c)
	offers, err := h.Offers.ListByRequest(c.Param("id"), principalID, role)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, offers)
}

// ListMyOffersHandler returns the calling workshop's offers.
func (h *OfferHandler) ListMyOffersHandler(c *gin.Context) {
	principalID, _ := middleware.Principal(c)
	offers, err := h.Offers.ListByWorkshop(principalID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, offers)
}
