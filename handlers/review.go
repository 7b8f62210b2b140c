package handlers

import (
	"net/http"

	"fixmarkt/middleware"
	"fixmarkt/services/review"
	"fixmarkt/utils"

	"github.com/gin-gonic/gin"
)

// ReviewHandler serves the review endpoints.
type ReviewHandler struct {
	Reviews review.ReviewService
}

func NewReviewHandler(reviews review.ReviewService) *ReviewHandler {
	return &ReviewHandler{Reviews: reviews}
}

// CreateReviewHandler attaches feedback to one of the caller's bookings.
func (h *ReviewHandler) CreateReviewHandler(c *gin.Context) {
	principalID, _ := middleware.Principal(c)
	var in review.CreateReviewInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	r, err := h.Reviews.Create(principalID, in)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, r)
}

// ListWorkshopReviewsHandler returns a workshop's reviews.
func (h *ReviewHandler) ListWorkshopReviewsHandler(c *gin.Context) {
	reviews, err := h.Reviews.ListByWorkshop(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}
