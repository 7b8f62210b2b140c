package handlers

import (
	"net/http"

	"fixmarkt/middleware"
	"fixmarkt/services/workshop"
	"fixmarkt/utils"

	"github.com/gin-gonic/gin"
)

// WorkshopHandler serves the workshop profile endpoints.
type WorkshopHandler struct {
	Workshops workshop.WorkshopService
}

func NewWorkshopHandler(workshops workshop.WorkshopService) *WorkshopHandler {
	return &WorkshopHandler{Workshops: workshops}
}

// GetWorkshopHandler returns one workshop profile.
func (h *WorkshopHandler) GetWorkshopHandler(c *gin.Context) {
	w, err := h.Workshops.GetByID(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, w)
}

// UpdateWorkshopHandler patches a workshop profile, owner or admin only.
func (h *WorkshopHandler) UpdateWorkshopHandler(c *gin.Context) {
	principalID, role := middleware.Principal(c)
	var in workshop.UpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	w, err := h.Workshops.Update(c.Param("id"), principalID, role, in)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, w)
}
