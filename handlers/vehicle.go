package handlers

import (
	"net/http"
	"time"

	vehicleRepo "fixmarkt/database/repository/vehicle"
	"fixmarkt/middleware"
	"fixmarkt/models"
	"fixmarkt/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// VehicleHandler serves the vehicle endpoints. Plain persistence, no lifecycle.
type VehicleHandler struct {
	Repo vehicleRepo.VehicleRepository
}

func NewVehicleHandler(repo vehicleRepo.VehicleRepository) *VehicleHandler {
	return &VehicleHandler{Repo: repo}
}

type createVehicleInput struct {
	Make         string `json:"make" binding:"required"`
	Model        string `json:"model" binding:"required"`
	Year         int    `json:"year"`
	LicensePlate string `json:"license_plate"`
	VIN          string `json:"vin"`
}

// CreateVehicleHandler registers a vehicle for the calling customer.
func (h *VehicleHandler) CreateVehicleHandler(c *gin.Context) {
	principalID, _ := middleware.Principal(c)
	var in createVehicleInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	v := &models.Vehicle{
		ID:           uuid.New().String(),
		CustomerID:   principalID,
		Make:         in.Make,
		Model:        in.Model,
		Year:         in.Year,
		LicensePlate: in.LicensePlate,
		VIN:          in.VIN,
		CreatedAt:    time.Now(),
	}
	if err := h.Repo.Create(v); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, v)
}

// ListMyVehiclesHandler returns the calling customer's vehicles.
func (h *VehicleHandler) ListMyVehiclesHandler(c *gin.Context) {
	principalID, _ := middleware.Principal(c)
	vehicles, err := h.Repo.ListByCustomer(principalID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, vehicles)
}
