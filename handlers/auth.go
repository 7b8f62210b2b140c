package handlers

import (
	"errors"
	"net/http"

	"fixmarkt/services/user"
	"fixmarkt/services/workshop"
	"fixmarkt/utils"

	"github.com/gin-gonic/gin"
)

// AuthHandler serves account registration and login for customers and workshops.
type AuthHandler struct {
	Users     user.UserService
	Workshops workshop.WorkshopService
}

func NewAuthHandler(users user.UserService, workshops workshop.WorkshopService) *AuthHandler {
	return &AuthHandler{Users: users, Workshops: workshops}
}

type credentials struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterUserHandler creates a customer account.
func (h *AuthHandler) RegisterUserHandler(c *gin.Context) {
	var in user.RegisterInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	u, err := h.Users.Register(in)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, u)
}

// AuthenticateUserHandler logs a customer or admin in and returns a token.
func (h *AuthHandler) AuthenticateUserHandler(c *gin.Context) {
	var in credentials
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	u, token, err := h.Users.Authenticate(in.Email, in.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusUnauthorized, "invalid credentials", "")
			return
		}
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "user": u})
}

// RegisterWorkshopHandler creates a workshop account.
func (h *AuthHandler) RegisterWorkshopHandler(c *gin.Context) {
	var in workshop.RegisterInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	w, err := h.Workshops.Register(in)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, w)
}

// AuthenticateWorkshopHandler logs a workshop in and returns a token.
func (h *AuthHandler) AuthenticateWorkshopHandler(c *gin.Context) {
	var in credentials
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	w, token, err := h.Workshops.Authenticate(in.Email, in.Password)
	if err != nil {
		if errors.Is(err, workshop.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusUnauthorized, "invalid credentials", "")
			return
		}
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "workshop": w})
}
