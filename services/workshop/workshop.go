package workshop

import (
	"errors"
	"time"

	workshopRepo "fixmarkt/database/repository/workshop"
	"fixmarkt/models"
	"fixmarkt/services/notification"
	"fixmarkt/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned when email/password verification fails.
var ErrInvalidCredentials = errors.New("invalid credentials")

const tokenTTL = 24 * time.Hour

// RegisterInput carries the fields for a new workshop account.
type RegisterInput struct {
	Name         string               `json:"name"`
	Email        string               `json:"email"`
	Phone        string               `json:"phone"`
	Password     string               `json:"password"`
	Address      string               `json:"address"`
	City         string               `json:"city"`
	PostalCode   string               `json:"postal_code"`
	Country      string               `json:"country"`
	Latitude     float64              `json:"latitude"`
	Longitude    float64              `json:"longitude"`
	Services     []string             `json:"services"`
	OpeningHours []models.OpeningHour `json:"opening_hours"`
}

// UpdateInput is a partial workshop profile update.
type UpdateInput struct {
	Name         *string               `json:"name,omitempty"`
	Phone        *string               `json:"phone,omitempty"`
	Address      *string               `json:"address,omitempty"`
	City         *string               `json:"city,omitempty"`
	PostalCode   *string               `json:"postal_code,omitempty"`
	Country      *string               `json:"country,omitempty"`
	Latitude     *float64              `json:"latitude,omitempty"`
	Longitude    *float64              `json:"longitude,omitempty"`
	Services     *[]string             `json:"services,omitempty"`
	OpeningHours *[]models.OpeningHour `json:"opening_hours,omitempty"`
}

// WorkshopService manages workshop accounts and profiles.
type WorkshopService interface {
	Register(in RegisterInput) (*models.Workshop, error)
	Authenticate(email, password string) (*models.Workshop, string, error)
	GetByID(id string) (*models.Workshop, error)
	Update(id, principalID, role string, in UpdateInput) (*models.Workshop, error)
}

// DefaultWorkshopService implements WorkshopService.
type DefaultWorkshopService struct {
	Repo      workshopRepo.WorkshopRepository
	AuthCache *redis.Client
	Notifier  notification.Service
}

func (s *DefaultWorkshopService) Register(in RegisterInput) (*models.Workshop, error) {
	if in.Email == "" || in.Password == "" || in.Name == "" {
		return nil, utils.NewValidationError("name, email and password are required")
	}
	if in.Latitude < -90 || in.Latitude > 90 || in.Longitude < -180 || in.Longitude > 180 {
		return nil, utils.NewValidationError("location coordinates are out of range")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	w := &models.Workshop{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        in.Email,
		Phone:        in.Phone,
		PasswordHash: string(hash),
		Address:      in.Address,
		City:         in.City,
		PostalCode:   in.PostalCode,
		Country:      in.Country,
		Latitude:     in.Latitude,
		Longitude:    in.Longitude,
		Services:     in.Services,
		OpeningHours: in.OpeningHours,
		CreatedAt:    time.Now(),
	}
	if err := s.Repo.Create(w); err != nil {
		if errors.Is(err, workshopRepo.ErrDuplicate) {
			return nil, utils.NewConflictError("email is already registered")
		}
		return nil, err
	}

	if s.Notifier != nil {
		s.Notifier.WelcomeWorkshop(w)
	}
	return w, nil
}

func (s *DefaultWorkshopService) Authenticate(email, password string) (*models.Workshop, string, error) {
	w, err := s.Repo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, workshopRepo.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(w.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(w.ID, models.RoleWorkshop, tokenTTL)
	if err != nil {
		return nil, "", err
	}
	tokenHash := utils.HashToken(token)
	if err := s.Repo.UpdateTokenHash(w.ID, tokenHash); err != nil {
		return nil, "", err
	}

	if s.AuthCache != nil {
		session := utils.AuthSession{
			PrincipalID: w.ID,
			Role:        models.RoleWorkshop,
			Email:       w.Email,
			CreatedAt:   time.Now(),
		}
		if err := utils.SaveAuthSession(s.AuthCache, tokenHash, session); err != nil {
			zap.L().Warn("failed to cache auth session", zap.Error(err))
		}
	}
	return w, token, nil
}

func (s *DefaultWorkshopService) GetByID(id string) (*models.Workshop, error) {
	w, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, workshopRepo.ErrNotFound) {
			return nil, utils.NewNotFoundError("workshop not found")
		}
		return nil, err
	}
	return w, nil
}

func (s *DefaultWorkshopService) Update(id, principalID, role string, in UpdateInput) (*models.Workshop, error) {
	w, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if role != models.RoleAdmin && principalID != id {
		return nil, utils.NewForbiddenError("workshop profile does not belong to caller")
	}

	if in.Name != nil {
		w.Name = *in.Name
	}
	if in.Phone != nil {
		w.Phone = *in.Phone
	}
	if in.Address != nil {
		w.Address = *in.Address
	}
	if in.City != nil {
		w.City = *in.City
	}
	if in.PostalCode != nil {
		w.PostalCode = *in.PostalCode
	}
	if in.Country != nil {
		w.Country = *in.Country
	}
	if in.Latitude != nil {
		w.Latitude = *in.Latitude
	}
	if in.Longitude != nil {
		w.Longitude = *in.Longitude
	}
	if in.Services != nil {
		w.Services = *in.Services
	}
	if in.OpeningHours != nil {
		w.OpeningHours = *in.OpeningHours
	}
	if w.Latitude < -90 || w.Latitude > 90 || w.Longitude < -180 || w.Longitude > 180 {
		return nil, utils.NewValidationError("location coordinates are out of range")
	}

	if err := s.Repo.Update(w); err != nil {
		return nil, err
	}
	return w, nil
}
