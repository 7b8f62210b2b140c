package user

import (
	"errors"
	"time"

	userRepo "fixmarkt/database/repository/user"
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

// RegisterInput carries the fields for a new customer account.
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// UserService manages customer and admin accounts.
type UserService interface {
	Register(in RegisterInput) (*models.User, error)
	Authenticate(email, password string) (*models.User, string, error)
	GetByID(id string) (*models.User, error)
	RevokeToken(id string) error
}

// DefaultUserService implements UserService.
type DefaultUserService struct {
	Repo      userRepo.UserRepository
	AuthCache *redis.Client
	Notifier  notification.Service
}

func (s *DefaultUserService) Register(in RegisterInput) (*models.User, error) {
	if in.Email == "" || in.Password == "" || in.Name == "" {
		return nil, utils.NewValidationError("name, email and password are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &models.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        in.Email,
		Phone:        in.Phone,
		PasswordHash: string(hash),
		Role:         models.RoleCustomer,
		CreatedAt:    time.Now(),
	}
	if err := s.Repo.Create(u); err != nil {
		if errors.Is(err, userRepo.ErrDuplicate) {
			return nil, utils.NewConflictError("email is already registered")
		}
		return nil, err
	}

	if s.Notifier != nil {
		s.Notifier.WelcomeUser(u)
	}
	return u, nil
}

func (s *DefaultUserService) Authenticate(email, password string) (*models.User, string, error) {
	u, err := s.Repo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(u.ID, u.Role, tokenTTL)
	if err != nil {
		return nil, "", err
	}
	tokenHash := utils.HashToken(token)
	if err := s.Repo.UpdateTokenHash(u.ID, tokenHash); err != nil {
		return nil, "", err
	}

	if s.AuthCache != nil {
		session := utils.AuthSession{
			PrincipalID: u.ID,
			Role:        u.Role,
			Email:       u.Email,
			CreatedAt:   time.Now(),
		}
		if err := utils.SaveAuthSession(s.AuthCache, tokenHash, session); err != nil {
			zap.L().Warn("failed to cache auth session", zap.Error(err))
		}
	}
	return u, token, nil
}

func (s *DefaultUserService) GetByID(id string) (*models.User, error) {
	u, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return nil, utils.NewNotFoundError("user not found")
		}
		return nil, err
	}
	return u, nil
}

func (s *DefaultUserService) RevokeToken(id string) error {
	u, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return utils.NewNotFoundError("user not found")
		}
		return err
	}
	if s.AuthCache != nil && u.TokenHash != "" {
		if err := utils.DeleteAuthSession(s.AuthCache, u.TokenHash); err != nil {
			zap.L().Warn("failed to drop auth session", zap.Error(err))
		}
	}
	return s.Repo.UpdateTokenHash(id, "")
}
