package user

import (
	"testing"

	userRepo "fixmarkt/database/repository/user"
	"fixmarkt/models"
	"fixmarkt/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (r *fakeUserRepo) Create(u *models.User) error {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return userRepo.ErrDuplicate
		}
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, userRepo.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, userRepo.ErrNotFound
}

func (r *fakeUserRepo) GetByTokenHash(tokenHash string) (*models.User, error) {
	for _, u := range r.users {
		if u.TokenHash != "" && u.TokenHash == tokenHash {
			cp := *u
			return &cp, nil
		}
	}
	return nil, userRepo.ErrNotFound
}

func (r *fakeUserRepo) UpdateTokenHash(id, tokenHash string) error {
	u, ok := r.users[id]
	if !ok {
		return userRepo.ErrNotFound
	}
	u.TokenHash = tokenHash
	return nil
}

func registerInput() RegisterInput {
	return RegisterInput{
		Name:     "Anna Schmidt",
		Email:    "anna@example.com",
		Password: "secret123",
	}
}

func TestRegister(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}

	u, err := svc.Register(registerInput())
	require.NoError(t, err)
	assert.Equal(t, models.RoleCustomer, u.Role)
	assert.NotEmpty(t, u.ID)
	// The clear-text password is never stored.
	assert.NotEqual(t, "secret123", u.PasswordHash)
	assert.NotEmpty(t, u.PasswordHash)
}

func TestRegisterValidation(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}

	in := registerInput()
	in.Email = ""
	_, err := svc.Register(in)
	assert.True(t, utils.IsKind(err, utils.KindValidation))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}

	_, err := svc.Register(registerInput())
	require.NoError(t, err)
	_, err = svc.Register(registerInput())
	assert.True(t, utils.IsKind(err, utils.KindConflict))
}

func TestAuthenticate(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultUserService{Repo: repo}
	registered, err := svc.Register(registerInput())
	require.NoError(t, err)

	u, token, err := svc.Authenticate("anna@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, u.ID)
	require.NotEmpty(t, token)

	// The token round-trips through claim extraction.
	subject, role, err := utils.ExtractClaims(token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, subject)
	assert.Equal(t, models.RoleCustomer, role)

	// Its hash is what gets persisted for middleware lookups.
	stored, err := repo.GetByTokenHash(utils.HashToken(token))
	require.NoError(t, err)
	assert.Equal(t, u.ID, stored.ID)
}

func TestAuthenticateRejects(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}
	_, err := svc.Register(registerInput())
	require.NoError(t, err)

	_, _, err = svc.Authenticate("anna@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Authenticate("nobody@example.com", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRevokeToken(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultUserService{Repo: repo}
	u, err := svc.Register(registerInput())
	require.NoError(t, err)

	_, token, err := svc.Authenticate("anna@example.com", "secret123")
	require.NoError(t, err)

	require.NoError(t, svc.RevokeToken(u.ID))
	_, err = repo.GetByTokenHash(utils.HashToken(token))
	assert.ErrorIs(t, err, userRepo.ErrNotFound)
}
