package services

import (
	"testing"

	"landscaping_backend/internal/auth"
	"landscaping_backend/internal/config"
	"landscaping_backend/internal/dto"
	"landscaping_backend/internal/models"
	"landscaping_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setAuthTestConfig(t *testing.T) {
	t.Helper()
	previous := config.AppConfig
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = 60
	config.AppConfig = cfg
	t.Cleanup(func() { config.AppConfig = previous })
}

func TestLoginIssuesToken(t *testing.T) {
	setAuthTestConfig(t)

	hash, err := auth.HashPassword("admin123456")
	require.NoError(t, err)

	users := newFakeUserRepo(&models.User{
		BaseModel:    models.BaseModel{ID: "u1"},
		Name:         "Admin",
		Email:        "admin@ddlandscaping.com",
		PasswordHash: hash,
		Role:         models.UserRoleAdmin,
	})
	service := NewAuthService(users)

	resp, err := service.Login(testDB(), dto.LoginRequest{
		Email:    "admin@ddlandscaping.com",
		Password: "admin123456",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "u1", resp.User.ID)
	assert.Equal(t, models.UserRoleAdmin, resp.User.Role)

	claims, err := auth.ParseToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	setAuthTestConfig(t)

	hash, err := auth.HashPassword("correct")
	require.NoError(t, err)
	users := newFakeUserRepo(&models.User{
		BaseModel:    models.BaseModel{ID: "u1"},
		Email:        "admin@ddlandscaping.com",
		PasswordHash: hash,
	})
	service := NewAuthService(users)

	_, err = service.Login(testDB(), dto.LoginRequest{
		Email:    "admin@ddlandscaping.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginUnknownEmailLooksLikeBadCredentials(t *testing.T) {
	setAuthTestConfig(t)
	service := NewAuthService(newFakeUserRepo())

	_, err := service.Login(testDB(), dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}
