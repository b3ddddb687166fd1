package services

import (
	"errors"

	"landscaping_backend/internal/auth"
	"landscaping_backend/internal/dto"
	"landscaping_backend/internal/repositories"
	"landscaping_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type AuthService interface {
	Login(db *gorm.DB, req dto.LoginRequest) (*dto.LoginResponse, error)
	Profile(db *gorm.DB, userID string) (*dto.UserProfile, error)
}

type authService struct {
	userRepo repositories.UserRepository
}

func NewAuthService(userRepo repositories.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

func (s *authService) Login(db *gorm.DB, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		Token: token,
		User:  dto.NewUserProfile(user),
	}, nil
}

func (s *authService) Profile(db *gorm.DB, userID string) (*dto.UserProfile, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err, "auth", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}

	profile := dto.NewUserProfile(user)
	return &profile, nil
}
