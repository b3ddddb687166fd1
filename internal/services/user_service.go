package services

import (
	"errors"

	"landscaping_backend/internal/auth"
	"landscaping_backend/internal/dto"
	"landscaping_backend/internal/models"
	"landscaping_backend/internal/repositories"
	"landscaping_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type UserService interface {
	Create(db *gorm.DB, req dto.CreateUserRequest) (*models.User, error)
	GetByID(db *gorm.DB, id string) (*models.User, error)
	List(db *gorm.DB) ([]models.User, error)
	Update(db *gorm.DB, id string, req dto.UpdateUserRequest) (*models.User, error)
	Delete(db *gorm.DB, actorID, id string) error
}

type userService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) Create(db *gorm.DB, req dto.CreateUserRequest) (*models.User, error) {
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         models.UserRole(req.Role),
	}

	if err := s.userRepo.Create(db, user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	return user, nil
}

func (s *userService) GetByID(db *gorm.DB, id string) (*models.User, error) {
	user, err := s.userRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err, "user", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

func (s *userService) List(db *gorm.DB) ([]models.User, error) {
	users, err := s.userRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return users, nil
}

func (s *userService) Update(db *gorm.DB, id string, req dto.UpdateUserRequest) (*models.User, error) {
	user, err := s.GetByID(db, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Password != nil {
		hash, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		user.PasswordHash = hash
	}
	if req.Role != nil {
		user.Role = models.UserRole(*req.Role)
	}

	if err := s.userRepo.Update(db, user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	return user, nil
}

func (s *userService) Delete(db *gorm.DB, actorID, id string) error {
	if actorID == id {
		return apperrors.ErrInvalidOperation("user", "You cannot delete your own account")
	}

	if err := s.userRepo.Delete(db, id); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err, "user", "User not found")
		}
		return apperrors.InternalError(err)
	}
	return nil
}
