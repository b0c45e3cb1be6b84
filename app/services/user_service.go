package services

import (
	"errors"
	"fmt"

	"inkwell/app/auth"
	"inkwell/app/models"
	"inkwell/app/repositories"
)

// UserService handles registration, lookup and authentication of users
type UserService struct {
	userRepo repositories.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Register creates a new user with a hashed password
func (s *UserService) Register(name, password, email string) (*models.User, error) {
	if name == "" || password == "" {
		return nil, ErrValidation
	}

	pwHash, err := auth.HashPassword(name, password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %v", err)
	}

	user := &models.User{
		Name:   name,
		PwHash: pwHash,
		Email:  email,
	}

	if err := user.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrDuplicateUser
		}
		return nil, err
	}
	return user, nil
}

// ByID retrieves a user by ID
func (s *UserService) ByID(id int) (*models.User, error) {
	return s.userRepo.GetByID(id)
}

// ByName retrieves a user by unique name
func (s *UserService) ByName(name string) (*models.User, error) {
	return s.userRepo.GetByName(name)
}

// Authenticate verifies a name/password pair and returns the user.
// Unknown name and wrong password both map to ErrInvalidCredentials.
func (s *UserService) Authenticate(name, password string) (*models.User, error) {
	user, err := s.userRepo.GetByName(name)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.VerifyPassword(name, password, user.PwHash) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
