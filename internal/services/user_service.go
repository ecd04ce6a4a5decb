package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/tawqimpact/fundraising-api/internal/access"
	"github.com/tawqimpact/fundraising-api/internal/models"
	"github.com/tawqimpact/fundraising-api/internal/repository"
)

// UserService handles administrative user operations.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// ListUsers returns all users. Admin only.
func (s *UserService) ListUsers(actor access.Actor) ([]models.User, error) {
	if !actor.IsAdmin() {
		return nil, ErrAccessDenied
	}

	users, err := s.userRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return users, nil
}

// UpdateUserInput represents input for updating a user. Role is immutable:
// it must stay consistent with the profile created at registration.
type UpdateUserInput struct {
	FullName  *string
	IsActive  *bool
	AvatarURL *string
}

// UpdateUser updates a user's mutable fields. Admin only.
func (s *UserService) UpdateUser(userID uint64, input UpdateUserInput, actor access.Actor) (*models.User, error) {
	if !actor.IsAdmin() {
		return nil, ErrAccessDenied
	}

	user, err := s.userRepo.FindByID(userID, "EmployeeProfile", "SupervisorProfile")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if input.FullName != nil {
		user.FullName = *input.FullName
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}
	if input.AvatarURL != nil {
		user.AvatarURL = input.AvatarURL
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}
