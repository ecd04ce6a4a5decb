package dto

import (
	"github.com/tawqimpact/fundraising-api/internal/models"
)

// UserDTO represents a user in API responses
type UserDTO struct {
	ID                  uint64      `json:"id"`
	Email               string      `json:"email"`
	FullName            string      `json:"full_name"`
	Role                models.Role `json:"role"`
	IsActive            bool        `json:"is_active"`
	AvatarURL           *string     `json:"avatar_url"`
	EmployeeProfileID   *uint64     `json:"employee_profile_id"`
	SupervisorProfileID *uint64     `json:"supervisor_profile_id"`
}

// EmployeeDTO represents an employee profile in API responses
type EmployeeDTO struct {
	ID            uint64   `json:"id"`
	UserID        uint64   `json:"user_id"`
	FullName      string   `json:"full_name,omitempty"`
	MonthlyTarget *float64 `json:"monthly_target"`
	YearlyTarget  *float64 `json:"yearly_target"`
	SupervisorID  *uint64  `json:"supervisor_id"`
}

// ToUserDTO converts a User model to UserDTO. Profile IDs are included when
// the profiles are preloaded.
func ToUserDTO(user models.User) UserDTO {
	dto := UserDTO{
		ID:        user.ID,
		Email:     user.Email,
		FullName:  user.FullName,
		Role:      user.Role,
		IsActive:  user.IsActive,
		AvatarURL: user.AvatarURL,
	}
	if user.EmployeeProfile != nil {
		id := user.EmployeeProfile.ID
		dto.EmployeeProfileID = &id
	}
	if user.SupervisorProfile != nil {
		id := user.SupervisorProfile.ID
		dto.SupervisorProfileID = &id
	}
	return dto
}

// ToEmployeeDTO converts an EmployeeProfile model to EmployeeDTO. The full
// name is included when the user is preloaded.
func ToEmployeeDTO(employee models.EmployeeProfile) EmployeeDTO {
	dto := EmployeeDTO{
		ID:            employee.ID,
		UserID:        employee.UserID,
		MonthlyTarget: employee.MonthlyTarget,
		YearlyTarget:  employee.YearlyTarget,
		SupervisorID:  employee.SupervisorID,
	}
	if employee.User.ID != 0 {
		dto.FullName = employee.User.FullName
	}
	return dto
}
