package models

import "time"

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleAccountant Role = "accountant"
	RoleSupervisor Role = "supervisor"
	RoleEmployee   Role = "employee"
)

// ValidRole reports whether r is one of the four known roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleAccountant, RoleSupervisor, RoleEmployee:
		return true
	}
	return false
}

type User struct {
	ID           uint64    `gorm:"primarykey" json:"id"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	FullName     string    `gorm:"type:varchar(255);not null" json:"full_name"`
	Role         Role      `gorm:"type:varchar(20);not null" json:"role"`
	// No column default: GORM skips zero-valued fields that carry one on
	// insert, which would store an account created inactive as active.
	IsActive     bool      `gorm:"not null" json:"is_active"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	AvatarURL    *string   `gorm:"type:varchar(512)" json:"avatar_url"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	EmployeeProfile   *EmployeeProfile   `gorm:"foreignKey:UserID" json:"employee_profile,omitempty"`
	SupervisorProfile *SupervisorProfile `gorm:"foreignKey:UserID" json:"supervisor_profile,omitempty"`
}
