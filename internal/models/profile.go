package models

import "time"

// EmployeeProfile carries the fundraising-specific attributes of an
// employee-role user. A user owns at most one profile, set at registration.
type EmployeeProfile struct {
	ID            uint64    `gorm:"primarykey" json:"id"`
	UserID        uint64    `gorm:"uniqueIndex;not null" json:"user_id"`
	MonthlyTarget *float64  `json:"monthly_target"`
	YearlyTarget  *float64  `json:"yearly_target"`
	Strengths     *string   `gorm:"type:text" json:"strengths"`
	Opportunities *string   `gorm:"type:text" json:"opportunities"`
	SupervisorID  *uint64   `gorm:"index" json:"supervisor_id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// Relations
	User        User                `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Supervisor  *SupervisorProfile  `gorm:"foreignKey:SupervisorID" json:"supervisor,omitempty"`
	Assignments []ProjectAssignment `gorm:"foreignKey:EmployeeID" json:"assignments,omitempty"`
	TaskLogs    []TaskLog           `gorm:"foreignKey:EmployeeID" json:"task_logs,omitempty"`
	Incentives  []Incentive         `gorm:"foreignKey:EmployeeID" json:"incentives,omitempty"`
}

type SupervisorProfile struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	UserID    uint64    `gorm:"uniqueIndex;not null" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	User        User              `gorm:"foreignKey:UserID" json:"user,omitempty"`
	TeamMembers []EmployeeProfile `gorm:"foreignKey:SupervisorID" json:"team_members,omitempty"`
}
