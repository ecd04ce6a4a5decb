package models

import "time"

type Project struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Description *string   `gorm:"type:text" json:"description"`
	GoalAmount  *float64  `json:"goal_amount"`
	OwnerID     *uint64   `gorm:"index" json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations
	Owner          *User               `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Assignments    []ProjectAssignment `gorm:"foreignKey:ProjectID" json:"assignments,omitempty"`
	Tasks          []Task              `gorm:"foreignKey:ProjectID" json:"tasks,omitempty"`
	RevenueRecords []RevenueRecord     `gorm:"foreignKey:ProjectID" json:"revenue_records,omitempty"`
	ExpenseRecords []ExpenseRecord     `gorm:"foreignKey:ProjectID" json:"expense_records,omitempty"`
}

// ProjectAssignment links an employee to a project. The composite unique
// index keeps an employee from being assigned to the same project twice.
type ProjectAssignment struct {
	ID              uint64    `gorm:"primarykey" json:"id"`
	ProjectID       uint64    `gorm:"not null;uniqueIndex:idx_project_employee" json:"project_id"`
	EmployeeID      uint64    `gorm:"not null;uniqueIndex:idx_project_employee" json:"employee_id"`
	RoleDescription *string   `gorm:"type:varchar(255)" json:"role_description"`
	CreatedAt       time.Time `json:"created_at"`

	// Relations
	Project  Project         `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	Employee EmployeeProfile `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
}
