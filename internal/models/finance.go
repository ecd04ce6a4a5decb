package models

import "time"

type RevenueRecord struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	ProjectID   uint64    `gorm:"not null;index" json:"project_id"`
	Amount      float64   `gorm:"not null" json:"amount"`
	Description *string   `gorm:"type:varchar(255)" json:"description"`
	RecordedAt  time.Time `gorm:"not null" json:"recorded_at"`
	CreatedAt   time.Time `json:"created_at"`

	// Relations
	Project Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
}

type ExpenseRecord struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	ProjectID   uint64    `gorm:"not null;index" json:"project_id"`
	Amount      float64   `gorm:"not null" json:"amount"`
	Description *string   `gorm:"type:varchar(255)" json:"description"`
	RecordedAt  time.Time `gorm:"not null" json:"recorded_at"`
	CreatedAt   time.Time `json:"created_at"`

	// Relations
	Project Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
}

// Incentive is a gamification ledger entry granting points to an employee.
type Incentive struct {
	ID         uint64    `gorm:"primarykey" json:"id"`
	EmployeeID uint64    `gorm:"not null;index" json:"employee_id"`
	Points     int       `gorm:"not null" json:"points"`
	Reason     *string   `gorm:"type:varchar(255)" json:"reason"`
	GrantedAt  time.Time `gorm:"not null" json:"granted_at"`
	CreatedAt  time.Time `json:"created_at"`

	// Relations
	Employee EmployeeProfile `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
}
