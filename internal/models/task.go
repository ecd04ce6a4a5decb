package models

import "time"

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusBlocked    TaskStatus = "blocked"
)

// ValidTaskStatus reports whether s is one of the known task statuses.
func ValidTaskStatus(s TaskStatus) bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted, TaskStatusBlocked:
		return true
	}
	return false
}

type Task struct {
	ID            uint64     `gorm:"primarykey" json:"id"`
	Title         string     `gorm:"type:varchar(255);not null" json:"title"`
	Description   *string    `gorm:"type:text" json:"description"`
	Priority      int        `gorm:"not null;default:0" json:"priority"`
	Status        TaskStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	TargetRevenue *float64   `json:"target_revenue"`
	// CurrentRevenue is a write-path cache: it is incremented in the same
	// transaction that inserts a revenue-bearing TaskLog. Analytics never
	// read it; they recompute totals from the logs.
	CurrentRevenue float64   `gorm:"not null;default:0" json:"current_revenue"`
	ProjectID      *uint64   `gorm:"index" json:"project_id"`
	CreatorID      *uint64   `gorm:"index" json:"creator_id"`
	OwnerID        *uint64   `gorm:"index" json:"owner_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Relations
	Project *Project         `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	Creator *User            `gorm:"foreignKey:CreatorID" json:"creator,omitempty"`
	Owner   *EmployeeProfile `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Logs    []TaskLog        `gorm:"foreignKey:TaskID" json:"logs,omitempty"`
}

type TaskLog struct {
	ID         uint64    `gorm:"primarykey" json:"id"`
	TaskID     uint64    `gorm:"not null;index" json:"task_id"`
	EmployeeID uint64    `gorm:"not null;index" json:"employee_id"`
	Note       *string   `gorm:"type:text" json:"note"`
	Revenue    *float64  `json:"revenue"`
	Blockers   *string   `gorm:"type:text" json:"blockers"`
	Needs      *string   `gorm:"type:text" json:"needs"`
	CreatedAt  time.Time `json:"created_at"`

	// Relations
	Task     Task            `gorm:"foreignKey:TaskID" json:"task,omitempty"`
	Employee EmployeeProfile `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
}
