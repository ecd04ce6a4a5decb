package dto

import (
	"time"

	"github.com/tawqimpact/fundraising-api/internal/models"
)

// ProjectDTO represents a project in API responses
type ProjectDTO struct {
	ID          uint64    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	GoalAmount  *float64  `json:"goal_amount"`
	OwnerID     *uint64   `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// AssignmentDTO represents a project assignment in API responses
type AssignmentDTO struct {
	ID              uint64  `json:"id"`
	ProjectID       uint64  `json:"project_id"`
	EmployeeID      uint64  `json:"employee_id"`
	RoleDescription *string `json:"role_description"`
}

// FinanceRecordDTO represents a revenue or expense record in API responses
type FinanceRecordDTO struct {
	ID          uint64    `json:"id"`
	ProjectID   uint64    `json:"project_id"`
	Amount      float64   `json:"amount"`
	Description *string   `json:"description"`
	RecordedAt  time.Time `json:"recorded_at"`
}

// ToProjectDTO converts a Project model to ProjectDTO
func ToProjectDTO(project models.Project) ProjectDTO {
	return ProjectDTO{
		ID:          project.ID,
		Name:        project.Name,
		Description: project.Description,
		GoalAmount:  project.GoalAmount,
		OwnerID:     project.OwnerID,
		CreatedAt:   project.CreatedAt,
	}
}

// ToProjectDTOs converts a slice of projects
func ToProjectDTOs(projects []models.Project) []ProjectDTO {
	dtos := make([]ProjectDTO, len(projects))
	for i, project := range projects {
		dtos[i] = ToProjectDTO(project)
	}
	return dtos
}

// ToAssignmentDTO converts a ProjectAssignment model to AssignmentDTO
func ToAssignmentDTO(assignment models.ProjectAssignment) AssignmentDTO {
	return AssignmentDTO{
		ID:              assignment.ID,
		ProjectID:       assignment.ProjectID,
		EmployeeID:      assignment.EmployeeID,
		RoleDescription: assignment.RoleDescription,
	}
}

// ToRevenueRecordDTO converts a RevenueRecord model to FinanceRecordDTO
func ToRevenueRecordDTO(record models.RevenueRecord) FinanceRecordDTO {
	return FinanceRecordDTO{
		ID:          record.ID,
		ProjectID:   record.ProjectID,
		Amount:      record.Amount,
		Description: record.Description,
		RecordedAt:  record.RecordedAt,
	}
}

// ToExpenseRecordDTO converts an ExpenseRecord model to FinanceRecordDTO
func ToExpenseRecordDTO(record models.ExpenseRecord) FinanceRecordDTO {
	return FinanceRecordDTO{
		ID:          record.ID,
		ProjectID:   record.ProjectID,
		Amount:      record.Amount,
		Description: record.Description,
		RecordedAt:  record.RecordedAt,
	}
}
