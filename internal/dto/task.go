package dto

import (
	"time"

	"github.com/tawqimpact/fundraising-api/internal/models"
)

// TaskDTO represents a task in API responses
type TaskDTO struct {
	ID             uint64            `json:"id"`
	Title          string            `json:"title"`
	Description    *string           `json:"description"`
	Priority       int               `json:"priority"`
	Status         models.TaskStatus `json:"status"`
	TargetRevenue  *float64          `json:"target_revenue"`
	CurrentRevenue float64           `json:"current_revenue"`
	ProjectID      *uint64           `json:"project_id"`
	CreatorID      *uint64           `json:"creator_id"`
	OwnerID        *uint64           `json:"owner_id"`
	CreatedAt      time.Time         `json:"created_at"`
}

// TaskLogDTO represents a task log in API responses
type TaskLogDTO struct {
	ID         uint64    `json:"id"`
	TaskID     uint64    `json:"task_id"`
	EmployeeID uint64    `json:"employee_id"`
	Note       *string   `json:"note"`
	Revenue    *float64  `json:"revenue"`
	Blockers   *string   `json:"blockers"`
	Needs      *string   `json:"needs"`
	CreatedAt  time.Time `json:"created_at"`
}

// IncentiveDTO represents an incentive grant in API responses
type IncentiveDTO struct {
	ID         uint64    `json:"id"`
	EmployeeID uint64    `json:"employee_id"`
	Points     int       `json:"points"`
	Reason     *string   `json:"reason"`
	GrantedAt  time.Time `json:"granted_at"`
}

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	return TaskDTO{
		ID:             task.ID,
		Title:          task.Title,
		Description:    task.Description,
		Priority:       task.Priority,
		Status:         task.Status,
		TargetRevenue:  task.TargetRevenue,
		CurrentRevenue: task.CurrentRevenue,
		ProjectID:      task.ProjectID,
		CreatorID:      task.CreatorID,
		OwnerID:        task.OwnerID,
		CreatedAt:      task.CreatedAt,
	}
}

// ToTaskDTOs converts a slice of tasks
func ToTaskDTOs(tasks []models.Task) []TaskDTO {
	dtos := make([]TaskDTO, len(tasks))
	for i, task := range tasks {
		dtos[i] = ToTaskDTO(task)
	}
	return dtos
}

// ToTaskLogDTO converts a TaskLog model to TaskLogDTO
func ToTaskLogDTO(log models.TaskLog) TaskLogDTO {
	return TaskLogDTO{
		ID:         log.ID,
		TaskID:     log.TaskID,
		EmployeeID: log.EmployeeID,
		Note:       log.Note,
		Revenue:    log.Revenue,
		Blockers:   log.Blockers,
		Needs:      log.Needs,
		CreatedAt:  log.CreatedAt,
	}
}

// ToIncentiveDTO converts an Incentive model to IncentiveDTO
func ToIncentiveDTO(incentive models.Incentive) IncentiveDTO {
	return IncentiveDTO{
		ID:         incentive.ID,
		EmployeeID: incentive.EmployeeID,
		Points:     incentive.Points,
		Reason:     incentive.Reason,
		GrantedAt:  incentive.GrantedAt,
	}
}
