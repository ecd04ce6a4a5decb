package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/tawqimpact/fundraising-api/internal/access"
	"github.com/tawqimpact/fundraising-api/internal/models"
	"github.com/tawqimpact/fundraising-api/internal/repository"
)

var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrTitleRequired    = errors.New("title is required")
	ErrInvalidStatus    = errors.New("invalid task status")
	ErrEmployeeRequired = errors.New("employee is required")
)

// TaskService handles task business logic
type TaskService struct {
	taskRepo repository.TaskRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
	}
}

// CreateTaskInput represents input for creating a task
type CreateTaskInput struct {
	Title         string
	Description   *string
	Priority      int
	Status        models.TaskStatus
	TargetRevenue *float64
	ProjectID     *uint64
	OwnerID       *uint64
}

// CreateTask creates a new task. Only managers may create tasks.
func (s *TaskService) CreateTask(input CreateTaskInput, actor access.Actor) (*models.Task, error) {
	if !actor.CanManage() {
		return nil, ErrAccessDenied
	}
	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrTitleRequired
	}

	if input.Status == "" {
		input.Status = models.TaskStatusPending
	}
	if !models.ValidTaskStatus(input.Status) {
		return nil, ErrInvalidStatus
	}

	creatorID := actor.UserID
	task := &models.Task{
		Title:         input.Title,
		Description:   input.Description,
		Priority:      input.Priority,
		Status:        input.Status,
		TargetRevenue: input.TargetRevenue,
		ProjectID:     input.ProjectID,
		CreatorID:     &creatorID,
		OwnerID:       input.OwnerID,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// ListTasks returns tasks visible to the actor, optionally limited to one
// project. Employees only see tasks they own or have logged against.
func (s *TaskService) ListTasks(projectID *uint64, actor access.Actor) ([]models.Task, error) {
	filter := repository.TaskFilter{ProjectID: projectID}

	switch actor.VisibleScope() {
	case access.ScopeAssigned:
		filter.EmployeeID = actor.EmployeeID
	case access.ScopeNone:
		return []models.Task{}, nil
	}

	tasks, err := s.taskRepo.List(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return tasks, nil
}

// GetTask returns a task if the actor may view it.
func (s *TaskService) GetTask(taskID uint64, actor access.Actor) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(taskID, "Project", "Owner", "Logs")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	if !actor.CanViewTask(task) {
		return nil, ErrAccessDenied
	}

	return task, nil
}

// AssignOwner hands a task to an employee. Only managers may assign.
func (s *TaskService) AssignOwner(taskID, employeeID uint64, actor access.Actor) (*models.Task, error) {
	if !actor.CanManage() {
		return nil, ErrAccessDenied
	}

	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	if _, err := s.taskRepo.FindEmployee(employeeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to find employee: %w", err)
	}

	task.OwnerID = &employeeID
	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to assign task: %w", err)
	}

	return task, nil
}

// UpdateStatus moves a task to a new status. Employees may only update
// tasks they own.
func (s *TaskService) UpdateStatus(taskID uint64, status models.TaskStatus, actor access.Actor) (*models.Task, error) {
	if !models.ValidTaskStatus(status) {
		return nil, ErrInvalidStatus
	}

	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	if actor.Role == models.RoleEmployee {
		if actor.EmployeeID == nil || task.OwnerID == nil || *task.OwnerID != *actor.EmployeeID {
			return nil, ErrAccessDenied
		}
	}

	task.Status = status
	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update status: %w", err)
	}

	return task, nil
}

// AddLogInput represents input for logging activity against a task
type AddLogInput struct {
	Note     *string
	Revenue  *float64
	Blockers *string
	Needs    *string
	// EmployeeID is who the log is recorded for when a manager files it on
	// an employee's behalf; employee actors always log as themselves.
	EmployeeID *uint64
}

// AddLog records activity against a task. Employee actors may only log
// against their own or unowned tasks; the log insert and the task's revenue
// increment commit together.
func (s *TaskService) AddLog(taskID uint64, input AddLogInput, actor access.Actor) (*models.TaskLog, error) {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	var employeeID uint64
	if actor.Role == models.RoleEmployee {
		if actor.EmployeeID == nil {
			return nil, ErrAccessDenied
		}
		if task.OwnerID != nil && *task.OwnerID != *actor.EmployeeID {
			return nil, ErrAccessDenied
		}
		employeeID = *actor.EmployeeID
	} else {
		switch {
		case input.EmployeeID != nil:
			employeeID = *input.EmployeeID
		case task.OwnerID != nil:
			employeeID = *task.OwnerID
		default:
			return nil, ErrEmployeeRequired
		}
	}

	log := &models.TaskLog{
		TaskID:     taskID,
		EmployeeID: employeeID,
		Note:       input.Note,
		Revenue:    input.Revenue,
		Blockers:   input.Blockers,
		Needs:      input.Needs,
	}

	if err := s.taskRepo.CreateLog(log); err != nil {
		return nil, fmt.Errorf("failed to create task log: %w", err)
	}

	return log, nil
}

// AwardIncentiveInput represents input for granting incentive points
type AwardIncentiveInput struct {
	EmployeeID uint64
	Points     int
	Reason     *string
	GrantedAt  *time.Time
}

// AwardIncentive grants points to an employee. Only managers may award.
func (s *TaskService) AwardIncentive(input AwardIncentiveInput, actor access.Actor) (*models.Incentive, error) {
	if !actor.CanManage() {
		return nil, ErrAccessDenied
	}

	if _, err := s.taskRepo.FindEmployee(input.EmployeeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to find employee: %w", err)
	}

	grantedAt := time.Now()
	if input.GrantedAt != nil {
		grantedAt = *input.GrantedAt
	}

	incentive := &models.Incentive{
		EmployeeID: input.EmployeeID,
		Points:     input.Points,
		Reason:     input.Reason,
		GrantedAt:  grantedAt,
	}

	if err := s.taskRepo.CreateIncentive(incentive); err != nil {
		return nil, fmt.Errorf("failed to award incentive: %w", err)
	}

	return incentive, nil
}
