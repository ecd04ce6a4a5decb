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
	ErrProjectNameRequired = errors.New("project name is required")
	ErrAlreadyAssigned     = errors.New("employee is already assigned to this project")
)

// ProjectService handles project business logic
type ProjectService struct {
	projectRepo repository.ProjectRepository
}

// NewProjectService creates a new ProjectService
func NewProjectService(projectRepo repository.ProjectRepository) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
	}
}

// CreateProjectInput represents input for creating a project
type CreateProjectInput struct {
	Name        string
	Description *string
	GoalAmount  *float64
}

// CreateProject creates a new project owned by the acting manager.
func (s *ProjectService) CreateProject(input CreateProjectInput, actor access.Actor) (*models.Project, error) {
	if !actor.CanManage() {
		return nil, ErrAccessDenied
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrProjectNameRequired
	}

	ownerID := actor.UserID
	project := &models.Project{
		Name:        input.Name,
		Description: input.Description,
		GoalAmount:  input.GoalAmount,
		OwnerID:     &ownerID,
	}

	if err := s.projectRepo.Create(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return project, nil
}

// ListProjects returns the projects visible to the actor: everything for
// managers and accountants, assigned projects only for employees.
func (s *ProjectService) ListProjects(actor access.Actor) ([]models.Project, error) {
	switch actor.VisibleScope() {
	case access.ScopeAll:
		projects, err := s.projectRepo.List()
		if err != nil {
			return nil, fmt.Errorf("failed to list projects: %w", err)
		}
		return projects, nil
	case access.ScopeAssigned:
		projects, err := s.projectRepo.ListByEmployee(*actor.EmployeeID)
		if err != nil {
			return nil, fmt.Errorf("failed to list projects: %w", err)
		}
		return projects, nil
	default:
		return []models.Project{}, nil
	}
}

// GetProject returns a project if the actor may view it.
func (s *ProjectService) GetProject(projectID uint64, actor access.Actor) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(projectID, "Owner", "Assignments", "Assignments.Employee", "Assignments.Employee.User")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	if !actor.CanViewProject(project) {
		return nil, ErrAccessDenied
	}

	return project, nil
}

// AssignEmployeeInput represents input for assigning an employee to a project
type AssignEmployeeInput struct {
	EmployeeID      uint64
	RoleDescription *string
}

// AssignEmployee links an employee to a project. Duplicate assignments are
// rejected.
func (s *ProjectService) AssignEmployee(projectID uint64, input AssignEmployeeInput, actor access.Actor) (*models.ProjectAssignment, error) {
	if !actor.CanManage() {
		return nil, ErrAccessDenied
	}

	if _, err := s.projectRepo.FindByID(projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	if _, err := s.projectRepo.FindEmployee(input.EmployeeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to find employee: %w", err)
	}

	if _, err := s.projectRepo.FindAssignment(projectID, input.EmployeeID); err == nil {
		return nil, ErrAlreadyAssigned
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check assignment: %w", err)
	}

	assignment := &models.ProjectAssignment{
		ProjectID:       projectID,
		EmployeeID:      input.EmployeeID,
		RoleDescription: input.RoleDescription,
	}

	if err := s.projectRepo.CreateAssignment(assignment); err != nil {
		return nil, fmt.Errorf("failed to assign employee: %w", err)
	}

	return assignment, nil
}

// RecordFinanceInput represents input for adding a revenue or expense record
type RecordFinanceInput struct {
	Amount      float64
	Description *string
	RecordedAt  *time.Time
}

// AddRevenueRecord records revenue against a project.
func (s *ProjectService) AddRevenueRecord(projectID uint64, input RecordFinanceInput, actor access.Actor) (*models.RevenueRecord, error) {
	if err := s.ensureFinanceTarget(projectID, actor); err != nil {
		return nil, err
	}

	record := &models.RevenueRecord{
		ProjectID:   projectID,
		Amount:      input.Amount,
		Description: input.Description,
		RecordedAt:  recordedAtOrNow(input.RecordedAt),
	}

	if err := s.projectRepo.AddRevenueRecord(record); err != nil {
		return nil, fmt.Errorf("failed to record revenue: %w", err)
	}

	return record, nil
}

// AddExpenseRecord records an expense against a project.
func (s *ProjectService) AddExpenseRecord(projectID uint64, input RecordFinanceInput, actor access.Actor) (*models.ExpenseRecord, error) {
	if err := s.ensureFinanceTarget(projectID, actor); err != nil {
		return nil, err
	}

	record := &models.ExpenseRecord{
		ProjectID:   projectID,
		Amount:      input.Amount,
		Description: input.Description,
		RecordedAt:  recordedAtOrNow(input.RecordedAt),
	}

	if err := s.projectRepo.AddExpenseRecord(record); err != nil {
		return nil, fmt.Errorf("failed to record expense: %w", err)
	}

	return record, nil
}

// ensureFinanceTarget verifies the actor may record finance entries and the
// project exists.
func (s *ProjectService) ensureFinanceTarget(projectID uint64, actor access.Actor) error {
	if !actor.CanRecordFinance() {
		return ErrAccessDenied
	}
	if _, err := s.projectRepo.FindByID(projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("failed to find project: %w", err)
	}
	return nil
}

func recordedAtOrNow(t *time.Time) time.Time {
	if t != nil {
		return *t
	}
	return time.Now()
}
