package repository

import (
	"gorm.io/gorm"

	"github.com/tawqimpact/fundraising-api/internal/models"
)

// GormProjectRepository is a GORM implementation of ProjectRepository
type GormProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &GormProjectRepository{db: db}
}

// Create creates a new project
func (r *GormProjectRepository) Create(project *models.Project) error {
	return r.db.Create(project).Error
}

// FindByID finds a project by ID with optional preloading
func (r *GormProjectRepository) FindByID(id uint64, preload ...string) (*models.Project, error) {
	var project models.Project
	query := r.db
	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&project, id).Error; err != nil {
		return nil, err
	}

	return &project, nil
}

// List retrieves all projects
func (r *GormProjectRepository) List() ([]models.Project, error) {
	var projects []models.Project
	if err := r.db.Order("projects.id ASC").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// ListByEmployee retrieves projects the employee is assigned to
func (r *GormProjectRepository) ListByEmployee(employeeID uint64) ([]models.Project, error) {
	var projects []models.Project
	assignmentSubQuery := r.db.Model(&models.ProjectAssignment{}).
		Select("1").
		Where("project_assignments.project_id = projects.id").
		Where("project_assignments.employee_id = ?", employeeID)

	if err := r.db.
		Where("EXISTS (?)", assignmentSubQuery).
		Order("projects.id ASC").
		Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// CreateAssignment links an employee to a project
func (r *GormProjectRepository) CreateAssignment(assignment *models.ProjectAssignment) error {
	return r.db.Create(assignment).Error
}

// FindAssignment finds a specific project assignment
func (r *GormProjectRepository) FindAssignment(projectID, employeeID uint64) (*models.ProjectAssignment, error) {
	var assignment models.ProjectAssignment
	if err := r.db.Where("project_id = ? AND employee_id = ?", projectID, employeeID).
		First(&assignment).Error; err != nil {
		return nil, err
	}
	return &assignment, nil
}

// FindEmployee finds an employee profile by ID
func (r *GormProjectRepository) FindEmployee(id uint64) (*models.EmployeeProfile, error) {
	var employee models.EmployeeProfile
	if err := r.db.First(&employee, id).Error; err != nil {
		return nil, err
	}
	return &employee, nil
}

// AddRevenueRecord records revenue against a project
func (r *GormProjectRepository) AddRevenueRecord(record *models.RevenueRecord) error {
	return r.db.Create(record).Error
}

// AddExpenseRecord records an expense against a project
func (r *GormProjectRepository) AddExpenseRecord(record *models.ExpenseRecord) error {
	return r.db.Create(record).Error
}
