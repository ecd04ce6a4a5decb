package repository

import (
	"gorm.io/gorm"

	"github.com/tawqimpact/fundraising-api/internal/models"
)

// GormAnalyticsRepository is a GORM implementation of AnalyticsRepository
type GormAnalyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new AnalyticsRepository
func NewAnalyticsRepository(db *gorm.DB) AnalyticsRepository {
	return &GormAnalyticsRepository{db: db}
}

// ListActiveEmployees returns every employee profile whose owning user is
// active. The user, task logs (with their tasks) and incentives are
// preloaded so ranking needs no further queries.
func (r *GormAnalyticsRepository) ListActiveEmployees() ([]models.EmployeeProfile, error) {
	var employees []models.EmployeeProfile
	if err := r.db.
		Joins("JOIN users ON users.id = employee_profiles.user_id").
		Where("users.is_active = ?", true).
		Preload("User").
		Preload("TaskLogs").
		Preload("TaskLogs.Task").
		Preload("Incentives").
		Order("employee_profiles.id ASC").
		Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

// FindEmployeeWithActivity returns an employee profile with its user and
// task logs preloaded. Logs come back in creation order; the recommendation
// rules depend on it.
func (r *GormAnalyticsRepository) FindEmployeeWithActivity(id uint64) (*models.EmployeeProfile, error) {
	var employee models.EmployeeProfile
	if err := r.db.
		Preload("User").
		Preload("TaskLogs", func(db *gorm.DB) *gorm.DB {
			return db.Order("task_logs.created_at ASC, task_logs.id ASC")
		}).
		First(&employee, id).Error; err != nil {
		return nil, err
	}
	return &employee, nil
}

// FindProjectWithFinancials returns a project with everything a snapshot
// aggregates over: tasks, revenue and expense records, and the assignment
// graph down to each assigned employee's user.
func (r *GormAnalyticsRepository) FindProjectWithFinancials(id uint64) (*models.Project, error) {
	var project models.Project
	if err := r.db.
		Preload("Tasks").
		Preload("RevenueRecords").
		Preload("ExpenseRecords").
		Preload("Assignments").
		Preload("Assignments.Employee").
		Preload("Assignments.Employee.User").
		First(&project, id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}
