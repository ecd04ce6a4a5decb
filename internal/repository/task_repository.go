package repository

import (
	"gorm.io/gorm"

	"github.com/tawqimpact/fundraising-api/internal/models"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create creates a new task
func (r *GormTaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// FindByID finds a task by ID with optional preloading
func (r *GormTaskRepository) FindByID(id uint64, preload ...string) (*models.Task, error) {
	var task models.Task
	query := r.db
	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&task, id).Error; err != nil {
		return nil, err
	}

	return &task, nil
}

// List retrieves tasks matching the filter
func (r *GormTaskRepository) List(filter TaskFilter) ([]models.Task, error) {
	var tasks []models.Task

	query := r.db.Model(&models.Task{})
	if filter.ProjectID != nil {
		query = query.Where("tasks.project_id = ?", *filter.ProjectID)
	}
	if filter.EmployeeID != nil {
		logSubQuery := r.db.Model(&models.TaskLog{}).
			Select("1").
			Where("task_logs.task_id = tasks.id").
			Where("task_logs.employee_id = ?", *filter.EmployeeID)
		query = query.Where("tasks.owner_id = ? OR EXISTS (?)", *filter.EmployeeID, logSubQuery)
	}

	if err := query.Order("tasks.id ASC").Find(&tasks).Error; err != nil {
		return nil, err
	}

	return tasks, nil
}

// Update updates a task
func (r *GormTaskRepository) Update(task *models.Task) error {
	return r.db.Save(task).Error
}

// CreateLog inserts a task log and, when the log carries revenue, increments
// the task's running revenue. Both writes happen in one transaction so the
// cached total never drifts from the log it accounts for.
func (r *GormTaskRepository) CreateLog(log *models.TaskLog) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(log).Error; err != nil {
			return err
		}

		if log.Revenue != nil && *log.Revenue != 0 {
			if err := tx.Model(&models.Task{}).
				Where("id = ?", log.TaskID).
				UpdateColumn("current_revenue", gorm.Expr("current_revenue + ?", *log.Revenue)).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// FindEmployee finds an employee profile by ID
func (r *GormTaskRepository) FindEmployee(id uint64) (*models.EmployeeProfile, error) {
	var employee models.EmployeeProfile
	if err := r.db.First(&employee, id).Error; err != nil {
		return nil, err
	}
	return &employee, nil
}

// CreateIncentive grants incentive points to an employee
func (r *GormTaskRepository) CreateIncentive(incentive *models.Incentive) error {
	return r.db.Create(incentive).Error
}
