package repository

import (
	"github.com/tawqimpact/fundraising-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// CreateWithProfile creates a user and the profile matching their role
	// within a single transaction
	CreateWithProfile(user *models.User) error

	// FindByID finds a user by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.User, error)

	// FindByEmail finds a user by email with optional preloading
	FindByEmail(email string, preload ...string) (*models.User, error)

	// List retrieves all users
	List() ([]models.User, error)

	// Update updates a user
	Update(user *models.User) error
}

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	// Create creates a new project
	Create(project *models.Project) error

	// FindByID finds a project by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Project, error)

	// List retrieves all projects
	List() ([]models.Project, error)

	// ListByEmployee retrieves projects the employee is assigned to
	ListByEmployee(employeeID uint64) ([]models.Project, error)

	// CreateAssignment links an employee to a project
	CreateAssignment(assignment *models.ProjectAssignment) error

	// FindAssignment finds a specific project assignment
	FindAssignment(projectID, employeeID uint64) (*models.ProjectAssignment, error)

	// FindEmployee finds an employee profile by ID
	FindEmployee(id uint64) (*models.EmployeeProfile, error)

	// AddRevenueRecord records revenue against a project
	AddRevenueRecord(record *models.RevenueRecord) error

	// AddExpenseRecord records an expense against a project
	AddExpenseRecord(record *models.ExpenseRecord) error
}

// TaskFilter holds filtering options for listing tasks
type TaskFilter struct {
	ProjectID *uint64
	// EmployeeID restricts the list to tasks the employee owns or has
	// logged against
	EmployeeID *uint64
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// FindByID finds a task by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Task, error)

	// List retrieves tasks matching the filter
	List(filter TaskFilter) ([]models.Task, error)

	// Update updates a task
	Update(task *models.Task) error

	// CreateLog inserts a task log and, when the log carries revenue,
	// increments the task's running revenue in the same transaction
	CreateLog(log *models.TaskLog) error

	// FindEmployee finds an employee profile by ID
	FindEmployee(id uint64) (*models.EmployeeProfile, error)

	// CreateIncentive grants incentive points to an employee
	CreateIncentive(incentive *models.Incentive) error
}

// AnalyticsRepository is the read-only query surface the analytics core
// aggregates over.
type AnalyticsRepository interface {
	// ListActiveEmployees returns every employee profile whose owning user
	// is active, with the user, task logs (and their tasks) and incentives
	// preloaded
	ListActiveEmployees() ([]models.EmployeeProfile, error)

	// FindEmployeeWithActivity returns an employee profile with its user
	// and task logs preloaded, logs in creation order
	FindEmployeeWithActivity(id uint64) (*models.EmployeeProfile, error)

	// FindProjectWithFinancials returns a project with its tasks, revenue
	// and expense records, and assignment graph preloaded
	FindProjectWithFinancials(id uint64) (*models.Project, error)
}
