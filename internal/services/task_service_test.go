package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/tawqimpact/fundraising-api/internal/access"
	"github.com/tawqimpact/fundraising-api/internal/models"
	"github.com/tawqimpact/fundraising-api/internal/repository"
)

// TaskServiceTestSuite defines the test suite for TaskService
type TaskServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service *TaskService
}

// SetupTest runs before each test
func (suite *TaskServiceTestSuite) SetupTest() {
	var err error

	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

	err = suite.db.AutoMigrate(
		&models.User{},
		&models.EmployeeProfile{},
		&models.SupervisorProfile{},
		&models.Project{},
		&models.ProjectAssignment{},
		&models.Task{},
		&models.TaskLog{},
		&models.Incentive{},
	)
	suite.Require().NoError(err)

	suite.service = NewTaskService(repository.NewTaskRepository(suite.db))
}

// TearDownTest runs after each test
func (suite *TaskServiceTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *TaskServiceTestSuite) createEmployee(name string) *models.EmployeeProfile {
	user := &models.User{
		Email:        name + "@example.com",
		FullName:     name,
		Role:         models.RoleEmployee,
		IsActive:     true,
		PasswordHash: "hashedpassword",
	}
	suite.Require().NoError(suite.db.Create(user).Error)

	profile := &models.EmployeeProfile{UserID: user.ID}
	suite.Require().NoError(suite.db.Create(profile).Error)
	return profile
}

func (suite *TaskServiceTestSuite) createTask(ownerID *uint64) *models.Task {
	task := &models.Task{
		Title:   "Call donors",
		Status:  models.TaskStatusPending,
		OwnerID: ownerID,
	}
	suite.Require().NoError(suite.db.Create(task).Error)
	return task
}

func supervisorActor() access.Actor {
	return access.Actor{UserID: 2, Role: models.RoleSupervisor}
}

// TestCreateTask_DefaultsToPending creates a task with the default status
func (suite *TaskServiceTestSuite) TestCreateTask_DefaultsToPending() {
	task, err := suite.service.CreateTask(CreateTaskInput{Title: "Plan gala"}, supervisorActor())
	suite.Require().NoError(err)

	assert.Equal(suite.T(), models.TaskStatusPending, task.Status)
	suite.Require().NotNil(task.CreatorID)
	assert.Equal(suite.T(), uint64(2), *task.CreatorID)
}

// TestCreateTask_RequiresManager denies employee actors
func (suite *TaskServiceTestSuite) TestCreateTask_RequiresManager() {
	employee := suite.createEmployee("worker")

	_, err := suite.service.CreateTask(CreateTaskInput{Title: "Plan gala"}, employeeActor(employee.ID))
	assert.ErrorIs(suite.T(), err, ErrAccessDenied)
}

// TestCreateTask_RequiresTitle rejects blank titles
func (suite *TaskServiceTestSuite) TestCreateTask_RequiresTitle() {
	_, err := suite.service.CreateTask(CreateTaskInput{Title: "   "}, supervisorActor())
	assert.ErrorIs(suite.T(), err, ErrTitleRequired)
}

// TestCreateTask_RejectsUnknownStatus rejects statuses outside the enum
func (suite *TaskServiceTestSuite) TestCreateTask_RejectsUnknownStatus() {
	_, err := suite.service.CreateTask(CreateTaskInput{
		Title:  "Plan gala",
		Status: models.TaskStatus("done"),
	}, supervisorActor())
	assert.ErrorIs(suite.T(), err, ErrInvalidStatus)
}

// TestListTasks_EmployeeScope limits employees to owned or logged tasks
func (suite *TaskServiceTestSuite) TestListTasks_EmployeeScope() {
	employee := suite.createEmployee("worker")
	other := suite.createEmployee("colleague")

	owned := suite.createTask(&employee.ID)
	logged := suite.createTask(&other.ID)
	suite.Require().NoError(suite.db.Create(&models.TaskLog{
		TaskID:     logged.ID,
		EmployeeID: employee.ID,
	}).Error)
	suite.createTask(nil)

	tasks, err := suite.service.ListTasks(nil, employeeActor(employee.ID))
	suite.Require().NoError(err)
	suite.Require().Len(tasks, 2)

	ids := []uint64{tasks[0].ID, tasks[1].ID}
	assert.Contains(suite.T(), ids, owned.ID)
	assert.Contains(suite.T(), ids, logged.ID)
}

// TestListTasks_AdminSeesAll returns every task for unrestricted actors
func (suite *TaskServiceTestSuite) TestListTasks_AdminSeesAll() {
	employee := suite.createEmployee("worker")
	suite.createTask(&employee.ID)
	suite.createTask(nil)

	tasks, err := suite.service.ListTasks(nil, adminActor())
	suite.Require().NoError(err)
	assert.Len(suite.T(), tasks, 2)
}

// TestGetTask_EmployeeDeniedOnUnrelated blocks reads of unrelated tasks
func (suite *TaskServiceTestSuite) TestGetTask_EmployeeDeniedOnUnrelated() {
	employee := suite.createEmployee("worker")
	other := suite.createEmployee("colleague")
	task := suite.createTask(&other.ID)

	_, err := suite.service.GetTask(task.ID, employeeActor(employee.ID))
	assert.ErrorIs(suite.T(), err, ErrAccessDenied)
}

// TestAssignOwner_SetsOwner hands the task to an existing employee
func (suite *TaskServiceTestSuite) TestAssignOwner_SetsOwner() {
	employee := suite.createEmployee("worker")
	task := suite.createTask(nil)

	updated, err := suite.service.AssignOwner(task.ID, employee.ID, supervisorActor())
	suite.Require().NoError(err)
	suite.Require().NotNil(updated.OwnerID)
	assert.Equal(suite.T(), employee.ID, *updated.OwnerID)
}

// TestAssignOwner_UnknownEmployee fails when the employee does not exist
func (suite *TaskServiceTestSuite) TestAssignOwner_UnknownEmployee() {
	task := suite.createTask(nil)

	_, err := suite.service.AssignOwner(task.ID, 999, supervisorActor())
	assert.ErrorIs(suite.T(), err, ErrEmployeeNotFound)
}

// TestUpdateStatus_EmployeeOwnTask lets owners move their own tasks
func (suite *TaskServiceTestSuite) TestUpdateStatus_EmployeeOwnTask() {
	employee := suite.createEmployee("worker")
	task := suite.createTask(&employee.ID)

	updated, err := suite.service.UpdateStatus(task.ID, models.TaskStatusCompleted, employeeActor(employee.ID))
	suite.Require().NoError(err)
	assert.Equal(suite.T(), models.TaskStatusCompleted, updated.Status)
}

// TestUpdateStatus_EmployeeOtherTask blocks status changes on others' tasks
func (suite *TaskServiceTestSuite) TestUpdateStatus_EmployeeOtherTask() {
	employee := suite.createEmployee("worker")
	other := suite.createEmployee("colleague")
	task := suite.createTask(&other.ID)

	_, err := suite.service.UpdateStatus(task.ID, models.TaskStatusCompleted, employeeActor(employee.ID))
	assert.ErrorIs(suite.T(), err, ErrAccessDenied)
}

// TestAddLog_IncrementsRevenue commits the log and the revenue cache together
func (suite *TaskServiceTestSuite) TestAddLog_IncrementsRevenue() {
	employee := suite.createEmployee("worker")
	task := suite.createTask(&employee.ID)

	_, err := suite.service.AddLog(task.ID, AddLogInput{Revenue: floatPtr(150)}, employeeActor(employee.ID))
	suite.Require().NoError(err)
	_, err = suite.service.AddLog(task.ID, AddLogInput{Revenue: floatPtr(50)}, employeeActor(employee.ID))
	suite.Require().NoError(err)

	var reloaded models.Task
	suite.Require().NoError(suite.db.First(&reloaded, task.ID).Error)
	assert.Equal(suite.T(), 200.0, reloaded.CurrentRevenue)

	var count int64
	suite.Require().NoError(suite.db.Model(&models.TaskLog{}).Where("task_id = ?", task.ID).Count(&count).Error)
	assert.Equal(suite.T(), int64(2), count)
}

// TestAddLog_EmployeeLogsAsSelf ignores a supplied employee id for employees
func (suite *TaskServiceTestSuite) TestAddLog_EmployeeLogsAsSelf() {
	employee := suite.createEmployee("worker")
	other := suite.createEmployee("colleague")
	task := suite.createTask(nil)

	log, err := suite.service.AddLog(task.ID, AddLogInput{EmployeeID: &other.ID}, employeeActor(employee.ID))
	suite.Require().NoError(err)
	assert.Equal(suite.T(), employee.ID, log.EmployeeID)
}

// TestAddLog_EmployeeDeniedOnOthersTask blocks logging against owned tasks
func (suite *TaskServiceTestSuite) TestAddLog_EmployeeDeniedOnOthersTask() {
	employee := suite.createEmployee("worker")
	other := suite.createEmployee("colleague")
	task := suite.createTask(&other.ID)

	_, err := suite.service.AddLog(task.ID, AddLogInput{}, employeeActor(employee.ID))
	assert.ErrorIs(suite.T(), err, ErrAccessDenied)
}

// TestAddLog_ManagerNeedsTarget requires an employee for unowned tasks
func (suite *TaskServiceTestSuite) TestAddLog_ManagerNeedsTarget() {
	task := suite.createTask(nil)

	_, err := suite.service.AddLog(task.ID, AddLogInput{}, supervisorActor())
	assert.ErrorIs(suite.T(), err, ErrEmployeeRequired)
}

// TestAddLog_ManagerDefaultsToOwner files against the owner when unspecified
func (suite *TaskServiceTestSuite) TestAddLog_ManagerDefaultsToOwner() {
	employee := suite.createEmployee("worker")
	task := suite.createTask(&employee.ID)

	log, err := suite.service.AddLog(task.ID, AddLogInput{Note: strPtr("checked in")}, supervisorActor())
	suite.Require().NoError(err)
	assert.Equal(suite.T(), employee.ID, log.EmployeeID)
}

// TestAwardIncentive_ManagerOnly lets managers grant points and no one else
func (suite *TaskServiceTestSuite) TestAwardIncentive_ManagerOnly() {
	employee := suite.createEmployee("worker")

	incentive, err := suite.service.AwardIncentive(AwardIncentiveInput{
		EmployeeID: employee.ID,
		Points:     15,
	}, supervisorActor())
	suite.Require().NoError(err)
	assert.Equal(suite.T(), 15, incentive.Points)
	assert.False(suite.T(), incentive.GrantedAt.IsZero())

	accountant := access.Actor{UserID: 3, Role: models.RoleAccountant}
	_, err = suite.service.AwardIncentive(AwardIncentiveInput{
		EmployeeID: employee.ID,
		Points:     5,
	}, accountant)
	assert.ErrorIs(suite.T(), err, ErrAccessDenied)
}

// TestAwardIncentive_UnknownEmployee fails when the employee does not exist
func (suite *TaskServiceTestSuite) TestAwardIncentive_UnknownEmployee() {
	_, err := suite.service.AwardIncentive(AwardIncentiveInput{
		EmployeeID: 999,
		Points:     5,
	}, supervisorActor())
	assert.ErrorIs(suite.T(), err, ErrEmployeeNotFound)
}

// TestTaskServiceTestSuite runs the test suite
func TestTaskServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TaskServiceTestSuite))
}
