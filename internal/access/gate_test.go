package access

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tawqimpact/fundraising-api/internal/models"
)

func employeeID(id uint64) *uint64 { return &id }

func TestVisibleScope(t *testing.T) {
	tests := []struct {
		name  string
		actor Actor
		want  Scope
	}{
		{"admin reads everything", Actor{UserID: 1, Role: models.RoleAdmin}, ScopeAll},
		{"accountant reads everything", Actor{UserID: 2, Role: models.RoleAccountant}, ScopeAll},
		{"supervisor reads everything", Actor{UserID: 3, Role: models.RoleSupervisor}, ScopeAll},
		{"employee with profile is scoped", Actor{UserID: 4, Role: models.RoleEmployee, EmployeeID: employeeID(7)}, ScopeAssigned},
		{"employee without profile sees nothing", Actor{UserID: 5, Role: models.RoleEmployee}, ScopeNone},
		{"unknown role sees nothing", Actor{UserID: 6, Role: models.Role("intern")}, ScopeNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.actor.VisibleScope())
		})
	}
}

func TestCanViewEmployee(t *testing.T) {
	admin := Actor{UserID: 1, Role: models.RoleAdmin}
	self := Actor{UserID: 2, Role: models.RoleEmployee, EmployeeID: employeeID(7)}
	profileless := Actor{UserID: 3, Role: models.RoleEmployee}

	assert.True(t, admin.CanViewEmployee(7))
	assert.True(t, self.CanViewEmployee(7))
	assert.False(t, self.CanViewEmployee(8))
	assert.False(t, profileless.CanViewEmployee(7))
}

func TestCanViewProject(t *testing.T) {
	project := &models.Project{
		ID:   10,
		Name: "Gala",
		Assignments: []models.ProjectAssignment{
			{ProjectID: 10, EmployeeID: 7},
		},
	}

	assigned := Actor{UserID: 2, Role: models.RoleEmployee, EmployeeID: employeeID(7)}
	unassigned := Actor{UserID: 3, Role: models.RoleEmployee, EmployeeID: employeeID(8)}
	supervisor := Actor{UserID: 4, Role: models.RoleSupervisor}

	assert.True(t, assigned.CanViewProject(project))
	assert.False(t, unassigned.CanViewProject(project))
	assert.True(t, supervisor.CanViewProject(project))
}

func TestCanViewTask(t *testing.T) {
	ownerID := uint64(7)
	owned := &models.Task{ID: 1, Title: "Call donors", OwnerID: &ownerID}
	logged := &models.Task{
		ID:    2,
		Title: "Venue outreach",
		Logs: []models.TaskLog{
			{TaskID: 2, EmployeeID: 8},
		},
	}
	unrelated := &models.Task{ID: 3, Title: "Print flyers"}

	owner := Actor{UserID: 2, Role: models.RoleEmployee, EmployeeID: employeeID(7)}
	logger := Actor{UserID: 3, Role: models.RoleEmployee, EmployeeID: employeeID(8)}
	accountant := Actor{UserID: 4, Role: models.RoleAccountant}

	assert.True(t, owner.CanViewTask(owned))
	assert.False(t, owner.CanViewTask(logged))
	assert.True(t, logger.CanViewTask(logged))
	assert.False(t, logger.CanViewTask(unrelated))
	assert.True(t, accountant.CanViewTask(unrelated))
}

func TestManagementPredicates(t *testing.T) {
	tests := []struct {
		role       models.Role
		canManage  bool
		canFinance bool
		isAdmin    bool
	}{
		{models.RoleAdmin, true, true, true},
		{models.RoleSupervisor, true, false, false},
		{models.RoleAccountant, false, true, false},
		{models.RoleEmployee, false, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			actor := Actor{UserID: 1, Role: tt.role}
			assert.Equal(t, tt.canManage, actor.CanManage())
			assert.Equal(t, tt.canFinance, actor.CanRecordFinance())
			assert.Equal(t, tt.isAdmin, actor.IsAdmin())
		})
	}
}

func TestActorFromUser(t *testing.T) {
	withProfile := &models.User{
		ID:              5,
		Role:            models.RoleEmployee,
		EmployeeProfile: &models.EmployeeProfile{ID: 9, UserID: 5},
	}
	actor := ActorFromUser(withProfile)
	assert.Equal(t, uint64(5), actor.UserID)
	assert.NotNil(t, actor.EmployeeID)
	assert.Equal(t, uint64(9), *actor.EmployeeID)

	withoutProfile := &models.User{ID: 6, Role: models.RoleAdmin}
	assert.Nil(t, ActorFromUser(withoutProfile).EmployeeID)
}
