// Package access centralizes the role-based visibility policy. Every
// read-scope decision dispatches through one predicate per operation so the
// policy stays in one place instead of scattered conditionals.
package access

import "github.com/tawqimpact/fundraising-api/internal/models"

// Actor is the authenticated identity performing a request. EmployeeID is
// set only when the user owns an employee profile.
type Actor struct {
	UserID     uint64
	Role       models.Role
	EmployeeID *uint64
}

// ActorFromUser builds an Actor from a loaded user. The employee profile
// must be preloaded for employee-role users to be scoped correctly.
func ActorFromUser(u *models.User) Actor {
	actor := Actor{
		UserID: u.ID,
		Role:   u.Role,
	}
	if u.EmployeeProfile != nil {
		id := u.EmployeeProfile.ID
		actor.EmployeeID = &id
	}
	return actor
}

// Scope describes the subset of entities an actor may read.
type Scope int

const (
	// ScopeAll grants unrestricted read access.
	ScopeAll Scope = iota
	// ScopeAssigned restricts reads to entities linked to the actor's
	// employee profile.
	ScopeAssigned
	// ScopeNone grants nothing; an employee account without a profile has
	// no one to read, itself included.
	ScopeNone
)

// VisibleScope returns the actor's read scope. Admins, accountants and
// supervisors read everything; supervisors are deliberately not narrowed to
// their subordinates.
func (a Actor) VisibleScope() Scope {
	switch a.Role {
	case models.RoleAdmin, models.RoleAccountant, models.RoleSupervisor:
		return ScopeAll
	case models.RoleEmployee:
		if a.EmployeeID == nil {
			return ScopeNone
		}
		return ScopeAssigned
	default:
		return ScopeNone
	}
}

// CanViewEmployee reports whether the actor may read the given employee's
// insights. Employees may only view themselves.
func (a Actor) CanViewEmployee(employeeID uint64) bool {
	switch a.VisibleScope() {
	case ScopeAll:
		return true
	case ScopeAssigned:
		return *a.EmployeeID == employeeID
	default:
		return false
	}
}

// CanViewProject reports whether the actor may read the given project.
// Employees need an assignment; the project's assignments must be preloaded.
func (a Actor) CanViewProject(project *models.Project) bool {
	switch a.VisibleScope() {
	case ScopeAll:
		return true
	case ScopeAssigned:
		for _, assignment := range project.Assignments {
			if assignment.EmployeeID == *a.EmployeeID {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// CanViewTask reports whether the actor may read the given task. Employees
// see tasks they own or have logged against; the task's logs must be
// preloaded.
func (a Actor) CanViewTask(task *models.Task) bool {
	switch a.VisibleScope() {
	case ScopeAll:
		return true
	case ScopeAssigned:
		if task.OwnerID != nil && *task.OwnerID == *a.EmployeeID {
			return true
		}
		for _, log := range task.Logs {
			if log.EmployeeID == *a.EmployeeID {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// CanManage reports whether the actor may create projects and tasks and
// assign employees.
func (a Actor) CanManage() bool {
	return a.Role == models.RoleAdmin || a.Role == models.RoleSupervisor
}

// CanRecordFinance reports whether the actor may add revenue and expense
// records.
func (a Actor) CanRecordFinance() bool {
	return a.Role == models.RoleAdmin || a.Role == models.RoleAccountant
}

// IsAdmin reports whether the actor holds the admin role.
func (a Actor) IsAdmin() bool {
	return a.Role == models.RoleAdmin
}
