package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tawqimpact/fundraising-api/internal/dto"
	apierrors "github.com/tawqimpact/fundraising-api/internal/errors"
	"github.com/tawqimpact/fundraising-api/internal/middleware"
	"github.com/tawqimpact/fundraising-api/internal/services"
)

// ProjectHandler coordinates project HTTP handlers.
type ProjectHandler struct {
	projectService *services.ProjectService
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

// CreateProject creates a new project.
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	type CreateProjectRequest struct {
		Name        string   `json:"name" binding:"required"`
		Description *string  `json:"description"`
		GoalAmount  *float64 `json:"goal_amount"`
	}

	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	project, err := h.projectService.CreateProject(services.CreateProjectInput{
		Name:        req.Name,
		Description: req.Description,
		GoalAmount:  req.GoalAmount,
	}, actor)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAccessDenied):
			apierrors.Forbidden(c, "Manager access required")
		case errors.Is(err, services.ErrProjectNameRequired):
			apierrors.BadRequest(c, "Project name is required")
		default:
			apierrors.InternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToProjectDTO(*project))
}

// ListProjects returns the projects visible to the actor.
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	projects, err := h.projectService.ListProjects(actor)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectDTOs(projects))
}

// GetProject returns a single project.
func (h *ProjectHandler) GetProject(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	projectID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid project ID")
		return
	}

	project, err := h.projectService.GetProject(projectID, actor)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProjectNotFound):
			apierrors.NotFound(c, "Project not found")
		case errors.Is(err, services.ErrAccessDenied):
			apierrors.Forbidden(c, "")
		default:
			apierrors.InternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectDTO(*project))
}

// AssignEmployee links an employee to a project.
func (h *ProjectHandler) AssignEmployee(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	projectID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid project ID")
		return
	}

	type AssignRequest struct {
		EmployeeID      uint64  `json:"employee_id" binding:"required"`
		RoleDescription *string `json:"role_description"`
	}

	var req AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	assignment, err := h.projectService.AssignEmployee(projectID, services.AssignEmployeeInput{
		EmployeeID:      req.EmployeeID,
		RoleDescription: req.RoleDescription,
	}, actor)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAccessDenied):
			apierrors.Forbidden(c, "Manager access required")
		case errors.Is(err, services.ErrProjectNotFound):
			apierrors.NotFound(c, "Project not found")
		case errors.Is(err, services.ErrEmployeeNotFound):
			apierrors.NotFound(c, "Employee not found")
		case errors.Is(err, services.ErrAlreadyAssigned):
			apierrors.Conflict(c, "Employee is already assigned to this project")
		default:
			apierrors.InternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToAssignmentDTO(*assignment))
}

type financeRequest struct {
	Amount      float64    `json:"amount" binding:"required"`
	Description *string    `json:"description"`
	RecordedAt  *time.Time `json:"recorded_at"`
}

// AddRevenueRecord records revenue against a project.
func (h *ProjectHandler) AddRevenueRecord(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	projectID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid project ID")
		return
	}

	var req financeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	record, err := h.projectService.AddRevenueRecord(projectID, services.RecordFinanceInput{
		Amount:      req.Amount,
		Description: req.Description,
		RecordedAt:  req.RecordedAt,
	}, actor)
	if err != nil {
		respondFinanceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToRevenueRecordDTO(*record))
}

// AddExpenseRecord records an expense against a project.
func (h *ProjectHandler) AddExpenseRecord(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	projectID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid project ID")
		return
	}

	var req financeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	record, err := h.projectService.AddExpenseRecord(projectID, services.RecordFinanceInput{
		Amount:      req.Amount,
		Description: req.Description,
		RecordedAt:  req.RecordedAt,
	}, actor)
	if err != nil {
		respondFinanceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToExpenseRecordDTO(*record))
}

func respondFinanceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrAccessDenied):
		apierrors.Forbidden(c, "Accountant access required")
	case errors.Is(err, services.ErrProjectNotFound):
		apierrors.NotFound(c, "Project not found")
	default:
		apierrors.InternalError(c, "")
	}
}
