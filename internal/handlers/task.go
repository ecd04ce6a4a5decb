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
	"github.com/tawqimpact/fundraising-api/internal/models"
	"github.com/tawqimpact/fundraising-api/internal/services"
)

// TaskHandler coordinates task HTTP handlers.
type TaskHandler struct {
	taskService *services.TaskService
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// CreateTask creates a new task.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	type CreateTaskRequest struct {
		Title         string   `json:"title" binding:"required"`
		Description   *string  `json:"description"`
		Priority      int      `json:"priority"`
		Status        string   `json:"status"`
		TargetRevenue *float64 `json:"target_revenue"`
		ProjectID     *uint64  `json:"project_id"`
		OwnerID       *uint64  `json:"owner_id"`
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.taskService.CreateTask(services.CreateTaskInput{
		Title:         req.Title,
		Description:   req.Description,
		Priority:      req.Priority,
		Status:        models.TaskStatus(req.Status),
		TargetRevenue: req.TargetRevenue,
		ProjectID:     req.ProjectID,
		OwnerID:       req.OwnerID,
	}, actor)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAccessDenied):
			apierrors.Forbidden(c, "Manager access required")
		case errors.Is(err, services.ErrTitleRequired):
			apierrors.BadRequest(c, "Title is required")
		case errors.Is(err, services.ErrInvalidStatus):
			apierrors.BadRequest(c, "Invalid task status")
		default:
			apierrors.InternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaskDTO(*task))
}

// ListTasks returns the tasks visible to the actor.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	var projectID *uint64
	if raw := c.Query("project_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			apierrors.BadRequest(c, "Invalid project ID")
			return
		}
		projectID = &id
	}

	tasks, err := h.taskService.ListTasks(projectID, actor)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTOs(tasks))
}

// GetTask returns a single task.
func (h *TaskHandler) GetTask(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	taskID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid task ID")
		return
	}

	task, err := h.taskService.GetTask(taskID, actor)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// AssignOwner hands a task to an employee.
func (h *TaskHandler) AssignOwner(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	taskID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid task ID")
		return
	}

	type AssignRequest struct {
		EmployeeID uint64 `json:"employee_id" binding:"required"`
	}

	var req AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.taskService.AssignOwner(taskID, req.EmployeeID, actor)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// UpdateStatus moves a task to a new status.
func (h *TaskHandler) UpdateStatus(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	taskID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid task ID")
		return
	}

	type StatusRequest struct {
		Status string `json:"status" binding:"required"`
	}

	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.taskService.UpdateStatus(taskID, models.TaskStatus(req.Status), actor)
	if err != nil {
		if errors.Is(err, services.ErrInvalidStatus) {
			apierrors.BadRequest(c, "Invalid task status")
			return
		}
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// AddLog records activity against a task.
func (h *TaskHandler) AddLog(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	taskID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid task ID")
		return
	}

	type LogRequest struct {
		Note       *string  `json:"note"`
		Revenue    *float64 `json:"revenue"`
		Blockers   *string  `json:"blockers"`
		Needs      *string  `json:"needs"`
		EmployeeID *uint64  `json:"employee_id"`
	}

	var req LogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	log, err := h.taskService.AddLog(taskID, services.AddLogInput{
		Note:       req.Note,
		Revenue:    req.Revenue,
		Blockers:   req.Blockers,
		Needs:      req.Needs,
		EmployeeID: req.EmployeeID,
	}, actor)
	if err != nil {
		if errors.Is(err, services.ErrEmployeeRequired) {
			apierrors.BadRequest(c, "Employee is required")
			return
		}
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaskLogDTO(*log))
}

// AwardIncentive grants points to an employee.
func (h *TaskHandler) AwardIncentive(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	type IncentiveRequest struct {
		EmployeeID uint64     `json:"employee_id" binding:"required"`
		Points     int        `json:"points" binding:"required"`
		Reason     *string    `json:"reason"`
		GrantedAt  *time.Time `json:"granted_at"`
	}

	var req IncentiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	incentive, err := h.taskService.AwardIncentive(services.AwardIncentiveInput{
		EmployeeID: req.EmployeeID,
		Points:     req.Points,
		Reason:     req.Reason,
		GrantedAt:  req.GrantedAt,
	}, actor)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToIncentiveDTO(*incentive))
}

func respondTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTaskNotFound):
		apierrors.NotFound(c, "Task not found")
	case errors.Is(err, services.ErrEmployeeNotFound):
		apierrors.NotFound(c, "Employee not found")
	case errors.Is(err, services.ErrAccessDenied):
		apierrors.Forbidden(c, "")
	default:
		apierrors.InternalError(c, "")
	}
}
