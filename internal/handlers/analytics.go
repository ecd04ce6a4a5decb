package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tawqimpact/fundraising-api/internal/dto"
	apierrors "github.com/tawqimpact/fundraising-api/internal/errors"
	"github.com/tawqimpact/fundraising-api/internal/middleware"
	"github.com/tawqimpact/fundraising-api/internal/services"
)

// AnalyticsHandler exposes the aggregation endpoints.
type AnalyticsHandler struct {
	analyticsService *services.AnalyticsService
}

// NewAnalyticsHandler creates a new AnalyticsHandler
func NewAnalyticsHandler(analyticsService *services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
	}
}

// GetLeaderboard returns the ranked list of active employees.
func (h *AnalyticsHandler) GetLeaderboard(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	entries, err := h.analyticsService.Leaderboard(actor)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, entries)
}

// GetProjectSnapshot returns a project's financial snapshot.
func (h *AnalyticsHandler) GetProjectSnapshot(c *gin.Context) {
	if _, ok := middleware.CurrentActor(c); !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	projectID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid project ID")
		return
	}

	snapshot, err := h.analyticsService.ProjectSnapshotFor(projectID)
	if err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			apierrors.NotFound(c, "Project not found")
			return
		}
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.ToSnapshotResponse(snapshot))
}

// GetEmployeeInsights returns an employee's weekly revenue buckets and
// recommendations.
func (h *AnalyticsHandler) GetEmployeeInsights(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	employeeID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid employee ID")
		return
	}

	insights, err := h.analyticsService.EmployeeInsightsFor(employeeID, actor)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmployeeNotFound):
			apierrors.NotFound(c, "Employee not found")
		case errors.Is(err, services.ErrAccessDenied):
			apierrors.Forbidden(c, "")
		default:
			apierrors.InternalError(c, "")
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToInsightsResponse(insights))
}
