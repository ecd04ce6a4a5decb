package dto

import (
	"github.com/tawqimpact/fundraising-api/internal/services"
)

// SnapshotResponse represents a project financial snapshot in API responses
type SnapshotResponse struct {
	Project ProjectDTO               `json:"project"`
	Metrics services.SnapshotMetrics `json:"metrics"`
	Team    []string                 `json:"team"`
}

// InsightsResponse represents employee insights in API responses
type InsightsResponse struct {
	Employee        EmployeeDTO        `json:"employee"`
	WeeklyRevenue   map[string]float64 `json:"weekly_revenue"`
	AverageRevenue  float64            `json:"avg_revenue"`
	Recommendations []string           `json:"recommendations"`
}

// ToSnapshotResponse converts a computed snapshot to its API shape
func ToSnapshotResponse(snapshot *services.ProjectSnapshot) SnapshotResponse {
	return SnapshotResponse{
		Project: ToProjectDTO(*snapshot.Project),
		Metrics: snapshot.Metrics,
		Team:    snapshot.Team,
	}
}

// ToInsightsResponse converts computed insights to their API shape
func ToInsightsResponse(insights *services.EmployeeInsights) InsightsResponse {
	return InsightsResponse{
		Employee:        ToEmployeeDTO(*insights.Employee),
		WeeklyRevenue:   insights.WeeklyRevenue,
		AverageRevenue:  insights.AverageRevenue,
		Recommendations: insights.Recommendations,
	}
}
