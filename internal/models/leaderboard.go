package models

// LeaderboardEntry is a derived projection, computed fresh per request.
// It is never persisted.
type LeaderboardEntry struct {
	EmployeeID     uint64  `json:"employee_id"`
	EmployeeName   string  `json:"employee_name"`
	TotalPoints    int     `json:"total_points"`
	TotalRevenue   float64 `json:"total_revenue"`
	CompletedTasks int     `json:"completed_tasks"`
}
