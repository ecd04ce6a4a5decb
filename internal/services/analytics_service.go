package services

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"gorm.io/gorm"

	"github.com/tawqimpact/fundraising-api/internal/access"
	"github.com/tawqimpact/fundraising-api/internal/models"
	"github.com/tawqimpact/fundraising-api/internal/repository"
)

var (
	ErrProjectNotFound  = errors.New("project not found")
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrAccessDenied     = errors.New("access denied")
)

const (
	// defaultMonthlyTarget applies when an employee has no target set.
	defaultMonthlyTarget = 10000.0
	// lowRevenueShare is the fraction of the monthly target below which
	// recent revenue triggers the focus recommendation.
	lowRevenueShare = 0.25
	// recentLogWindow is how many of the latest logs feed recommendations.
	recentLogWindow = 5
)

// Recommendation copy is presentation content; deployments can swap these
// without touching the rule logic.
var (
	recFocusHighValue   = "Focus on high-value donor contacts this week to lift your average revenue."
	recEscalateBlockers = "Work through the following blockers with your supervisor: %s"
	recBlockerSeparator = "; "
	recKeepPace         = "Keep up the current pace; document success stories and share them with the team."
)

// SnapshotMetrics holds the derived financial figures of a project.
type SnapshotMetrics struct {
	Revenue        float64 `json:"revenue"`
	Expenses       float64 `json:"expenses"`
	Profit         float64 `json:"profit"`
	CompletionRate float64 `json:"completion_rate"`
}

// ProjectSnapshot is a point-in-time financial summary of a project.
type ProjectSnapshot struct {
	Project *models.Project
	Metrics SnapshotMetrics
	Team    []string
}

// EmployeeInsights bundles an employee's weekly revenue buckets and derived
// guidance.
type EmployeeInsights struct {
	Employee        *models.EmployeeProfile
	WeeklyRevenue   map[string]float64
	AverageRevenue  float64
	Recommendations []string
}

// AnalyticsService computes leaderboards, project snapshots and employee
// insights. It only reads; every call recomputes from current state.
type AnalyticsService struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewAnalyticsService creates a new AnalyticsService
func NewAnalyticsService(analyticsRepo repository.AnalyticsRepository) *AnalyticsService {
	return &AnalyticsService{
		analyticsRepo: analyticsRepo,
	}
}

// Leaderboard ranks all active employees by (points, revenue, completed
// tasks), all descending. An employee actor without a profile gets an empty
// board; employees whose user record cannot be resolved are skipped.
func (s *AnalyticsService) Leaderboard(actor access.Actor) ([]models.LeaderboardEntry, error) {
	if actor.VisibleScope() == access.ScopeNone {
		return []models.LeaderboardEntry{}, nil
	}

	employees, err := s.analyticsRepo.ListActiveEmployees()
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	entries := make([]models.LeaderboardEntry, 0, len(employees))
	for _, employee := range employees {
		if employee.User.ID == 0 {
			continue
		}

		var totalRevenue float64
		completedTasks := 0
		for _, log := range employee.TaskLogs {
			if log.Revenue != nil {
				totalRevenue += *log.Revenue
			}
			// Counts logs, not distinct tasks: several logs against one
			// completed task each count.
			if log.Task.ID != 0 && log.Task.Status == models.TaskStatusCompleted {
				completedTasks++
			}
		}

		totalPoints := 0
		for _, incentive := range employee.Incentives {
			totalPoints += incentive.Points
		}

		entries = append(entries, models.LeaderboardEntry{
			EmployeeID:     employee.ID,
			EmployeeName:   employee.User.FullName,
			TotalPoints:    totalPoints,
			TotalRevenue:   totalRevenue,
			CompletedTasks: completedTasks,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.TotalPoints != b.TotalPoints {
			return a.TotalPoints > b.TotalPoints
		}
		if a.TotalRevenue != b.TotalRevenue {
			return a.TotalRevenue > b.TotalRevenue
		}
		return a.CompletedTasks > b.CompletedTasks
	})

	return entries, nil
}

// ProjectSnapshotFor computes revenue, expenses, profit, completion rate and
// the team roster for a project.
func (s *AnalyticsService) ProjectSnapshotFor(projectID uint64) (*ProjectSnapshot, error) {
	project, err := s.analyticsRepo.FindProjectWithFinancials(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	var revenue, expenses float64
	for _, record := range project.RevenueRecords {
		revenue += record.Amount
	}
	for _, record := range project.ExpenseRecords {
		expenses += record.Amount
	}

	team := make([]string, 0, len(project.Assignments))
	for _, assignment := range project.Assignments {
		// Broken employee or user links are silently skipped.
		if assignment.Employee.ID == 0 || assignment.Employee.User.ID == 0 {
			continue
		}
		team = append(team, assignment.Employee.User.FullName)
	}

	return &ProjectSnapshot{
		Project: project,
		Metrics: SnapshotMetrics{
			Revenue:        revenue,
			Expenses:       expenses,
			Profit:         revenue - expenses,
			CompletionRate: completionRate(project.Tasks),
		},
		Team: team,
	}, nil
}

// EmployeeInsightsFor buckets an employee's log revenue by ISO week and
// derives recommendations from their recent activity. Employee actors may
// only view their own insights.
func (s *AnalyticsService) EmployeeInsightsFor(employeeID uint64, actor access.Actor) (*EmployeeInsights, error) {
	employee, err := s.analyticsRepo.FindEmployeeWithActivity(employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to find employee: %w", err)
	}

	if !actor.CanViewEmployee(employeeID) {
		return nil, ErrAccessDenied
	}

	weekly := make(map[string]float64)
	for _, log := range employee.TaskLogs {
		isoYear, isoWeek := log.CreatedAt.ISOWeek()
		key := fmt.Sprintf("%d-W%02d", isoYear, isoWeek)
		amount := 0.0
		if log.Revenue != nil {
			amount = *log.Revenue
		}
		weekly[key] += amount
	}

	var average float64
	if len(weekly) > 0 {
		var sum float64
		for _, v := range weekly {
			sum += v
		}
		average = sum / float64(len(weekly))
	}

	return &EmployeeInsights{
		Employee:        employee,
		WeeklyRevenue:   weekly,
		AverageRevenue:  average,
		Recommendations: recommendations(employee),
	}, nil
}

// completionRate returns the completed share of tasks as a percentage
// rounded to two decimals. A project with no tasks rates 0.
func completionRate(tasks []models.Task) float64 {
	if len(tasks) == 0 {
		return 0.0
	}
	completed := 0
	for _, task := range tasks {
		if task.Status == models.TaskStatusCompleted {
			completed++
		}
	}
	rate := float64(completed) / float64(len(tasks)) * 100
	return math.Round(rate*100) / 100
}

// recommendations evaluates the guidance rules over the employee's five
// most recent logs. The rules are independent; both can fire. The default
// fires only when neither did.
func recommendations(employee *models.EmployeeProfile) []string {
	logs := employee.TaskLogs
	if len(logs) > recentLogWindow {
		logs = logs[len(logs)-recentLogWindow:]
	}

	var recentRevenue float64
	var blockers []string
	for _, log := range logs {
		if log.Revenue != nil {
			recentRevenue += *log.Revenue
		}
		if log.Blockers != nil && *log.Blockers != "" {
			blockers = append(blockers, *log.Blockers)
		}
	}

	target := defaultMonthlyTarget
	if employee.MonthlyTarget != nil {
		target = *employee.MonthlyTarget
	}

	var recs []string
	if recentRevenue < target*lowRevenueShare {
		recs = append(recs, recFocusHighValue)
	}
	if len(blockers) > 0 {
		recs = append(recs, fmt.Sprintf(recEscalateBlockers, strings.Join(blockers, recBlockerSeparator)))
	}
	if len(recs) == 0 {
		recs = append(recs, recKeepPace)
	}
	return recs
}
