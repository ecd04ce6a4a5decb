package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/tawqimpact/fundraising-api/internal/auth"
	"github.com/tawqimpact/fundraising-api/internal/middleware"
	"github.com/tawqimpact/fundraising-api/internal/models"
	"github.com/tawqimpact/fundraising-api/internal/repository"
	"github.com/tawqimpact/fundraising-api/internal/services"
)

// AnalyticsHandlerTestSuite defines the test suite for analytics endpoints
type AnalyticsHandlerTestSuite struct {
	suite.Suite
	db     *gorm.DB
	tokens *auth.TokenIssuer
	router *gin.Engine
}

// SetupTest runs before each test
func (suite *AnalyticsHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

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
		&models.RevenueRecord{},
		&models.ExpenseRecord{},
		&models.Incentive{},
	)
	suite.Require().NoError(err)

	suite.tokens = auth.NewTokenIssuer("test-secret", "fundraising-api-test", 60)

	userRepo := repository.NewUserRepository(suite.db)
	analyticsService := services.NewAnalyticsService(repository.NewAnalyticsRepository(suite.db))
	handler := NewAnalyticsHandler(analyticsService)

	suite.router = gin.New()
	analytics := suite.router.Group("/api/analytics")
	analytics.Use(middleware.RequireAuth(suite.tokens, userRepo))
	{
		analytics.GET("/leaderboard", handler.GetLeaderboard)
		analytics.GET("/projects/:id/snapshot", handler.GetProjectSnapshot)
		analytics.GET("/employees/:id/insights", handler.GetEmployeeInsights)
	}
}

// TearDownTest runs after each test
func (suite *AnalyticsHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *AnalyticsHandlerTestSuite) createUser(name string, role models.Role) *models.User {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	suite.Require().NoError(err)

	user := &models.User{
		Email:        name + "@example.com",
		FullName:     name,
		Role:         role,
		IsActive:     true,
		PasswordHash: string(hash),
	}
	suite.Require().NoError(suite.db.Create(user).Error)
	return user
}

func (suite *AnalyticsHandlerTestSuite) createEmployee(name string) (*models.User, *models.EmployeeProfile) {
	user := suite.createUser(name, models.RoleEmployee)
	profile := &models.EmployeeProfile{UserID: user.ID}
	suite.Require().NoError(suite.db.Create(profile).Error)
	return user, profile
}

func (suite *AnalyticsHandlerTestSuite) tokenFor(user *models.User) string {
	token, err := suite.tokens.Issue(user)
	suite.Require().NoError(err)
	return token
}

func (suite *AnalyticsHandlerTestSuite) get(path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// TestLeaderboard_RequiresAuth rejects requests without a bearer token
func (suite *AnalyticsHandlerTestSuite) TestLeaderboard_RequiresAuth() {
	w := suite.get("/api/analytics/leaderboard", "")
	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

// TestLeaderboard_RejectsGarbageToken rejects unparseable tokens
func (suite *AnalyticsHandlerTestSuite) TestLeaderboard_RejectsGarbageToken() {
	w := suite.get("/api/analytics/leaderboard", "not-a-token")
	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

// TestLeaderboard_ReturnsRankedEntries serves the ranked board to admins
func (suite *AnalyticsHandlerTestSuite) TestLeaderboard_ReturnsRankedEntries() {
	admin := suite.createUser("admin", models.RoleAdmin)
	_, strong := suite.createEmployee("strong")
	_, weak := suite.createEmployee("weak")

	suite.Require().NoError(suite.db.Create(&models.Incentive{EmployeeID: strong.ID, Points: 20, GrantedAt: time.Now()}).Error)
	suite.Require().NoError(suite.db.Create(&models.Incentive{EmployeeID: weak.ID, Points: 5, GrantedAt: time.Now()}).Error)

	w := suite.get("/api/analytics/leaderboard", suite.tokenFor(admin))
	suite.Require().Equal(http.StatusOK, w.Code)

	var entries []models.LeaderboardEntry
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &entries))
	suite.Require().Len(entries, 2)
	assert.Equal(suite.T(), "strong", entries[0].EmployeeName)
	assert.Equal(suite.T(), 20, entries[0].TotalPoints)
}

// TestLeaderboard_EmptyForProfilelessEmployee returns an empty array
func (suite *AnalyticsHandlerTestSuite) TestLeaderboard_EmptyForProfilelessEmployee() {
	bare := suite.createUser("bare", models.RoleEmployee)
	suite.createEmployee("someone")

	w := suite.get("/api/analytics/leaderboard", suite.tokenFor(bare))
	suite.Require().Equal(http.StatusOK, w.Code)

	var entries []models.LeaderboardEntry
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &entries))
	assert.Empty(suite.T(), entries)
}

// TestProjectSnapshot_ReturnsMetrics serves revenue, expenses and completion
func (suite *AnalyticsHandlerTestSuite) TestProjectSnapshot_ReturnsMetrics() {
	admin := suite.createUser("admin", models.RoleAdmin)

	project := &models.Project{Name: "Gala"}
	suite.Require().NoError(suite.db.Create(project).Error)
	suite.Require().NoError(suite.db.Create(&models.RevenueRecord{ProjectID: project.ID, Amount: 800, RecordedAt: time.Now()}).Error)
	suite.Require().NoError(suite.db.Create(&models.ExpenseRecord{ProjectID: project.ID, Amount: 300, RecordedAt: time.Now()}).Error)
	suite.Require().NoError(suite.db.Create(&models.Task{Title: "Done", Status: models.TaskStatusCompleted, ProjectID: &project.ID}).Error)
	suite.Require().NoError(suite.db.Create(&models.Task{Title: "Open", Status: models.TaskStatusPending, ProjectID: &project.ID}).Error)

	w := suite.get("/api/analytics/projects/"+strconv.FormatUint(project.ID, 10)+"/snapshot", suite.tokenFor(admin))
	suite.Require().Equal(http.StatusOK, w.Code)

	var body struct {
		Metrics struct {
			Revenue        float64 `json:"revenue"`
			Expenses       float64 `json:"expenses"`
			Profit         float64 `json:"profit"`
			CompletionRate float64 `json:"completion_rate"`
		} `json:"metrics"`
		Team []string `json:"team"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(suite.T(), 800.0, body.Metrics.Revenue)
	assert.Equal(suite.T(), 300.0, body.Metrics.Expenses)
	assert.Equal(suite.T(), 500.0, body.Metrics.Profit)
	assert.Equal(suite.T(), 50.0, body.Metrics.CompletionRate)
}

// TestProjectSnapshot_NotFound maps a missing project to 404
func (suite *AnalyticsHandlerTestSuite) TestProjectSnapshot_NotFound() {
	admin := suite.createUser("admin", models.RoleAdmin)

	w := suite.get("/api/analytics/projects/999/snapshot", suite.tokenFor(admin))
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestProjectSnapshot_InvalidID maps a malformed id to 400
func (suite *AnalyticsHandlerTestSuite) TestProjectSnapshot_InvalidID() {
	admin := suite.createUser("admin", models.RoleAdmin)

	w := suite.get("/api/analytics/projects/abc/snapshot", suite.tokenFor(admin))
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestEmployeeInsights_OwnData serves an employee their own insights
func (suite *AnalyticsHandlerTestSuite) TestEmployeeInsights_OwnData() {
	user, profile := suite.createEmployee("worker")

	task := &models.Task{Title: "Calls", Status: models.TaskStatusPending}
	suite.Require().NoError(suite.db.Create(task).Error)
	revenue := 5000.0
	suite.Require().NoError(suite.db.Create(&models.TaskLog{
		TaskID:     task.ID,
		EmployeeID: profile.ID,
		Revenue:    &revenue,
	}).Error)

	w := suite.get("/api/analytics/employees/"+strconv.FormatUint(profile.ID, 10)+"/insights", suite.tokenFor(user))
	suite.Require().Equal(http.StatusOK, w.Code)

	var body struct {
		WeeklyRevenue   map[string]float64 `json:"weekly_revenue"`
		AverageRevenue  float64            `json:"avg_revenue"`
		Recommendations []string           `json:"recommendations"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(suite.T(), body.WeeklyRevenue, 1)
	assert.Equal(suite.T(), 5000.0, body.AverageRevenue)
	assert.NotEmpty(suite.T(), body.Recommendations)
}

// TestEmployeeInsights_OtherEmployeeForbidden maps cross-reads to 403
func (suite *AnalyticsHandlerTestSuite) TestEmployeeInsights_OtherEmployeeForbidden() {
	user, _ := suite.createEmployee("worker")
	_, other := suite.createEmployee("colleague")

	w := suite.get("/api/analytics/employees/"+strconv.FormatUint(other.ID, 10)+"/insights", suite.tokenFor(user))
	assert.Equal(suite.T(), http.StatusForbidden, w.Code)
}

// TestEmployeeInsights_NotFound maps a missing employee to 404
func (suite *AnalyticsHandlerTestSuite) TestEmployeeInsights_NotFound() {
	admin := suite.createUser("admin", models.RoleAdmin)

	w := suite.get("/api/analytics/employees/999/insights", suite.tokenFor(admin))
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestInactiveUserRejected refuses tokens of deactivated accounts
func (suite *AnalyticsHandlerTestSuite) TestInactiveUserRejected() {
	admin := suite.createUser("admin", models.RoleAdmin)
	token := suite.tokenFor(admin)

	suite.Require().NoError(suite.db.Model(&models.User{}).Where("id = ?", admin.ID).Update("is_active", false).Error)

	w := suite.get("/api/analytics/leaderboard", token)
	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

// TestAnalyticsHandlerTestSuite runs the test suite
func TestAnalyticsHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AnalyticsHandlerTestSuite))
}
