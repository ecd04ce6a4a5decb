package main

import (
	"github.com/gin-gonic/gin"

	"github.com/tawqimpact/fundraising-api/internal/auth"
	"github.com/tawqimpact/fundraising-api/internal/config"
	"github.com/tawqimpact/fundraising-api/internal/database"
	"github.com/tawqimpact/fundraising-api/internal/handlers"
	"github.com/tawqimpact/fundraising-api/internal/logger"
	"github.com/tawqimpact/fundraising-api/internal/middleware"
	"github.com/tawqimpact/fundraising-api/internal/repository"
	"github.com/tawqimpact/fundraising-api/internal/services"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.AppEnv, cfg.LogLevel)

	gin.SetMode(cfg.GinMode)

	if err := database.Connect(cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	if err := database.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	db := database.GetDB()
	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTExpiryMins)

	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	authService := services.NewAuthService(userRepo, tokens)
	userService := services.NewUserService(userRepo)
	projectService := services.NewProjectService(projectRepo)
	taskService := services.NewTaskService(taskRepo)
	analyticsService := services.NewAnalyticsService(analyticsRepo)

	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	projectHandler := handlers.NewProjectHandler(projectService)
	taskHandler := handlers.NewTaskHandler(taskService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Fundraising API is running",
		})
	})

	requireAuth := middleware.RequireAuth(tokens, userRepo)

	api := r.Group("/api")
	{
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/register", authHandler.Register)
			authRoutes.POST("/token", authHandler.Token)
			authRoutes.GET("/me", requireAuth, authHandler.GetCurrentUser)
		}

		users := api.Group("/users")
		users.Use(requireAuth)
		{
			users.GET("", userHandler.ListUsers)
			users.PATCH("/:id", userHandler.UpdateUser)
		}

		projects := api.Group("/projects")
		projects.Use(requireAuth)
		{
			projects.POST("", projectHandler.CreateProject)
			projects.GET("", projectHandler.ListProjects)
			projects.GET("/:id", projectHandler.GetProject)
			projects.POST("/:id/assignments", projectHandler.AssignEmployee)
			projects.POST("/:id/revenues", projectHandler.AddRevenueRecord)
			projects.POST("/:id/expenses", projectHandler.AddExpenseRecord)
		}

		tasks := api.Group("/tasks")
		tasks.Use(requireAuth)
		{
			tasks.POST("", taskHandler.CreateTask)
			tasks.GET("", taskHandler.ListTasks)
			tasks.GET("/:id", taskHandler.GetTask)
			tasks.POST("/:id/assign", taskHandler.AssignOwner)
			tasks.PATCH("/:id/status", taskHandler.UpdateStatus)
			tasks.POST("/:id/logs", taskHandler.AddLog)
			tasks.POST("/incentives", taskHandler.AwardIncentive)
		}

		analytics := api.Group("/analytics")
		analytics.Use(requireAuth)
		{
			analytics.GET("/leaderboard", analyticsHandler.GetLeaderboard)
			analytics.GET("/projects/:id/snapshot", analyticsHandler.GetProjectSnapshot)
			analytics.GET("/employees/:id/insights", analyticsHandler.GetEmployeeInsights)
		}
	}

	log.Info().Str("port", cfg.HTTPPort).Msg("server starting")
	if err := r.Run(":" + cfg.HTTPPort); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
