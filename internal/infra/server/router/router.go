// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/habit-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine              *gin.Engine
	healthController    *controller.HealthController
	authController      *controller.AuthController
	habitController     *controller.HabitController
	activityController  *controller.ActivityController
	goalController      *controller.GoalController
	dashboardController *controller.DashboardController
	resourceController  *controller.ResourceController
	loginRateLimiter    *middleware.RateLimiter
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	habitController *controller.HabitController,
	activityController *controller.ActivityController,
	goalController *controller.GoalController,
	dashboardController *controller.DashboardController,
	resourceController *controller.ResourceController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:    healthController,
		authController:      authController,
		habitController:     habitController,
		activityController:  activityController,
		goalController:      goalController,
		dashboardController: dashboardController,
		resourceController:  resourceController,
		loginRateLimiter:    loginRateLimiter,
		authMiddleware:      authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes (only setup if auth controller is available)
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.RefreshToken)
				auth.POST("/logout", r.authController.Logout)
			}
		}

		// User routes (require authentication)
		if r.authController != nil && r.authMiddleware != nil {
			users := v1.Group("/users")
			users.Use(r.authMiddleware.Authenticate())
			{
				users.PATCH("/me", r.authController.UpdatePreferences)
			}
		}

		// Habit routes (require authentication)
		if r.habitController != nil && r.authMiddleware != nil {
			habits := v1.Group("/habits")
			habits.Use(r.authMiddleware.Authenticate())
			{
				habits.GET("", r.habitController.List)
				habits.POST("", r.habitController.Create)
				habits.PATCH("/:id", r.habitController.Update)
				habits.DELETE("/:id", r.habitController.Delete)
			}
		}

		// Activity ledger routes (require authentication)
		if r.activityController != nil && r.authMiddleware != nil {
			activities := v1.Group("/activities")
			activities.Use(r.authMiddleware.Authenticate())
			{
				activities.GET("", r.activityController.List)
				activities.POST("", r.activityController.Log)
				activities.GET("/balance", r.activityController.Balance)
				activities.DELETE("/:id", r.activityController.Delete)
			}
		}

		// Goal routes (require authentication)
		if r.goalController != nil && r.authMiddleware != nil {
			goals := v1.Group("/goals")
			goals.Use(r.authMiddleware.Authenticate())
			{
				goals.GET("", r.goalController.List)
				goals.POST("", r.goalController.Create)
				goals.PUT("/monthly", r.goalController.SetMonthly)
				if r.dashboardController != nil {
					goals.GET("/progress", r.dashboardController.ListGoalsProgress)
					goals.GET("/:id/progress", r.dashboardController.GetGoalProgress)
				}
				goals.GET("/:id", r.goalController.Get)
				goals.PATCH("/:id", r.goalController.Update)
				goals.DELETE("/:id", r.goalController.Delete)
			}
		}

		// Calendar routes (require authentication)
		if r.dashboardController != nil && r.authMiddleware != nil {
			calendar := v1.Group("/calendar")
			calendar.Use(r.authMiddleware.Authenticate())
			{
				calendar.GET("", r.dashboardController.GetCalendarMonth)
			}
		}

		// Resource routes (require authentication)
		if r.resourceController != nil && r.authMiddleware != nil {
			resources := v1.Group("/resources")
			resources.Use(r.authMiddleware.Authenticate())
			{
				resources.GET("", r.resourceController.List)
				resources.POST("", r.resourceController.Create)
				resources.PATCH("/:id", r.resourceController.Update)
				resources.DELETE("/:id", r.resourceController.Delete)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
