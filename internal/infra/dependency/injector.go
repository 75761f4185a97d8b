// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/habit-tracker/backend/config"
	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/application/ledger"
	"github.com/habit-tracker/backend/internal/application/usecase/activity"
	"github.com/habit-tracker/backend/internal/application/usecase/auth"
	"github.com/habit-tracker/backend/internal/application/usecase/dashboard"
	"github.com/habit-tracker/backend/internal/application/usecase/goal"
	"github.com/habit-tracker/backend/internal/application/usecase/habit"
	"github.com/habit-tracker/backend/internal/application/usecase/resource"
	"github.com/habit-tracker/backend/internal/infra/server/router"
	"github.com/habit-tracker/backend/internal/integration/adapters"
	"github.com/habit-tracker/backend/internal/integration/email"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/middleware"
	"github.com/habit-tracker/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Ledger *ledger.Service
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
// redisClient may be nil; the ledger then runs without a balance cache.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	habitRepo := persistence.NewHabitRepository(db)
	activityRepo := persistence.NewActivityRepository(db)
	balanceRepo := persistence.NewBalanceRepository(db)
	goalRepo := persistence.NewGoalRepository(db)
	monthlyGoalRepo := persistence.NewMonthlyGoalRepository(db)
	resourceRepo := persistence.NewResourceRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)

	var balanceCache adapter.BalanceCache
	if redisClient != nil {
		balanceCache = adapters.NewRedisBalanceCache(redisClient)
	}

	var goalNotifier adapter.GoalNotifier
	if cfg.Email.ResendAPIKey != "" {
		sender := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
		goalNotifier = email.NewGoalNotifier(sender)
	}

	// Create the ledger service; the default failure policy logs and keeps
	// the optimistic state
	ledgerService := ledger.NewService(activityRepo, balanceRepo, habitRepo, balanceCache, nil)

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
	updatePreferencesUseCase := auth.NewUpdatePreferencesUseCase(userRepo)

	// Create habit use cases
	listHabitsUseCase := habit.NewListHabitsUseCase(habitRepo)
	createHabitUseCase := habit.NewCreateHabitUseCase(habitRepo)
	updateHabitUseCase := habit.NewUpdateHabitUseCase(habitRepo)
	deleteHabitUseCase := habit.NewDeleteHabitUseCase(habitRepo)

	// Create activity use cases
	logActivityUseCase := activity.NewLogActivityUseCase(ledgerService, goalRepo, userRepo, goalNotifier)
	deleteActivityUseCase := activity.NewDeleteActivityUseCase(ledgerService)
	listActivitiesUseCase := activity.NewListActivitiesUseCase(ledgerService)
	getBalanceUseCase := activity.NewGetBalanceUseCase(ledgerService)

	// Create goal use cases
	listGoalsUseCase := goal.NewListGoalsUseCase(goalRepo)
	createGoalUseCase := goal.NewCreateGoalUseCase(goalRepo, habitRepo)
	getGoalUseCase := goal.NewGetGoalUseCase(goalRepo)
	updateGoalUseCase := goal.NewUpdateGoalUseCase(goalRepo, habitRepo)
	deleteGoalUseCase := goal.NewDeleteGoalUseCase(goalRepo)
	setMonthlyGoalUseCase := goal.NewSetMonthlyGoalUseCase(monthlyGoalRepo)

	// Create dashboard use cases
	goalProgressUseCase := dashboard.NewGetGoalProgressUseCase(goalRepo, ledgerService)
	goalsProgressUseCase := dashboard.NewListGoalsProgressUseCase(goalRepo, ledgerService)
	calendarUseCase := dashboard.NewGetCalendarMonthUseCase(activityRepo, monthlyGoalRepo)

	// Create resource use cases
	listResourcesUseCase := resource.NewListResourcesUseCase(resourceRepo)
	createResourceUseCase := resource.NewCreateResourceUseCase(resourceRepo)
	updateResourceUseCase := resource.NewUpdateResourceUseCase(resourceRepo)
	deleteResourceUseCase := resource.NewDeleteResourceUseCase(resourceRepo)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
		updatePreferencesUseCase,
	)

	habitController := controller.NewHabitController(
		listHabitsUseCase,
		createHabitUseCase,
		updateHabitUseCase,
		deleteHabitUseCase,
	)

	activityController := controller.NewActivityController(
		logActivityUseCase,
		deleteActivityUseCase,
		listActivitiesUseCase,
		getBalanceUseCase,
	)

	goalController := controller.NewGoalController(
		listGoalsUseCase,
		createGoalUseCase,
		getGoalUseCase,
		updateGoalUseCase,
		deleteGoalUseCase,
		setMonthlyGoalUseCase,
	)

	dashboardController := controller.NewDashboardController(
		goalProgressUseCase,
		goalsProgressUseCase,
		calendarUseCase,
	)

	resourceController := controller.NewResourceController(
		listResourcesUseCase,
		createResourceUseCase,
		updateResourceUseCase,
		deleteResourceUseCase,
	)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		habitController,
		activityController,
		goalController,
		dashboardController,
		resourceController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Ledger: ledgerService,
		Router: r,
	}
}
