package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/habit-tracker/backend/internal/application/ledger"
	"github.com/habit-tracker/backend/internal/application/usecase/activity"
	"github.com/habit-tracker/backend/internal/application/usecase/auth"
	"github.com/habit-tracker/backend/internal/application/usecase/dashboard"
	"github.com/habit-tracker/backend/internal/application/usecase/goal"
	"github.com/habit-tracker/backend/internal/application/usecase/habit"
	"github.com/habit-tracker/backend/internal/application/usecase/resource"
	"github.com/habit-tracker/backend/internal/infra/server/router"
	"github.com/habit-tracker/backend/internal/integration/adapters"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/middleware"
	"github.com/habit-tracker/backend/internal/integration/persistence"
	"github.com/habit-tracker/backend/internal/integration/persistence/model"
	"github.com/habit-tracker/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

var tags string

func init() {
	flag.StringVar(&tags, "scenarios", "", "tags to run")
}

func TestFeatures(t *testing.T) {
	flag.Parse()

	suite := godog.TestSuite{
		ScenarioInitializer: func(s *godog.ScenarioContext) {
			InitializeScenario(s)
		},
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../features"},
			Tags:     tags,
			Strict:   true,
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

type testContext struct {
	uri            string
	headers        map[string]string
	client         *http.Client
	response       *response
	db             *mock.Db
	timeMock       *mock.Time
	serverPort     int
	accessToken    string
	refreshToken   string
	currentUserID  uuid.UUID
	currentHabitID uuid.UUID
	currentGoalID  uuid.UUID
	activityIDs    []uuid.UUID
	lastActivityID uuid.UUID
}

type response struct {
	status int
	body   any
	err    error
}

var serverInit sync.Once
var testDB *mock.Db
var testServerPort int
var portInit sync.Once

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
		_ = os.Setenv("SERVER_PORT", strconv.Itoa(testServerPort))
		_ = os.Setenv("ENV", "test")
	})
}

// InitializeTestSuite runs suite-level hooks for the standalone godog runner.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(initializePort)
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:        fmt.Sprintf("http://localhost:%d", testServerPort),
		client:     &http.Client{Timeout: 10 * time.Second},
		timeMock:   mock.NewTime(),
		serverPort: testServerPort,
		db: mock.NewDb("habit_tracker", map[string]any{
			"users":          &model.UserModel{},
			"refresh_tokens": &model.RefreshTokenModel{},
			"habits":         &model.HabitModel{},
			"activities":     &model.ActivityModel{},
			"balances":       &model.BalanceModel{},
			"goals":          &model.GoalModel{},
			"monthly_goals":  &model.MonthlyGoalModel{},
			"resources":      &model.ResourceModel{},
		}),
	}

	testDB = test.db

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		return nil, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// User setup steps
	ctx.Given(`^a user exists with email "([^"]*)"$`, test.aUserExistsWithEmail)
	ctx.Given(`^a user exists with email "([^"]*)" and password "([^"]*)"$`, test.aUserExistsWithEmailAndPassword)
	ctx.Given(`^the user is logged in with valid tokens$`, test.theUserIsLoggedInWithValidTokens)
	ctx.Given(`^I am logged in as "([^"]*)"$`, test.iAmLoggedInAs)
	ctx.Given(`^the user "([^"]*)" exists$`, test.theUserExists)

	// Habit setup steps
	ctx.Given(`^a good habit exists with name "([^"]*)" worth (\d+) points$`, test.aGoodHabitExists)
	ctx.Given(`^a bad habit exists with name "([^"]*)" costing (\d+) points$`, test.aBadHabitExists)

	// Ledger setup steps
	ctx.Given(`^an activity is logged for habit "([^"]*)"$`, test.anActivityIsLoggedForHabit)
	ctx.Given(`^an activity is logged for habit "([^"]*)" on "([^"]*)"$`, test.anActivityIsLoggedForHabitOn)

	// Goal setup steps
	ctx.Given(`^a goal exists with title "([^"]*)" period "([^"]*)" tracking "([^"]*)" with target (\d+)$`, test.aGoalExists)
	ctx.Given(`^the goal is scoped to habit "([^"]*)"$`, test.theGoalIsScopedToHabit)
	ctx.Given(`^a monthly goal exists for (\d+)/(\d+) with target (\d+) points$`, test.aMonthlyGoalExists)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

func (t *testContext) before() {
	t.headers = make(map[string]string)
	t.accessToken = ""
	t.refreshToken = ""
	t.currentUserID = uuid.Nil
	t.currentHabitID = uuid.Nil
	t.currentGoalID = uuid.Nil
	t.activityIDs = nil
	t.lastActivityID = uuid.Nil

	if t.db != nil {
		_ = t.db.ClearDB()
	}
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		go func() {
			gin.SetMode(gin.TestMode)

			// Create repositories
			userRepo := persistence.NewUserRepository(testDB.DbConn)
			tokenRepo := persistence.NewTokenRepository(testDB.DbConn)
			habitRepo := persistence.NewHabitRepository(testDB.DbConn)
			activityRepo := persistence.NewActivityRepository(testDB.DbConn)
			balanceRepo := persistence.NewBalanceRepository(testDB.DbConn)
			goalRepo := persistence.NewGoalRepository(testDB.DbConn)
			monthlyGoalRepo := persistence.NewMonthlyGoalRepository(testDB.DbConn)
			resourceRepo := persistence.NewResourceRepository(testDB.DbConn)

			// Create adapters/services
			passwordService := adapters.NewPasswordService()
			tokenService := adapters.NewTokenService(testJWTSecret, tokenRepo)
			balanceCache := adapters.NewRedisBalanceCache(mock.NewRedis())

			// The ledger under test uses the default failure policy; email
			// notifications are disabled
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
			logActivityUseCase := activity.NewLogActivityUseCase(ledgerService, goalRepo, userRepo, nil)
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
				return testDB != nil && testDB.DbConn != nil
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
			loginRateLimiter := middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
			authMiddleware := middleware.NewAuthMiddleware(tokenService)

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
			engine := r.Setup("test")

			addr := fmt.Sprintf(":%d", testServerPort)
			server := &http.Server{
				Addr:    addr,
				Handler: engine,
			}

			_ = server.ListenAndServe()
		}()
	})

	// Wait for server to be ready
	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}

func (t *testContext) aUserExistsWithEmail(email string) error {
	return t.createUser(email, "DefaultPass123!", "Test User")
}

func (t *testContext) aUserExistsWithEmailAndPassword(email, password string) error {
	return t.createUser(email, password, "Test User")
}

func (t *testContext) createUser(email, password, name string) error {
	userID := uuid.New()
	t.currentUserID = userID

	user := &model.UserModel{
		ID:           userID,
		Email:        email,
		Name:         name,
		PasswordHash: hashPassword(password),
		GoalAlerts:   true,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	result := t.db.DbConn.Create(user)
	return result.Error
}

func hashPassword(password string) string {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("failed to hash password: %v", err))
	}
	return string(hashedBytes)
}

func (t *testContext) theUserIsLoggedInWithValidTokens() error {
	return t.issueTokensFor("test@example.com")
}

func (t *testContext) issueTokensFor(email string) error {
	now := time.Now().UTC()

	accessClaims := jwt.MapClaims{
		"user_id":    t.currentUserID.String(),
		"email":      email,
		"token_type": "access",
		"exp":        jwt.NewNumericDate(now.Add(15 * time.Minute)),
		"iat":        jwt.NewNumericDate(now),
		"nbf":        jwt.NewNumericDate(now),
		"iss":        "habit-tracker",
		"sub":        t.currentUserID.String(),
	}
	accessToken := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims)
	accessTokenString, err := accessToken.SignedString([]byte(testJWTSecret))
	if err != nil {
		return fmt.Errorf("failed to generate access token: %w", err)
	}
	t.accessToken = accessTokenString

	refreshClaims := jwt.MapClaims{
		"user_id":    t.currentUserID.String(),
		"email":      email,
		"token_type": "refresh",
		"exp":        jwt.NewNumericDate(now.Add(7 * 24 * time.Hour)),
		"iat":        jwt.NewNumericDate(now),
		"nbf":        jwt.NewNumericDate(now),
		"iss":        "habit-tracker",
		"sub":        t.currentUserID.String(),
	}
	refreshToken := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims)
	refreshTokenString, err := refreshToken.SignedString([]byte(testJWTSecret))
	if err != nil {
		return fmt.Errorf("failed to generate refresh token: %w", err)
	}
	t.refreshToken = refreshTokenString

	// Store the refresh token so invalidation checks pass
	var existingToken model.RefreshTokenModel
	if err := t.db.DbConn.Where("user_id = ?", t.currentUserID).First(&existingToken).Error; err == nil {
		existingToken.Token = t.refreshToken
		existingToken.Invalidated = false
		existingToken.ExpiresAt = now.Add(7 * 24 * time.Hour)
		return t.db.DbConn.Save(&existingToken).Error
	}

	refreshTokenModel := &model.RefreshTokenModel{
		ID:          uuid.New(),
		Token:       t.refreshToken,
		UserID:      t.currentUserID,
		Invalidated: false,
		ExpiresAt:   now.Add(7 * 24 * time.Hour),
		CreatedAt:   now,
	}

	result := t.db.DbConn.Create(refreshTokenModel)
	return result.Error
}

// theUserExists creates a user with the given email if they don't already exist.
func (t *testContext) theUserExists(email string) error {
	var userModel model.UserModel
	if err := t.db.DbConn.Where("email = ?", email).First(&userModel).Error; err == nil {
		return nil
	}

	userID := uuid.New()
	user := &model.UserModel{
		ID:           userID,
		Email:        email,
		Name:         "Test User " + email,
		PasswordHash: hashPassword("SecurePass123!"),
		GoalAlerts:   true,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	result := t.db.DbConn.Create(user)
	return result.Error
}

// iAmLoggedInAs switches the current logged in user to the specified email.
func (t *testContext) iAmLoggedInAs(email string) error {
	if err := t.theUserExists(email); err != nil {
		return err
	}

	var userModel model.UserModel
	if err := t.db.DbConn.Where("email = ?", email).First(&userModel).Error; err != nil {
		return fmt.Errorf("user not found: %w", err)
	}

	t.currentUserID = userModel.ID
	return t.issueTokensFor(email)
}

// aGoodHabitExists creates a positive habit whose completions earn points.
func (t *testContext) aGoodHabitExists(name string, points int) error {
	return t.createHabit(name, "good", points, 0)
}

// aBadHabitExists creates a negative habit whose occurrences cost points.
func (t *testContext) aBadHabitExists(name string, points int) error {
	return t.createHabit(name, "bad", 0, points)
}

func (t *testContext) createHabit(name, direction string, value, cost int) error {
	habitID := uuid.New()
	t.currentHabitID = habitID

	now := time.Now().UTC()
	habitModel := &model.HabitModel{
		ID:        habitID,
		UserID:    t.currentUserID,
		Name:      name,
		Direction: direction,
		Value:     value,
		Cost:      cost,
		Icon:      "star",
		CreatedAt: now,
		UpdatedAt: now,
	}

	result := t.db.DbConn.Create(habitModel)
	return result.Error
}

// anActivityIsLoggedForHabit seeds a ledger entry for the named habit and
// keeps the cached balance row in sync with it.
func (t *testContext) anActivityIsLoggedForHabit(habitName string) error {
	return t.seedActivity(habitName, time.Now().UTC())
}

func (t *testContext) anActivityIsLoggedForHabitOn(habitName, occurredAt string) error {
	ts, err := time.Parse(time.RFC3339, occurredAt)
	if err != nil {
		return fmt.Errorf("invalid timestamp '%s': %w", occurredAt, err)
	}
	return t.seedActivity(habitName, ts)
}

func (t *testContext) seedActivity(habitName string, occurredAt time.Time) error {
	var habitModel model.HabitModel
	if err := t.db.DbConn.Where("name = ? AND user_id = ?", habitName, t.currentUserID).First(&habitModel).Error; err != nil {
		return fmt.Errorf("habit '%s' not found: %w", habitName, err)
	}

	delta := habitModel.Value
	if habitModel.Direction == "bad" {
		delta = -habitModel.Cost
	}

	activityID := uuid.New()
	t.lastActivityID = activityID
	t.activityIDs = append(t.activityIDs, activityID)

	activityModel := &model.ActivityModel{
		ID:         activityID,
		UserID:     t.currentUserID,
		HabitID:    habitModel.ID,
		HabitName:  habitModel.Name,
		PointDelta: delta,
		OccurredAt: occurredAt,
		CreatedAt:  occurredAt,
	}
	if err := t.db.DbConn.Create(activityModel).Error; err != nil {
		return err
	}

	var balance model.BalanceModel
	if err := t.db.DbConn.Where("user_id = ?", t.currentUserID).First(&balance).Error; err != nil {
		balance = model.BalanceModel{UserID: t.currentUserID, Points: delta, UpdatedAt: occurredAt}
		return t.db.DbConn.Create(&balance).Error
	}
	balance.Points += delta
	balance.UpdatedAt = occurredAt
	return t.db.DbConn.Save(&balance).Error
}

// aGoalExists creates a goal in the given period with the given target.
func (t *testContext) aGoalExists(title, period, targetType string, targetValue int) error {
	goalID := uuid.New()
	t.currentGoalID = goalID

	now := time.Now().UTC()
	goalModel := &model.GoalModel{
		ID:          goalID,
		UserID:      t.currentUserID,
		Title:       title,
		Period:      period,
		TargetType:  targetType,
		TargetValue: targetValue,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	result := t.db.DbConn.Create(goalModel)
	return result.Error
}

// theGoalIsScopedToHabit restricts the last created goal to the named habit.
func (t *testContext) theGoalIsScopedToHabit(habitName string) error {
	var habitModel model.HabitModel
	if err := t.db.DbConn.Where("name = ? AND user_id = ?", habitName, t.currentUserID).First(&habitModel).Error; err != nil {
		return fmt.Errorf("habit '%s' not found: %w", habitName, err)
	}

	return t.db.DbConn.Model(&model.GoalModel{}).
		Where("id = ?", t.currentGoalID).
		Update("target_habit_id", habitModel.ID).Error
}

func (t *testContext) aMonthlyGoalExists(month, year, targetPoints int) error {
	goalModel := &model.MonthlyGoalModel{
		ID:           uuid.New(),
		UserID:       t.currentUserID,
		Month:        month,
		Year:         year,
		TargetPoints: targetPoints,
		CreatedAt:    time.Now().UTC(),
	}

	result := t.db.DbConn.Create(goalModel)
	return result.Error
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = "" // Clear access token to simulate unauthenticated request
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	path = t.replaceTokenPlaceholders(path)
	return t.executeRequest(method, path, nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	path = t.replaceTokenPlaceholders(path)

	var payload []byte
	if body != nil && body.Content != "" {
		content := t.replaceTokenPlaceholders(body.Content)
		payload = []byte(content)
	}
	return t.executeRequest(method, path, payload)
}

func (t *testContext) replaceTokenPlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{refresh_token}}", t.refreshToken)
	content = strings.ReplaceAll(content, "{{access_token}}", t.accessToken)
	content = strings.ReplaceAll(content, "{{habit_id}}", t.currentHabitID.String())
	content = strings.ReplaceAll(content, "{{goal_id}}", t.currentGoalID.String())
	content = strings.ReplaceAll(content, "{{activity_id}}", t.lastActivityID.String())
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var req *http.Request
	var err error

	url := t.uri + path

	if payload != nil {
		req, err = http.NewRequest(method, url, bytes.NewReader(payload))
	} else {
		req, err = http.NewRequest(method, url, nil)
	}
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}

	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{
		status: resp.StatusCode,
	}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
	} else {
		t.response.body = responseBody
		t.captureIDs(responseBody)
	}

	return nil
}

// captureIDs records entity IDs from the response so later steps can refer
// to them through placeholders.
func (t *testContext) captureIDs(responseBody map[string]any) {
	// Logged activity responses nest the entry under "activity"
	if act, ok := responseBody["activity"].(map[string]any); ok {
		if idStr, ok := act["id"].(string); ok {
			if id, err := uuid.Parse(idStr); err == nil {
				t.lastActivityID = id
				t.activityIDs = append(t.activityIDs, id)
			}
		}
		return
	}

	idStr, ok := responseBody["id"].(string)
	if !ok {
		return
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return
	}

	// Habit responses carry "direction", goal responses carry "target_type"
	if _, hasDirection := responseBody["direction"]; hasDirection {
		t.currentHabitID = id
	} else if _, hasTargetType := responseBody["target_type"]; hasTargetType {
		t.currentGoalID = id
	}
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if _, ok := t.response.body.(map[string]any); !ok {
		return fmt.Errorf("response is not JSON: %v", t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field '%s': %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}

	expectedValue = t.replaceTokenPlaceholders(expectedValue)
	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	if entity, ok := t.db.GetModel(table); ok {
		entityType := reflect.TypeOf(entity).Elem()
		entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
		entitySlicePtr := reflect.New(entitySlice.Type())
		entitySlicePtr.Elem().Set(entitySlice)

		result := t.db.DbConn.Unscoped().Find(entitySlicePtr.Interface())
		if result.Error != nil {
			return result.Error
		}

		count := entitySlicePtr.Elem().Len()
		if count != quantity {
			return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
		}
		return nil
	}
	return fmt.Errorf("table '%s' not found in models", table)
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(content.Content), &criteria); err != nil {
		return err
	}

	if entity, ok := t.db.GetModel(table); ok {
		entityType := reflect.TypeOf(entity).Elem()
		entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
		entitySlicePtr := reflect.New(entitySlice.Type())
		entitySlicePtr.Elem().Set(entitySlice)

		query := t.db.DbConn.Unscoped()
		for key, value := range criteria {
			query = query.Where(fmt.Sprintf("%s = ?", key), value)
		}

		result := query.Find(entitySlicePtr.Interface())
		if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return result.Error
		}

		count := entitySlicePtr.Elem().Len()
		if count != quantity {
			return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
		}
		return nil
	}
	return fmt.Errorf("table '%s' not found in models", table)
}

func getFieldValue(object any, dotSeparatedField string) any {
	if object == nil {
		return nil
	}

	var objectMap map[string]any
	switch v := object.(type) {
	case map[string]any:
		objectMap = v
	default:
		objectJSON, _ := json.Marshal(object)
		if err := json.Unmarshal(objectJSON, &objectMap); err != nil {
			return nil
		}
	}

	fields := strings.Split(dotSeparatedField, ".")
	var field any = objectMap

	for _, currentField := range fields {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			if arr, ok := field.([]any); ok && i < len(arr) {
				field = arr[i]
			} else {
				return nil
			}
		} else {
			if m, ok := field.(map[string]any); ok {
				field = m[currentField]
			} else {
				return nil
			}
		}
	}

	return field
}
