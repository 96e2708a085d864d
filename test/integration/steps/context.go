// Package steps provides step definitions for the BDD feature suite.
package steps

import (
	"context"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/household-ledger/backend/internal/application/adapter"
	"github.com/household-ledger/backend/internal/application/usecase/auth"
	"github.com/household-ledger/backend/internal/application/usecase/debt"
	"github.com/household-ledger/backend/internal/application/usecase/expense"
	"github.com/household-ledger/backend/internal/application/usecase/importer"
	"github.com/household-ledger/backend/internal/application/usecase/income"
	"github.com/household-ledger/backend/internal/application/usecase/settings"
	"github.com/household-ledger/backend/internal/application/usecase/summary"
	"github.com/household-ledger/backend/internal/infra/server/router"
	"github.com/household-ledger/backend/internal/integration/adapters"
	"github.com/household-ledger/backend/internal/integration/entrypoint/controller"
	"github.com/household-ledger/backend/internal/integration/entrypoint/middleware"
	"github.com/household-ledger/backend/internal/integration/persistence"
	"github.com/household-ledger/backend/internal/integration/persistence/model"
	"github.com/household-ledger/backend/test/integration/mock"
)

const (
	testJWTSecret      = "integration-test-jwt-secret"
	testMaxUploadBytes = 10 << 20
)

// testContext holds the per-scenario state: the server under test, its
// backing stores and the last request/response exchange.
type testContext struct {
	server *httptest.Server
	db     *mock.Db
	redis  *mock.Redis

	expenseRepo  adapter.ExpenseRepository
	incomeRepo   adapter.IncomeRepository
	settingsRepo adapter.SettingsRepository
	userRepo     adapter.UserRepository

	requestHeaders map[string]string
	response       *http.Response
	responseBody   []byte

	accessToken  string
	refreshToken string
	userID       uuid.UUID
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario boots a fresh server for each scenario and registers
// every step definition.
func InitializeScenario(ctx *godog.ScenarioContext) {
	test := &testContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.start()
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		test.stop()
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)
	ctx.Given(`^a user exists with email "([^"]*)" and password "([^"]*)"$`, test.aUserExistsWithEmailAndPassword)
	ctx.Given(`^I am logged in as "([^"]*)" with password "([^"]*)"$`, test.iAmLoggedInAs)
	ctx.Given(`^the month "([^"]*)" has the following expenses:$`, test.theMonthHasExpenses)
	ctx.Given(`^my exchange rate is "([^"]*)"$`, test.myExchangeRateIs)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)
	ctx.When(`^I upload a spreadsheet for month "([^"]*)" to "([^"]*)" with rows:$`, test.iUploadASpreadsheet)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) rows in the "([^"]*)" table$`, test.theDbShouldContainRows)
}

// start wires the full application stack over in-memory stores and exposes
// it through an httptest server.
func (t *testContext) start() {
	t.requestHeaders = make(map[string]string)
	t.response = nil
	t.responseBody = nil
	t.accessToken = ""
	t.refreshToken = ""
	t.userID = uuid.Nil

	t.db = mock.NewDb(
		&model.UserModel{},
		&model.RefreshTokenModel{},
		&model.ExpenseModel{},
		&model.IncomeModel{},
		&model.IncomeOverrideModel{},
		&model.SettingModel{},
	)
	t.redis = mock.NewRedis()

	userRepo := persistence.NewUserRepository(t.db.DbConn)
	tokenRepo := persistence.NewTokenRepository(t.db.DbConn)
	expenseRepo := persistence.NewExpenseRepository(t.db.DbConn)
	incomeRepo := persistence.NewIncomeRepository(t.db.DbConn)
	settingsRepo := persistence.NewSettingsRepository(t.db.DbConn)

	t.userRepo = userRepo
	t.expenseRepo = expenseRepo
	t.incomeRepo = incomeRepo
	t.settingsRepo = settingsRepo

	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(testJWTSecret, tokenRepo)
	spreadsheetReader := adapters.NewSpreadsheetReader()

	authController := controller.NewAuthController(
		auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService),
		auth.NewLoginUserUseCase(userRepo, passwordService, tokenService),
		auth.NewRefreshTokenUseCase(tokenService),
		auth.NewLogoutUserUseCase(tokenService),
	)

	expenseController := controller.NewExpenseController(
		expense.NewListExpensesUseCase(expenseRepo),
		expense.NewAddExpensesUseCase(expenseRepo),
		expense.NewDeleteExpenseUseCase(expenseRepo),
		expense.NewClearExpensesUseCase(expenseRepo),
	)

	importController := controller.NewImportController(
		spreadsheetReader,
		importer.NewPreviewImportUseCase(expenseRepo),
		importer.NewCommitImportUseCase(expenseRepo),
		importer.NewUndoImportUseCase(expenseRepo),
		testMaxUploadBytes,
	)

	debtController := controller.NewDebtController(
		debt.NewBuildProjectionUseCase(expenseRepo, settingsRepo),
	)

	summaryController := controller.NewSummaryController(
		summary.NewGetMonthSummaryUseCase(expenseRepo, settingsRepo),
	)

	incomeController := controller.NewIncomeController(
		income.NewListIncomesUseCase(incomeRepo),
		income.NewGetMonthIncomesUseCase(incomeRepo),
		income.NewSetMonthIncomesUseCase(incomeRepo),
		income.NewCreateIncomeUseCase(incomeRepo),
		income.NewUpdateIncomeUseCase(incomeRepo),
		income.NewDeleteIncomeUseCase(incomeRepo),
	)

	settingsController := controller.NewSettingsController(
		settings.NewGetExchangeRateUseCase(settingsRepo),
		settings.NewSetExchangeRateUseCase(settingsRepo),
	)

	healthController := controller.NewHealthController(func() bool {
		return t.db != nil
	})

	// Generous limit so scenario setup never trips the login limiter
	loginRateLimiter := middleware.NewRateLimiterWithConfig(t.redis.Client, 1000, time.Minute)
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	r := router.NewRouter(
		healthController,
		authController,
		expenseController,
		importController,
		debtController,
		summaryController,
		incomeController,
		settingsController,
		loginRateLimiter,
		authMiddleware,
	)

	t.server = httptest.NewServer(r.Setup("test"))
}

func (t *testContext) stop() {
	if t.server != nil {
		t.server.Close()
	}
	if t.redis != nil {
		t.redis.Close()
	}
	if t.db != nil {
		t.db.Close()
	}
}
