// Package dependency provides dependency injection for the application.
package dependency

import (
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/household-ledger/backend/config"
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
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Redis  *redis.Client
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB) *Injector {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	expenseRepo := persistence.NewExpenseRepository(db)
	incomeRepo := persistence.NewIncomeRepository(db)
	settingsRepo := persistence.NewSettingsRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)
	spreadsheetReader := adapters.NewSpreadsheetReader()
	redisClient := newRedisClient(&cfg.Redis)

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

	// Create expense use cases
	listExpensesUseCase := expense.NewListExpensesUseCase(expenseRepo)
	addExpensesUseCase := expense.NewAddExpensesUseCase(expenseRepo)
	deleteExpenseUseCase := expense.NewDeleteExpenseUseCase(expenseRepo)
	clearExpensesUseCase := expense.NewClearExpensesUseCase(expenseRepo)

	// Create import use cases
	previewImportUseCase := importer.NewPreviewImportUseCase(expenseRepo)
	commitImportUseCase := importer.NewCommitImportUseCase(expenseRepo)
	undoImportUseCase := importer.NewUndoImportUseCase(expenseRepo)

	// Create projection and summary use cases
	buildProjectionUseCase := debt.NewBuildProjectionUseCase(expenseRepo, settingsRepo)
	monthSummaryUseCase := summary.NewGetMonthSummaryUseCase(expenseRepo, settingsRepo)

	// Create income use cases
	listIncomesUseCase := income.NewListIncomesUseCase(incomeRepo)
	getMonthIncomesUseCase := income.NewGetMonthIncomesUseCase(incomeRepo)
	setMonthIncomesUseCase := income.NewSetMonthIncomesUseCase(incomeRepo)
	createIncomeUseCase := income.NewCreateIncomeUseCase(incomeRepo)
	updateIncomeUseCase := income.NewUpdateIncomeUseCase(incomeRepo)
	deleteIncomeUseCase := income.NewDeleteIncomeUseCase(incomeRepo)

	// Create settings use cases
	getExchangeRateUseCase := settings.NewGetExchangeRateUseCase(settingsRepo)
	setExchangeRateUseCase := settings.NewSetExchangeRateUseCase(settingsRepo)

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
	)

	expenseController := controller.NewExpenseController(
		listExpensesUseCase,
		addExpensesUseCase,
		deleteExpenseUseCase,
		clearExpensesUseCase,
	)

	importController := controller.NewImportController(
		spreadsheetReader,
		previewImportUseCase,
		commitImportUseCase,
		undoImportUseCase,
		cfg.Import.MaxUploadBytes,
	)

	debtController := controller.NewDebtController(buildProjectionUseCase)
	summaryController := controller.NewSummaryController(monthSummaryUseCase)

	incomeController := controller.NewIncomeController(
		listIncomesUseCase,
		getMonthIncomesUseCase,
		setMonthIncomesUseCase,
		createIncomeUseCase,
		updateIncomeUseCase,
		deleteIncomeUseCase,
	)

	settingsController := controller.NewSettingsController(
		getExchangeRateUseCase,
		setExchangeRateUseCase,
	)

	// Create middleware
	// Use higher rate limits for test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(redisClient, 1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter(redisClient)
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
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

	return &Injector{
		Config: cfg,
		DB:     db,
		Redis:  redisClient,
		Router: r,
	}
}

// newRedisClient builds the Redis client used by the login rate limiter.
// A bad URL falls back to default options so the limiter degrades instead
// of blocking startup.
func newRedisClient(cfg *config.RedisConfig) *redis.Client {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		slog.Warn("Invalid Redis URL, using defaults", "error", err)
		opts = &redis.Options{Addr: "localhost:6379"}
	}
	if cfg.Password != "" {
		opts.Password = cfg.Password
	}
	if cfg.DB != 0 {
		opts.DB = cfg.DB
	}
	return redis.NewClient(opts)
}
