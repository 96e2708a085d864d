// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/household-ledger/backend/internal/integration/entrypoint/controller"
	"github.com/household-ledger/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine             *gin.Engine
	healthController   *controller.HealthController
	authController     *controller.AuthController
	expenseController  *controller.ExpenseController
	importController   *controller.ImportController
	debtController     *controller.DebtController
	summaryController  *controller.SummaryController
	incomeController   *controller.IncomeController
	settingsController *controller.SettingsController
	loginRateLimiter   *middleware.RateLimiter
	authMiddleware     *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	expenseController *controller.ExpenseController,
	importController *controller.ImportController,
	debtController *controller.DebtController,
	summaryController *controller.SummaryController,
	incomeController *controller.IncomeController,
	settingsController *controller.SettingsController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:   healthController,
		authController:     authController,
		expenseController:  expenseController,
		importController:   importController,
		debtController:     debtController,
		summaryController:  summaryController,
		incomeController:   incomeController,
		settingsController: settingsController,
		loginRateLimiter:   loginRateLimiter,
		authMiddleware:     authMiddleware,
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

		// Expense routes (require authentication)
		if r.expenseController != nil && r.authMiddleware != nil {
			expenses := v1.Group("/expenses")
			expenses.Use(r.authMiddleware.Authenticate())
			{
				expenses.GET("", r.expenseController.List)
				expenses.POST("", r.expenseController.Add)
				expenses.DELETE("", r.expenseController.ClearAll)
				expenses.DELETE("/:monthKey", r.expenseController.ClearMonth)
				expenses.DELETE("/:monthKey/:index", r.expenseController.Delete)
			}
		}

		// Spreadsheet import routes (require authentication)
		if r.importController != nil && r.authMiddleware != nil {
			imports := v1.Group("/import")
			imports.Use(r.authMiddleware.Authenticate())
			{
				imports.POST("/preview", r.importController.Preview)
				imports.POST("/commit", r.importController.Commit)
				imports.POST("/undo", r.importController.Undo)
			}
		}

		// Debt projection routes (require authentication)
		if r.debtController != nil && r.authMiddleware != nil {
			debt := v1.Group("/debt")
			debt.Use(r.authMiddleware.Authenticate())
			{
				debt.GET("/projection", r.debtController.Projection)
			}
		}

		// Monthly summary routes (require authentication)
		if r.summaryController != nil && r.authMiddleware != nil {
			summary := v1.Group("/summary")
			summary.Use(r.authMiddleware.Authenticate())
			{
				summary.GET("", r.summaryController.Get)
			}
		}

		// Income routes (require authentication)
		if r.incomeController != nil && r.authMiddleware != nil {
			incomes := v1.Group("/incomes")
			incomes.Use(r.authMiddleware.Authenticate())
			{
				incomes.GET("", r.incomeController.List)
				incomes.POST("", r.incomeController.Create)
				incomes.PATCH("/:id", r.incomeController.Update)
				incomes.DELETE("/:id", r.incomeController.Delete)
				incomes.GET("/month/:monthKey", r.incomeController.GetMonth)
				incomes.PUT("/month/:monthKey", r.incomeController.SetMonth)
			}
		}

		// Settings routes (require authentication)
		if r.settingsController != nil && r.authMiddleware != nil {
			settings := v1.Group("/settings")
			settings.Use(r.authMiddleware.Authenticate())
			{
				settings.GET("/exchange-rate", r.settingsController.GetExchangeRate)
				settings.PUT("/exchange-rate", r.settingsController.SetExchangeRate)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
