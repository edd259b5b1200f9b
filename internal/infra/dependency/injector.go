// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/centsible/backend/config"
	"github.com/centsible/backend/internal/application/usecase/auth"
	"github.com/centsible/backend/internal/application/usecase/category"
	"github.com/centsible/backend/internal/application/usecase/report"
	"github.com/centsible/backend/internal/application/usecase/transaction"
	"github.com/centsible/backend/internal/infra/server/router"
	"github.com/centsible/backend/internal/integration/adapters"
	"github.com/centsible/backend/internal/integration/cache"
	"github.com/centsible/backend/internal/integration/entrypoint/controller"
	"github.com/centsible/backend/internal/integration/entrypoint/middleware"
	"github.com/centsible/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	// Repositories and adapters
	userRepo := persistence.NewUserRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	summaryCache := cache.NewSummaryCache(redisClient)

	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.AccessTokenExpiry)

	// Category use cases
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo)
	setDefaultCategoryUseCase := category.NewSetDefaultCategoryUseCase(categoryRepo)
	hierarchyUseCase := category.NewGetCategoryHierarchyUseCase(categoryRepo)
	seedCategoriesUseCase := category.NewSeedDefaultCategoriesUseCase(categoryRepo)

	// Auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService, seedCategoriesUseCase)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)

	// Transaction use cases
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, categoryRepo, summaryCache)
	getTransactionUseCase := transaction.NewGetTransactionUseCase(transactionRepo)
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, categoryRepo, summaryCache)
	cloneTransactionUseCase := transaction.NewCloneTransactionUseCase(transactionRepo, createTransactionUseCase)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo, summaryCache)

	// Report use cases
	monthlySummaryUseCase := report.NewMonthlySummaryUseCase(transactionRepo)
	cachedSummaryUseCase := report.NewCachedSummaryUseCase(transactionRepo, summaryCache)
	breakdownUseCase := report.NewCategoryBreakdownUseCase(transactionRepo)

	// Controllers
	healthController := controller.NewHealthController()
	authController := controller.NewAuthController(registerUseCase, loginUseCase)
	categoryController := controller.NewCategoryController(
		createCategoryUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
		setDefaultCategoryUseCase,
		hierarchyUseCase,
	)
	transactionController := controller.NewTransactionController(
		createTransactionUseCase,
		getTransactionUseCase,
		listTransactionsUseCase,
		updateTransactionUseCase,
		cloneTransactionUseCase,
		deleteTransactionUseCase,
	)
	reportController := controller.NewReportController(
		monthlySummaryUseCase,
		cachedSummaryUseCase,
		breakdownUseCase,
	)

	// Middleware. Tests get a generous login rate limit so they don't flake.
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	r := router.NewRouter(
		healthController,
		authController,
		categoryController,
		transactionController,
		reportController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
