// Package routes defines the API routing configuration. It wires the
// repositories, services and handlers together and groups routes by the
// authentication they require.
package routes

import (
	"vestra/internal/config"
	"vestra/internal/handlers"
	"vestra/internal/middleware"
	"vestra/internal/models"
	"vestra/internal/repositories"
	"vestra/internal/services/activity"
	"vestra/internal/services/admin"
	"vestra/internal/services/auth"
	"vestra/internal/services/chat"
	"vestra/internal/services/dashboard"
	"vestra/internal/services/investment"
	"vestra/internal/services/mailer"
	"vestra/internal/services/notify"
	"vestra/internal/services/plan"
	"vestra/internal/services/ratelimit"
	"vestra/internal/services/user"
	"vestra/internal/services/withdrawal"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes configures all application routes. The mailer and notifier
// are built once in main and shared with the maturity sweeper.
func SetupRoutes(app *fiber.App, db *gorm.DB, mail mailer.Mailer, notifier notify.Service) {
	// Repositories
	userRepo := repositories.NewUserRepository(db, repositories.CacheService)
	balanceRepo := repositories.NewBalanceRepository(db, repositories.CacheService)
	planRepo := repositories.NewPlanRepository(db)
	investmentRepo := repositories.NewInvestmentRepository(db)
	pendingRepo := repositories.NewPendingInvestmentRepository(db)
	transactionRepo := repositories.NewTransactionRepository(db)
	withdrawalRepo := repositories.NewWithdrawalRepository(db)

	adminEmail := config.GetEnv("ADMIN_EMAIL", "support@vestra.app")

	// Services
	authService := auth.NewService(userRepo)
	userService := user.NewService(userRepo, balanceRepo)
	planService := plan.NewService(planRepo)
	chatService := chat.NewService(mail, adminEmail)
	activityService := activity.NewService(investmentRepo, pendingRepo, transactionRepo, withdrawalRepo)
	investmentService := investment.NewService(planService, pendingRepo, investmentRepo, userRepo, notifier)
	withdrawalService := withdrawal.NewService(withdrawalRepo, balanceRepo, userRepo, notifier)
	dashboardService := dashboard.NewService(balanceRepo, investmentRepo, pendingRepo, activityService)
	adminService := admin.NewService(repositories.NewDecisionStore(db), pendingRepo, withdrawalRepo, balanceRepo)
	resetLimiter := ratelimit.NewRedisLimiter(repositories.CacheService.Client(), ratelimit.Config{})

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService, balanceRepo)
	planHandler := handlers.NewPlanHandler(planService)
	investmentHandler := handlers.NewInvestmentHandler(investmentService)
	withdrawalHandler := handlers.NewWithdrawalHandler(withdrawalService)
	activityHandler := handlers.NewActivityHandler(activityService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	adminHandler := handlers.NewAdminHandler(adminService, userRepo)
	messageHandler := handlers.NewMessageHandler(chatService, resetLimiter, notifier)
	notificationHandler := handlers.NewNotificationHandler(notifier, userRepo, pendingRepo, withdrawalRepo)
	healthHandler := handlers.NewHealthHandler(userRepo)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to Vestra API",
			"version": "1.0.0",
			"docs":    "/api",
		})
	})
	app.Get("/health", healthHandler.Health)

	api := app.Group("/api")

	// Public endpoints
	api.Post("/login", authHandler.Login)
	api.Post("/register", userHandler.Register)
	api.Post("/refresh", authHandler.Refresh)
	api.Get("/plans", planHandler.List)
	api.Get("/plans/:id/quote", planHandler.Quote)
	api.Post("/send-message", messageHandler.SendMessage)
	api.Post("/check-reset-rate-limit", messageHandler.CheckResetRateLimit)
	api.Post("/send-reset-confirmation", messageHandler.SendResetConfirmation)
	api.Get("/keepalive", healthHandler.Keepalive)
	api.Post("/keepalive", healthHandler.Keepalive)

	// Notification triggers used by the maturity CLI
	notifications := api.Group("/notifications")
	notifications.Post("/investment-request", notificationHandler.InvestmentRequest)
	notifications.Post("/withdrawal-request", notificationHandler.WithdrawalRequest)
	notifications.Post("/maturity-processing", notificationHandler.MaturityProcessing)

	// Protected routes
	authMiddleware := middleware.NewAuthMiddleware(authService)
	protected := api.Group("", authMiddleware.Handler)

	protected.Post("/logout", authHandler.Logout)
	protected.Post("/change-password", middleware.HasPermission(models.PermissionChangePassword), authHandler.ChangePassword)

	protected.Get("/profile", userHandler.GetProfile)
	protected.Put("/profile", middleware.HasPermission(models.PermissionProfileWrite), userHandler.UpdateProfile)
	protected.Get("/balance", middleware.HasPermission(models.PermissionBalanceRead), userHandler.GetBalance)

	protected.Get("/dashboard", dashboardHandler.Overview)

	investments := protected.Group("/investments")
	investments.Post("/", middleware.HasPermission(models.PermissionInvestWrite), investmentHandler.Submit)
	investments.Get("/", investmentHandler.List)
	investments.Get("/pending", investmentHandler.ListPending)

	withdrawals := protected.Group("/withdrawals")
	withdrawals.Post("/", middleware.HasPermission(models.PermissionWithdrawWrite), withdrawalHandler.Submit)
	withdrawals.Get("/", withdrawalHandler.List)

	activities := protected.Group("/activity", middleware.HasPermission(models.PermissionActivityRead))
	activities.Get("/", activityHandler.Feed)
	activities.Get("/export/csv", activityHandler.ExportCSV)
	activities.Get("/export/json", activityHandler.ExportJSON)

	// Admin routes
	adminGroup := app.Group("/api/admin", authMiddleware.Handler, middleware.AdminAuthMiddleware)
	adminGroup.Get("/users", middleware.HasPermission(models.PermissionReadAdmin), adminHandler.ListUsers)
	adminGroup.Get("/investments", middleware.HasPermission(models.PermissionReadAdmin), adminHandler.ListPendingInvestments)
	adminGroup.Post("/investments/:id/approve", middleware.HasPermission(models.PermissionWriteAdmin), adminHandler.ApproveInvestment)
	adminGroup.Post("/investments/:id/reject", middleware.HasPermission(models.PermissionWriteAdmin), adminHandler.RejectInvestment)
	adminGroup.Get("/withdrawals", middleware.HasPermission(models.PermissionReadAdmin), adminHandler.ListWithdrawals)
	adminGroup.Post("/withdrawals/:id/approve", middleware.HasPermission(models.PermissionWriteAdmin), adminHandler.ApproveWithdrawal)
	adminGroup.Post("/withdrawals/:id/reject", middleware.HasPermission(models.PermissionWriteAdmin), adminHandler.RejectWithdrawal)
}
