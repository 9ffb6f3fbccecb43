package server

import (
	"github.com/labstack/echo/v4"

	"example.com/mindfulwealth/backend/internal/handlers"
)

func registerRoutes(
	e *echo.Echo,
	authHandler *handlers.AuthHandler,
	chatHandler *handlers.ChatHandler,
	transactionHandler *handlers.TransactionHandler,
	budgetHandler *handlers.BudgetHandler,
	savedImpulseHandler *handlers.SavedImpulseHandler,
	dashboardHandler *handlers.DashboardHandler,
	settingsHandler *handlers.SettingsHandler,
	notificationHandler *handlers.NotificationHandler,
	authMiddleware echo.MiddlewareFunc,
	authRateLimiter echo.MiddlewareFunc,
	chatRateLimiter echo.MiddlewareFunc,
) {
	e.GET("/health", handlers.Health)

	api := e.Group("/api/v1")
	authGroup := api.Group("/auth", authRateLimiter)

	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)
	authGroup.POST("/demo", authHandler.Demo)
	authGroup.POST("/refresh", authHandler.Refresh)
	authGroup.POST("/logout", authHandler.Logout)
	authGroup.GET("/me", authHandler.Me, authMiddleware)

	api.POST("/chat", chatHandler.Chat, authMiddleware, chatRateLimiter)

	transactions := api.Group("/transactions", authMiddleware)
	transactions.GET("", transactionHandler.List)
	transactions.POST("", transactionHandler.Create)
	transactions.GET("/export/csv", transactionHandler.ExportCSV)

	budget := api.Group("/budget", authMiddleware)
	budget.GET("", budgetHandler.List)
	budget.POST("", budgetHandler.Set)

	savedImpulses := api.Group("/saved-impulses", authMiddleware)
	savedImpulses.GET("", savedImpulseHandler.List)
	savedImpulses.POST("", savedImpulseHandler.Create)

	api.GET("/dashboard", dashboardHandler.Summary, authMiddleware)

	settings := api.Group("/settings", authMiddleware)
	settings.GET("", settingsHandler.Get)
	settings.POST("", settingsHandler.Update)

	notifications := api.Group("/notifications", authMiddleware)
	notifications.GET("/stream", notificationHandler.Stream)
}
