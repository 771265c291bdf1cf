package server

import (
	"github.com/labstack/echo/v4"

	"example.com/expense-insight/backend/internal/handlers"
)

func registerRoutes(
	e *echo.Echo,
	uploadHandler *handlers.UploadHandler,
	expenseHandler *handlers.ExpenseHandler,
	statsHandler *handlers.StatsHandler,
	notificationHandler *handlers.NotificationHandler,
	uploadRateLimiter echo.MiddlewareFunc,
) {
	e.GET("/health", handlers.Health)

	api := e.Group("/api/v1")

	expenses := api.Group("/expenses")
	expenses.POST("/upload", uploadHandler.Upload, uploadRateLimiter)
	expenses.GET("", expenseHandler.List)
	expenses.PATCH("/reorder", expenseHandler.Reorder)
	expenses.GET("/export/json", expenseHandler.ExportJSON)
	expenses.GET("/export/csv", expenseHandler.ExportCSV)

	stats := api.Group("/stats")
	stats.GET("/overview", statsHandler.Overview)
	stats.GET("/categories", statsHandler.Categories)
	stats.GET("/monthly", statsHandler.Monthly)

	api.GET("/events", notificationHandler.Stream)
}
