package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Madhav-Gupta-28/0xmart-admin-go/handlers"
	customMiddleware "github.com/Madhav-Gupta-28/0xmart-admin-go/middleware"
)

type Options struct {
	Sessions  customMiddleware.SessionReader
	JWTSecret []byte
	// Metrics serves /metrics when set.
	Metrics http.Handler
}

func SetupRoutes(e *echo.Echo, h *handlers.Handler, opts Options) {
	// Admin pages
	admin := e.Group("/admin")
	admin.Use(customMiddleware.RequireSession(opts.Sessions, handlers.LoginPath))
	admin.GET("/dashboard", h.Dashboard)
	admin.GET("/orders/:id/delete", h.ConfirmDelete)
	admin.POST("/orders/:id/delete", h.DeleteOrder)
	admin.POST("/orders/:id/status", h.UpdateStatus)

	// Protected API routes
	api := e.Group("/api")
	api.Use(customMiddleware.APIAuth(opts.JWTSecret))
	api.GET("/orders", h.ListOrders)
	api.GET("/orders/stats", h.OrderStats)
	api.PATCH("/orders/:id/status", h.PatchOrderStatus)
	api.DELETE("/orders/:id", h.DeleteOrderAPI)

	// Public routes; must follow the groups' catch-all registrations.
	e.GET(handlers.LoginPath, h.ShowLogin)
	e.POST(handlers.LoginPath, h.Login)
	e.POST("/admin/logout", h.Logout)
	e.POST("/api/auth/token", h.IssueToken)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	if opts.Metrics != nil {
		e.GET("/metrics", echo.WrapHandler(opts.Metrics))
	}
}
