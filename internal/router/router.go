package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"                   // the Echo web framework handles routing
	echomw "github.com/labstack/echo/v4/middleware" // built-in middleware (CORS)

	"github.com/iliyamo/certification-consulting-api/internal/handler" // handlers implementing the endpoints
)

// RegisterRoutes wires all endpoints of the consulting API onto the
// provided Echo instance. CORS is wide open on purpose: the API is a
// public demo backend consumed by third-party frontends.
//
// topicsCache is the response-cache middleware applied to the topic
// catalog; pass a passthrough middleware to disable caching.
func RegisterRoutes(e *echo.Echo, chat *handler.ChatHandler, diag *handler.DiagnosticHandler, topicsCache echo.MiddlewareFunc) {
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{echo.GET, echo.HEAD, echo.PUT, echo.PATCH, echo.POST, echo.DELETE, echo.OPTIONS},
		AllowHeaders:     []string{"*"},
		AllowCredentials: true,
	}))

	// Liveness probe for load balancers and monitoring.
	e.GET("/healthz", handler.Health)

	// Static banners confirming the backend is reachable.
	e.GET("/", handler.Root)
	e.GET("/api/hello", handler.Hello)

	// Diagnostic probe for the optional database.
	e.GET("/test", diag.TestDatabase)

	// Certification catalog, cached in Redis when available.
	e.GET("/api/topics", handler.ListTopics, topicsCache)

	// Rule-based consultant chat.
	e.POST("/api/chat", chat.Chat)
}
