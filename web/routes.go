// File: web/routes.go
// Author: Andrei Batyrov <arbatyrov@edu.hse.ru>

package web

import (
	"github.com/labstack/echo/v5"
)

// Routes wires the handler into the echo router. The solve endpoints
// share one rate limiter configured from cfg.
func Routes(e *echo.Echo, h *Handler, cfg *Config) {

	e.GET("/health", func(c *echo.Context) error { return h.HealthCheck(c) })

	e.GET("/", func(c *echo.Context) error { return h.Index(c) })

	solve := e.Group("/solve")
	solve.Use(RateLimit(cfg.RatePerSec, cfg.RateBurst))
	{
		solve.GET("", func(c *echo.Context) error { return h.SolveGet(c) })
		solve.POST("", func(c *echo.Context) error { return h.SolvePost(c) })
	}
}
