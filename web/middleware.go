// File: web/middleware.go
// Author: Andrei Batyrov <arbatyrov@edu.hse.ru>

package web

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v5"
	"github.com/labstack/echo/v5/middleware"
	"golang.org/x/time/rate"
)

// Setup attaches the common middleware chain: panic recovery, request
// IDs, CORS and request logging.
func Setup(e *echo.Echo, logger *slog.Logger) {
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType},
	}))
	e.Use(RequestLogger(logger))
}

// RequestLogger logs one line per request with method, URI, latency and
// the request ID assigned by the RequestID middleware.
func RequestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			start := time.Now()

			err := next(c)

			req := (*c).Request()

			logger.Info("request",
				"method", req.Method,
				"uri", req.RequestURI,
				"latency_ms", time.Since(start).Milliseconds(),
				"request_id", (*c).Response().Header().Get(echo.HeaderXRequestID),
				"remote_ip", (*c).RealIP(),
			)

			return err
		}
	}
}

// RateLimit rejects requests beyond perSec sustained throughput with
// burst capacity, answering 429. The limiter is shared by all clients.
func RateLimit(perSec float64, burst int) echo.MiddlewareFunc {
	limiter := rate.NewLimiter(rate.Limit(perSec), burst)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			if !limiter.Allow() {
				return (*c).JSON(http.StatusTooManyRequests, map[string]string{
					"error":   "rate_limited",
					"message": "Too many requests, slow down.",
				})
			}
			return next(c)
		}
	}
}
