// File: cmd/mds-solver/main.go
// Author: Andrei Batyrov <arbatyrov@edu.hse.ru>
//
// mds-solver serves the quadratic equation solver over HTTP: an input
// form at /, JSON solve endpoints at /solve. Configuration comes from
// an INI file named by SOLVER_CONFIG (falling back to ./solver.ini,
// then to built-in defaults).

package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v5"

	"github.com/andrewha/mds2022/web"
)

func main() {

	cfg, loadErr := loadConfig()

	logger := setupLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	if loadErr != nil {
		slog.Warn("Cannot read config, using defaults", "error", loadErr)
	}
	slog.Info("Starting quadratic solver",
		"environment", cfg.Environment,
		"port", cfg.ServerPort,
	)

	e := echo.New()

	web.Setup(e, logger)

	h := web.NewHandler(cfg, logger)

	web.Routes(e, h, cfg)

	// echo v5 removed Echo.Shutdown; the server object is owned by the
	// caller, so run e through an explicit http.Server.
	srv := &http.Server{Addr: ":" + cfg.ServerPort, Handler: e}

	go func() {
		slog.Info("Server starting", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil {
			slog.Error("Server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
	}

	slog.Info("Server exited")
}

// loadConfig reads the INI file named by SOLVER_CONFIG (default
// solver.ini). A missing file is not an error; an unreadable one is
// reported to the caller alongside the defaults.
func loadConfig() (*web.Config, error) {
	path := os.Getenv("SOLVER_CONFIG")
	if path == "" {
		path = "solver.ini"
	}
	if _, err := os.Stat(path); err != nil {
		return web.Load(), nil
	}
	cfg, err := web.LoadFile(path)
	if err != nil {
		return web.Load(), fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: logLevel,
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}
