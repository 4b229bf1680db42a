package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/clearclause/clearclause/internal/config"
	"github.com/clearclause/clearclause/internal/handler"
	"github.com/clearclause/clearclause/internal/inference"
	"github.com/clearclause/clearclause/internal/repository/sqlite"
	"github.com/clearclause/clearclause/internal/service"
	"github.com/clearclause/clearclause/internal/session"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load configuration", "error", err)
		os.Exit(1)
	}

	db, err := sqlite.New(cfg.DatabasePath)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Migrate(context.Background()); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("database migrations applied")

	authService := service.NewAuthService(db.Users(), cfg.JWTSecret, cfg.BcryptCost)
	glossaryService := service.NewGlossaryService(db.Glossary())
	analyzer, err := service.NewAnalyzer()
	if err != nil {
		slog.Error("failed to create analyzer", "error", err)
		os.Exit(1)
	}

	generator := inference.NewClient(cfg.Inference.EndpointURL, cfg.Inference.APIToken, cfg.Inference.Timeout)
	simplifier, err := service.NewSimplifier(generator, db.SimplificationLogs())
	if err != nil {
		slog.Error("failed to create simplifier", "error", err)
		os.Exit(1)
	}

	// Seed the built-in glossary (idempotent).
	if err := glossaryService.SeedDefaults(context.Background()); err != nil {
		slog.Error("failed to seed glossary", "error", err)
		os.Exit(1)
	}
	slog.Info("glossary seeded")

	mux := http.NewServeMux()
	root := handler.RegisterRoutes(mux, handler.Services{
		Auth:         authService,
		Simplifier:   simplifier,
		Analyzer:     analyzer,
		Glossary:     glossaryService,
		Limiter:      service.NewTokenBucket(cfg.RateLimit.Rate, cfg.RateLimit.Capacity),
		Sessions:     session.NewStore(),
		CookieSecure: cfg.CookieSecure,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           root,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1MB
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
