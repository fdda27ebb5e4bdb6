// founder-compass - guided discovery interview server
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ashureev/founder-compass/internal/api"
	"github.com/ashureev/founder-compass/internal/benchdata"
	"github.com/ashureev/founder-compass/internal/config"
	"github.com/ashureev/founder-compass/internal/generator"
	"github.com/ashureev/founder-compass/internal/identity"
	"github.com/ashureev/founder-compass/internal/interview"
	"github.com/ashureev/founder-compass/internal/middleware"
	"github.com/ashureev/founder-compass/internal/scraper"
	"github.com/ashureev/founder-compass/internal/store"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
)

// cleanupInterval is how often expired interviews are purged.
const cleanupInterval = time.Hour

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting server", "port", cfg.Port, "dev", cfg.IsDevelopment())

	// Initialize dependencies.
	repo, err := store.NewSQLite(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if closeErr := repo.Close(); closeErr != nil {
			slog.Error("Failed to close repository", "error", closeErr)
		}
	}()

	if err := repo.Ping(context.Background()); err != nil {
		slog.Error("Database health check failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database connected")

	// Benchmark data degrades, never blocks startup: a broken override
	// file falls back to the embedded table.
	bench, err := benchdata.Load(cfg.BenchmarkPath)
	if err != nil {
		slog.Warn("Benchmark override not applied, using embedded table", "path", cfg.BenchmarkPath, "error", err)
	}
	slog.Info("Benchmark table loaded", "stages", len(bench))

	// The generation service is optional: without it every turn uses the
	// deterministic fallback.
	var gen generator.Generator
	generatorEnabled := false
	if cfg.GeneratorURL != "" {
		clientCfg := generator.DefaultClientConfig(cfg.GeneratorURL)
		clientCfg.RequestTimeout = cfg.GeneratorTimeout
		client, err := generator.NewClient(clientCfg, logger)
		if err != nil {
			slog.Warn("Generation service unreachable, running on fallback", "error", err)
		} else {
			gen = client
			generatorEnabled = true
		}
	}
	if !generatorEnabled {
		slog.Info("Generation service disabled (GENERATOR_URL not set or connection failed)")
	}

	engine := interview.NewEngine(gen, bench)

	var sc *scraper.Scraper
	if cfg.ScraperEnabled {
		sc = scraper.New(cfg.ScraperTimeout)
	}

	// Initialize handlers.
	baseHandler := api.NewHandler(repo, engine, sc)
	healthHandler := api.NewHealthHandler(repo, generatorEnabled)
	wsHandler := api.NewWSHandler(baseHandler, cfg.FrontendURL, cfg.IsDevelopment())

	// Setup router.
	r := chi.NewRouter()

	// Global middleware.
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))
	r.Use(middleware.CORS(corsOrigins(cfg)))
	r.Use(identity.Middleware(cfg.IsDevelopment()))

	healthHandler.RegisterHealth(r)
	baseHandler.RegisterRoutes(r)
	r.Get("/ws/interview", wsHandler.ServeHTTP)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 90 * time.Second, // a turn can wait on the generator
		IdleTimeout:  120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	startCleanupWorker(ctx, repo, cfg.SessionTTL)
	slog.Info("Session cleanup worker started", "session_ttl", cfg.SessionTTL)

	// Start server.
	go func() {
		slog.Info("Server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal.
	<-ctx.Done()
	stop()

	slog.Info("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server stopped successfully")
}

func corsOrigins(cfg *config.Config) []string {
	if cfg.FrontendURL != "" {
		return []string{cfg.FrontendURL}
	}
	return []string{"*"}
}

// startCleanupWorker periodically removes interviews idle past the TTL.
func startCleanupWorker(ctx context.Context, repo store.Repository, ttl time.Duration) {
	go func() {
		ticker := time.NewTicker(cleanupInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				removed, err := repo.CleanupExpired(ctx, ttl)
				if err != nil {
					slog.Error("Session cleanup failed", "error", err)
					continue
				}
				if removed > 0 {
					slog.Info("Expired interviews removed", "count", removed)
				}
			}
		}
	}()
}
