// cmd/server/main.go
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"gmao/internal/auth"
	"gmao/internal/config"
	"gmao/internal/handlers"
	"gmao/internal/logging"
	"gmao/internal/middleware"
	"gmao/internal/repo"
	"gmao/internal/session"
	"gmao/internal/store"
)

func main() {
	// --- Load config (.env + config.yaml + env overrides) ---
	_ = godotenv.Load()
	cfg := config.Load()

	// --- Logger ---
	// Configure slog from config: logging.level, logging.format
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format == "json")

	// Configure session cookie security (dev often needs Secure=false)
	auth.SetCookieSecurity(cfg.Security.Session.CookieSecure)
	// Configure SameSite policy
	auth.SetCookieSameSite(cfg.Security.Session.SameSite)

	// --- Background session sweeper ---
	interval := cfg.Security.Session.SweeperInterval
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	go session.DefaultStore.StartSweeper(context.Background(), interval)

	// --- Open storage ---
	ctx := context.Background()
	slog.Debug("opening storage", "backend", cfg.Storage.Backend)
	backend, err := store.Open(cfg.Storage.Backend, cfg.Storage.Dir, cfg.Storage.DSN)
	if err != nil {
		slog.Error("storage open error", "err", err)
		os.Exit(1)
	}

	reg := repo.New(backend)
	defer reg.Close()
	if err := reg.Warm(ctx); err != nil {
		slog.Error("storage load error", "err", err)
		os.Exit(1)
	}
	slog.Debug("storage ready", "backend", cfg.Storage.Backend)

	// --- Router ---
	mux := chi.NewRouter()

	// Ensure request ID then log requests with slog
	mux.Use(middleware.RequestID(cfg.Security.RequestID.TrustHeader))
	mux.Use(middleware.SlogRequestLogger)
	if cfg.Security.RateLimit.Enabled {
		mux.Use(middleware.RateLimitWith(cfg.Security.RateLimit.RequestsPerMinute, cfg.Security.RateLimit.Burst, cfg.Security.RateLimit.TTL))
	}

	// --- CORS middleware ---
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Server.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300, // Maximum value not ignored by browsers
	}))

	// Auth, entity and reporting routes
	handlers.RegisterRoutes(mux, reg)

	// --- Start server ---
	addr := cfg.Server.Addr
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}
	slog.Info("listening", "addr", addr, "storage", cfg.Storage.Backend)
	if err := http.ListenAndServe(addr, mux); err != nil {
		slog.Error("server error", "err", err)
		os.Exit(1)
	}
}
