package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/caffeinetrackr/caffeinetrackr/internal/auth"
	"github.com/caffeinetrackr/caffeinetrackr/internal/config"
	"github.com/caffeinetrackr/caffeinetrackr/internal/database"
	"github.com/caffeinetrackr/caffeinetrackr/internal/handlers"
	"github.com/caffeinetrackr/caffeinetrackr/internal/layout"
	"github.com/caffeinetrackr/caffeinetrackr/internal/middleware"
)

func main() {
	// Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(logger)

	// User store: PostgreSQL when configured, otherwise in memory
	ctx := context.Background()
	var (
		users  auth.UserStore
		health func(context.Context) error
	)
	if cfg.DatabaseURL != "" {
		db, err := database.New(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("failed to connect to database: %v", err)
		}
		defer db.Close()

		if err := db.Migrate(ctx); err != nil {
			log.Fatalf("failed to migrate database: %v", err)
		}

		users = database.NewUsers(db)
		health = db.Health
	} else {
		logger.Warn("DATABASE_URL not set, accounts are kept in memory")
		users = auth.NewMemoryUserStore()
		health = func(context.Context) error { return nil }
	}

	// Authentication
	sessions := auth.NewSessionStore(
		cfg.SessionSecret,
		cfg.SessionMaxAge,
		cfg.SecureCookies(),
	)
	provider := auth.NewProvider(users, sessions, auth.NewPasswordHasher(auth.DefaultPasswordConfig()))

	// Per-visitor layout state
	ui := layout.NewStateStore(cfg.SessionSecret, cfg.SecureCookies())

	// Handlers
	h := handlers.New(provider, ui, logger)

	// Router
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Session(provider))

	// Static files
	fileServer := http.FileServer(http.Dir("static"))
	r.Handle("/static/*", http.StripPrefix("/static/", fileServer))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := health(r.Context()); err != nil {
			http.Error(w, "unhealthy", http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte("ok"))
	})

	h.Mount(r)

	// Server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("server starting", "port", cfg.Port, "base_url", cfg.BaseURL, "environment", cfg.Environment)
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-shutdown
	logger.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("shutdown error: %v", err)
	}

	logger.Info("shutdown complete")
}
