// Package main is the entry point for the Hammock Spots API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
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

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/pkordes/hammock-spots/internal/auth"
	"github.com/pkordes/hammock-spots/internal/config"
	"github.com/pkordes/hammock-spots/internal/handler"
	"github.com/pkordes/hammock-spots/internal/middleware"
	"github.com/pkordes/hammock-spots/internal/repo"
	"github.com/pkordes/hammock-spots/internal/service"
	"github.com/pkordes/hammock-spots/migrations"
)

func main() {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		// Use plain stderr before the logger is configured.
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Store ------------------------------------------------------------
	spotRepo, closeStore, err := openStore(context.Background(), cfg)
	if err != nil {
		slog.Error("failed to open record store", "driver", cfg.StoreDriver, "error", err)
		os.Exit(1)
	}
	defer closeStore()
	slog.Info("record store ready", "driver", cfg.StoreDriver)

	// --- Services ---------------------------------------------------------
	tokens, err := auth.NewJWTService(cfg.JWTSecret)
	if err != nil {
		slog.Error("failed to configure token validation", "error", err)
		os.Exit(1)
	}
	spots := service.NewHammockSpotService(spotRepo)
	api := handler.NewServer(spots, tokens, logger)

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order: RequestID → RealIP → Logger → Recoverer
	// → CORS → body limit. The API's own route table is mounted last.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes, api.WriteError))
	r.Mount("/", api.Routes())

	// --- HTTP Server ------------------------------------------------------
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

// openStore connects to the configured record store, applies pending
// migrations, and returns the repo plus a function that releases it.
func openStore(ctx context.Context, cfg config.Config) (repo.HammockSpotRepo, func(), error) {
	switch cfg.StoreDriver {
	case config.DriverSQLite:
		db, err := repo.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		if err := repo.Migrate(ctx, db, goose.DialectSQLite3, migrations.SQLite()); err != nil {
			db.Close()
			return nil, nil, err
		}
		return repo.NewSQLiteHammockSpotRepo(db), func() { db.Close() }, nil

	default:
		// pgxpool manages a pool of Postgres connections. New() does not
		// open connections immediately; Ping verifies the DB is reachable.
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}

		// goose drives database/sql; share the pool through the pgx stdlib adapter.
		db := stdlib.OpenDBFromPool(pool)
		if err := repo.Migrate(ctx, db, goose.DialectPostgres, migrations.Postgres()); err != nil {
			db.Close()
			pool.Close()
			return nil, nil, err
		}
		return repo.NewHammockSpotRepo(pool), func() {
			db.Close()
			pool.Close()
		}, nil
	}
}
