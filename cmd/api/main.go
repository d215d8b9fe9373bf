// Package main is the entry point for the kid-friendly places API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"database/sql"
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
	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" driver for database/sql
	"github.com/pressly/goose/v3"
	"golang.org/x/sync/errgroup"

	"github.com/pkordes/kidmap/backend/internal/auth"
	"github.com/pkordes/kidmap/backend/internal/config"
	"github.com/pkordes/kidmap/backend/internal/handler"
	"github.com/pkordes/kidmap/backend/internal/mapview"
	"github.com/pkordes/kidmap/backend/internal/middleware"
	"github.com/pkordes/kidmap/backend/internal/overpass"
	"github.com/pkordes/kidmap/backend/internal/repo"
	"github.com/pkordes/kidmap/backend/internal/service"
	"github.com/pkordes/kidmap/backend/migrations"
	"github.com/pkordes/kidmap/backend/spec"
)

// sessionPruneInterval is how often expired Postgres sessions are deleted.
const sessionPruneInterval = 15 * time.Minute

func main() {
	if err := run(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		// Use the default logger before ours is configured.
		return err
	}

	// --- Logger -----------------------------------------------------------
	// JSON handler writes machine-readable output suitable for log aggregators.
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Database ---------------------------------------------------------
	// pgxpool.New does not open connections immediately; the first query does.
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer pool.Close()

	// Verify the DB is reachable before accepting traffic.
	if err := pool.Ping(ctx); err != nil {
		return err
	}
	slog.Info("database connection established")

	if err := migrate(ctx, cfg.DatabaseURL); err != nil {
		return err
	}

	// --- Sessions ---------------------------------------------------------
	var sessions repo.SessionRepo
	switch cfg.SessionStore {
	case config.SessionStoreRedis:
		rdb, err := repo.OpenRedis(ctx, cfg.RedisAddr)
		if err != nil {
			return err
		}
		defer rdb.Close()
		sessions = repo.NewRedisSessionRepo(rdb)
	default:
		sessions = repo.NewSessionRepo(pool)
	}
	slog.Info("session store ready", "store", cfg.SessionStore)

	// --- Services ---------------------------------------------------------
	fetcher := overpass.NewClient(cfg.OverpassURL,
		overpass.WithHTTPClient(&http.Client{Timeout: cfg.OverpassTimeout}),
	)
	placeSvc := service.NewPlaceService(fetcher, cfg.PlacesCacheTTL)
	favoriteSvc := service.NewFavoriteService(repo.NewFavoriteRepo(pool))
	authSvc := service.NewAuthService(
		auth.NewVerifier(cfg.AuthTokenSecret, cfg.AuthIssuer),
		repo.NewUserRepo(pool),
		sessions,
		cfg.SessionTTL,
	)

	commands := mapview.NewDispatcher()
	mapview.RegisterFavoriteCommands(commands, favoriteSvc)

	api := handler.NewServer(placeSvc, favoriteSvc, authSvc, commands,
		handler.WithLogger(logger),
		handler.WithSecureCookie(cfg.CookieSecure),
	)

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order: RequestID → RealIP → Logger → Recoverer → CORS → body limit.
	// RequestID generates a unique trace ID per request.
	// RealIP sets r.RemoteAddr from X-Forwarded-For / X-Real-IP (safe behind a proxy).
	// SlogLogger writes one structured JSON log line per request.
	// Recoverer catches panics and returns HTTP 500 instead of crashing.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))

	r.Get("/openapi.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(spec.OpenAPI)
	})

	// The session middleware runs per operation, so it only guards the
	// operations that declare the session cookie security scheme.
	r.Mount("/", api.Handler(middleware.NewSessionAuth(authSvc, logger)))

	// --- HTTP Server ------------------------------------------------------
	// The write timeout leaves room for a cold place fetch.
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.OverpassTimeout + 10*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// Graceful shutdown: wait for a signal (or a failed sibling), then give
	// in-flight requests up to 15 seconds to complete.
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if pruner, ok := sessions.(repo.SessionPruner); ok {
		g.Go(func() error {
			pruneSessions(gctx, pruner, logger)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	slog.Info("server stopped")
	return nil
}

// migrate applies pending migrations through goose's database/sql API.
func migrate(ctx context.Context, dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return err
	}
	results, err := provider.Up(ctx)
	if err != nil {
		return err
	}
	for _, res := range results {
		slog.Info("migration applied", "version", res.Source.Version, "duration", res.Duration)
	}
	return nil
}

// pruneSessions deletes expired sessions every sessionPruneInterval until ctx ends.
func pruneSessions(ctx context.Context, p repo.SessionPruner, log *slog.Logger) {
	ticker := time.NewTicker(sessionPruneInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := p.DeleteExpired(ctx)
			if err != nil {
				if ctx.Err() == nil {
					log.WarnContext(ctx, "session prune failed", "error", err)
				}
				continue
			}
			if n > 0 {
				log.InfoContext(ctx, "expired sessions pruned", "count", n)
			}
		}
	}
}
