package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/dailydoses/humor-backend/internal/adapter/postgres"
	appstaterepo "github.com/dailydoses/humor-backend/internal/adapter/postgres/appstate"
	bundlerepo "github.com/dailydoses/humor-backend/internal/adapter/postgres/bundle"
	humorrepo "github.com/dailydoses/humor-backend/internal/adapter/postgres/humor"
	settingsrepo "github.com/dailydoses/humor-backend/internal/adapter/postgres/settings"
	submissionrepo "github.com/dailydoses/humor-backend/internal/adapter/postgres/submission"
	"github.com/dailydoses/humor-backend/internal/auth"
	"github.com/dailydoses/humor-backend/internal/config"
	appstatesvc "github.com/dailydoses/humor-backend/internal/service/appstate"
	bundlesvc "github.com/dailydoses/humor-backend/internal/service/bundle"
	humorsvc "github.com/dailydoses/humor-backend/internal/service/humor"
	submissionsvc "github.com/dailydoses/humor-backend/internal/service/submission"
	"github.com/dailydoses/humor-backend/internal/storage"
	"github.com/dailydoses/humor-backend/internal/transport/rest"
)

// Run is the HTTP server entry point. It loads configuration, connects to
// the database, wires repositories, services and the REST router, and serves
// until SIGINT/SIGTERM.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting humor backend",
		slog.String("version", BuildVersion()),
		slog.String("environment", cfg.Environment),
		slog.String("log_level", cfg.Log.Level),
	)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()
	logger.Info("connected to database")

	txm := postgres.NewTxManager(pool)

	humors := humorrepo.New(pool)
	bundles := bundlerepo.New(pool)
	submissions := submissionrepo.New(pool)
	appStates := appstaterepo.New(pool)
	settings := settingsrepo.New(pool)

	// The stored admin hash is read once at startup, not on every request.
	storedHash, err := settings.AdminPasswordHash(ctx)
	if err != nil {
		return fmt.Errorf("load admin password hash: %w", err)
	}
	if storedHash == "" {
		storedHash = cfg.Admin.PasswordHash
	}
	gate := auth.NewGate(cfg.IsProduction(), storedHash)

	store, err := storage.NewFSStore(cfg.Storage)
	if err != nil {
		return fmt.Errorf("object storage: %w", err)
	}

	humorService := humorsvc.NewService(logger, humors, gate)
	bundleService := bundlesvc.NewService(logger, bundles, humors, gate, store, txm)
	submissionService := submissionsvc.NewService(logger, submissions, gate)
	appStateService := appstatesvc.NewService(logger, appStates)

	router := rest.NewRouter(rest.Deps{
		Logger:      logger,
		Humors:      humorService,
		Bundles:     bundleService,
		Submissions: submissionService,
		AppState:    appStateService,
		DB:          pool,
		Version:     BuildVersion(),
		CORS:        cfg.CORS,
		StaticDir:   cfg.Storage.Dir,
		MaxUploadMB: cfg.Storage.MaxUploadMB,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
