package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/pairlog/pairlog-backend/internal/adapter/postgres"
	activityrepo "github.com/pairlog/pairlog-backend/internal/adapter/postgres/activity"
	entryrepo "github.com/pairlog/pairlog-backend/internal/adapter/postgres/entry"
	notificationrepo "github.com/pairlog/pairlog-backend/internal/adapter/postgres/notification"
	userrepo "github.com/pairlog/pairlog-backend/internal/adapter/postgres/user"
	"github.com/pairlog/pairlog-backend/internal/adapter/s3"
	"github.com/pairlog/pairlog-backend/internal/config"
	"github.com/pairlog/pairlog-backend/internal/service/activity"
	"github.com/pairlog/pairlog-backend/internal/service/journal"
	"github.com/pairlog/pairlog-backend/internal/service/summary"
	"github.com/pairlog/pairlog-backend/internal/service/user"
	"github.com/pairlog/pairlog-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, applies migrations, wires repositories, services and the
// HTTP transport, then serves until the context is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if err := postgres.Migrate(ctx, cfg.Database.DSN); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	imageStore, err := s3.New(ctx, cfg.ImageStore, logger)
	if err != nil {
		return fmt.Errorf("init image store: %w", err)
	}

	users := userrepo.New(pool)
	entries := entryrepo.New(pool)
	activities := activityrepo.New(pool)
	notifications := notificationrepo.New(pool)
	txManager := postgres.NewTxManager(pool)

	userSvc := user.NewService(logger, users)
	journalSvc := journal.NewService(logger, entries, users, imageStore)
	activitySvc := activity.NewService(logger, activities, notifications, entries, users, txManager)
	summarySvc := summary.NewService(logger, entries, activities, notifications)

	router := rest.NewRouter(rest.Handlers{
		Health:   rest.NewHealthHandler(pool, BuildVersion()),
		Users:    rest.NewUserHandler(userSvc, logger),
		Entries:  rest.NewEntryHandler(journalSvc, logger),
		Activity: rest.NewActivityHandler(activitySvc, logger),
		Summary:  rest.NewSummaryHandler(summarySvc, logger),
		Images:   rest.NewImageHandler(imageStore, logger),
	}, cfg.CORS, logger)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
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

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}
