// Command notifier runs one cycle of the daily push notification job. A cron
// entry invokes it at midnight UTC; it records the daily reset, looks up the
// day's lead humor, publishes it to NATS, and exits.
//
// Exit codes: 0 = success (including no-item days), 1 = error.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/dailydoses/humor-backend/internal/adapter/postgres"
	appstaterepo "github.com/dailydoses/humor-backend/internal/adapter/postgres/appstate"
	humorrepo "github.com/dailydoses/humor-backend/internal/adapter/postgres/humor"
	"github.com/dailydoses/humor-backend/internal/app"
	"github.com/dailydoses/humor-backend/internal/config"
	"github.com/dailydoses/humor-backend/internal/domain"
	"github.com/dailydoses/humor-backend/internal/notify"
	appstatesvc "github.com/dailydoses/humor-backend/internal/service/appstate"
	notifiersvc "github.com/dailydoses/humor-backend/internal/service/notifier"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "notifier: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	pub, err := notify.New(cfg.Push)
	if err != nil {
		return fmt.Errorf("push broker: %w", err)
	}
	defer pub.Close()

	svc := notifiersvc.NewService(
		logger,
		humorrepo.New(pool),
		appstatesvc.NewService(logger, appstaterepo.New(pool)),
		pub,
		domain.HumorCategory(cfg.Push.Category),
	)

	logger.Info("notifier run starting", slog.String("category", cfg.Push.Category))

	if err := svc.Run(ctx); err != nil {
		return err
	}

	logger.Info("notifier run finished")
	return nil
}
