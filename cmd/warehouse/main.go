package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/warehouse-keeper/internal/adapter"
	"github.com/MKhiriev/warehouse-keeper/internal/alert"
	"github.com/MKhiriev/warehouse-keeper/internal/cli"
	"github.com/MKhiriev/warehouse-keeper/internal/config"
	"github.com/MKhiriev/warehouse-keeper/internal/crypto"
	"github.com/MKhiriev/warehouse-keeper/internal/logger"
	"github.com/MKhiriev/warehouse-keeper/internal/service"
	"github.com/MKhiriev/warehouse-keeper/internal/store"
	"github.com/MKhiriev/warehouse-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewLogger("warehouse")

	if err := crypto.EnsureHashingAvailable(); err != nil {
		log.Fatal().Err(err).Msg("password hashing is unavailable")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	app := cli.New(buildInfo(), bootstrap, log)
	err := app.Execute(ctx, os.Args[1:])
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, cli.Message(err))
		os.Exit(cli.ExitCode(err))
	}
}

// bootstrap wires the application for one command invocation.
func bootstrap(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (*cli.App, error) {
	hasher, err := crypto.NewPasswordHasher(cfg.App.PasswordHashAlgorithm)
	if err != nil {
		return nil, fmt.Errorf("create password hasher: %w", err)
	}

	storages, err := store.NewStorages(ctx, cfg.Storage.DB, log)
	if err != nil {
		return nil, fmt.Errorf("create storage: %w", err)
	}

	channel, err := adapter.NewNotificationChannel(cfg.Alerts, log)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create notification channel: %w", err)
	}

	dispatcher := alert.NewDispatcher(channel, cfg.Alerts, log)
	services := service.NewServices(storages, hasher, dispatcher, *cfg, log)

	return &cli.App{
		Auth:            services.AuthService,
		Inventory:       services.InventoryService,
		Schema:          storages.DB(),
		RefreshInterval: cfg.Workers.RefreshInterval,
		Close: func() error {
			// pending alerts are delivered before the handle goes away
			dispatcher.Wait()
			return storages.Close()
		},
	}, nil
}

func buildInfo() models.AppBuildInfo {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	return models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
}
