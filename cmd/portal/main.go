// Package main implements the entry point for the property portal. It wires
// configuration, logging, the PostgreSQL connection provider, the stores,
// and the portal service facade, then bootstraps the embedded schema.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"time"

	"github.com/alienx5499/property-portal/internal/config"
	"github.com/alienx5499/property-portal/internal/domain"
	"github.com/alienx5499/property-portal/internal/platform/logger"
	"github.com/alienx5499/property-portal/internal/platform/postgres"
	"github.com/alienx5499/property-portal/internal/service"
)

const startupTimeout = 30 * time.Second

func main() {
	fmt.Println("Property Portal starting...")

	if err := run(); err != nil {
		log.Fatalf("Failed to start property portal: %v", err)
	}
}

// run loads configuration and assembles the application components.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("configuration loaded",
		slog.String("log_level", cfg.Server.LogLevel))

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	provider := postgres.NewProvider(cfg.Database, appLogger)

	created, err := provider.EnsureDatabase(ctx)
	if err != nil {
		return fmt.Errorf("failed to ensure database exists: %w", err)
	}
	if created {
		appLogger.Info("target database created")
	}

	db, err := provider.Connect(ctx)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer provider.Close()

	if err := provider.InitializeSchema(ctx, postgres.Schema); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}

	portal, err := service.NewPortalService(db, service.Stores{
		Agencies:    postgres.NewPostgresAgencyStore(db, appLogger),
		Properties:  postgres.NewPostgresPropertyStore(db, appLogger),
		Agents:      postgres.NewPostgresAgentStore(db, appLogger),
		Performance: postgres.NewPostgresAgentPerformanceStore(db, appLogger),
		Buyers:      postgres.NewPostgresBuyerStore(db, appLogger),
		Features:    postgres.NewPostgresFeatureStore(db, appLogger),
		Inquiries:   postgres.NewPostgresInquiryStore(db, appLogger),
		Offers:      postgres.NewPostgresOfferStore(db, appLogger),
	}, appLogger)
	if err != nil {
		return fmt.Errorf("failed to build portal service: %w", err)
	}

	appLogger.Info("property portal ready",
		slog.Any("property_types", domain.PropertyTypes()),
		slog.Any("property_statuses", domain.PropertyStatuses()))

	// No transport layer is wired; report the portal-wide rollups as a
	// startup smoke check and exit.
	agencyStats, err := portal.GetAgencyStatistics(ctx)
	if err != nil {
		return fmt.Errorf("failed to read agency statistics: %w", err)
	}
	propertyStats, err := portal.GetPropertyStatistics(ctx)
	if err != nil {
		return fmt.Errorf("failed to read property statistics: %w", err)
	}

	appLogger.Info("portal statistics",
		slog.Int("agencies", agencyStats.TotalAgencies),
		slog.Int("agents", agencyStats.TotalAgents),
		slog.Int("properties", propertyStats.TotalProperties),
		slog.Int("sold", propertyStats.SoldProperties))

	return nil
}
