// Package cli holds the cobra commands of the lpg-delivery binary.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"lpg-delivery-api/config"
	"lpg-delivery-api/logger"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var rootCmd = &cobra.Command{
	Use:   "lpg-delivery",
	Short: "LPG cylinder delivery API",
	Long: `lpg-delivery serves the LPG cylinder delivery API: customers order
cylinders, admins manage stock and assign deliveries, delivery personnel
close them and customers leave feedback.

Configuration comes from .env, an optional config.yaml and LPG_* variables.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// bootstrap loads configuration, builds the logger and opens the
// migrated database shared by every command.
func bootstrap() (*config.Config, *slog.Logger, *gorm.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	log := logger.New(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})

	db, err := config.OpenDB(cfg.DB)
	if err != nil {
		return nil, nil, nil, err
	}
	if err := config.Migrate(db); err != nil {
		return nil, nil, nil, err
	}
	log.Info("database ready", "driver", cfg.DB.Driver)
	return cfg, log, db, nil
}

func closeDB(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
}
