package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/campusfund/campusfund-api/config"
	"github.com/campusfund/campusfund-api/internal/adapters/postgres"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations to the postgres store",
	RunE:  runMigrate,
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cfg.Postgres.Addr == "" {
		return fmt.Errorf("PSQL_ADDRESS is required")
	}

	if err := postgres.Migrate(cfg.Postgres.Addr); err != nil {
		return err
	}

	fmt.Println("Migrations completed successfully")
	return nil
}
