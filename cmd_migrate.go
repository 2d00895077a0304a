package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/consensuslabs/pavilion-network/commentinfo/internal/database"
	"github.com/consensuslabs/pavilion-network/commentinfo/migrations"
)

var (
	migrateDirection string
	migrateForce     bool
)

var migrateCommand = &cobra.Command{
	Use:   "migrate",
	Short: "Apply or roll back the comment info schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		return migrateCommandImpl(cmd.Context())
	},
}

func migrateCommandImpl(ctx context.Context) error {
	if migrateDirection != migrations.DirectionUp && migrateDirection != migrations.DirectionDown {
		return fmt.Errorf("invalid direction %q, expected %q or %q", migrateDirection, migrations.DirectionUp, migrations.DirectionDown)
	}

	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}

	dbService := database.NewDatabaseService(&cfg.Database, log)
	db, err := dbService.Connect(ctx)
	if err != nil {
		return log.LogError(err, "Failed to connect to database")
	}
	defer dbService.Close()

	migrationConfig := database.NewMigrationConfig(db, log, cfg.Environment, true, migrateForce)
	if err := migrations.RunMigrations(migrationConfig, db, migrateDirection); err != nil {
		return log.LogError(err, "Migration failed")
	}
	return nil
}

func init() {
	migrateCommand.Flags().StringVar(&migrateDirection, "direction", migrations.DirectionUp, "migration direction (up or down)")
	migrateCommand.Flags().BoolVar(&migrateForce, "force", false, "run migrations outside development and test environments")
	rootCommand.AddCommand(migrateCommand)
}
