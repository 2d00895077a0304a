package migrations

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/consensuslabs/pavilion-network/commentinfo/internal/database"
)

const (
	DirectionUp   = "up"
	DirectionDown = "down"
)

type Migrator interface {
	Up() error
	Down() error
}

type namedMigration struct {
	Name     string
	Migrator Migrator
}

func all(db *gorm.DB) []namedMigration {
	return []namedMigration{
		{"001_create_comment_info", NewCommentInfoMigration(db)},
		{"002_create_user_activity", NewUserActivityMigration(db)},
	}
}

// RunMigrations applies or rolls back the schema according to direction
func RunMigrations(migrationConfig *database.MigrationConfig, db *gorm.DB, direction string) error {
	log := migrationConfig.Logger

	log.LogInfo("Migration Configuration", map[string]interface{}{
		"environment":     migrationConfig.Environment,
		"auto_migrate":    migrationConfig.AutoMigrate,
		"force_migration": migrationConfig.ForceRun,
		"direction":       direction,
	})

	if !migrationConfig.ShouldRunMigration() {
		log.LogInfo("Skipping migrations", map[string]interface{}{
			"environment":     migrationConfig.Environment,
			"auto_migrate":    migrationConfig.AutoMigrate,
			"force_migration": migrationConfig.ForceRun,
		})
		return nil
	}

	if err := migrationConfig.InitializeMigrationTable(); err != nil {
		return fmt.Errorf("failed to initialize migration table: %w", err)
	}

	migrations := all(db)

	switch direction {
	case DirectionUp:
		batchNo, err := migrationConfig.NextBatch()
		if err != nil {
			return err
		}
		for i, migration := range migrations {
			applied, err := migrationConfig.HasMigrationBeenApplied(migration.Name)
			if err != nil {
				return fmt.Errorf("failed to check migration status: %w", err)
			}
			if applied {
				log.LogInfo("Migration already applied", map[string]interface{}{
					"migration": migration.Name,
				})
				continue
			}

			log.LogInfo("Running migration up", map[string]interface{}{
				"index": i + 1,
				"name":  migration.Name,
			})
			if err := migration.Migrator.Up(); err != nil {
				return fmt.Errorf("failed to run migration %s up: %w", migration.Name, err)
			}

			if err := migrationConfig.RecordMigration(migration.Name, migration.Name, batchNo); err != nil {
				return fmt.Errorf("failed to record migration %s: %w", migration.Name, err)
			}
		}
	case DirectionDown:
		for i := len(migrations) - 1; i >= 0; i-- {
			log.LogInfo("Running migration down", map[string]interface{}{
				"index": i + 1,
				"name":  migrations[i].Name,
			})
			if err := migrations[i].Migrator.Down(); err != nil {
				return fmt.Errorf("failed to run migration %s down: %w", migrations[i].Name, err)
			}
			if err := migrationConfig.RemoveMigration(migrations[i].Name); err != nil {
				return fmt.Errorf("failed to forget migration %s: %w", migrations[i].Name, err)
			}
		}
	default:
		return fmt.Errorf("invalid migration direction: %s", direction)
	}

	return nil
}
