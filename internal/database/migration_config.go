package database

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// MigrationRecord tracks which migrations have been executed
type MigrationRecord struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"not null;uniqueIndex:idx_schema_migrations_name"` // Migration name
	Hash      string    `gorm:"not null"`                                        // Hash of migration content for integrity
	AppliedAt time.Time `gorm:"not null"`
	BatchNo   int       `gorm:"not null"` // Batch number for grouping migrations
}

// TableName specifies the table name for migration records
func (MigrationRecord) TableName() string {
	return "schema_migrations"
}

// MigrationConfig holds configuration for database migrations
type MigrationConfig struct {
	Environment string
	AutoMigrate bool
	ForceRun    bool
	Logger      Logger
	db          *gorm.DB
}

// NewMigrationConfig creates a new migration configuration
func NewMigrationConfig(db *gorm.DB, logger Logger, environment string, autoMigrate, force bool) *MigrationConfig {
	if environment == "" {
		environment = "development"
	}
	return &MigrationConfig{
		Environment: environment,
		AutoMigrate: autoMigrate,
		ForceRun:    force,
		Logger:      logger,
		db:          db,
	}
}

// InitializeMigrationTable creates the migrations tracking table
func (c *MigrationConfig) InitializeMigrationTable() error {
	if err := c.db.AutoMigrate(&MigrationRecord{}); err != nil {
		return fmt.Errorf("failed to create schema_migrations table: %w", err)
	}
	return nil
}

// HasMigrationBeenApplied checks if a specific migration has already been run
func (c *MigrationConfig) HasMigrationBeenApplied(name string) (bool, error) {
	var count int64
	err := c.db.Model(&MigrationRecord{}).Where("name = ?", name).Count(&count).Error
	return count > 0, err
}

// RecordMigration records a successful migration
func (c *MigrationConfig) RecordMigration(name string, content string, batchNo int) error {
	hash := sha256.Sum256([]byte(content))

	record := MigrationRecord{
		Name:      name,
		Hash:      hex.EncodeToString(hash[:]),
		AppliedAt: time.Now().UTC(),
		BatchNo:   batchNo,
	}
	return c.db.Create(&record).Error
}

// NextBatch returns the batch number for migrations applied in this run
func (c *MigrationConfig) NextBatch() (int, error) {
	var batchNo int
	err := c.db.Model(&MigrationRecord{}).Select("COALESCE(MAX(batch_no), 0) + 1").Row().Scan(&batchNo)
	if err != nil {
		return 0, fmt.Errorf("failed to determine batch number: %w", err)
	}
	return batchNo, nil
}

// RemoveMigration forgets a migration after it was rolled back
func (c *MigrationConfig) RemoveMigration(name string) error {
	return c.db.Where("name = ?", name).Delete(&MigrationRecord{}).Error
}

// GetAppliedMigrations returns a list of all applied migrations
func (c *MigrationConfig) GetAppliedMigrations() ([]MigrationRecord, error) {
	var migrations []MigrationRecord
	err := c.db.Order("applied_at").Find(&migrations).Error
	return migrations, err
}

// ShouldRunMigration determines if migrations should be executed
func (c *MigrationConfig) ShouldRunMigration() bool {
	if c.ForceRun {
		return true
	}

	// In development or test, check AUTO_MIGRATE
	if c.Environment == "development" || c.Environment == "test" {
		return c.AutoMigrate
	}

	// In production or other environments, don't run migrations unless forced
	return false
}
