package database

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/consensuslabs/pavilion-network/commentinfo/internal/config"
)

// ErrNotConnected is returned when the service is used before Connect
var ErrNotConnected = errors.New("database not connected")

// DatabaseService implements the Service interface
type DatabaseService struct {
	config *config.DatabaseConfig
	logger Logger
	db     *gorm.DB
}

// NewDatabaseService creates a new database service instance
func NewDatabaseService(config *config.DatabaseConfig, logger Logger) *DatabaseService {
	return &DatabaseService{
		config: config,
		logger: logger,
	}
}

// DSN builds the postgres connection string from configuration
func DSN(cfg *config.DatabaseConfig) string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%d sslmode=%s TimeZone=%s",
		cfg.Host,
		cfg.User,
		cfg.Password,
		cfg.Dbname,
		cfg.Port,
		cfg.Sslmode,
		cfg.Timezone,
	)
}

// Connect establishes a connection to the database
func (s *DatabaseService) Connect(ctx context.Context) (*gorm.DB, error) {
	s.logger.LogInfo("Connecting to database", map[string]interface{}{
		"host":   s.config.Host,
		"port":   s.config.Port,
		"dbname": s.config.Dbname,
	})

	gormConfig := &gorm.Config{
		PrepareStmt: true,
		Logger:      NewGormLogger(s.logger, s.config.SlowQuery),
	}

	db, err := gorm.Open(postgres.Open(DSN(s.config)), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	if s.config.Pool.MaxOpen > 0 {
		sqlDB.SetMaxOpenConns(s.config.Pool.MaxOpen)
	}
	if s.config.Pool.MaxIdle > 0 {
		sqlDB.SetMaxIdleConns(s.config.Pool.MaxIdle)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	var currentDB string
	if err := db.WithContext(ctx).Raw("SELECT current_database()").Scan(&currentDB).Error; err != nil {
		s.logger.LogWarn("Failed to get current database", map[string]interface{}{
			"error": err.Error(),
		})
	} else {
		s.logger.LogInfo("Connected to database", map[string]interface{}{
			"database": currentDB,
		})
	}

	s.db = db
	return db, nil
}

// Ping checks that the database is reachable
func (s *DatabaseService) Ping(ctx context.Context) error {
	if s.db == nil {
		return ErrNotConnected
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

// Close closes the database connection
func (s *DatabaseService) Close() error {
	if s.db != nil {
		sqlDB, err := s.db.DB()
		if err != nil {
			return fmt.Errorf("failed to get database instance: %w", err)
		}
		if err := sqlDB.Close(); err != nil {
			return fmt.Errorf("failed to close database connection: %w", err)
		}
		s.db = nil
	}
	return nil
}
