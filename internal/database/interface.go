package database

import (
	"context"

	"gorm.io/gorm"

	"github.com/consensuslabs/pavilion-network/commentinfo/internal/logger"
)

// Service defines the interface for database operations
type Service interface {
	Connect(ctx context.Context) (*gorm.DB, error)
	Ping(ctx context.Context) error
	Close() error
}

// Logger interface for logging operations
type Logger = logger.Logger
