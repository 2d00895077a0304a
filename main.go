package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/consensuslabs/pavilion-network/commentinfo/internal/config"
	"github.com/consensuslabs/pavilion-network/commentinfo/internal/logger"
)

// @title           Comment Info API
// @version         1.0
// @description     Likes, reports and counters of Pavilion Network comments

// @BasePath  /api/v1

// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization

var configPath string

var rootCommand = &cobra.Command{
	Use:           "commentinfo",
	Short:         "Comment info service",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCommand.PersistentFlags().StringVarP(&configPath, "config", "c", ".", "directory containing config.yaml")
}

func main() {
	if err := rootCommand.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// bootstrap loads configuration and builds the application logger from it
func bootstrap() (*config.Config, logger.Logger, error) {
	// Initialize logger for bootstrapping
	bootLogger, err := logger.NewLogger(&logger.Config{Level: logger.InfoLevel, Format: "json", Output: "stdout"})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	cfg, err := config.NewConfigService(bootLogger).Load(configPath)
	if err != nil {
		return nil, nil, err
	}

	log, err := logger.NewLogger(&logger.Config{
		Level:       logger.Level(cfg.Logging.Level),
		Format:      cfg.Logging.Format,
		Output:      cfg.Logging.Output,
		Development: cfg.Logging.Development,
		Service:     "commentinfo",
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return cfg, log, nil
}
