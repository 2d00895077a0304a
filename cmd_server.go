package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var serverCommand = &cobra.Command{
	Use:   "server",
	Short: "Run the comment info HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serverCommandImpl(cmd.Context())
	},
}

func serverCommandImpl(ctx context.Context) error {
	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}

	// Canceled on SIGINT or SIGTERM
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := NewApp(ctx, cfg, log)
	if err != nil {
		return log.LogError(err, "Failed to initialize application")
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Run()
	}()

	select {
	case err = <-errCh:
	case <-ctx.Done():
		log.LogInfo("Received shutdown signal", nil)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if shutdownErr := app.Shutdown(shutdownCtx); shutdownErr != nil && err == nil {
		err = shutdownErr
	}
	return err
}

func init() {
	rootCommand.AddCommand(serverCommand)
}
