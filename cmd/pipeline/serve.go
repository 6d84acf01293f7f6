package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"customer-pipeline/internal/config"
	"customer-pipeline/internal/database"
	"customer-pipeline/internal/server"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the pipeline REST API",
	Long:  `Start the HTTP server exposing ingestion, the customer read API, health and metrics.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", "", "Port to listen on (defaults to SERVER_PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()
	if servePort != "" {
		cfg.Server.Port = servePort
	}
	logger := newLogger(cfg)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.Initialize(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("Failed to close database", "error", err)
		}
	}()

	srv := server.New(server.Options{
		Config:   cfg,
		DB:       db.DB,
		Logger:   logger,
		Registry: prometheus.DefaultRegisterer,
		Gatherer: prometheus.DefaultGatherer,
	})

	return srv.Start(ctx)
}
