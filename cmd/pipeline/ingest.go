package main

import (
	"encoding/json"
	"fmt"
	"os/signal"
	"syscall"

	"customer-pipeline/internal/config"
	"customer-pipeline/internal/database"
	"customer-pipeline/internal/dto"
	"customer-pipeline/internal/models"
	"customer-pipeline/internal/server"
	"customer-pipeline/internal/services"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Run one ingestion and exit",
	Long:  `Fetch every customer from the source API, normalize them and upsert them in a single transaction.`,
	RunE:  runIngest,
}

func init() {
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()
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

	// one-shot process: metrics are collected but never scraped
	metrics := services.NewPrometheusMetrics(prometheus.NewRegistry())
	ingestion := server.NewIngestionService(cfg, db.DB, logger, metrics)

	result, err := ingestion.Run(ctx)
	if err != nil {
		return fmt.Errorf("ingestion failed: %w", err)
	}

	out := json.NewEncoder(cmd.OutOrStdout())
	return out.Encode(dto.IngestResponse{
		Status:           models.IngestionStatusSuccess,
		RecordsProcessed: result.RecordsProcessed,
	})
}
