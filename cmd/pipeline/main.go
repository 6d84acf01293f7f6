// Package main is the entry point for the customer ingestion pipeline and its mock upstream source.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"customer-pipeline/internal/config"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pipeline",
	Short: "Customer ingestion pipeline",
	Long:  "Fetches customers from a paginated source API, normalizes them and upserts them into PostgreSQL.",

	SilenceUsage: true,
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newLogger builds the process-wide JSON logger and installs it as the slog default
func newLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelInfo
	if cfg.IsDevelopment() {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}
