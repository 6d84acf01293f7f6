package main

import (
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"customer-pipeline/internal/config"
	"customer-pipeline/internal/mocksource"
	"customer-pipeline/internal/server"

	"github.com/spf13/cobra"
)

var (
	mockPort     string
	mockDataPath string
)

var mockServerCmd = &cobra.Command{
	Use:   "mock-server",
	Short: "Serve a customer JSON file as the paginated source API",
	Long:  `Load customers once from a JSON file and serve them read-only under /api/customers.`,
	RunE:  runMockServer,
}

func init() {
	mockServerCmd.Flags().StringVar(&mockPort, "port", "", "Port to listen on (defaults to MOCK_SERVER_PORT)")
	mockServerCmd.Flags().StringVar(&mockDataPath, "data", "", "Path to customers JSON (defaults to MOCK_DATA_PATH)")
	rootCmd.AddCommand(mockServerCmd)
}

func runMockServer(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()
	if mockPort != "" {
		cfg.MockServer.Port = mockPort
	}
	if mockDataPath != "" {
		cfg.MockServer.DataPath = mockDataPath
	}
	logger := newLogger(cfg)

	snapshot, err := mocksource.LoadSnapshot(cfg.MockServer.DataPath)
	if err != nil {
		return fmt.Errorf("failed to load mock data: %w", err)
	}
	logger.Info("Loaded mock customers", "path", cfg.MockServer.DataPath, "total_customers", snapshot.Len())

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:         cfg.MockServer.Address(),
		Handler:      mocksource.NewServer(snapshot, logger),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	return server.Serve(ctx, srv, logger)
}
