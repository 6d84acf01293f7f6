package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"customer-pipeline/internal/config"
	"customer-pipeline/internal/handlers"
	"customer-pipeline/internal/middleware"
	"customer-pipeline/internal/repositories"
	"customer-pipeline/internal/services"
	"customer-pipeline/internal/validation"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

const shutdownTimeout = 30 * time.Second

// Server is the pipeline service HTTP server
type Server struct {
	echo        *echo.Echo
	httpServer  *http.Server
	rateLimiter *middleware.RateLimiter
	logger      *slog.Logger
}

// Options carries the collaborators the server is assembled from
type Options struct {
	Config   *config.Config
	DB       *gorm.DB
	Logger   *slog.Logger
	Registry prometheus.Registerer
	Gatherer prometheus.Gatherer
}

// NewIngestionService wires the fetch, normalize and write stages into one orchestrator
func NewIngestionService(cfg *config.Config, db *gorm.DB, logger *slog.Logger, metrics services.MetricsRecorderInterface) services.IngestionServiceInterface {
	events := services.NewIngestionLogger(logger)

	source := services.NewCustomerSourceService(
		&cfg.Source,
		services.NewCircuitBreaker(services.CircuitBreakerConfigFromSource(&cfg.Source)),
		logger,
		events,
		metrics,
	)

	return services.NewIngestionService(
		source,
		repositories.NewCustomerRepository(db),
		validation.GetValidator(),
		events,
		logger,
		metrics,
	)
}

// New assembles the echo instance, middleware stack and routes
func New(opts Options) *Server {
	metrics := services.NewPrometheusMetrics(opts.Registry)
	repo := repositories.NewCustomerRepository(opts.DB)

	healthHandler := handlers.NewHealthCheckHandler(opts.DB)
	customerHandler := handlers.NewCustomerHandler(services.NewCustomerQueryService(repo))
	ingestionHandler := handlers.NewIngestionHandler(NewIngestionService(opts.Config, opts.DB, opts.Logger, metrics))

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.NewHTTPErrorHandler(opts.Logger)

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery(opts.Logger))
	e.Use(middleware.SecurityHeaders())

	rateLimiter := middleware.NewRateLimiter(opts.Config.RateLimit)

	api := e.Group("/api")
	api.GET("/health", healthHandler.HealthCheck)
	api.POST("/ingest", ingestionHandler.Ingest)

	customers := api.Group("/customers", rateLimiter.Middleware())
	customers.GET("", customerHandler.ListCustomers)
	customers.GET("/:id", customerHandler.GetCustomer)

	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})))

	return &Server{
		echo: e,
		httpServer: &http.Server{
			Addr:         opts.Config.Server.Address(),
			Handler:      e,
			ReadTimeout:  opts.Config.Server.ReadTimeout,
			WriteTimeout: opts.Config.Server.WriteTimeout,
		},
		rateLimiter: rateLimiter,
		logger:      opts.Logger,
	}
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start serves until ctx is cancelled, then drains in-flight requests
func (s *Server) Start(ctx context.Context) error {
	go s.rateLimiter.RunCleanup(ctx)
	return Serve(ctx, s.httpServer, s.logger)
}

// Serve runs srv until ctx is cancelled or the listener fails
func Serve(ctx context.Context, srv *http.Server, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down server", "addr", srv.Addr)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	logger.Info("Server stopped", "addr", srv.Addr)
	return nil
}
