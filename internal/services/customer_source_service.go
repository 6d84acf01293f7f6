package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"customer-pipeline/internal/config"
	"customer-pipeline/internal/dto"
)

const sourceBreakerName = "customer_source"

var (
	ErrSourceStatus   = errors.New("unexpected source response status")
	ErrSourceResponse = errors.New("malformed source response")
)

type HeaderTransport struct {
	userAgent string
	base      http.RoundTripper
}

func (t *HeaderTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())

	req.Header.Set("Accept", "application/json")
	if t.userAgent != "" {
		req.Header.Set("User-Agent", t.userAgent)
	}

	return t.base.RoundTrip(req)
}

// CustomerSourceService reads customers from the upstream paginated API
type CustomerSourceService struct {
	config   *config.SourceConfig
	client   *http.Client
	breaker  CircuitBreakerInterface
	logger   *slog.Logger
	events   IngestionLoggerInterface
	metrics  MetricsRecorderInterface
	pageSize int
}

// NewCustomerSourceService creates a new upstream customer source client
func NewCustomerSourceService(
	cfg *config.SourceConfig,
	breaker CircuitBreakerInterface,
	logger *slog.Logger,
	events IngestionLoggerInterface,
	metrics MetricsRecorderInterface,
) CustomerSourceServiceInterface {

	transport := &HeaderTransport{
		userAgent: cfg.UserAgent,
		base:      http.DefaultTransport,
	}

	client := &http.Client{
		Transport: transport,
		Timeout:   cfg.Timeout,
	}

	return &CustomerSourceService{
		config:   cfg,
		client:   client,
		breaker:  breaker,
		logger:   logger,
		events:   events,
		metrics:  metrics,
		pageSize: config.SourcePageSize,
	}
}

// FetchAll requests pages starting at 1 until the accumulated count reaches the reported
// total or a page comes back empty
func (s *CustomerSourceService) FetchAll(ctx context.Context) ([]dto.RawCustomer, error) {
	var all []dto.RawCustomer

	for page := 1; ; page++ {
		result, err := s.FetchPage(ctx, page, s.pageSize)
		if err != nil {
			return nil, fmt.Errorf("fetch page %d: %w", page, err)
		}

		all = append(all, result.Data...)
		s.events.LogPageFetched(ctx, page, len(result.Data), len(all), result.Total)

		if len(all) >= result.Total || len(result.Data) == 0 {
			break
		}
	}

	return all, nil
}

// FetchPage requests a single page from the source. The circuit breaker rejects the
// request without touching the network while it is open.
func (s *CustomerSourceService) FetchPage(ctx context.Context, page, limit int) (*dto.SourcePage, error) {
	if s.breaker.IsOpen() {
		s.metrics.IncrementCounter("source_page", map[string]string{"status": "rejected"})
		return nil, ErrCircuitBreakerOpen
	}

	start := time.Now()
	result, err := s.fetchPage(ctx, page, limit)
	s.metrics.RecordProcessingTime("source_page", time.Since(start))

	if err != nil {
		s.recordFailure()
		s.metrics.IncrementCounter("source_page", map[string]string{"status": "failed"})
		return nil, err
	}

	s.recordSuccess()
	s.metrics.IncrementCounter("source_page", map[string]string{"status": "success"})
	return result, nil
}

func (s *CustomerSourceService) fetchPage(ctx context.Context, page, limit int) (*dto.SourcePage, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(limit))

	req, err := s.buildRequest(ctx, http.MethodGet, "/api/customers?"+query.Encode())
	if err != nil {
		return nil, err
	}

	resp, body, err := s.do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		s.logger.Error(
			"customer source returned error status",
			"status", resp.StatusCode,
			"page", page,
			"body", truncate(body, 512),
		)
		return nil, fmt.Errorf("%w: %d", ErrSourceStatus, resp.StatusCode)
	}

	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()

	var result dto.SourcePage
	if err := decoder.Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceResponse, err)
	}

	return &result, nil
}

func (s *CustomerSourceService) buildRequest(
	ctx context.Context,
	method, path string,
) (*http.Request, error) {

	req, err := http.NewRequestWithContext(
		ctx,
		method,
		s.config.BaseURL+path,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	return req, nil
}

func (s *CustomerSourceService) do(req *http.Request) (*http.Response, []byte, error) {
	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Error(
			"customer source request failed",
			"method", req.Method,
			"url", req.URL.String(),
			"error", err,
		)
		return nil, nil, err
	}

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()

	if err != nil {
		return nil, nil, fmt.Errorf("read response body: %w", err)
	}

	return resp, body, nil
}

func (s *CustomerSourceService) recordFailure() {
	wasOpen := s.breaker.GetState() == StateOpen
	s.breaker.RecordFailure()
	if !wasOpen && s.breaker.GetState() == StateOpen {
		s.logger.Warn("customer source circuit breaker opened",
			"failures", s.breaker.GetFailureCount(),
		)
		s.metrics.IncrementCounter("circuit_breaker.open", map[string]string{"service": sourceBreakerName})
	}
}

func (s *CustomerSourceService) recordSuccess() {
	wasClosed := s.breaker.GetState() == StateClosed
	s.breaker.RecordSuccess()
	if !wasClosed && s.breaker.GetState() == StateClosed {
		s.metrics.IncrementCounter("circuit_breaker.closed", map[string]string{"service": sourceBreakerName})
	}
}

func truncate(body []byte, n int) string {
	if len(body) <= n {
		return string(body)
	}
	return string(body[:n]) + "..."
}
