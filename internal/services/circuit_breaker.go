package services

import (
	"errors"
	"sync"
	"time"

	"customer-pipeline/internal/config"
	"customer-pipeline/internal/models"
)

var ErrCircuitBreakerOpen = errors.New("circuit breaker is open")

// Aliases so callers in this package can compare states without importing models.
const (
	StateClosed   = models.CircuitClosed
	StateOpen     = models.CircuitOpen
	StateHalfOpen = models.CircuitHalfOpen
)

type CircuitBreakerConfig struct {
	MaxFailures     int
	ResetTimeout    time.Duration
	HalfOpenMaxSucc int
}

func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		MaxFailures:     5,
		ResetTimeout:    30 * time.Second,
		HalfOpenMaxSucc: 1,
	}
}

// CircuitBreakerConfigFromSource builds the breaker settings guarding the upstream source.
// A single successful fetch while half-open closes the breaker again.
func CircuitBreakerConfigFromSource(cfg *config.SourceConfig) CircuitBreakerConfig {
	cbConfig := DefaultCircuitBreakerConfig()
	if cfg.CircuitBreakerMaxFailures > 0 {
		cbConfig.MaxFailures = cfg.CircuitBreakerMaxFailures
	}
	if cfg.CircuitBreakerResetTimeout > 0 {
		cbConfig.ResetTimeout = cfg.CircuitBreakerResetTimeout
	}
	return cbConfig
}

// CircuitBreaker counts consecutive upstream failures. Once MaxFailures is reached
// it rejects calls until ResetTimeout has passed since the last failure, then lets
// probes through until HalfOpenMaxSucc of them succeed or one fails.
type CircuitBreaker struct {
	mu          sync.RWMutex
	settings    CircuitBreakerConfig
	state       models.CircuitBreakerState
	failures    int
	probes      int
	lastFailure time.Time
	now         func() time.Time
}

func NewCircuitBreaker(settings CircuitBreakerConfig) CircuitBreakerInterface {
	return &CircuitBreaker{
		settings: settings,
		state:    StateClosed,
		now:      time.Now,
	}
}

// IsOpen reports whether calls must be rejected. An open breaker whose cool-down
// has elapsed moves to half-open here and admits the call.
func (cb *CircuitBreaker) IsOpen() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.state != StateOpen {
		return false
	}
	if cb.now().Sub(cb.lastFailure) <= cb.settings.ResetTimeout {
		return true
	}
	cb.moveTo(StateHalfOpen)
	return false
}

func (cb *CircuitBreaker) RecordSuccess() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case StateClosed:
		cb.failures = 0
	case StateHalfOpen:
		cb.probes++
		if cb.probes >= cb.settings.HalfOpenMaxSucc {
			cb.moveTo(StateClosed)
		}
	}
}

func (cb *CircuitBreaker) RecordFailure() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.lastFailure = cb.now()

	switch cb.state {
	case StateClosed:
		cb.failures++
		if cb.failures >= cb.settings.MaxFailures {
			cb.moveTo(StateOpen)
		}
	case StateHalfOpen:
		cb.moveTo(StateOpen)
	}
}

// moveTo switches state and clears the counters that belong to the state being left.
// Callers hold cb.mu.
func (cb *CircuitBreaker) moveTo(next models.CircuitBreakerState) {
	cb.state = next
	cb.probes = 0
	if next == StateClosed {
		cb.failures = 0
	}
}

func (cb *CircuitBreaker) GetState() models.CircuitBreakerState {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.state
}

func (cb *CircuitBreaker) Reset() {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.moveTo(StateClosed)
}

func (cb *CircuitBreaker) GetFailureCount() int {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.failures
}
