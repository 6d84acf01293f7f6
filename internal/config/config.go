package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// SourcePageSize is the number of records requested per page from the upstream source.
// The upstream clamps limit to [1,100], so 100 is the largest page it will serve.
const SourcePageSize = 100

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Source     SourceConfig
	MockServer MockServerConfig
	RateLimit  RateLimitConfig
}

type ServerConfig struct {
	Port         string
	Host         string
	Environment  string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration

	// AutoMigrate applies the SQL files under MigrationsPath at startup
	AutoMigrate    bool
	MigrationsPath string
}

// SourceConfig configures the upstream paginated customer API
type SourceConfig struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string

	CircuitBreakerMaxFailures  int
	CircuitBreakerResetTimeout time.Duration
}

// MockServerConfig configures the bundled upstream source used for local runs
type MockServerConfig struct {
	Port     string
	Host     string
	DataPath string
}

type RateLimitConfig struct {
	Enabled           bool
	RequestsPerSecond int
	Burst             int
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8000"),
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			Environment:  getEnv("APP_ENV", "development"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 120*time.Second),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", "password"),
			Name:            getEnv("DB_NAME", "customer_db"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 10),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
			AutoMigrate:     getBoolEnv("AUTO_MIGRATE", false),
			MigrationsPath:  getEnv("MIGRATIONS_PATH", "db/migrations"),
		},
		Source: SourceConfig{
			BaseURL:                    strings.TrimRight(getEnv("SOURCE_BASE_URL", "http://mock-server:5000"), "/"),
			Timeout:                    getDurationEnv("SOURCE_TIMEOUT", 30*time.Second),
			UserAgent:                  getEnv("SOURCE_USER_AGENT", "customer-pipeline/1.0"),
			CircuitBreakerMaxFailures:  getIntEnv("SOURCE_CB_MAX_FAILURES", 5),
			CircuitBreakerResetTimeout: getDurationEnv("SOURCE_CB_RESET_TIMEOUT", 30*time.Second),
		},
		MockServer: MockServerConfig{
			Port:     getEnv("MOCK_SERVER_PORT", "5000"),
			Host:     getEnv("MOCK_SERVER_HOST", "0.0.0.0"),
			DataPath: getEnv("MOCK_DATA_PATH", "data/customers.json"),
		},
		RateLimit: RateLimitConfig{
			Enabled:           getBoolEnv("RATE_LIMIT_ENABLED", true),
			RequestsPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 20),
			Burst:             getIntEnv("RATE_LIMIT_BURST", 40),
		},
	}
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

func (c *ServerConfig) Address() string {
	return c.Host + ":" + c.Port
}

func (c *MockServerConfig) Address() string {
	return c.Host + ":" + c.Port
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
