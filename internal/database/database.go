package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"customer-pipeline/internal/config"
	"customer-pipeline/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB wraps the gorm handle shared by repositories
type DB struct {
	*gorm.DB
	config *config.DatabaseConfig
}

// New opens a pooled postgres connection and verifies it answers a ping
func New(ctx context.Context, cfg *config.DatabaseConfig, logLevel logger.LogLevel) (*DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxConnections)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{DB: db, config: cfg}, nil
}

// AutoMigrate creates the customers table from the model when SQL migrations were not applied
func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(&models.Customer{})
}

// Close releases the connection pool
func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// HealthCheck pings the store
func (db *DB) HealthCheck(ctx context.Context) error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// EnsureIndexes creates the secondary indexes the SQL migrations would have created
func (db *DB) EnsureIndexes() error {
	return db.Exec("CREATE INDEX IF NOT EXISTS idx_customers_email ON customers(email)").Error
}

// Initialize connects, applies migrations (SQL first, AutoMigrate as fallback) and returns the handle
func Initialize(ctx context.Context, cfg *config.Config, log *slog.Logger) (*DB, error) {
	logLevel := logger.Warn
	if cfg.IsDevelopment() {
		logLevel = logger.Info
	}

	db, err := New(ctx, &cfg.Database, logLevel)
	if err != nil {
		return nil, err
	}

	return prepare(ctx, db, cfg, log)
}

// prepare brings the schema up to date and closes the pool when that fails
func prepare(ctx context.Context, db *DB, cfg *config.Config, log *slog.Logger) (*DB, error) {
	if err := applySchema(ctx, db, cfg, log); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			log.Warn("Failed to close database after schema error", "error", closeErr)
		}
		return nil, err
	}

	log.Info("Database initialized", "host", cfg.Database.Host, "name", cfg.Database.Name)
	return db, nil
}

// applySchema runs the SQL migrations when enabled and falls back to AutoMigrate otherwise
func applySchema(ctx context.Context, db *DB, cfg *config.Config, log *slog.Logger) error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	migrated, err := RunMigrationsIfEnabled(ctx, sqlDB, &cfg.Database, log)
	if err != nil {
		log.Warn("Migration runner failed", "error", err)
	}
	if !migrated {
		log.Info("Falling back to GORM AutoMigrate")

		if err := db.AutoMigrate(); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		if err := db.EnsureIndexes(); err != nil {
			log.Warn("Failed to create indexes", "error", err)
		}
	}
	return nil
}
