package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"customer-pipeline/internal/config"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

var (
	maxRetries    = 30
	retryInterval = 2 * time.Second
)

// MigrationRunner applies the SQL migrations under db/migrations with golang-migrate
type MigrationRunner struct {
	db             *sql.DB
	migrationsPath string
	logger         *slog.Logger
}

// NewMigrationRunner creates a runner reading migrations from path
func NewMigrationRunner(db *sql.DB, path string, logger *slog.Logger) *MigrationRunner {
	return &MigrationRunner{
		db:             db,
		migrationsPath: path,
		logger:         logger,
	}
}

// WaitForDatabase pings until the database answers, the retries run out or ctx ends
func (mr *MigrationRunner) WaitForDatabase(ctx context.Context) error {
	mr.logger.Info("Waiting for database to be ready")

	for attempt := 1; attempt <= maxRetries; attempt++ {
		err := mr.db.PingContext(ctx)
		if err == nil {
			mr.logger.Info("Database is ready", "attempt", attempt)
			return nil
		}

		mr.logger.Warn("Database not ready", "attempt", attempt, "max_attempts", maxRetries, "error", err)

		if attempt == maxRetries {
			break
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("waiting for database: %w", ctx.Err())
		case <-time.After(retryInterval):
		}
	}

	return fmt.Errorf("database not ready after %d attempts", maxRetries)
}

func (mr *MigrationRunner) newMigrate() (*migrate.Migrate, error) {
	absPath, err := filepath.Abs(mr.migrationsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path for migrations: %w", err)
	}

	driver, err := postgres.WithInstance(mr.db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+absPath, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migration instance: %w", err)
	}

	return m, nil
}

// RunMigrations applies pending migrations. A missing migrations directory is not an error.
func (mr *MigrationRunner) RunMigrations() error {
	if _, err := os.Stat(mr.migrationsPath); errors.Is(err, os.ErrNotExist) {
		mr.logger.Warn("Migrations directory not found, skipping", "path", mr.migrationsPath)
		return nil
	}

	m, err := mr.newMigrate()
	if err != nil {
		return err
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	if dirty {
		mr.logger.Warn("Database is in dirty migration state, forcing version", "version", version)
		if err := m.Force(int(version)); err != nil {
			return fmt.Errorf("failed to force version: %w", err)
		}
	}

	mr.logger.Info("Running migrations", "path", mr.migrationsPath, "current_version", version)

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			mr.logger.Info("No new migrations to apply")
			return nil
		}
		return fmt.Errorf("migration failed: %w", err)
	}

	newVersion, _, err := m.Version()
	if err != nil {
		return fmt.Errorf("failed to get new migration version: %w", err)
	}
	mr.logger.Info("Applied migrations", "version", newVersion)

	return nil
}

// GetMigrationStatus returns the current migration version and dirty flag
func (mr *MigrationRunner) GetMigrationStatus() (version uint, dirty bool, err error) {
	if _, err := os.Stat(mr.migrationsPath); errors.Is(err, os.ErrNotExist) {
		return 0, false, fmt.Errorf("migrations directory not found: %s", mr.migrationsPath)
	}

	m, err := mr.newMigrate()
	if err != nil {
		return 0, false, err
	}

	return m.Version()
}

// RunMigrationsIfEnabled applies the SQL migrations when cfg.AutoMigrate is set.
// It reports whether they were applied so callers can fall back to AutoMigrate.
func RunMigrationsIfEnabled(ctx context.Context, db *sql.DB, cfg *config.DatabaseConfig, logger *slog.Logger) (bool, error) {
	if !cfg.AutoMigrate {
		logger.Info("SQL migrations disabled (AUTO_MIGRATE is not true)")
		return false, nil
	}

	runner := NewMigrationRunner(db, cfg.MigrationsPath, logger)

	if err := runner.WaitForDatabase(ctx); err != nil {
		return false, fmt.Errorf("database readiness check failed: %w", err)
	}

	if err := runner.RunMigrations(); err != nil {
		return false, fmt.Errorf("migration execution failed: %w", err)
	}

	return true, nil
}
