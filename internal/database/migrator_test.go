package database

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"customer-pipeline/internal/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const repoMigrationsPath = "../../db/migrations"

var discardLogger = slog.New(slog.DiscardHandler)

// overrideRetries shortens the readiness loop for the duration of a test
func overrideRetries(t *testing.T, retries int, interval time.Duration) {
	t.Helper()

	originalRetries, originalInterval := maxRetries, retryInterval
	maxRetries, retryInterval = retries, interval
	t.Cleanup(func() {
		maxRetries, retryInterval = originalRetries, originalInterval
	})
}

func newPingMock(t *testing.T) (*MigrationRunner, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewMigrationRunner(db, repoMigrationsPath, discardLogger), mock
}

func TestWaitForDatabase_ReadyImmediately(t *testing.T) {
	runner, mock := newPingMock(t)
	mock.ExpectPing()

	assert.NoError(t, runner.WaitForDatabase(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWaitForDatabase_FailureThenSuccess(t *testing.T) {
	overrideRetries(t, 3, 10*time.Millisecond)
	runner, mock := newPingMock(t)
	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	mock.ExpectPing()

	assert.NoError(t, runner.WaitForDatabase(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWaitForDatabase_GivesUp(t *testing.T) {
	overrideRetries(t, 2, 10*time.Millisecond)
	runner, mock := newPingMock(t)
	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	mock.ExpectPing().WillReturnError(errors.New("connection refused"))

	err := runner.WaitForDatabase(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "database not ready after 2 attempts")
}

func TestWaitForDatabase_StopsOnCancel(t *testing.T) {
	overrideRetries(t, 5, time.Hour)
	runner, mock := newPingMock(t)
	mock.ExpectPing().WillReturnError(errors.New("connection refused"))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := runner.WaitForDatabase(ctx)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRunMigrations_DirectoryNotFound(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	runner := NewMigrationRunner(db, "/nonexistent/path/to/migrations", discardLogger)

	assert.NoError(t, runner.RunMigrations())
}

func TestGetMigrationStatus_DirectoryNotFound(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	runner := NewMigrationRunner(db, "/nonexistent/migrations", discardLogger)

	_, _, err = runner.GetMigrationStatus()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migrations directory not found")
}

func TestRunMigrationsIfEnabled_Disabled(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	migrated, err := RunMigrationsIfEnabled(context.Background(), db, &config.DatabaseConfig{AutoMigrate: false}, discardLogger)

	assert.NoError(t, err)
	assert.False(t, migrated)
	assert.NoError(t, mock.ExpectationsWereMet(), "disabled runner must not touch the database")
}

func TestRunMigrationsIfEnabled_DatabaseNotReady(t *testing.T) {
	overrideRetries(t, 2, 10*time.Millisecond)
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()
	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	mock.ExpectPing().WillReturnError(errors.New("connection refused"))

	cfg := &config.DatabaseConfig{AutoMigrate: true, MigrationsPath: repoMigrationsPath}
	migrated, err := RunMigrationsIfEnabled(context.Background(), db, cfg, discardLogger)

	require.Error(t, err)
	assert.False(t, migrated)
	assert.Contains(t, err.Error(), "database readiness check failed")
}

func TestCustomersMigration_MatchesModel(t *testing.T) {
	up, err := os.ReadFile(filepath.Join(repoMigrationsPath, "000001_create_customers_table.up.sql"))
	require.NoError(t, err)

	sql := strings.ToUpper(string(up))
	assert.Contains(t, sql, "CUSTOMER_ID     VARCHAR(50) PRIMARY KEY")
	assert.Contains(t, sql, "ACCOUNT_BALANCE DECIMAL(15, 2)")
	assert.Contains(t, sql, "CREATED_AT      TIMESTAMPTZ")
	assert.Contains(t, sql, "IDX_CUSTOMERS_EMAIL")

	down, err := os.ReadFile(filepath.Join(repoMigrationsPath, "000001_create_customers_table.down.sql"))
	require.NoError(t, err)
	assert.Contains(t, string(down), "DROP TABLE IF EXISTS customers")
}

func TestSetupTestDB_CreatesCustomersTable(t *testing.T) {
	db := SetupTestDB(t)

	assert.True(t, db.Migrator().HasTable("customers"))
	assert.NoError(t, db.HealthCheck(context.Background()))
	assert.NoError(t, db.EnsureIndexes())
	assert.True(t, db.Migrator().HasIndex("customers", "idx_customers_email"))
}
