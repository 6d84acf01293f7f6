package repositories

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"customer-pipeline/internal/database"
	"customer-pipeline/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// CustomerRepositorySuite defines the test suite for CustomerRepository
type CustomerRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo CustomerRepositoryInterface
	ctx  context.Context
}

func (s *CustomerRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewCustomerRepository(s.db.DB)
	s.ctx = context.Background()
}

func TestCustomerRepositorySuite(t *testing.T) {
	suite.Run(t, new(CustomerRepositorySuite))
}

func strPtr(v string) *string {
	return &v
}

func datePtr(t *testing.T, v string) *time.Time {
	t.Helper()
	d, err := time.Parse(models.DateLayout, v)
	require.NoError(t, err)
	return &d
}

func newCustomer(id string) models.Customer {
	return models.Customer{
		CustomerID: id,
		FirstName:  "Ada",
		LastName:   "Lovelace",
		Email:      fmt.Sprintf("%s@example.com", id),
	}
}

func (s *CustomerRepositorySuite) TestUpsertBatch_Empty() {
	written, err := s.repo.UpsertBatch(s.ctx, nil)

	s.NoError(err)
	s.Equal(0, written)
}

func (s *CustomerRepositorySuite) TestUpsertBatch_InsertsNewRecords() {
	first := newCustomer("CUST-001")
	first.Phone = strPtr("+1-555-0100")
	first.DateOfBirth = datePtr(s.T(), "1985-03-15")
	first.AccountBalance = decimal.NewNullDecimal(decimal.RequireFromString("1234.50"))

	written, err := s.repo.UpsertBatch(s.ctx, []models.Customer{first, newCustomer("CUST-002")})
	s.Require().NoError(err)
	s.Equal(2, written)

	stored, err := s.repo.GetByID(s.ctx, "CUST-001")
	s.Require().NoError(err)
	s.Equal("Ada", stored.FirstName)
	s.Require().NotNil(stored.Phone)
	s.Equal("+1-555-0100", *stored.Phone)
	s.Require().NotNil(stored.DateOfBirth)
	s.Equal("1985-03-15", stored.DateOfBirth.Format(models.DateLayout))
	s.True(stored.AccountBalance.Valid)
	s.True(stored.AccountBalance.Decimal.Equal(decimal.RequireFromString("1234.5")))
}

func (s *CustomerRepositorySuite) TestUpsertBatch_Idempotent() {
	batch := []models.Customer{newCustomer("CUST-001"), newCustomer("CUST-002"), newCustomer("CUST-003")}

	for i := 0; i < 3; i++ {
		written, err := s.repo.UpsertBatch(s.ctx, batch)
		s.Require().NoError(err)
		s.Equal(len(batch), written)
	}

	total, err := s.repo.Count(s.ctx)
	s.NoError(err)
	s.Equal(int64(3), total)
}

func (s *CustomerRepositorySuite) TestUpsertBatch_IncomingValuesOverwriteStored() {
	original := newCustomer("CUST-001")
	original.Email = "old@example.com"
	original.Phone = strPtr("+1-555-0100")
	original.AccountBalance = decimal.NewNullDecimal(decimal.RequireFromString("10.00"))

	_, err := s.repo.UpsertBatch(s.ctx, []models.Customer{original})
	s.Require().NoError(err)

	updated := newCustomer("CUST-001")
	updated.Email = "new@example.com"

	_, err = s.repo.UpsertBatch(s.ctx, []models.Customer{updated})
	s.Require().NoError(err)

	stored, err := s.repo.GetByID(s.ctx, "CUST-001")
	s.Require().NoError(err)
	s.Equal("new@example.com", stored.Email)
	s.Nil(stored.Phone, "null incoming phone overwrites the stored value")
	s.False(stored.AccountBalance.Valid, "null incoming balance overwrites the stored value")

	total, err := s.repo.Count(s.ctx)
	s.NoError(err)
	s.Equal(int64(1), total)
}

func (s *CustomerRepositorySuite) TestUpsertBatch_SpansMultipleChunks() {
	batch := make([]models.Customer, 0, 250)
	for i := 1; i <= 250; i++ {
		batch = append(batch, newCustomer(fmt.Sprintf("CUST-%03d", i)))
	}

	written, err := s.repo.UpsertBatch(s.ctx, batch)
	s.Require().NoError(err)
	s.Equal(250, written)

	total, err := s.repo.Count(s.ctx)
	s.NoError(err)
	s.Equal(int64(250), total)
}

func (s *CustomerRepositorySuite) TestUpsertBatch_InvalidRecordRollsBackBatch() {
	batch := make([]models.Customer, 0, 150)
	for i := 1; i <= 150; i++ {
		batch = append(batch, newCustomer(fmt.Sprintf("CUST-%03d", i)))
	}
	batch[120].Email = ""

	written, err := s.repo.UpsertBatch(s.ctx, batch)
	s.Error(err)
	s.ErrorIs(err, models.ErrEmailRequired)
	s.Equal(0, written)

	total, err := s.repo.Count(s.ctx)
	s.NoError(err)
	s.Equal(int64(0), total, "first chunk must not survive a failure in the second")
}

func (s *CustomerRepositorySuite) TestGetByID_NotFound() {
	customer, err := s.repo.GetByID(s.ctx, "CUST-404")

	s.Nil(customer)
	s.ErrorIs(err, ErrCustomerNotFound)
}

func (s *CustomerRepositorySuite) TestList_Paginates() {
	batch := make([]models.Customer, 0, 25)
	for i := 25; i >= 1; i-- {
		batch = append(batch, newCustomer(fmt.Sprintf("CUST-%03d", i)))
	}
	_, err := s.repo.UpsertBatch(s.ctx, batch)
	s.Require().NoError(err)

	customers, total, err := s.repo.List(s.ctx, 10, 10)
	s.Require().NoError(err)
	s.Equal(int64(25), total)
	s.Require().Len(customers, 10)
	s.Equal("CUST-011", customers[0].CustomerID)
	s.Equal("CUST-020", customers[9].CustomerID)

	customers, _, err = s.repo.List(s.ctx, 20, 10)
	s.Require().NoError(err)
	s.Len(customers, 5)
}

func newPostgresMock(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func TestUpsertBatch_PostgresStatementShape(t *testing.T) {
	db, mock := newPostgresMock(t)
	repo := NewCustomerRepository(db)

	batch := make([]models.Customer, 0, 150)
	for i := 1; i <= 150; i++ {
		batch = append(batch, newCustomer(fmt.Sprintf("CUST-%03d", i)))
	}

	upsert := `INSERT INTO "customers" .* ON CONFLICT \("customer_id"\) DO UPDATE SET "first_name"="excluded"."first_name",.*"created_at"="excluded"."created_at"`

	mock.ExpectBegin()
	mock.ExpectExec(upsert).WillReturnResult(sqlmock.NewResult(0, 100))
	mock.ExpectExec(upsert).WillReturnResult(sqlmock.NewResult(0, 50))
	mock.ExpectCommit()

	written, err := repo.UpsertBatch(context.Background(), batch)

	assert.NoError(t, err)
	assert.Equal(t, 150, written)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertBatch_PostgresFailureRollsBack(t *testing.T) {
	db, mock := newPostgresMock(t)
	repo := NewCustomerRepository(db)

	batch := make([]models.Customer, 0, 150)
	for i := 1; i <= 150; i++ {
		batch = append(batch, newCustomer(fmt.Sprintf("CUST-%03d", i)))
	}

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "customers"`).WillReturnResult(sqlmock.NewResult(0, 100))
	mock.ExpectExec(`INSERT INTO "customers"`).WillReturnError(errors.New("value too long for type character varying(20)"))
	mock.ExpectRollback()

	written, err := repo.UpsertBatch(context.Background(), batch)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "value too long")
	assert.Equal(t, 0, written)
	assert.NoError(t, mock.ExpectationsWereMet())
}
