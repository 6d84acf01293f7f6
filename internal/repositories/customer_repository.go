package repositories

import (
	"context"
	"errors"
	"fmt"

	"customer-pipeline/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UpsertBatchSize is the number of rows sent in one multi-row INSERT ... ON CONFLICT statement
const UpsertBatchSize = 100

var (
	ErrCustomerNotFound = errors.New("customer not found")
)

// customerRepository implements CustomerRepositoryInterface
type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *gorm.DB) CustomerRepositoryInterface {
	return &customerRepository{
		db: db,
	}
}

// UpsertBatch applies all records atomically: any failure rolls back the whole batch
func (r *customerRepository) UpsertBatch(ctx context.Context, customers []models.Customer) (int, error) {
	if len(customers) == 0 {
		return 0, nil
	}

	onConflict := clause.OnConflict{
		Columns:   []clause.Column{{Name: "customer_id"}},
		DoUpdates: clause.AssignmentColumns(models.UpsertColumns()),
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for start := 0; start < len(customers); start += UpsertBatchSize {
			end := min(start+UpsertBatchSize, len(customers))

			chunk := customers[start:end]
			if err := tx.Clauses(onConflict).Create(&chunk).Error; err != nil {
				return fmt.Errorf("upsert customers %d-%d: %w", start, end-1, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to upsert customers: %w", err)
	}

	return len(customers), nil
}

// GetByID retrieves a customer by its source identifier
func (r *customerRepository) GetByID(ctx context.Context, customerID string) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.WithContext(ctx).Where("customer_id = ?", customerID).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	return &customer, nil
}

// List retrieves a page of customers ordered by customer ID, with the total row count
func (r *customerRepository) List(ctx context.Context, offset, limit int) ([]models.Customer, int64, error) {
	var customers []models.Customer

	total, err := r.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).
		Order("customer_id ASC").
		Offset(offset).Limit(limit).
		Find(&customers).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list customers: %w", err)
	}

	return customers, total, nil
}

// Count returns the number of stored customers
func (r *customerRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Customer{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count customers: %w", err)
	}
	return total, nil
}
