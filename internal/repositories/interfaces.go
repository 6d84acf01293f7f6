package repositories

import (
	"context"

	"customer-pipeline/internal/models"
)

// CustomerRepositoryInterface defines the contract for customer store operations
type CustomerRepositoryInterface interface {
	// UpsertBatch writes every record in one transaction, inserting new customer IDs and
	// overwriting every column of existing ones. It returns the number of records written.
	UpsertBatch(ctx context.Context, customers []models.Customer) (int, error)
	GetByID(ctx context.Context, customerID string) (*models.Customer, error)
	List(ctx context.Context, offset, limit int) ([]models.Customer, int64, error)
	Count(ctx context.Context) (int64, error)
}
