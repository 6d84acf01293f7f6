package services

import (
	"context"
	"errors"

	"customer-pipeline/internal/dto"
	"customer-pipeline/internal/repositories"
)

const (
	DefaultPageLimit = 10
	MaxPageLimit     = 100
)

var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrInvalidPage      = errors.New("page must be at least 1")
	ErrInvalidLimit     = errors.New("limit must be between 1 and 100")
)

// CustomerQueryService serves stored customers to the read API
type CustomerQueryService struct {
	repo repositories.CustomerRepositoryInterface
}

// NewCustomerQueryService creates a new customer query service
func NewCustomerQueryService(repo repositories.CustomerRepositoryInterface) CustomerQueryServiceInterface {
	return &CustomerQueryService{repo: repo}
}

// ListCustomers returns one page of customers ordered by customer_id
func (s *CustomerQueryService) ListCustomers(ctx context.Context, page, limit int) (*dto.ListCustomersResponse, error) {
	if page < 1 {
		return nil, ErrInvalidPage
	}
	if limit < 1 || limit > MaxPageLimit {
		return nil, ErrInvalidLimit
	}

	offset := (page - 1) * limit
	customers, total, err := s.repo.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}

	resp := dto.NewListCustomersResponse(customers, total, page, limit)
	return &resp, nil
}

// GetCustomer returns a single customer or ErrCustomerNotFound
func (s *CustomerQueryService) GetCustomer(ctx context.Context, customerID string) (*dto.CustomerResponse, error) {
	customer, err := s.repo.GetByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, repositories.ErrCustomerNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}

	resp := dto.NewCustomerResponse(customer)
	return &resp, nil
}
