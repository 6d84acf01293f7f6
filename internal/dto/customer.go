package dto

import (
	"time"

	"customer-pipeline/internal/models"
)

// RawCustomer is a customer record exactly as received from the upstream source.
// Numbers are kept as json.Number so decimals are never routed through float64.
type RawCustomer map[string]any

// SourcePage is one page of the upstream customer listing
type SourcePage struct {
	Data       []RawCustomer `json:"data"`
	Total      int           `json:"total"`
	Page       int           `json:"page"`
	Limit      int           `json:"limit"`
	TotalPages int           `json:"total_pages"`
}

// ListCustomersRequest represents the query parameters of the customer listing
type ListCustomersRequest struct {
	Page  int `query:"page" validate:"omitempty,min=1"`
	Limit int `query:"limit" validate:"omitempty,min=1,max=100"`
}

// ListCustomersResponse represents a page of stored customers
type ListCustomersResponse struct {
	Data       []CustomerResponse `json:"data"`
	Total      int64              `json:"total"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"total_pages"`
}

// GetCustomerResponse wraps a single stored customer
type GetCustomerResponse struct {
	Data CustomerResponse `json:"data"`
}

// CustomerResponse is the read-side representation of a stored customer
type CustomerResponse struct {
	CustomerID     string  `json:"customer_id"`
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	Email          string  `json:"email"`
	Phone          *string `json:"phone"`
	Address        *string `json:"address"`
	DateOfBirth    *string `json:"date_of_birth"`
	AccountBalance *string `json:"account_balance"`
	CreatedAt      *string `json:"created_at"`
}

// NewCustomerResponse renders a stored customer for the read API
func NewCustomerResponse(c *models.Customer) CustomerResponse {
	resp := CustomerResponse{
		CustomerID: c.CustomerID,
		FirstName:  c.FirstName,
		LastName:   c.LastName,
		Email:      c.Email,
		Phone:      c.Phone,
		Address:    c.Address,
	}

	if c.DateOfBirth != nil {
		dob := c.DateOfBirth.Format(models.DateLayout)
		resp.DateOfBirth = &dob
	}
	if c.AccountBalance.Valid {
		balance := c.AccountBalance.Decimal.StringFixed(models.BalanceScale)
		resp.AccountBalance = &balance
	}
	if c.CreatedAt != nil {
		createdAt := c.CreatedAt.UTC().Format(time.RFC3339)
		resp.CreatedAt = &createdAt
	}

	return resp
}

// NewListCustomersResponse builds a listing page; total_pages is ceil(total/limit)
func NewListCustomersResponse(customers []models.Customer, total int64, page, limit int) ListCustomersResponse {
	data := make([]CustomerResponse, len(customers))
	for i := range customers {
		data[i] = NewCustomerResponse(&customers[i])
	}

	totalPages := 0
	if limit > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}

	return ListCustomersResponse{
		Data:       data,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}
}
