package handlers

import (
	"errors"
	"net/http"
	"strings"

	"customer-pipeline/internal/dto"
	apierrors "customer-pipeline/internal/errors"
	"customer-pipeline/internal/services"

	"github.com/labstack/echo/v4"
)

// CustomerHandler serves stored customers
type CustomerHandler struct {
	queryService services.CustomerQueryServiceInterface
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(queryService services.CustomerQueryServiceInterface) *CustomerHandler {
	return &CustomerHandler{
		queryService: queryService,
	}
}

// ListCustomers returns a page of stored customers
// @Summary List customers
// @Tags Customers
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (max 100)" default(10)
// @Success 200 {object} dto.ListCustomersResponse "Customer page"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid pagination parameters"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /api/customers [get]
func (h *CustomerHandler) ListCustomers(c echo.Context) error {
	var req dto.ListCustomersRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("page and limit must be integers"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	// zero means the parameter was absent; explicit zeros are rejected below
	page, limit := req.Page, req.Limit
	if page == 0 && c.QueryParam("page") == "" {
		page = 1
	}
	if limit == 0 && c.QueryParam("limit") == "" {
		limit = services.DefaultPageLimit
	}

	resp, err := h.queryService.ListCustomers(requestContext(c), page, limit)
	if err != nil {
		if errors.Is(err, services.ErrInvalidPage) || errors.Is(err, services.ErrInvalidLimit) {
			return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

// GetCustomer returns one stored customer by its source identifier
// @Summary Get customer
// @Tags Customers
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} dto.GetCustomerResponse "Customer"
// @Failure 404 {object} errors.ErrorResponse "CUSTOMER_001 - Customer not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /api/customers/{id} [get]
func (h *CustomerHandler) GetCustomer(c echo.Context) error {
	customerID := strings.TrimSpace(c.Param("id"))
	if customerID == "" {
		return SendError(c, apierrors.CustomerInvalidID)
	}

	customer, err := h.queryService.GetCustomer(requestContext(c), customerID)
	if err != nil {
		if errors.Is(err, services.ErrCustomerNotFound) {
			return SendError(c, apierrors.CustomerNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.GetCustomerResponse{Data: *customer})
}
