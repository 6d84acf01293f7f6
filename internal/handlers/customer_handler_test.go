package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"customer-pipeline/internal/dto"
	"customer-pipeline/internal/services"
	"customer-pipeline/internal/services/service_mocks"

	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

// CustomerHandlerTestSuite is the test suite for CustomerHandler
type CustomerHandlerTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockQueryService *service_mocks.MockCustomerQueryServiceInterface
	handler          *CustomerHandler
	e                *echo.Echo
}

func (s *CustomerHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockQueryService = service_mocks.NewMockCustomerQueryServiceInterface(s.ctrl)
	s.handler = NewCustomerHandler(s.mockQueryService)
	s.e = echo.New()
	s.e.Validator = &CustomValidator{validator: validator.New()}
}

func (s *CustomerHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestCustomerHandlerSuite(t *testing.T) {
	suite.Run(t, new(CustomerHandlerTestSuite))
}

func (s *CustomerHandlerTestSuite) newContext(target string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	c.Set(TraceIDContextKey, "trace-abc")
	return c, rec
}

func (s *CustomerHandlerTestSuite) TestListCustomers_Defaults() {
	c, rec := s.newContext("/api/customers")

	s.mockQueryService.EXPECT().ListCustomers(gomock.Any(), 1, 10).Return(&dto.ListCustomersResponse{
		Data:       []dto.CustomerResponse{},
		Total:      0,
		Page:       1,
		Limit:      10,
		TotalPages: 0,
	}, nil)

	err := s.handler.ListCustomers(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"data":[],"total":0,"page":1,"limit":10,"total_pages":0}`, rec.Body.String())
}

func (s *CustomerHandlerTestSuite) TestListCustomers_ExplicitPagination() {
	c, rec := s.newContext("/api/customers?page=3&limit=25")

	s.mockQueryService.EXPECT().ListCustomers(gomock.Any(), 3, 25).Return(&dto.ListCustomersResponse{
		Data:       []dto.CustomerResponse{{CustomerID: "CUST-051", FirstName: "A", LastName: "B", Email: "a@example.com"}},
		Total:      51,
		Page:       3,
		Limit:      25,
		TotalPages: 3,
	}, nil)

	err := s.handler.ListCustomers(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var response dto.ListCustomersResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(int64(51), response.Total)
	s.Len(response.Data, 1)
}

func (s *CustomerHandlerTestSuite) TestListCustomers_LimitAboveMaximum() {
	c, _ := s.newContext("/api/customers?limit=101")

	err := s.handler.ListCustomers(c)

	s.Error(err) // Validation returns an error through Echo's validator
	var validationErrs validator.ValidationErrors
	s.True(errors.As(err, &validationErrs))
}

func (s *CustomerHandlerTestSuite) TestListCustomers_ExplicitZeroPage() {
	c, rec := s.newContext("/api/customers?page=0")

	s.mockQueryService.EXPECT().ListCustomers(gomock.Any(), 0, 10).Return(nil, services.ErrInvalidPage)

	err := s.handler.ListCustomers(c)

	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)

	var errorResp ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &errorResp))
	s.Equal("VALIDATION_001", errorResp.Error.Code)
	s.Equal("trace-abc", errorResp.Error.TraceID)
}

func (s *CustomerHandlerTestSuite) TestListCustomers_NonNumericPage() {
	c, rec := s.newContext("/api/customers?page=abc")

	err := s.handler.ListCustomers(c)

	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *CustomerHandlerTestSuite) TestListCustomers_ServiceError() {
	c, rec := s.newContext("/api/customers")

	s.mockQueryService.EXPECT().ListCustomers(gomock.Any(), 1, 10).Return(nil, errors.New("relation does not exist"))

	err := s.handler.ListCustomers(c)

	s.NoError(err)
	s.Equal(http.StatusInternalServerError, rec.Code)
	s.NotContains(rec.Body.String(), "relation")
}

func (s *CustomerHandlerTestSuite) TestGetCustomer_Found() {
	c, rec := s.newContext("/api/customers/CUST-001")
	c.SetParamNames("id")
	c.SetParamValues("CUST-001")

	balance := "1234.50"
	s.mockQueryService.EXPECT().GetCustomer(gomock.Any(), "CUST-001").Return(&dto.CustomerResponse{
		CustomerID:     "CUST-001",
		FirstName:      "Ada",
		LastName:       "Lovelace",
		Email:          "ada@example.com",
		AccountBalance: &balance,
	}, nil)

	err := s.handler.GetCustomer(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var response map[string]map[string]any
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("CUST-001", response["data"]["customer_id"])
	s.Equal("1234.50", response["data"]["account_balance"])
	s.Nil(response["data"]["phone"])
}

func (s *CustomerHandlerTestSuite) TestGetCustomer_NotFound() {
	c, rec := s.newContext("/api/customers/CUST-404")
	c.SetParamNames("id")
	c.SetParamValues("CUST-404")

	s.mockQueryService.EXPECT().GetCustomer(gomock.Any(), "CUST-404").Return(nil, services.ErrCustomerNotFound)

	err := s.handler.GetCustomer(c)

	s.NoError(err)
	s.Equal(http.StatusNotFound, rec.Code)

	var errorResp ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &errorResp))
	s.Equal("CUSTOMER_001", errorResp.Error.Code)
}

func (s *CustomerHandlerTestSuite) TestGetCustomer_BlankID() {
	c, rec := s.newContext("/api/customers/%20")
	c.SetParamNames("id")
	c.SetParamValues(" ")

	err := s.handler.GetCustomer(c)

	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)
}
