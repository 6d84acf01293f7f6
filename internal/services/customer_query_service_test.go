package services

import (
	"context"
	"errors"
	"testing"

	"customer-pipeline/internal/models"
	"customer-pipeline/internal/repositories"
	"customer-pipeline/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type CustomerQueryServiceTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	repo    *repository_mocks.MockCustomerRepositoryInterface
	service CustomerQueryServiceInterface
	ctx     context.Context
}

func (s *CustomerQueryServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.repo = repository_mocks.NewMockCustomerRepositoryInterface(s.ctrl)
	s.service = NewCustomerQueryService(s.repo)
	s.ctx = context.Background()
}

func (s *CustomerQueryServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestCustomerQueryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CustomerQueryServiceTestSuite))
}

func (s *CustomerQueryServiceTestSuite) TestListCustomers_ComputesOffset() {
	customers := []models.Customer{
		{CustomerID: "CUST-021", FirstName: "A", LastName: "B", Email: "a@example.com"},
	}
	s.repo.EXPECT().List(gomock.Any(), 20, 10).Return(customers, int64(21), nil)

	resp, err := s.service.ListCustomers(s.ctx, 3, 10)

	s.Require().NoError(err)
	s.Equal(int64(21), resp.Total)
	s.Equal(3, resp.Page)
	s.Equal(10, resp.Limit)
	s.Equal(3, resp.TotalPages)
	s.Require().Len(resp.Data, 1)
	s.Equal("CUST-021", resp.Data[0].CustomerID)
}

func (s *CustomerQueryServiceTestSuite) TestListCustomers_RejectsOutOfRange() {
	_, err := s.service.ListCustomers(s.ctx, 0, 10)
	s.ErrorIs(err, ErrInvalidPage)

	_, err = s.service.ListCustomers(s.ctx, 1, 0)
	s.ErrorIs(err, ErrInvalidLimit)

	_, err = s.service.ListCustomers(s.ctx, 1, 101)
	s.ErrorIs(err, ErrInvalidLimit)
}

func (s *CustomerQueryServiceTestSuite) TestListCustomers_RepositoryError() {
	s.repo.EXPECT().List(gomock.Any(), 0, 10).Return(nil, int64(0), errors.New("db down"))

	resp, err := s.service.ListCustomers(s.ctx, 1, 10)

	s.Nil(resp)
	s.Error(err)
}

func (s *CustomerQueryServiceTestSuite) TestGetCustomer_Found() {
	s.repo.EXPECT().GetByID(gomock.Any(), "CUST-001").Return(&models.Customer{
		CustomerID: "CUST-001",
		FirstName:  "Ada",
		LastName:   "Lovelace",
		Email:      "ada@example.com",
	}, nil)

	resp, err := s.service.GetCustomer(s.ctx, "CUST-001")

	s.Require().NoError(err)
	s.Equal("Ada", resp.FirstName)
}

func (s *CustomerQueryServiceTestSuite) TestGetCustomer_NotFound() {
	s.repo.EXPECT().GetByID(gomock.Any(), "CUST-404").Return(nil, repositories.ErrCustomerNotFound)

	resp, err := s.service.GetCustomer(s.ctx, "CUST-404")

	s.Nil(resp)
	s.ErrorIs(err, ErrCustomerNotFound)
}
