package services_test

import (
	"context"
	"testing"

	"github.com/alfadli/hrm_backend/internal/apperrors"
	"github.com/alfadli/hrm_backend/internal/core/domain"
	portssvc "github.com/alfadli/hrm_backend/internal/core/ports/services"
	"github.com/alfadli/hrm_backend/internal/core/services"
	"github.com/alfadli/hrm_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type PayrollServiceTestSuite struct {
	suite.Suite
	mockRepo     *MockPayrollRepository
	mockEmployee *MockEmployeeRepository
	service      portssvc.PayrollSvcFacade
}

func (suite *PayrollServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockPayrollRepository)
	suite.mockEmployee = new(MockEmployeeRepository)
	suite.service = services.NewPayrollService(suite.mockRepo, services.WithPayrollEmployeeReader(suite.mockEmployee))
}

func TestPayrollServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PayrollServiceTestSuite))
}

func (suite *PayrollServiceTestSuite) TestCreate_ComputesTotal() {
	ctx := context.Background()
	suite.mockEmployee.On("FindEmployeeByID", ctx, "e1").Return(&domain.Employee{EmployeeID: "e1", BranchID: "B1"}, nil).Once()
	suite.mockRepo.On("SavePayroll", ctx, mock.MatchedBy(func(p domain.Payroll) bool {
		return p.Total.Equal(decimal.NewFromInt(1150))
	})).Return(nil).Once()

	payroll, err := suite.service.CreatePayroll(ctx, staffB1, dto.CreatePayrollRequest{
		EmployeeID: "e1", Month: 3, Year: 2024,
		BaseSalary: amount(1000), Bonuses: amount(200), Adjustments: amount(-50),
	})

	suite.Require().NoError(err)
	suite.Equal("B1", payroll.BranchID)
	suite.True(decimal.NewFromInt(1150).Equal(payroll.Total))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PayrollServiceTestSuite) TestCreate_OptionalAmountsDefaultToZero() {
	ctx := context.Background()
	suite.mockEmployee.On("FindEmployeeByID", ctx, "e1").Return(&domain.Employee{EmployeeID: "e1", BranchID: "B1"}, nil).Once()
	suite.mockRepo.On("SavePayroll", ctx, mock.Anything).Return(nil).Once()

	payroll, err := suite.service.CreatePayroll(ctx, adminID, dto.CreatePayrollRequest{
		EmployeeID: "e1", BranchID: "B1", Month: 1, Year: 2024, BaseSalary: amount(900),
	})

	suite.Require().NoError(err)
	suite.True(payroll.Bonuses.IsZero())
	suite.True(payroll.Adjustments.IsZero())
	suite.True(decimal.NewFromInt(900).Equal(payroll.Total))
}

func (suite *PayrollServiceTestSuite) TestCreate_EmployeeFromOtherBranch() {
	ctx := context.Background()
	suite.mockEmployee.On("FindEmployeeByID", ctx, "e2").Return(&domain.Employee{EmployeeID: "e2", BranchID: "B2"}, nil).Once()

	_, err := suite.service.CreatePayroll(ctx, staffB1, dto.CreatePayrollRequest{
		EmployeeID: "e2", Month: 3, Year: 2024, BaseSalary: amount(1000),
	})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SavePayroll", mock.Anything, mock.Anything)
}

func (suite *PayrollServiceTestSuite) TestCreate_UnknownEmployee() {
	ctx := context.Background()
	suite.mockEmployee.On("FindEmployeeByID", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreatePayroll(ctx, adminID, dto.CreatePayrollRequest{
		EmployeeID: "ghost", BranchID: "B1", Month: 3, Year: 2024, BaseSalary: amount(1000),
	})

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Equal("Employee not found", apperrors.Message(err, ""))
}

func (suite *PayrollServiceTestSuite) TestUpdate_RecomputesFromMergedValues() {
	ctx := context.Background()
	stored := &domain.Payroll{
		PayrollID:   "p1",
		EmployeeID:  "e1",
		BranchID:    "B1",
		BaseSalary:  decimal.NewFromInt(1000),
		Bonuses:     decimal.NewFromInt(100),
		Adjustments: decimal.NewFromInt(-20),
		Total:       decimal.NewFromInt(1080),
	}
	suite.mockRepo.On("FindPayrollByID", ctx, "p1").Return(stored, nil).Once()
	suite.mockRepo.On("UpdatePayroll", ctx, mock.MatchedBy(func(p domain.Payroll) bool {
		return p.Total.Equal(decimal.NewFromInt(1280))
	})).Return(nil).Once()

	payroll, err := suite.service.UpdatePayroll(ctx, staffB1, "p1", dto.UpdatePayrollRequest{Bonuses: amount(300)})

	suite.Require().NoError(err)
	suite.True(decimal.NewFromInt(1000).Equal(payroll.BaseSalary))
	suite.True(decimal.NewFromInt(1280).Equal(payroll.Total))
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockEmployee.AssertNotCalled(suite.T(), "FindEmployeeByID", mock.Anything, mock.Anything)
}

func (suite *PayrollServiceTestSuite) TestUpdate_ManagerDenied() {
	_, err := suite.service.UpdatePayroll(context.Background(), managerID, "p1", dto.UpdatePayrollRequest{Bonuses: amount(1)})

	suite.Equal("Managers cannot update payroll", apperrors.Message(err, ""))
	suite.mockRepo.AssertNotCalled(suite.T(), "FindPayrollByID", mock.Anything, mock.Anything)
}

func (suite *PayrollServiceTestSuite) TestList_PassesFilters() {
	ctx := context.Background()
	filter := domain.PayrollFilter{BranchID: "B1", EmployeeID: "e1", Month: 3, Year: 2024}
	suite.mockRepo.On("ListPayroll", ctx, filter).Return([]domain.Payroll{{PayrollID: "p1"}}, nil).Once()

	records, err := suite.service.ListPayroll(ctx, staffB1, dto.ListPayrollParams{
		BranchID: "B9", EmployeeID: "e1", Month: 3, Year: 2024,
	})

	suite.Require().NoError(err)
	suite.Len(records, 1)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PayrollServiceTestSuite) TestGet_StaffOtherBranchDenied() {
	ctx := context.Background()
	suite.mockRepo.On("FindPayrollByID", ctx, "p2").Return(&domain.Payroll{PayrollID: "p2", BranchID: "B2"}, nil).Once()

	_, err := suite.service.GetPayroll(ctx, staffB1, "p2")

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.Equal("Access denied", apperrors.Message(err, ""))
}
