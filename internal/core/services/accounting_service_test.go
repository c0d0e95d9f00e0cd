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

type AccountingServiceTestSuite struct {
	suite.Suite
	incomeRepo   *MockIncomeRepository
	expenseRepo  *MockExpenseRepository
	categoryRepo *MockExpenseCategoryRepository
	service      portssvc.AccountingSvcFacade
}

func (suite *AccountingServiceTestSuite) SetupTest() {
	suite.incomeRepo = new(MockIncomeRepository)
	suite.expenseRepo = new(MockExpenseRepository)
	suite.categoryRepo = new(MockExpenseCategoryRepository)
	suite.service = services.NewAccountingService(suite.incomeRepo, suite.expenseRepo, suite.categoryRepo)
}

func TestAccountingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountingServiceTestSuite))
}

func amount(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func (suite *AccountingServiceTestSuite) TestCreateIncome_StaffOtherBranchDenied() {
	// Scenario A.
	_, err := suite.service.CreateIncome(context.Background(), staffB1, dto.CreateIncomeRequest{
		BranchID: "B2", Amount: amount(100), Date: "2024-01-10",
	})

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.Equal("You can only create income in your branch", apperrors.Message(err, ""))
	suite.incomeRepo.AssertNotCalled(suite.T(), "SaveIncome", mock.Anything, mock.Anything)
}

func (suite *AccountingServiceTestSuite) TestCreateIncome_Admin() {
	ctx := context.Background()
	suite.incomeRepo.On("SaveIncome", ctx, mock.MatchedBy(func(in domain.Income) bool {
		return in.BranchID == "B2" && in.Amount.Equal(decimal.NewFromInt(100))
	})).Return(nil).Once()

	income, err := suite.service.CreateIncome(ctx, adminID, dto.CreateIncomeRequest{
		BranchID: "B2", Amount: amount(100), Date: "2024-01-10",
	})

	suite.Require().NoError(err)
	suite.Equal("B2", income.BranchID)
	suite.incomeRepo.AssertExpectations(suite.T())
}

func (suite *AccountingServiceTestSuite) TestDeleteExpense_ManagerNeverTouchesStorage() {
	// Scenario B.
	err := suite.service.DeleteExpense(context.Background(), managerID, "any-id")

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.Equal("Managers cannot delete expenses", apperrors.Message(err, ""))
	suite.expenseRepo.AssertNotCalled(suite.T(), "FindExpenseByID", mock.Anything, mock.Anything)
	suite.expenseRepo.AssertNotCalled(suite.T(), "DeleteExpense", mock.Anything, mock.Anything)
}

func (suite *AccountingServiceTestSuite) TestUpdateIncome_NotFound() {
	ctx := context.Background()
	suite.incomeRepo.On("FindIncomeByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.UpdateIncome(ctx, adminID, "missing", dto.UpdateIncomeRequest{Amount: amount(5)})

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Equal("Income not found", apperrors.Message(err, ""))
}

func (suite *AccountingServiceTestSuite) TestUpdateExpense_StaffOtherBranchDenied() {
	ctx := context.Background()
	suite.expenseRepo.On("FindExpenseByID", ctx, "x1").Return(&domain.Expense{ExpenseID: "x1", BranchID: "B2"}, nil).Once()

	_, err := suite.service.UpdateExpense(ctx, staffB1, "x1", dto.UpdateExpenseRequest{Amount: amount(5)})

	suite.Equal("You can only update expenses in your branch", apperrors.Message(err, ""))
	suite.expenseRepo.AssertNotCalled(suite.T(), "UpdateExpense", mock.Anything, mock.Anything)
}

func (suite *AccountingServiceTestSuite) TestCreateExpense_UnknownCategory() {
	ctx := context.Background()
	suite.categoryRepo.On("FindExpenseCategoryByID", ctx, "nope").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateExpense(ctx, adminID, dto.CreateExpenseRequest{
		BranchID: "B1", CategoryID: strPtr("nope"), Amount: amount(40), Date: "2024-01-10",
	})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.expenseRepo.AssertNotCalled(suite.T(), "SaveExpense", mock.Anything, mock.Anything)
}

func (suite *AccountingServiceTestSuite) TestCreateExpenseCategory_OnlyAdmins() {
	_, err := suite.service.CreateExpenseCategory(context.Background(), managerID, dto.CreateExpenseCategoryRequest{Name: "Rent"})

	suite.Equal("Only admins can create expense categories", apperrors.Message(err, ""))
	suite.categoryRepo.AssertNotCalled(suite.T(), "SaveExpenseCategory", mock.Anything, mock.Anything)
}

func (suite *AccountingServiceTestSuite) TestListExpenseCategories_StaffAllowed() {
	ctx := context.Background()
	suite.categoryRepo.On("ListExpenseCategories", ctx).Return([]domain.ExpenseCategory{{CategoryID: "c1"}}, nil).Once()

	categories, err := suite.service.ListExpenseCategories(ctx, staffB1)

	suite.Require().NoError(err)
	suite.Len(categories, 1)
}

func (suite *AccountingServiceTestSuite) TestProfitLoss_BranchScoped() {
	// Scenario E.
	ctx := context.Background()
	filter := domain.LedgerFilter{BranchID: "B1"}
	suite.incomeRepo.On("ListIncomes", ctx, filter).Return([]domain.Income{{BranchID: "B1", Amount: decimal.NewFromInt(100)}}, nil).Once()
	suite.expenseRepo.On("ListExpenses", ctx, filter).Return([]domain.Expense{{BranchID: "B1", Amount: decimal.NewFromInt(40)}}, nil).Once()

	result, err := suite.service.GetProfitLoss(ctx, adminID, dto.LedgerParams{BranchID: "B1"})

	suite.Require().NoError(err)
	suite.True(decimal.NewFromInt(100).Equal(result.TotalIncome))
	suite.True(decimal.NewFromInt(40).Equal(result.TotalExpense))
	suite.True(decimal.NewFromInt(60).Equal(result.NetProfit))
}

func (suite *AccountingServiceTestSuite) TestProfitLoss_StaffPinnedAndEmpty() {
	ctx := context.Background()
	filter := domain.LedgerFilter{BranchID: "B1"}
	suite.incomeRepo.On("ListIncomes", ctx, filter).Return(nil, nil).Once()
	suite.expenseRepo.On("ListExpenses", ctx, filter).Return(nil, nil).Once()

	result, err := suite.service.GetProfitLoss(ctx, staffB1, dto.LedgerParams{BranchID: "B2"})

	suite.Require().NoError(err)
	suite.True(result.TotalIncome.IsZero())
	suite.True(result.TotalExpense.IsZero())
	suite.True(result.NetProfit.IsZero())
	suite.incomeRepo.AssertExpectations(suite.T())
	suite.expenseRepo.AssertExpectations(suite.T())
}

func (suite *AccountingServiceTestSuite) TestListIncomes_InvalidDate() {
	_, err := suite.service.ListIncomes(context.Background(), adminID, dto.LedgerParams{
		DateRangeParams: dto.DateRangeParams{StartDate: "yesterday"},
	})

	suite.ErrorIs(err, apperrors.ErrValidation)
}
