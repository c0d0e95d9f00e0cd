package repositories

import (
	"context"

	"github.com/alfadli/hrm_backend/internal/core/domain"
)

// IncomeRepositoryFacade defines storage operations for income records
type IncomeRepositoryFacade interface {
	FindIncomeByID(ctx context.Context, incomeID string) (*domain.Income, error)
	ListIncomes(ctx context.Context, filter domain.LedgerFilter) ([]domain.Income, error)
	SaveIncome(ctx context.Context, income domain.Income) error
	UpdateIncome(ctx context.Context, income domain.Income) error
	DeleteIncome(ctx context.Context, incomeID string) error
}

// ExpenseRepositoryFacade defines storage operations for expense records
type ExpenseRepositoryFacade interface {
	FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)
	ListExpenses(ctx context.Context, filter domain.LedgerFilter) ([]domain.Expense, error)
	SaveExpense(ctx context.Context, expense domain.Expense) error
	UpdateExpense(ctx context.Context, expense domain.Expense) error
	DeleteExpense(ctx context.Context, expenseID string) error
}

// ExpenseCategoryRepositoryFacade defines storage operations for expense categories
type ExpenseCategoryRepositoryFacade interface {
	FindExpenseCategoryByID(ctx context.Context, categoryID string) (*domain.ExpenseCategory, error)
	ListExpenseCategories(ctx context.Context) ([]domain.ExpenseCategory, error)
	SaveExpenseCategory(ctx context.Context, category domain.ExpenseCategory) error
}
