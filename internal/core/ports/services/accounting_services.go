package services

import (
	"context"

	"github.com/alfadli/hrm_backend/internal/core/domain"
	"github.com/alfadli/hrm_backend/internal/dto"
)

// IncomeSvc defines income operations
type IncomeSvc interface {
	CreateIncome(ctx context.Context, identity domain.Identity, req dto.CreateIncomeRequest) (*domain.Income, error)
	ListIncomes(ctx context.Context, identity domain.Identity, params dto.LedgerParams) ([]domain.Income, error)
	UpdateIncome(ctx context.Context, identity domain.Identity, incomeID string, req dto.UpdateIncomeRequest) (*domain.Income, error)
	DeleteIncome(ctx context.Context, identity domain.Identity, incomeID string) error
}

// ExpenseSvc defines expense operations
type ExpenseSvc interface {
	CreateExpense(ctx context.Context, identity domain.Identity, req dto.CreateExpenseRequest) (*domain.Expense, error)
	ListExpenses(ctx context.Context, identity domain.Identity, params dto.LedgerParams) ([]domain.Expense, error)
	UpdateExpense(ctx context.Context, identity domain.Identity, expenseID string, req dto.UpdateExpenseRequest) (*domain.Expense, error)
	DeleteExpense(ctx context.Context, identity domain.Identity, expenseID string) error
}

// ExpenseCategorySvc defines expense category operations
type ExpenseCategorySvc interface {
	CreateExpenseCategory(ctx context.Context, identity domain.Identity, req dto.CreateExpenseCategoryRequest) (*domain.ExpenseCategory, error)
	ListExpenseCategories(ctx context.Context, identity domain.Identity) ([]domain.ExpenseCategory, error)
}

// ProfitLossSvc defines the profit/loss aggregate
type ProfitLossSvc interface {
	GetProfitLoss(ctx context.Context, identity domain.Identity, params dto.LedgerParams) (*domain.ProfitLoss, error)
}

// AccountingSvcFacade combines all accounting-related service interfaces
type AccountingSvcFacade interface {
	IncomeSvc
	ExpenseSvc
	ExpenseCategorySvc
	ProfitLossSvc
}
