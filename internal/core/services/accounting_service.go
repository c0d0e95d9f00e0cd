package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/alfadli/hrm_backend/internal/apperrors"
	"github.com/alfadli/hrm_backend/internal/core/domain"
	"github.com/alfadli/hrm_backend/internal/core/policy"
	portsrepo "github.com/alfadli/hrm_backend/internal/core/ports/repositories"
	portssvc "github.com/alfadli/hrm_backend/internal/core/ports/services"
	"github.com/alfadli/hrm_backend/internal/dto"
	"github.com/google/uuid"
)

// accountingService implements the AccountingSvcFacade interface
type accountingService struct {
	BaseService
	incomeRepo   portsrepo.IncomeRepositoryFacade
	expenseRepo  portsrepo.ExpenseRepositoryFacade
	categoryRepo portsrepo.ExpenseCategoryRepositoryFacade
}

// NewAccountingService creates a new accounting service with the provided dependencies
func NewAccountingService(
	incomeRepo portsrepo.IncomeRepositoryFacade,
	expenseRepo portsrepo.ExpenseRepositoryFacade,
	categoryRepo portsrepo.ExpenseCategoryRepositoryFacade,
) portssvc.AccountingSvcFacade {
	return &accountingService{
		incomeRepo:   incomeRepo,
		expenseRepo:  expenseRepo,
		categoryRepo: categoryRepo,
	}
}

var _ portssvc.AccountingSvcFacade = (*accountingService)(nil)

// --- Income ---

func (s *accountingService) CreateIncome(ctx context.Context, identity domain.Identity, req dto.CreateIncomeRequest) (*domain.Income, error) {
	decision, err := s.Authorize(ctx, identity, policy.Request{
		Kind: policy.KindIncome, Op: policy.OpCreate, TargetBranchID: req.BranchID,
	})
	if err != nil {
		return nil, err
	}
	branchID, err := createBranch(decision)
	if err != nil {
		return nil, err
	}
	if req.Amount == nil {
		return nil, apperrors.NewValidationFailedError("amount is required")
	}
	date, err := dto.ParseDate(req.Date)
	if err != nil {
		return nil, validationError(err)
	}

	income := domain.Income{
		IncomeID:       uuid.NewString(),
		BranchID:       branchID,
		Amount:         *req.Amount,
		Date:           date,
		Description:    req.Description,
		AttachmentURL:  req.AttachmentURL,
		AttachmentName: req.AttachmentName,
		AuditFields:    domain.NewAuditFields(identity.UserID(), s.now()),
	}

	if err := s.incomeRepo.SaveIncome(ctx, income); err != nil {
		s.LogError(ctx, err, "Failed to save income", slog.String("income_id", income.IncomeID))
		return nil, err
	}

	s.LogInfo(ctx, "Income recorded successfully",
		slog.String("income_id", income.IncomeID),
		slog.String("branch_id", branchID))
	return &income, nil
}

func (s *accountingService) ListIncomes(ctx context.Context, identity domain.Identity, params dto.LedgerParams) ([]domain.Income, error) {
	filter, err := s.ledgerFilter(ctx, identity, policy.KindIncome, params)
	if err != nil {
		return nil, err
	}

	incomes, err := s.incomeRepo.ListIncomes(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list incomes")
		return nil, err
	}
	if incomes == nil {
		return []domain.Income{}, nil
	}
	return incomes, nil
}

func (s *accountingService) UpdateIncome(ctx context.Context, identity domain.Identity, incomeID string, req dto.UpdateIncomeRequest) (*domain.Income, error) {
	if err := s.Precheck(ctx, identity, policy.Request{Kind: policy.KindIncome, Op: policy.OpUpdate}); err != nil {
		return nil, err
	}

	income, err := s.findIncome(ctx, incomeID)
	if err != nil {
		return nil, err
	}
	if err := s.AuthorizeUpdate(ctx, identity, policy.KindIncome, income.BranchID, req.BranchID); err != nil {
		return nil, err
	}

	if req.BranchID != nil && *req.BranchID != income.BranchID {
		income.BranchID = *req.BranchID
		income.BranchName = ""
	}
	if req.Amount != nil {
		income.Amount = *req.Amount
	}
	if req.Date != nil {
		date, err := dto.ParseDate(*req.Date)
		if err != nil {
			return nil, validationError(err)
		}
		income.Date = date
	}
	if req.Description != nil {
		income.Description = *req.Description
	}
	if req.AttachmentURL != nil {
		income.AttachmentURL = *req.AttachmentURL
	}
	if req.AttachmentName != nil {
		income.AttachmentName = *req.AttachmentName
	}
	income.Touch(identity.UserID(), s.now())

	if err := s.incomeRepo.UpdateIncome(ctx, *income); err != nil {
		s.LogError(ctx, err, "Failed to update income", slog.String("income_id", incomeID))
		return nil, err
	}

	s.LogInfo(ctx, "Income updated successfully", slog.String("income_id", incomeID))
	return income, nil
}

func (s *accountingService) DeleteIncome(ctx context.Context, identity domain.Identity, incomeID string) error {
	if err := s.Precheck(ctx, identity, policy.Request{Kind: policy.KindIncome, Op: policy.OpDelete}); err != nil {
		return err
	}

	income, err := s.findIncome(ctx, incomeID)
	if err != nil {
		return err
	}
	if _, err := s.Authorize(ctx, identity, policy.Request{
		Kind: policy.KindIncome, Op: policy.OpDelete, OwnerBranchID: income.BranchID,
	}); err != nil {
		return err
	}

	if err := s.incomeRepo.DeleteIncome(ctx, incomeID); err != nil {
		s.LogError(ctx, err, "Failed to delete income", slog.String("income_id", incomeID))
		return err
	}

	s.LogInfo(ctx, "Income deleted successfully", slog.String("income_id", incomeID))
	return nil
}

func (s *accountingService) findIncome(ctx context.Context, incomeID string) (*domain.Income, error) {
	income, err := s.incomeRepo.FindIncomeByID(ctx, incomeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Income not found")
		}
		s.LogError(ctx, err, "Failed to find income by ID", slog.String("income_id", incomeID))
		return nil, err
	}
	return income, nil
}

// --- Expense ---

func (s *accountingService) CreateExpense(ctx context.Context, identity domain.Identity, req dto.CreateExpenseRequest) (*domain.Expense, error) {
	decision, err := s.Authorize(ctx, identity, policy.Request{
		Kind: policy.KindExpense, Op: policy.OpCreate, TargetBranchID: req.BranchID,
	})
	if err != nil {
		return nil, err
	}
	branchID, err := createBranch(decision)
	if err != nil {
		return nil, err
	}
	if req.Amount == nil {
		return nil, apperrors.NewValidationFailedError("amount is required")
	}
	date, err := dto.ParseDate(req.Date)
	if err != nil {
		return nil, validationError(err)
	}
	categoryID, err := s.resolveCategory(ctx, req.CategoryID)
	if err != nil {
		return nil, err
	}

	expense := domain.Expense{
		ExpenseID:      uuid.NewString(),
		BranchID:       branchID,
		CategoryID:     categoryID,
		Amount:         *req.Amount,
		Date:           date,
		Description:    req.Description,
		AttachmentURL:  req.AttachmentURL,
		AttachmentName: req.AttachmentName,
		AuditFields:    domain.NewAuditFields(identity.UserID(), s.now()),
	}

	if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
		s.LogError(ctx, err, "Failed to save expense", slog.String("expense_id", expense.ExpenseID))
		return nil, err
	}

	s.LogInfo(ctx, "Expense recorded successfully",
		slog.String("expense_id", expense.ExpenseID),
		slog.String("branch_id", branchID))
	return &expense, nil
}

func (s *accountingService) ListExpenses(ctx context.Context, identity domain.Identity, params dto.LedgerParams) ([]domain.Expense, error) {
	filter, err := s.ledgerFilter(ctx, identity, policy.KindExpense, params)
	if err != nil {
		return nil, err
	}

	expenses, err := s.expenseRepo.ListExpenses(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list expenses")
		return nil, err
	}
	if expenses == nil {
		return []domain.Expense{}, nil
	}
	return expenses, nil
}

func (s *accountingService) UpdateExpense(ctx context.Context, identity domain.Identity, expenseID string, req dto.UpdateExpenseRequest) (*domain.Expense, error) {
	if err := s.Precheck(ctx, identity, policy.Request{Kind: policy.KindExpense, Op: policy.OpUpdate}); err != nil {
		return nil, err
	}

	expense, err := s.findExpense(ctx, expenseID)
	if err != nil {
		return nil, err
	}
	if err := s.AuthorizeUpdate(ctx, identity, policy.KindExpense, expense.BranchID, req.BranchID); err != nil {
		return nil, err
	}

	if req.BranchID != nil && *req.BranchID != expense.BranchID {
		expense.BranchID = *req.BranchID
		expense.BranchName = ""
	}
	if req.CategoryID != nil {
		categoryID, err := s.resolveCategory(ctx, req.CategoryID)
		if err != nil {
			return nil, err
		}
		expense.CategoryID = categoryID
		expense.CategoryName = ""
	}
	if req.Amount != nil {
		expense.Amount = *req.Amount
	}
	if req.Date != nil {
		date, err := dto.ParseDate(*req.Date)
		if err != nil {
			return nil, validationError(err)
		}
		expense.Date = date
	}
	if req.Description != nil {
		expense.Description = *req.Description
	}
	if req.AttachmentURL != nil {
		expense.AttachmentURL = *req.AttachmentURL
	}
	if req.AttachmentName != nil {
		expense.AttachmentName = *req.AttachmentName
	}
	expense.Touch(identity.UserID(), s.now())

	if err := s.expenseRepo.UpdateExpense(ctx, *expense); err != nil {
		s.LogError(ctx, err, "Failed to update expense", slog.String("expense_id", expenseID))
		return nil, err
	}

	s.LogInfo(ctx, "Expense updated successfully", slog.String("expense_id", expenseID))
	return expense, nil
}

func (s *accountingService) DeleteExpense(ctx context.Context, identity domain.Identity, expenseID string) error {
	if err := s.Precheck(ctx, identity, policy.Request{Kind: policy.KindExpense, Op: policy.OpDelete}); err != nil {
		return err
	}

	expense, err := s.findExpense(ctx, expenseID)
	if err != nil {
		return err
	}
	if _, err := s.Authorize(ctx, identity, policy.Request{
		Kind: policy.KindExpense, Op: policy.OpDelete, OwnerBranchID: expense.BranchID,
	}); err != nil {
		return err
	}

	if err := s.expenseRepo.DeleteExpense(ctx, expenseID); err != nil {
		s.LogError(ctx, err, "Failed to delete expense", slog.String("expense_id", expenseID))
		return err
	}

	s.LogInfo(ctx, "Expense deleted successfully", slog.String("expense_id", expenseID))
	return nil
}

func (s *accountingService) findExpense(ctx context.Context, expenseID string) (*domain.Expense, error) {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Expense not found")
		}
		s.LogError(ctx, err, "Failed to find expense by ID", slog.String("expense_id", expenseID))
		return nil, err
	}
	return expense, nil
}

// resolveCategory checks that a supplied category exists. An empty id clears it.
func (s *accountingService) resolveCategory(ctx context.Context, categoryID *string) (*string, error) {
	if categoryID == nil || *categoryID == "" {
		return nil, nil
	}
	if _, err := s.categoryRepo.FindExpenseCategoryByID(ctx, *categoryID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewValidationFailedError("expense category does not exist")
		}
		return nil, err
	}
	return categoryID, nil
}

// --- Expense categories ---

func (s *accountingService) CreateExpenseCategory(ctx context.Context, identity domain.Identity, req dto.CreateExpenseCategoryRequest) (*domain.ExpenseCategory, error) {
	if _, err := s.Authorize(ctx, identity, policy.Request{Kind: policy.KindExpenseCategory, Op: policy.OpCreate}); err != nil {
		return nil, err
	}

	category := domain.ExpenseCategory{
		CategoryID:  uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		AuditFields: domain.NewAuditFields(identity.UserID(), s.now()),
	}
	if err := s.categoryRepo.SaveExpenseCategory(ctx, category); err != nil {
		s.LogError(ctx, err, "Failed to save expense category", slog.String("name", category.Name))
		return nil, err
	}

	s.LogInfo(ctx, "Expense category created successfully", slog.String("category_id", category.CategoryID))
	return &category, nil
}

func (s *accountingService) ListExpenseCategories(ctx context.Context, identity domain.Identity) ([]domain.ExpenseCategory, error) {
	if _, err := s.Authorize(ctx, identity, policy.Request{Kind: policy.KindExpenseCategory, Op: policy.OpRead}); err != nil {
		return nil, err
	}

	categories, err := s.categoryRepo.ListExpenseCategories(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list expense categories")
		return nil, err
	}
	if categories == nil {
		return []domain.ExpenseCategory{}, nil
	}
	return categories, nil
}

// --- Profit / loss ---

// GetProfitLoss sums the incomes and expenses visible to identity.
// Staff are always scoped to their home branch.
func (s *accountingService) GetProfitLoss(ctx context.Context, identity domain.Identity, params dto.LedgerParams) (*domain.ProfitLoss, error) {
	filter, err := s.ledgerFilter(ctx, identity, policy.KindProfitLoss, params)
	if err != nil {
		return nil, err
	}

	incomes, err := s.incomeRepo.ListIncomes(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list incomes for profit/loss")
		return nil, err
	}
	expenses, err := s.expenseRepo.ListExpenses(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list expenses for profit/loss")
		return nil, err
	}

	result := domain.NewProfitLoss(incomes, expenses)
	s.LogDebug(ctx, "Profit/loss computed",
		slog.String("branch_id", filter.BranchID),
		slog.String("net_profit", result.NetProfit.String()))
	return &result, nil
}

func (s *accountingService) ledgerFilter(ctx context.Context, identity domain.Identity, kind policy.Kind, params dto.LedgerParams) (domain.LedgerFilter, error) {
	decision, err := s.Authorize(ctx, identity, policy.Request{Kind: kind, Op: policy.OpRead, TargetBranchID: params.BranchID})
	if err != nil {
		return domain.LedgerFilter{}, err
	}
	period, err := params.Period()
	if err != nil {
		return domain.LedgerFilter{}, validationError(err)
	}
	return domain.LedgerFilter{BranchID: readFilter(decision), Period: period}, nil
}
