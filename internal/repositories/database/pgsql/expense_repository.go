package pgsql

import (
	"context"
	"fmt"

	"github.com/alfadli/hrm_backend/internal/apperrors"
	"github.com/alfadli/hrm_backend/internal/core/domain"
	portsrepo "github.com/alfadli/hrm_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxExpenseRepository struct {
	BaseRepository
}

func newPgxExpenseRepository(pool *pgxpool.Pool) portsrepo.ExpenseRepositoryFacade {
	return &PgxExpenseRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

// The category name is joined in for display; a deleted category leaves it empty.
const FULL_EXPENSE_SELECT_QUERY = `
SELECT
	x.expense_id, x.branch_id, COALESCE(b.name, '') AS branch_name,
	x.category_id, COALESCE(c.name, '') AS category_name,
	x.amount, x.date, x.description, x.attachment_url, x.attachment_name,
	x.created_at, x.created_by, x.last_updated_at, x.last_updated_by
FROM expenses x
LEFT JOIN branches b ON b.branch_id = x.branch_id
LEFT JOIN expense_categories c ON c.category_id = x.category_id
`

func (r *PgxExpenseRepository) getExpenses(ctx context.Context, filterQuery string, args ...any) ([]domain.Expense, error) {
	rows, err := r.Pool.Query(ctx, FULL_EXPENSE_SELECT_QUERY+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query expenses", err)
	}
	defer rows.Close()
	return collect[domain.Expense](rows, "expense")
}

func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	expenses, err := r.getExpenses(ctx, "WHERE x.expense_id = $1", expenseID)
	if err != nil {
		return nil, err
	}
	return oneRow(expenses)
}

func (r *PgxExpenseRepository) ListExpenses(ctx context.Context, lf domain.LedgerFilter) ([]domain.Expense, error) {
	var f filter
	f.eq("x.branch_id", lf.BranchID)
	f.period("x.date", lf.Period)
	return r.getExpenses(ctx, f.where()+" ORDER BY x.date DESC, x.created_at DESC", f.args...)
}

func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	query := `
		INSERT INTO expenses (
			expense_id, branch_id, category_id, amount, date, description,
			attachment_url, attachment_name,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		expense.ExpenseID, expense.BranchID, expense.CategoryID, expense.Amount, expense.Date,
		expense.Description, expense.AttachmentURL, expense.AttachmentName,
		expense.CreatedAt, expense.CreatedBy, expense.LastUpdatedAt, expense.LastUpdatedBy,
	)
	if err != nil {
		return writeError(err, "save", "Expense record")
	}
	return nil
}

func (r *PgxExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	query := `
		UPDATE expenses
		SET branch_id = $1, category_id = $2, amount = $3, date = $4, description = $5,
			attachment_url = $6, attachment_name = $7,
			last_updated_at = $8, last_updated_by = $9
		WHERE expense_id = $10;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		expense.BranchID, expense.CategoryID, expense.Amount, expense.Date, expense.Description,
		expense.AttachmentURL, expense.AttachmentName,
		expense.LastUpdatedAt, expense.LastUpdatedBy, expense.ExpenseID,
	)
	if err != nil {
		return writeError(err, "update", "Expense record")
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("expense %s: %w", expense.ExpenseID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxExpenseRepository) DeleteExpense(ctx context.Context, expenseID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM expenses WHERE expense_id = $1;`, expenseID)
	if err != nil {
		return writeError(err, "delete", "Expense record")
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("expense %s: %w", expenseID, apperrors.ErrNotFound)
	}
	return nil
}
