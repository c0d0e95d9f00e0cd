package pgsql

import (
	"context"

	"github.com/alfadli/hrm_backend/internal/apperrors"
	"github.com/alfadli/hrm_backend/internal/core/domain"
	portsrepo "github.com/alfadli/hrm_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxExpenseCategoryRepository struct {
	BaseRepository
}

func newPgxExpenseCategoryRepository(pool *pgxpool.Pool) portsrepo.ExpenseCategoryRepositoryFacade {
	return &PgxExpenseCategoryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ExpenseCategoryRepositoryFacade = (*PgxExpenseCategoryRepository)(nil)

const FULL_EXPENSE_CATEGORY_SELECT_QUERY = `
SELECT
	c.category_id, c.name, c.description,
	c.created_at, c.created_by, c.last_updated_at, c.last_updated_by
FROM expense_categories c
`

func (r *PgxExpenseCategoryRepository) getCategories(ctx context.Context, filterQuery string, args ...any) ([]domain.ExpenseCategory, error) {
	rows, err := r.Pool.Query(ctx, FULL_EXPENSE_CATEGORY_SELECT_QUERY+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query expense categories", err)
	}
	defer rows.Close()
	return collect[domain.ExpenseCategory](rows, "expense category")
}

func (r *PgxExpenseCategoryRepository) FindExpenseCategoryByID(ctx context.Context, categoryID string) (*domain.ExpenseCategory, error) {
	categories, err := r.getCategories(ctx, "WHERE c.category_id = $1", categoryID)
	if err != nil {
		return nil, err
	}
	return oneRow(categories)
}

func (r *PgxExpenseCategoryRepository) ListExpenseCategories(ctx context.Context) ([]domain.ExpenseCategory, error) {
	return r.getCategories(ctx, "ORDER BY c.name")
}

// SaveExpenseCategory fails with a conflict when the name is taken.
func (r *PgxExpenseCategoryRepository) SaveExpenseCategory(ctx context.Context, category domain.ExpenseCategory) error {
	query := `
		INSERT INTO expense_categories (
			category_id, name, description,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		category.CategoryID, category.Name, category.Description,
		category.CreatedAt, category.CreatedBy, category.LastUpdatedAt, category.LastUpdatedBy,
	)
	if err != nil {
		return writeError(err, "save", "Expense category")
	}
	return nil
}
