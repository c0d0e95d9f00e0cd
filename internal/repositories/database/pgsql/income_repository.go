package pgsql

import (
	"context"
	"fmt"

	"github.com/alfadli/hrm_backend/internal/apperrors"
	"github.com/alfadli/hrm_backend/internal/core/domain"
	portsrepo "github.com/alfadli/hrm_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxIncomeRepository struct {
	BaseRepository
}

func newPgxIncomeRepository(pool *pgxpool.Pool) portsrepo.IncomeRepositoryFacade {
	return &PgxIncomeRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.IncomeRepositoryFacade = (*PgxIncomeRepository)(nil)

const FULL_INCOME_SELECT_QUERY = `
SELECT
	i.income_id, i.branch_id, COALESCE(b.name, '') AS branch_name,
	i.amount, i.date, i.description,
	i.attachment_url, i.attachment_name,
	i.created_at, i.created_by, i.last_updated_at, i.last_updated_by
FROM incomes i
LEFT JOIN branches b ON b.branch_id = i.branch_id
`

func (r *PgxIncomeRepository) getIncomes(ctx context.Context, filterQuery string, args ...any) ([]domain.Income, error) {
	rows, err := r.Pool.Query(ctx, FULL_INCOME_SELECT_QUERY+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query incomes", err)
	}
	defer rows.Close()
	return collect[domain.Income](rows, "income")
}

func (r *PgxIncomeRepository) FindIncomeByID(ctx context.Context, incomeID string) (*domain.Income, error) {
	incomes, err := r.getIncomes(ctx, "WHERE i.income_id = $1", incomeID)
	if err != nil {
		return nil, err
	}
	return oneRow(incomes)
}

func (r *PgxIncomeRepository) ListIncomes(ctx context.Context, lf domain.LedgerFilter) ([]domain.Income, error) {
	var f filter
	f.eq("i.branch_id", lf.BranchID)
	f.period("i.date", lf.Period)
	return r.getIncomes(ctx, f.where()+" ORDER BY i.date DESC, i.created_at DESC", f.args...)
}

func (r *PgxIncomeRepository) SaveIncome(ctx context.Context, income domain.Income) error {
	query := `
		INSERT INTO incomes (
			income_id, branch_id, amount, date, description, attachment_url, attachment_name,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		income.IncomeID, income.BranchID, income.Amount, income.Date, income.Description,
		income.AttachmentURL, income.AttachmentName,
		income.CreatedAt, income.CreatedBy, income.LastUpdatedAt, income.LastUpdatedBy,
	)
	if err != nil {
		return writeError(err, "save", "Income record")
	}
	return nil
}

func (r *PgxIncomeRepository) UpdateIncome(ctx context.Context, income domain.Income) error {
	query := `
		UPDATE incomes
		SET branch_id = $1, amount = $2, date = $3, description = $4,
			attachment_url = $5, attachment_name = $6,
			last_updated_at = $7, last_updated_by = $8
		WHERE income_id = $9;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		income.BranchID, income.Amount, income.Date, income.Description,
		income.AttachmentURL, income.AttachmentName,
		income.LastUpdatedAt, income.LastUpdatedBy, income.IncomeID,
	)
	if err != nil {
		return writeError(err, "update", "Income record")
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("income %s: %w", income.IncomeID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxIncomeRepository) DeleteIncome(ctx context.Context, incomeID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM incomes WHERE income_id = $1;`, incomeID)
	if err != nil {
		return writeError(err, "delete", "Income record")
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("income %s: %w", incomeID, apperrors.ErrNotFound)
	}
	return nil
}
