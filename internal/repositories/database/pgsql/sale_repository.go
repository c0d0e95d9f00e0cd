package pgsql

import (
	"context"
	"fmt"

	"github.com/alfadli/hrm_backend/internal/apperrors"
	"github.com/alfadli/hrm_backend/internal/core/domain"
	portsrepo "github.com/alfadli/hrm_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSaleRepository struct {
	BaseRepository
}

func newPgxSaleRepository(pool *pgxpool.Pool) portsrepo.SaleRepositoryFacade {
	return &PgxSaleRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SaleRepositoryFacade = (*PgxSaleRepository)(nil)

const FULL_SALE_SELECT_QUERY = `
SELECT
	s.sale_id, s.branch_id, COALESCE(b.name, '') AS branch_name,
	s.amount, s.profit, s.date, s.note,
	s.created_at, s.created_by, s.last_updated_at, s.last_updated_by
FROM sales s
LEFT JOIN branches b ON b.branch_id = s.branch_id
`

func (r *PgxSaleRepository) getSales(ctx context.Context, filterQuery string, args ...any) ([]domain.Sale, error) {
	rows, err := r.Pool.Query(ctx, FULL_SALE_SELECT_QUERY+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query sales", err)
	}
	defer rows.Close()
	return collect[domain.Sale](rows, "sale")
}

func (r *PgxSaleRepository) FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error) {
	sales, err := r.getSales(ctx, "WHERE s.sale_id = $1", saleID)
	if err != nil {
		return nil, err
	}
	return oneRow(sales)
}

func (r *PgxSaleRepository) ListSales(ctx context.Context, lf domain.LedgerFilter) ([]domain.Sale, error) {
	var f filter
	f.eq("s.branch_id", lf.BranchID)
	f.period("s.date", lf.Period)
	return r.getSales(ctx, f.where()+" ORDER BY s.date DESC, s.created_at DESC", f.args...)
}

func (r *PgxSaleRepository) SaveSale(ctx context.Context, sale domain.Sale) error {
	query := `
		INSERT INTO sales (
			sale_id, branch_id, amount, profit, date, note,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		sale.SaleID, sale.BranchID, sale.Amount, sale.Profit, sale.Date, sale.Note,
		sale.CreatedAt, sale.CreatedBy, sale.LastUpdatedAt, sale.LastUpdatedBy,
	)
	if err != nil {
		return writeError(err, "save", "Sales record")
	}
	return nil
}

func (r *PgxSaleRepository) UpdateSale(ctx context.Context, sale domain.Sale) error {
	query := `
		UPDATE sales
		SET branch_id = $1, amount = $2, profit = $3, date = $4, note = $5,
			last_updated_at = $6, last_updated_by = $7
		WHERE sale_id = $8;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		sale.BranchID, sale.Amount, sale.Profit, sale.Date, sale.Note,
		sale.LastUpdatedAt, sale.LastUpdatedBy, sale.SaleID,
	)
	if err != nil {
		return writeError(err, "update", "Sales record")
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("sale %s: %w", sale.SaleID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxSaleRepository) DeleteSale(ctx context.Context, saleID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM sales WHERE sale_id = $1;`, saleID)
	if err != nil {
		return writeError(err, "delete", "Sales record")
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("sale %s: %w", saleID, apperrors.ErrNotFound)
	}
	return nil
}
