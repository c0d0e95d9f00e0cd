package pgsql

import (
	"context"
	"fmt"

	"github.com/alfadli/hrm_backend/internal/apperrors"
	"github.com/alfadli/hrm_backend/internal/core/domain"
	portsrepo "github.com/alfadli/hrm_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPayrollRepository struct {
	BaseRepository
}

func newPgxPayrollRepository(pool *pgxpool.Pool) portsrepo.PayrollRepositoryFacade {
	return &PgxPayrollRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PayrollRepositoryFacade = (*PgxPayrollRepository)(nil)

const FULL_PAYROLL_SELECT_QUERY = `
SELECT
	p.payroll_id, p.employee_id, COALESCE(e.name, '') AS employee_name,
	p.branch_id, COALESCE(b.name, '') AS branch_name,
	p.month::int AS month, p.year,
	p.base_salary, p.bonuses, p.adjustments, p.total,
	p.created_at, p.created_by, p.last_updated_at, p.last_updated_by
FROM payroll p
LEFT JOIN employees e ON e.employee_id = p.employee_id
LEFT JOIN branches b ON b.branch_id = p.branch_id
`

func (r *PgxPayrollRepository) getPayroll(ctx context.Context, filterQuery string, args ...any) ([]domain.Payroll, error) {
	rows, err := r.Pool.Query(ctx, FULL_PAYROLL_SELECT_QUERY+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query payroll", err)
	}
	defer rows.Close()
	return collect[domain.Payroll](rows, "payroll")
}

func (r *PgxPayrollRepository) FindPayrollByID(ctx context.Context, payrollID string) (*domain.Payroll, error) {
	records, err := r.getPayroll(ctx, "WHERE p.payroll_id = $1", payrollID)
	if err != nil {
		return nil, err
	}
	return oneRow(records)
}

func (r *PgxPayrollRepository) ListPayroll(ctx context.Context, pf domain.PayrollFilter) ([]domain.Payroll, error) {
	var f filter
	f.eq("p.branch_id", pf.BranchID)
	f.eq("p.employee_id", pf.EmployeeID)
	f.eq("p.month", pf.Month)
	f.eq("p.year", pf.Year)
	return r.getPayroll(ctx, f.where()+" ORDER BY p.year DESC, p.month DESC", f.args...)
}

func (r *PgxPayrollRepository) SavePayroll(ctx context.Context, payroll domain.Payroll) error {
	query := `
		INSERT INTO payroll (
			payroll_id, employee_id, branch_id, month, year,
			base_salary, bonuses, adjustments, total,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		payroll.PayrollID, payroll.EmployeeID, payroll.BranchID, payroll.Month, payroll.Year,
		payroll.BaseSalary, payroll.Bonuses, payroll.Adjustments, payroll.Total,
		payroll.CreatedAt, payroll.CreatedBy, payroll.LastUpdatedAt, payroll.LastUpdatedBy,
	)
	if err != nil {
		return writeError(err, "save", "Payroll record")
	}
	return nil
}

func (r *PgxPayrollRepository) UpdatePayroll(ctx context.Context, payroll domain.Payroll) error {
	query := `
		UPDATE payroll
		SET employee_id = $1, branch_id = $2, month = $3, year = $4,
			base_salary = $5, bonuses = $6, adjustments = $7, total = $8,
			last_updated_at = $9, last_updated_by = $10
		WHERE payroll_id = $11;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		payroll.EmployeeID, payroll.BranchID, payroll.Month, payroll.Year,
		payroll.BaseSalary, payroll.Bonuses, payroll.Adjustments, payroll.Total,
		payroll.LastUpdatedAt, payroll.LastUpdatedBy, payroll.PayrollID,
	)
	if err != nil {
		return writeError(err, "update", "Payroll record")
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("payroll %s: %w", payroll.PayrollID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxPayrollRepository) DeletePayroll(ctx context.Context, payrollID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM payroll WHERE payroll_id = $1;`, payrollID)
	if err != nil {
		return writeError(err, "delete", "Payroll record")
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("payroll %s: %w", payrollID, apperrors.ErrNotFound)
	}
	return nil
}
