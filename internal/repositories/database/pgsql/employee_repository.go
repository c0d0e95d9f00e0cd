package pgsql

import (
	"context"
	"fmt"

	"github.com/alfadli/hrm_backend/internal/apperrors"
	"github.com/alfadli/hrm_backend/internal/core/domain"
	portsrepo "github.com/alfadli/hrm_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxEmployeeRepository struct {
	BaseRepository
}

func newPgxEmployeeRepository(pool *pgxpool.Pool) portsrepo.EmployeeRepositoryFacade {
	return &PgxEmployeeRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.EmployeeRepositoryFacade = (*PgxEmployeeRepository)(nil)

const FULL_EMPLOYEE_SELECT_QUERY = `
SELECT
	e.employee_id, e.branch_id, COALESCE(b.name, '') AS branch_name,
	e.name, e.email, e.phone, e.position,
	e.salary, e.start_date, e.status,
	e.created_at, e.created_by, e.last_updated_at, e.last_updated_by
FROM employees e
LEFT JOIN branches b ON b.branch_id = e.branch_id
`

func (r *PgxEmployeeRepository) getEmployees(ctx context.Context, filterQuery string, args ...any) ([]domain.Employee, error) {
	rows, err := r.Pool.Query(ctx, FULL_EMPLOYEE_SELECT_QUERY+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query employees", err)
	}
	defer rows.Close()
	return collect[domain.Employee](rows, "employee")
}

func (r *PgxEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	employees, err := r.getEmployees(ctx, "WHERE e.employee_id = $1", employeeID)
	if err != nil {
		return nil, err
	}
	return oneRow(employees)
}

func (r *PgxEmployeeRepository) ListEmployees(ctx context.Context, ef domain.EmployeeFilter) ([]domain.Employee, error) {
	var f filter
	f.eq("e.branch_id", ef.BranchID)
	return r.getEmployees(ctx, f.where()+" ORDER BY e.created_at DESC", f.args...)
}

func (r *PgxEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	query := `
		INSERT INTO employees (
			employee_id, branch_id, name, email, phone, position, salary, start_date, status,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		employee.EmployeeID, employee.BranchID, employee.Name, employee.Email, employee.Phone,
		employee.Position, employee.Salary, employee.StartDate, employee.Status,
		employee.CreatedAt, employee.CreatedBy, employee.LastUpdatedAt, employee.LastUpdatedBy,
	)
	if err != nil {
		return writeError(err, "save", "Employee")
	}
	return nil
}

func (r *PgxEmployeeRepository) UpdateEmployee(ctx context.Context, employee domain.Employee) error {
	query := `
		UPDATE employees
		SET branch_id = $1, name = $2, email = $3, phone = $4, position = $5,
			salary = $6, start_date = $7, status = $8,
			last_updated_at = $9, last_updated_by = $10
		WHERE employee_id = $11;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		employee.BranchID, employee.Name, employee.Email, employee.Phone, employee.Position,
		employee.Salary, employee.StartDate, employee.Status,
		employee.LastUpdatedAt, employee.LastUpdatedBy, employee.EmployeeID,
	)
	if err != nil {
		return writeError(err, "update", "Employee")
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("employee %s: %w", employee.EmployeeID, apperrors.ErrNotFound)
	}
	return nil
}

// DeleteEmployee removes the employee together with their attendance and payroll.
func (r *PgxEmployeeRepository) DeleteEmployee(ctx context.Context, employeeID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM employees WHERE employee_id = $1;`, employeeID)
	if err != nil {
		return writeError(err, "delete", "Employee")
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("employee %s: %w", employeeID, apperrors.ErrNotFound)
	}
	return nil
}
