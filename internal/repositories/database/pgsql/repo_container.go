package pgsql

import (
	portsrepo "github.com/alfadli/hrm_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		BranchRepo:          newPgxBranchRepository(dbPool),
		EmployeeRepo:        newPgxEmployeeRepository(dbPool),
		AttendanceRepo:      newPgxAttendanceRepository(dbPool),
		PayrollRepo:         newPgxPayrollRepository(dbPool),
		IncomeRepo:          newPgxIncomeRepository(dbPool),
		ExpenseRepo:         newPgxExpenseRepository(dbPool),
		ExpenseCategoryRepo: newPgxExpenseCategoryRepository(dbPool),
		SaleRepo:            newPgxSaleRepository(dbPool),
		UserRepo:            newPgxUserRepository(dbPool),
	}
}
