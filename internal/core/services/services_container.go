package services

import (
	portsrepo "github.com/alfadli/hrm_backend/internal/core/ports/repositories"
	portssvc "github.com/alfadli/hrm_backend/internal/core/ports/services"
	"github.com/alfadli/hrm_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Branch = NewBranchService(repos.BranchRepo)
	container.Employee = NewEmployeeService(repos.EmployeeRepo)
	container.Attendance = NewAttendanceService(
		repos.AttendanceRepo,
		WithAttendanceEmployeeReader(repos.EmployeeRepo),
	)
	container.Payroll = NewPayrollService(
		repos.PayrollRepo,
		WithPayrollEmployeeReader(repos.EmployeeRepo),
	)
	container.Accounting = NewAccountingService(repos.IncomeRepo, repos.ExpenseRepo, repos.ExpenseCategoryRepo)
	container.Sale = NewSaleService(repos.SaleRepo)
	container.User = NewUserService(repos.UserRepo)
	container.Token = NewTokenService(cfg)

	return container
}
