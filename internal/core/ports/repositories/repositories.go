package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	BranchRepo          BranchRepositoryFacade
	EmployeeRepo        EmployeeRepositoryFacade
	AttendanceRepo      AttendanceRepositoryFacade
	PayrollRepo         PayrollRepositoryFacade
	IncomeRepo          IncomeRepositoryFacade
	ExpenseRepo         ExpenseRepositoryFacade
	ExpenseCategoryRepo ExpenseCategoryRepositoryFacade
	SaleRepo            SaleRepositoryFacade
	UserRepo            UserRepositoryFacade
}
