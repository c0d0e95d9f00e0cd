package handlers_test

import (
	"context"
	"time"

	"github.com/alfadli/hrm_backend/internal/core/domain"
	portssvc "github.com/alfadli/hrm_backend/internal/core/ports/services"
	"github.com/alfadli/hrm_backend/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUserByID(ctx context.Context, identity domain.Identity, userID string) (*domain.User, error) {
	args := m.Called(ctx, identity, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) GetProfile(ctx context.Context, identity domain.Identity) (*domain.User, error) {
	args := m.Called(ctx, identity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) ListUsers(ctx context.Context, identity domain.Identity) ([]domain.User, error) {
	args := m.Called(ctx, identity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockUserService) CreateUser(ctx context.Context, identity domain.Identity, req dto.CreateUserRequest) (*domain.User, error) {
	args := m.Called(ctx, identity, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) UpdateUser(ctx context.Context, identity domain.Identity, userID string, req dto.UpdateUserRequest) (*domain.User, error) {
	args := m.Called(ctx, identity, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) DeleteUser(ctx context.Context, identity domain.Identity, userID string) error {
	return m.Called(ctx, identity, userID).Error(0)
}
func (m *MockUserService) EnsureAdmin(ctx context.Context, email, password, name string) error {
	return m.Called(ctx, email, password, name).Error(0)
}
func (m *MockUserService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Mock TokenService ---
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

var _ portssvc.TokenSvcFacade = (*MockTokenService)(nil)

// --- Mock EmployeeService ---
type MockEmployeeService struct {
	mock.Mock
}

func (m *MockEmployeeService) CreateEmployee(ctx context.Context, identity domain.Identity, req dto.CreateEmployeeRequest) (*domain.Employee, error) {
	args := m.Called(ctx, identity, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}
func (m *MockEmployeeService) ListEmployees(ctx context.Context, identity domain.Identity, params dto.ListEmployeesParams) ([]domain.Employee, error) {
	args := m.Called(ctx, identity, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Employee), args.Error(1)
}
func (m *MockEmployeeService) GetEmployee(ctx context.Context, identity domain.Identity, employeeID string) (*domain.Employee, error) {
	args := m.Called(ctx, identity, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}
func (m *MockEmployeeService) UpdateEmployee(ctx context.Context, identity domain.Identity, employeeID string, req dto.UpdateEmployeeRequest) (*domain.Employee, error) {
	args := m.Called(ctx, identity, employeeID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}
func (m *MockEmployeeService) DeleteEmployee(ctx context.Context, identity domain.Identity, employeeID string) error {
	return m.Called(ctx, identity, employeeID).Error(0)
}

var _ portssvc.EmployeeSvcFacade = (*MockEmployeeService)(nil)

// --- Mock AttendanceService ---
type MockAttendanceService struct {
	mock.Mock
}

func (m *MockAttendanceService) CreateAttendance(ctx context.Context, identity domain.Identity, req dto.CreateAttendanceRequest) (*domain.Attendance, error) {
	args := m.Called(ctx, identity, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Attendance), args.Error(1)
}
func (m *MockAttendanceService) ListAttendance(ctx context.Context, identity domain.Identity, params dto.ListAttendanceParams) ([]domain.Attendance, error) {
	args := m.Called(ctx, identity, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Attendance), args.Error(1)
}
func (m *MockAttendanceService) GetAttendance(ctx context.Context, identity domain.Identity, attendanceID string) (*domain.Attendance, error) {
	args := m.Called(ctx, identity, attendanceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Attendance), args.Error(1)
}
func (m *MockAttendanceService) UpdateAttendance(ctx context.Context, identity domain.Identity, attendanceID string, req dto.UpdateAttendanceRequest) (*domain.Attendance, error) {
	args := m.Called(ctx, identity, attendanceID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Attendance), args.Error(1)
}
func (m *MockAttendanceService) DeleteAttendance(ctx context.Context, identity domain.Identity, attendanceID string) error {
	return m.Called(ctx, identity, attendanceID).Error(0)
}

var _ portssvc.AttendanceSvcFacade = (*MockAttendanceService)(nil)

// --- Mock PayrollService ---
type MockPayrollService struct {
	mock.Mock
}

func (m *MockPayrollService) CreatePayroll(ctx context.Context, identity domain.Identity, req dto.CreatePayrollRequest) (*domain.Payroll, error) {
	args := m.Called(ctx, identity, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payroll), args.Error(1)
}
func (m *MockPayrollService) ListPayroll(ctx context.Context, identity domain.Identity, params dto.ListPayrollParams) ([]domain.Payroll, error) {
	args := m.Called(ctx, identity, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payroll), args.Error(1)
}
func (m *MockPayrollService) GetPayroll(ctx context.Context, identity domain.Identity, payrollID string) (*domain.Payroll, error) {
	args := m.Called(ctx, identity, payrollID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payroll), args.Error(1)
}
func (m *MockPayrollService) UpdatePayroll(ctx context.Context, identity domain.Identity, payrollID string, req dto.UpdatePayrollRequest) (*domain.Payroll, error) {
	args := m.Called(ctx, identity, payrollID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payroll), args.Error(1)
}
func (m *MockPayrollService) DeletePayroll(ctx context.Context, identity domain.Identity, payrollID string) error {
	return m.Called(ctx, identity, payrollID).Error(0)
}

var _ portssvc.PayrollSvcFacade = (*MockPayrollService)(nil)

// --- Mock AccountingService ---
type MockAccountingService struct {
	mock.Mock
}

func (m *MockAccountingService) CreateIncome(ctx context.Context, identity domain.Identity, req dto.CreateIncomeRequest) (*domain.Income, error) {
	args := m.Called(ctx, identity, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Income), args.Error(1)
}
func (m *MockAccountingService) ListIncomes(ctx context.Context, identity domain.Identity, params dto.LedgerParams) ([]domain.Income, error) {
	args := m.Called(ctx, identity, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Income), args.Error(1)
}
func (m *MockAccountingService) UpdateIncome(ctx context.Context, identity domain.Identity, incomeID string, req dto.UpdateIncomeRequest) (*domain.Income, error) {
	args := m.Called(ctx, identity, incomeID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Income), args.Error(1)
}
func (m *MockAccountingService) DeleteIncome(ctx context.Context, identity domain.Identity, incomeID string) error {
	return m.Called(ctx, identity, incomeID).Error(0)
}
func (m *MockAccountingService) CreateExpense(ctx context.Context, identity domain.Identity, req dto.CreateExpenseRequest) (*domain.Expense, error) {
	args := m.Called(ctx, identity, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}
func (m *MockAccountingService) ListExpenses(ctx context.Context, identity domain.Identity, params dto.LedgerParams) ([]domain.Expense, error) {
	args := m.Called(ctx, identity, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}
func (m *MockAccountingService) UpdateExpense(ctx context.Context, identity domain.Identity, expenseID string, req dto.UpdateExpenseRequest) (*domain.Expense, error) {
	args := m.Called(ctx, identity, expenseID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}
func (m *MockAccountingService) DeleteExpense(ctx context.Context, identity domain.Identity, expenseID string) error {
	return m.Called(ctx, identity, expenseID).Error(0)
}
func (m *MockAccountingService) CreateExpenseCategory(ctx context.Context, identity domain.Identity, req dto.CreateExpenseCategoryRequest) (*domain.ExpenseCategory, error) {
	args := m.Called(ctx, identity, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExpenseCategory), args.Error(1)
}
func (m *MockAccountingService) ListExpenseCategories(ctx context.Context, identity domain.Identity) ([]domain.ExpenseCategory, error) {
	args := m.Called(ctx, identity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExpenseCategory), args.Error(1)
}
func (m *MockAccountingService) GetProfitLoss(ctx context.Context, identity domain.Identity, params dto.LedgerParams) (*domain.ProfitLoss, error) {
	args := m.Called(ctx, identity, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProfitLoss), args.Error(1)
}

var _ portssvc.AccountingSvcFacade = (*MockAccountingService)(nil)

// --- Mock BranchService ---
type MockBranchService struct {
	mock.Mock
}

func (m *MockBranchService) CreateBranch(ctx context.Context, identity domain.Identity, req dto.CreateBranchRequest) (*domain.Branch, error) {
	args := m.Called(ctx, identity, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Branch), args.Error(1)
}
func (m *MockBranchService) ListBranches(ctx context.Context, identity domain.Identity) ([]domain.Branch, error) {
	args := m.Called(ctx, identity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Branch), args.Error(1)
}
func (m *MockBranchService) GetBranch(ctx context.Context, identity domain.Identity, branchID string) (*domain.Branch, error) {
	args := m.Called(ctx, identity, branchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Branch), args.Error(1)
}
func (m *MockBranchService) UpdateBranch(ctx context.Context, identity domain.Identity, branchID string, req dto.UpdateBranchRequest) (*domain.Branch, error) {
	args := m.Called(ctx, identity, branchID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Branch), args.Error(1)
}
func (m *MockBranchService) DeleteBranch(ctx context.Context, identity domain.Identity, branchID string) error {
	return m.Called(ctx, identity, branchID).Error(0)
}

var _ portssvc.BranchSvcFacade = (*MockBranchService)(nil)

// --- Mock SaleService ---
type MockSaleService struct {
	mock.Mock
}

func (m *MockSaleService) CreateSale(ctx context.Context, identity domain.Identity, req dto.CreateSaleRequest) (*domain.Sale, error) {
	args := m.Called(ctx, identity, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}
func (m *MockSaleService) ListSales(ctx context.Context, identity domain.Identity, params dto.LedgerParams) ([]domain.Sale, error) {
	args := m.Called(ctx, identity, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Sale), args.Error(1)
}
func (m *MockSaleService) GetSale(ctx context.Context, identity domain.Identity, saleID string) (*domain.Sale, error) {
	args := m.Called(ctx, identity, saleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}
func (m *MockSaleService) UpdateSale(ctx context.Context, identity domain.Identity, saleID string, req dto.UpdateSaleRequest) (*domain.Sale, error) {
	args := m.Called(ctx, identity, saleID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}
func (m *MockSaleService) DeleteSale(ctx context.Context, identity domain.Identity, saleID string) error {
	return m.Called(ctx, identity, saleID).Error(0)
}
func (m *MockSaleService) GetSalesSummary(ctx context.Context, identity domain.Identity, params dto.LedgerParams) (*domain.SalesSummary, error) {
	args := m.Called(ctx, identity, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SalesSummary), args.Error(1)
}

var _ portssvc.SaleSvcFacade = (*MockSaleService)(nil)
