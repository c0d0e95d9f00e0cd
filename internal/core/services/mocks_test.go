package services_test

import (
	"context"
	"time"

	"github.com/alfadli/hrm_backend/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- MockBranchRepository ---
type MockBranchRepository struct{ mock.Mock }

func (m *MockBranchRepository) FindBranchByID(ctx context.Context, branchID string) (*domain.Branch, error) {
	args := m.Called(ctx, branchID)
	var branch *domain.Branch
	if args.Get(0) != nil {
		branch = args.Get(0).(*domain.Branch)
	}
	return branch, args.Error(1)
}

func (m *MockBranchRepository) ListBranches(ctx context.Context, branchID string) ([]domain.Branch, error) {
	args := m.Called(ctx, branchID)
	var branches []domain.Branch
	if args.Get(0) != nil {
		branches = args.Get(0).([]domain.Branch)
	}
	return branches, args.Error(1)
}

func (m *MockBranchRepository) SaveBranch(ctx context.Context, branch domain.Branch) error {
	return m.Called(ctx, branch).Error(0)
}

func (m *MockBranchRepository) UpdateBranch(ctx context.Context, branch domain.Branch) error {
	return m.Called(ctx, branch).Error(0)
}

func (m *MockBranchRepository) DeleteBranch(ctx context.Context, branchID string) error {
	return m.Called(ctx, branchID).Error(0)
}

// --- MockEmployeeRepository ---
type MockEmployeeRepository struct{ mock.Mock }

func (m *MockEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	args := m.Called(ctx, employeeID)
	var employee *domain.Employee
	if args.Get(0) != nil {
		employee = args.Get(0).(*domain.Employee)
	}
	return employee, args.Error(1)
}

func (m *MockEmployeeRepository) ListEmployees(ctx context.Context, filter domain.EmployeeFilter) ([]domain.Employee, error) {
	args := m.Called(ctx, filter)
	var employees []domain.Employee
	if args.Get(0) != nil {
		employees = args.Get(0).([]domain.Employee)
	}
	return employees, args.Error(1)
}

func (m *MockEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	return m.Called(ctx, employee).Error(0)
}

func (m *MockEmployeeRepository) UpdateEmployee(ctx context.Context, employee domain.Employee) error {
	return m.Called(ctx, employee).Error(0)
}

func (m *MockEmployeeRepository) DeleteEmployee(ctx context.Context, employeeID string) error {
	return m.Called(ctx, employeeID).Error(0)
}

// --- MockAttendanceRepository ---
type MockAttendanceRepository struct{ mock.Mock }

func (m *MockAttendanceRepository) FindAttendanceByID(ctx context.Context, attendanceID string) (*domain.Attendance, error) {
	args := m.Called(ctx, attendanceID)
	var attendance *domain.Attendance
	if args.Get(0) != nil {
		attendance = args.Get(0).(*domain.Attendance)
	}
	return attendance, args.Error(1)
}

func (m *MockAttendanceRepository) ListAttendance(ctx context.Context, filter domain.AttendanceFilter) ([]domain.Attendance, error) {
	args := m.Called(ctx, filter)
	var records []domain.Attendance
	if args.Get(0) != nil {
		records = args.Get(0).([]domain.Attendance)
	}
	return records, args.Error(1)
}

func (m *MockAttendanceRepository) SaveAttendance(ctx context.Context, attendance domain.Attendance) error {
	return m.Called(ctx, attendance).Error(0)
}

func (m *MockAttendanceRepository) UpdateAttendance(ctx context.Context, attendance domain.Attendance) error {
	return m.Called(ctx, attendance).Error(0)
}

func (m *MockAttendanceRepository) DeleteAttendance(ctx context.Context, attendanceID string) error {
	return m.Called(ctx, attendanceID).Error(0)
}

// --- MockPayrollRepository ---
type MockPayrollRepository struct{ mock.Mock }

func (m *MockPayrollRepository) FindPayrollByID(ctx context.Context, payrollID string) (*domain.Payroll, error) {
	args := m.Called(ctx, payrollID)
	var payroll *domain.Payroll
	if args.Get(0) != nil {
		payroll = args.Get(0).(*domain.Payroll)
	}
	return payroll, args.Error(1)
}

func (m *MockPayrollRepository) ListPayroll(ctx context.Context, filter domain.PayrollFilter) ([]domain.Payroll, error) {
	args := m.Called(ctx, filter)
	var records []domain.Payroll
	if args.Get(0) != nil {
		records = args.Get(0).([]domain.Payroll)
	}
	return records, args.Error(1)
}

func (m *MockPayrollRepository) SavePayroll(ctx context.Context, payroll domain.Payroll) error {
	return m.Called(ctx, payroll).Error(0)
}

func (m *MockPayrollRepository) UpdatePayroll(ctx context.Context, payroll domain.Payroll) error {
	return m.Called(ctx, payroll).Error(0)
}

func (m *MockPayrollRepository) DeletePayroll(ctx context.Context, payrollID string) error {
	return m.Called(ctx, payrollID).Error(0)
}

// --- MockIncomeRepository ---
type MockIncomeRepository struct{ mock.Mock }

func (m *MockIncomeRepository) FindIncomeByID(ctx context.Context, incomeID string) (*domain.Income, error) {
	args := m.Called(ctx, incomeID)
	var income *domain.Income
	if args.Get(0) != nil {
		income = args.Get(0).(*domain.Income)
	}
	return income, args.Error(1)
}

func (m *MockIncomeRepository) ListIncomes(ctx context.Context, filter domain.LedgerFilter) ([]domain.Income, error) {
	args := m.Called(ctx, filter)
	var incomes []domain.Income
	if args.Get(0) != nil {
		incomes = args.Get(0).([]domain.Income)
	}
	return incomes, args.Error(1)
}

func (m *MockIncomeRepository) SaveIncome(ctx context.Context, income domain.Income) error {
	return m.Called(ctx, income).Error(0)
}

func (m *MockIncomeRepository) UpdateIncome(ctx context.Context, income domain.Income) error {
	return m.Called(ctx, income).Error(0)
}

func (m *MockIncomeRepository) DeleteIncome(ctx context.Context, incomeID string) error {
	return m.Called(ctx, incomeID).Error(0)
}

// --- MockExpenseRepository ---
type MockExpenseRepository struct{ mock.Mock }

func (m *MockExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	args := m.Called(ctx, expenseID)
	var expense *domain.Expense
	if args.Get(0) != nil {
		expense = args.Get(0).(*domain.Expense)
	}
	return expense, args.Error(1)
}

func (m *MockExpenseRepository) ListExpenses(ctx context.Context, filter domain.LedgerFilter) ([]domain.Expense, error) {
	args := m.Called(ctx, filter)
	var expenses []domain.Expense
	if args.Get(0) != nil {
		expenses = args.Get(0).([]domain.Expense)
	}
	return expenses, args.Error(1)
}

func (m *MockExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	return m.Called(ctx, expense).Error(0)
}

func (m *MockExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	return m.Called(ctx, expense).Error(0)
}

func (m *MockExpenseRepository) DeleteExpense(ctx context.Context, expenseID string) error {
	return m.Called(ctx, expenseID).Error(0)
}

// --- MockExpenseCategoryRepository ---
type MockExpenseCategoryRepository struct{ mock.Mock }

func (m *MockExpenseCategoryRepository) FindExpenseCategoryByID(ctx context.Context, categoryID string) (*domain.ExpenseCategory, error) {
	args := m.Called(ctx, categoryID)
	var category *domain.ExpenseCategory
	if args.Get(0) != nil {
		category = args.Get(0).(*domain.ExpenseCategory)
	}
	return category, args.Error(1)
}

func (m *MockExpenseCategoryRepository) ListExpenseCategories(ctx context.Context) ([]domain.ExpenseCategory, error) {
	args := m.Called(ctx)
	var categories []domain.ExpenseCategory
	if args.Get(0) != nil {
		categories = args.Get(0).([]domain.ExpenseCategory)
	}
	return categories, args.Error(1)
}

func (m *MockExpenseCategoryRepository) SaveExpenseCategory(ctx context.Context, category domain.ExpenseCategory) error {
	return m.Called(ctx, category).Error(0)
}

// --- MockSaleRepository ---
type MockSaleRepository struct{ mock.Mock }

func (m *MockSaleRepository) FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error) {
	args := m.Called(ctx, saleID)
	var sale *domain.Sale
	if args.Get(0) != nil {
		sale = args.Get(0).(*domain.Sale)
	}
	return sale, args.Error(1)
}

func (m *MockSaleRepository) ListSales(ctx context.Context, filter domain.LedgerFilter) ([]domain.Sale, error) {
	args := m.Called(ctx, filter)
	var sales []domain.Sale
	if args.Get(0) != nil {
		sales = args.Get(0).([]domain.Sale)
	}
	return sales, args.Error(1)
}

func (m *MockSaleRepository) SaveSale(ctx context.Context, sale domain.Sale) error {
	return m.Called(ctx, sale).Error(0)
}

func (m *MockSaleRepository) UpdateSale(ctx context.Context, sale domain.Sale) error {
	return m.Called(ctx, sale).Error(0)
}

func (m *MockSaleRepository) DeleteSale(ctx context.Context, saleID string) error {
	return m.Called(ctx, saleID).Error(0)
}

// --- MockUserRepository ---
type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time, deletedBy string) error {
	return m.Called(ctx, userID, deletedAt, deletedBy).Error(0)
}

// --- shared fixtures ---

var (
	adminID   = domain.Admin{ID: "admin-1"}
	managerID = domain.Manager{ID: "manager-1"}
	staffB1   = domain.Staff{ID: "staff-1", HomeBranchID: "B1"}
)

func strPtr(s string) *string { return &s }
