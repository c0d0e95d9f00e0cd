package repositories

import (
	"context"

	"github.com/alfadli/hrm_backend/internal/core/domain"
)

// PayrollReader defines read operations for payroll data
type PayrollReader interface {
	FindPayrollByID(ctx context.Context, payrollID string) (*domain.Payroll, error)
	ListPayroll(ctx context.Context, filter domain.PayrollFilter) ([]domain.Payroll, error)
}

// PayrollWriter defines write operations for payroll data.
// The record's Total is persisted as given; callers compute it.
type PayrollWriter interface {
	SavePayroll(ctx context.Context, payroll domain.Payroll) error
	UpdatePayroll(ctx context.Context, payroll domain.Payroll) error
	DeletePayroll(ctx context.Context, payrollID string) error
}

// PayrollRepositoryFacade combines all payroll-related repository interfaces
type PayrollRepositoryFacade interface {
	PayrollReader
	PayrollWriter
}
