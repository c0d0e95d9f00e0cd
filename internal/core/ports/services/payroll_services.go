package services

import (
	"context"

	"github.com/alfadli/hrm_backend/internal/core/domain"
	"github.com/alfadli/hrm_backend/internal/dto"
)

// PayrollSvcFacade defines payroll operations. Totals are recomputed on every write.
type PayrollSvcFacade interface {
	CreatePayroll(ctx context.Context, identity domain.Identity, req dto.CreatePayrollRequest) (*domain.Payroll, error)
	ListPayroll(ctx context.Context, identity domain.Identity, params dto.ListPayrollParams) ([]domain.Payroll, error)
	GetPayroll(ctx context.Context, identity domain.Identity, payrollID string) (*domain.Payroll, error)
	UpdatePayroll(ctx context.Context, identity domain.Identity, payrollID string, req dto.UpdatePayrollRequest) (*domain.Payroll, error)
	DeletePayroll(ctx context.Context, identity domain.Identity, payrollID string) error
}
