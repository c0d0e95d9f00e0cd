package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/alfadli/hrm_backend/internal/apperrors"
	"github.com/alfadli/hrm_backend/internal/core/domain"
	"github.com/alfadli/hrm_backend/internal/core/policy"
	portsrepo "github.com/alfadli/hrm_backend/internal/core/ports/repositories"
	portssvc "github.com/alfadli/hrm_backend/internal/core/ports/services"
	"github.com/alfadli/hrm_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// payrollService implements the PayrollSvcFacade interface
type payrollService struct {
	BaseService
	payrollRepo    portsrepo.PayrollRepositoryFacade
	employeeReader portsrepo.EmployeeReader
}

// PayrollServiceOption is a functional option for configuring the payroll service
type PayrollServiceOption func(*payrollService)

// WithPayrollEmployeeReader makes the service check that the employee
// exists and belongs to the record's branch.
func WithPayrollEmployeeReader(reader portsrepo.EmployeeReader) PayrollServiceOption {
	return func(s *payrollService) {
		s.employeeReader = reader
	}
}

// NewPayrollService creates a new payroll service with the provided dependencies
func NewPayrollService(payrollRepo portsrepo.PayrollRepositoryFacade, options ...PayrollServiceOption) portssvc.PayrollSvcFacade {
	s := &payrollService{payrollRepo: payrollRepo}
	for _, option := range options {
		option(s)
	}
	return s
}

var _ portssvc.PayrollSvcFacade = (*payrollService)(nil)

func orZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

func (s *payrollService) CreatePayroll(ctx context.Context, identity domain.Identity, req dto.CreatePayrollRequest) (*domain.Payroll, error) {
	decision, err := s.Authorize(ctx, identity, policy.Request{
		Kind: policy.KindPayroll, Op: policy.OpCreate, TargetBranchID: req.BranchID,
	})
	if err != nil {
		return nil, err
	}
	branchID, err := createBranch(decision)
	if err != nil {
		return nil, err
	}
	if req.BaseSalary == nil {
		return nil, apperrors.NewValidationFailedError("baseSalary is required")
	}
	if err := ensureEmployeeInBranch(ctx, s.employeeReader, req.EmployeeID, branchID); err != nil {
		return nil, err
	}

	payroll := domain.Payroll{
		PayrollID:   uuid.NewString(),
		EmployeeID:  req.EmployeeID,
		BranchID:    branchID,
		Month:       req.Month,
		Year:        req.Year,
		BaseSalary:  *req.BaseSalary,
		Bonuses:     orZero(req.Bonuses),
		Adjustments: orZero(req.Adjustments),
		AuditFields: domain.NewAuditFields(identity.UserID(), s.now()),
	}
	payroll.RecomputeTotal()

	if err := s.payrollRepo.SavePayroll(ctx, payroll); err != nil {
		s.LogError(ctx, err, "Failed to save payroll",
			slog.String("payroll_id", payroll.PayrollID),
			slog.String("employee_id", payroll.EmployeeID))
		return nil, err
	}

	s.LogInfo(ctx, "Payroll created successfully",
		slog.String("payroll_id", payroll.PayrollID),
		slog.String("total", payroll.Total.String()))
	return &payroll, nil
}

func (s *payrollService) ListPayroll(ctx context.Context, identity domain.Identity, params dto.ListPayrollParams) ([]domain.Payroll, error) {
	decision, err := s.Authorize(ctx, identity, policy.Request{
		Kind: policy.KindPayroll, Op: policy.OpRead, TargetBranchID: params.BranchID,
	})
	if err != nil {
		return nil, err
	}

	records, err := s.payrollRepo.ListPayroll(ctx, domain.PayrollFilter{
		BranchID:   readFilter(decision),
		EmployeeID: params.EmployeeID,
		Month:      params.Month,
		Year:       params.Year,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to list payroll")
		return nil, err
	}
	if records == nil {
		return []domain.Payroll{}, nil
	}
	return records, nil
}

func (s *payrollService) GetPayroll(ctx context.Context, identity domain.Identity, payrollID string) (*domain.Payroll, error) {
	decision, err := s.Authorize(ctx, identity, policy.Request{Kind: policy.KindPayroll, Op: policy.OpRead})
	if err != nil {
		return nil, err
	}

	payroll, err := s.findPayroll(ctx, payrollID)
	if err != nil {
		return nil, err
	}
	if !decision.Admits(payroll.BranchID) {
		return nil, apperrors.NewForbiddenError("Access denied")
	}
	return payroll, nil
}

// UpdatePayroll merges the supplied fields into the stored record and
// recomputes the total from the merged amounts.
func (s *payrollService) UpdatePayroll(ctx context.Context, identity domain.Identity, payrollID string, req dto.UpdatePayrollRequest) (*domain.Payroll, error) {
	if err := s.Precheck(ctx, identity, policy.Request{Kind: policy.KindPayroll, Op: policy.OpUpdate}); err != nil {
		return nil, err
	}

	payroll, err := s.findPayroll(ctx, payrollID)
	if err != nil {
		return nil, err
	}
	if err := s.AuthorizeUpdate(ctx, identity, policy.KindPayroll, payroll.BranchID, req.BranchID); err != nil {
		return nil, err
	}

	employeeChanged := false
	if req.BranchID != nil && *req.BranchID != payroll.BranchID {
		payroll.BranchID = *req.BranchID
		payroll.BranchName = ""
		employeeChanged = true
	}
	if req.EmployeeID != nil && *req.EmployeeID != payroll.EmployeeID {
		payroll.EmployeeID = *req.EmployeeID
		payroll.EmployeeName = ""
		employeeChanged = true
	}
	if employeeChanged {
		if err := ensureEmployeeInBranch(ctx, s.employeeReader, payroll.EmployeeID, payroll.BranchID); err != nil {
			return nil, err
		}
	}
	if req.Month != nil {
		payroll.Month = *req.Month
	}
	if req.Year != nil {
		payroll.Year = *req.Year
	}
	if req.BaseSalary != nil {
		payroll.BaseSalary = *req.BaseSalary
	}
	if req.Bonuses != nil {
		payroll.Bonuses = *req.Bonuses
	}
	if req.Adjustments != nil {
		payroll.Adjustments = *req.Adjustments
	}
	payroll.RecomputeTotal()
	payroll.Touch(identity.UserID(), s.now())

	if err := s.payrollRepo.UpdatePayroll(ctx, *payroll); err != nil {
		s.LogError(ctx, err, "Failed to update payroll", slog.String("payroll_id", payrollID))
		return nil, err
	}

	s.LogInfo(ctx, "Payroll updated successfully",
		slog.String("payroll_id", payrollID),
		slog.String("total", payroll.Total.String()))
	return payroll, nil
}

func (s *payrollService) DeletePayroll(ctx context.Context, identity domain.Identity, payrollID string) error {
	if err := s.Precheck(ctx, identity, policy.Request{Kind: policy.KindPayroll, Op: policy.OpDelete}); err != nil {
		return err
	}

	payroll, err := s.findPayroll(ctx, payrollID)
	if err != nil {
		return err
	}
	if _, err := s.Authorize(ctx, identity, policy.Request{
		Kind: policy.KindPayroll, Op: policy.OpDelete, OwnerBranchID: payroll.BranchID,
	}); err != nil {
		return err
	}

	if err := s.payrollRepo.DeletePayroll(ctx, payrollID); err != nil {
		s.LogError(ctx, err, "Failed to delete payroll", slog.String("payroll_id", payrollID))
		return err
	}

	s.LogInfo(ctx, "Payroll deleted successfully", slog.String("payroll_id", payrollID))
	return nil
}

func (s *payrollService) findPayroll(ctx context.Context, payrollID string) (*domain.Payroll, error) {
	payroll, err := s.payrollRepo.FindPayrollByID(ctx, payrollID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Payroll record not found")
		}
		s.LogError(ctx, err, "Failed to find payroll by ID", slog.String("payroll_id", payrollID))
		return nil, err
	}
	return payroll, nil
}
