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
)

// employeeService implements the EmployeeSvcFacade interface
type employeeService struct {
	BaseService
	employeeRepo portsrepo.EmployeeRepositoryFacade
}

// NewEmployeeService creates a new employee service with the provided dependencies
func NewEmployeeService(employeeRepo portsrepo.EmployeeRepositoryFacade) portssvc.EmployeeSvcFacade {
	return &employeeService{employeeRepo: employeeRepo}
}

var _ portssvc.EmployeeSvcFacade = (*employeeService)(nil)

func (s *employeeService) CreateEmployee(ctx context.Context, identity domain.Identity, req dto.CreateEmployeeRequest) (*domain.Employee, error) {
	decision, err := s.Authorize(ctx, identity, policy.Request{
		Kind: policy.KindEmployee, Op: policy.OpCreate, TargetBranchID: req.BranchID,
	})
	if err != nil {
		return nil, err
	}
	branchID, err := createBranch(decision)
	if err != nil {
		return nil, err
	}

	if req.Salary == nil {
		return nil, apperrors.NewValidationFailedError("salary is required")
	}
	if req.Salary.IsNegative() {
		return nil, apperrors.NewValidationFailedError("salary must not be negative")
	}
	startDate, err := dto.ParseDate(req.StartDate)
	if err != nil {
		return nil, validationError(err)
	}
	status := req.Status
	if status == "" {
		status = domain.EmployeeActive
	}

	employee := domain.Employee{
		EmployeeID:  uuid.NewString(),
		BranchID:    branchID,
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Position:    req.Position,
		Salary:      *req.Salary,
		StartDate:   startDate,
		Status:      status,
		AuditFields: domain.NewAuditFields(identity.UserID(), s.now()),
	}

	if err := s.employeeRepo.SaveEmployee(ctx, employee); err != nil {
		s.LogError(ctx, err, "Failed to save employee",
			slog.String("employee_id", employee.EmployeeID),
			slog.String("branch_id", branchID))
		return nil, err
	}

	s.LogInfo(ctx, "Employee created successfully",
		slog.String("employee_id", employee.EmployeeID),
		slog.String("branch_id", branchID))
	return &employee, nil
}

func (s *employeeService) ListEmployees(ctx context.Context, identity domain.Identity, params dto.ListEmployeesParams) ([]domain.Employee, error) {
	decision, err := s.Authorize(ctx, identity, policy.Request{
		Kind: policy.KindEmployee, Op: policy.OpRead, TargetBranchID: params.BranchID,
	})
	if err != nil {
		return nil, err
	}

	employees, err := s.employeeRepo.ListEmployees(ctx, domain.EmployeeFilter{BranchID: readFilter(decision)})
	if err != nil {
		s.LogError(ctx, err, "Failed to list employees")
		return nil, err
	}
	if employees == nil {
		return []domain.Employee{}, nil
	}

	s.LogDebug(ctx, "Employees listed successfully", slog.Int("count", len(employees)))
	return employees, nil
}

func (s *employeeService) GetEmployee(ctx context.Context, identity domain.Identity, employeeID string) (*domain.Employee, error) {
	decision, err := s.Authorize(ctx, identity, policy.Request{Kind: policy.KindEmployee, Op: policy.OpRead})
	if err != nil {
		return nil, err
	}

	employee, err := s.findEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if !decision.Admits(employee.BranchID) {
		return nil, apperrors.NewForbiddenError("Access denied to this employee")
	}
	return employee, nil
}

func (s *employeeService) UpdateEmployee(ctx context.Context, identity domain.Identity, employeeID string, req dto.UpdateEmployeeRequest) (*domain.Employee, error) {
	if err := s.Precheck(ctx, identity, policy.Request{Kind: policy.KindEmployee, Op: policy.OpUpdate}); err != nil {
		return nil, err
	}

	employee, err := s.findEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if err := s.AuthorizeUpdate(ctx, identity, policy.KindEmployee, employee.BranchID, req.BranchID); err != nil {
		return nil, err
	}

	if req.BranchID != nil && *req.BranchID != employee.BranchID {
		employee.BranchID = *req.BranchID
		employee.BranchName = ""
	}
	if req.Name != nil {
		employee.Name = *req.Name
	}
	if req.Email != nil {
		employee.Email = *req.Email
	}
	if req.Phone != nil {
		employee.Phone = *req.Phone
	}
	if req.Position != nil {
		employee.Position = *req.Position
	}
	if req.Salary != nil {
		if req.Salary.IsNegative() {
			return nil, apperrors.NewValidationFailedError("salary must not be negative")
		}
		employee.Salary = *req.Salary
	}
	if req.StartDate != nil {
		startDate, err := dto.ParseDate(*req.StartDate)
		if err != nil {
			return nil, validationError(err)
		}
		employee.StartDate = startDate
	}
	if req.Status != nil {
		employee.Status = *req.Status
	}
	employee.Touch(identity.UserID(), s.now())

	if err := s.employeeRepo.UpdateEmployee(ctx, *employee); err != nil {
		s.LogError(ctx, err, "Failed to update employee", slog.String("employee_id", employeeID))
		return nil, err
	}

	s.LogInfo(ctx, "Employee updated successfully", slog.String("employee_id", employeeID))
	return employee, nil
}

func (s *employeeService) DeleteEmployee(ctx context.Context, identity domain.Identity, employeeID string) error {
	if err := s.Precheck(ctx, identity, policy.Request{Kind: policy.KindEmployee, Op: policy.OpDelete}); err != nil {
		return err
	}

	employee, err := s.findEmployee(ctx, employeeID)
	if err != nil {
		return err
	}
	if _, err := s.Authorize(ctx, identity, policy.Request{
		Kind: policy.KindEmployee, Op: policy.OpDelete, OwnerBranchID: employee.BranchID,
	}); err != nil {
		return err
	}

	if err := s.employeeRepo.DeleteEmployee(ctx, employeeID); err != nil {
		s.LogError(ctx, err, "Failed to delete employee", slog.String("employee_id", employeeID))
		return err
	}

	s.LogInfo(ctx, "Employee deleted successfully", slog.String("employee_id", employeeID))
	return nil
}

func (s *employeeService) findEmployee(ctx context.Context, employeeID string) (*domain.Employee, error) {
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Employee not found")
		}
		s.LogError(ctx, err, "Failed to find employee by ID", slog.String("employee_id", employeeID))
		return nil, err
	}
	return employee, nil
}
