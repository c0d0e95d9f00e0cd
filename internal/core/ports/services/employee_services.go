package services

import (
	"context"

	"github.com/alfadli/hrm_backend/internal/core/domain"
	"github.com/alfadli/hrm_backend/internal/dto"
)

// EmployeeSvcFacade defines employee operations
type EmployeeSvcFacade interface {
	CreateEmployee(ctx context.Context, identity domain.Identity, req dto.CreateEmployeeRequest) (*domain.Employee, error)
	ListEmployees(ctx context.Context, identity domain.Identity, params dto.ListEmployeesParams) ([]domain.Employee, error)
	GetEmployee(ctx context.Context, identity domain.Identity, employeeID string) (*domain.Employee, error)
	UpdateEmployee(ctx context.Context, identity domain.Identity, employeeID string, req dto.UpdateEmployeeRequest) (*domain.Employee, error)
	DeleteEmployee(ctx context.Context, identity domain.Identity, employeeID string) error
}
