package dto

import (
	"github.com/alfadli/hrm_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateEmployeeRequest defines the data needed to create an employee.
// BranchID may be omitted by STAFF callers; their home branch is used.
type CreateEmployeeRequest struct {
	BranchID  string                `json:"branchId"`
	Name      string                `json:"name" binding:"required"`
	Email     string                `json:"email" binding:"omitempty,email"`
	Phone     string                `json:"phone"`
	Position  string                `json:"position"`
	Salary    *decimal.Decimal      `json:"salary" binding:"required"`
	StartDate string                `json:"startDate" binding:"required,isodate"`
	Status    domain.EmployeeStatus `json:"status" binding:"omitempty,oneof=active inactive"`
}

// UpdateEmployeeRequest defines the fields of an employee that can be changed.
type UpdateEmployeeRequest struct {
	BranchID  *string                `json:"branchId" binding:"omitempty,min=1"`
	Name      *string                `json:"name" binding:"omitempty,min=1"`
	Email     *string                `json:"email" binding:"omitempty,email"`
	Phone     *string                `json:"phone"`
	Position  *string                `json:"position"`
	Salary    *decimal.Decimal       `json:"salary"`
	StartDate *string                `json:"startDate" binding:"omitempty,isodate"`
	Status    *domain.EmployeeStatus `json:"status" binding:"omitempty,oneof=active inactive"`
}

// ListEmployeesParams defines query parameters for listing employees.
type ListEmployeesParams struct {
	BranchID string `form:"branchId"`
}
