package dto

import "github.com/shopspring/decimal"

// CreatePayrollRequest defines the data needed to create a payroll record.
type CreatePayrollRequest struct {
	EmployeeID  string           `json:"employeeId" binding:"required"`
	BranchID    string           `json:"branchId"`
	Month       int              `json:"month" binding:"required,min=1,max=12"`
	Year        int              `json:"year" binding:"required,min=1900"`
	BaseSalary  *decimal.Decimal `json:"baseSalary" binding:"required"`
	Bonuses     *decimal.Decimal `json:"bonuses"`
	Adjustments *decimal.Decimal `json:"adjustments"`
}

// UpdatePayrollRequest defines the fields of a payroll record that can be
// changed. Omitted amounts keep their stored value when the total is recomputed.
type UpdatePayrollRequest struct {
	EmployeeID  *string          `json:"employeeId" binding:"omitempty,min=1"`
	BranchID    *string          `json:"branchId" binding:"omitempty,min=1"`
	Month       *int             `json:"month" binding:"omitempty,min=1,max=12"`
	Year        *int             `json:"year" binding:"omitempty,min=1900"`
	BaseSalary  *decimal.Decimal `json:"baseSalary"`
	Bonuses     *decimal.Decimal `json:"bonuses"`
	Adjustments *decimal.Decimal `json:"adjustments"`
}

// ListPayrollParams defines query parameters for listing payroll.
type ListPayrollParams struct {
	BranchID   string `form:"branchId"`
	EmployeeID string `form:"employeeId"`
	Month      int    `form:"month" binding:"omitempty,min=1,max=12"`
	Year       int    `form:"year" binding:"omitempty,min=1900"`
}
