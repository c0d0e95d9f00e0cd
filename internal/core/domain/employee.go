package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EmployeeStatus is the employment status of an employee.
type EmployeeStatus string

const (
	EmployeeActive   EmployeeStatus = "active"
	EmployeeInactive EmployeeStatus = "inactive"
)

// Employee is a person employed at a branch.
type Employee struct {
	EmployeeID string          `json:"id"`
	BranchID   string          `json:"branchId"`
	BranchName string          `json:"branchName,omitempty"`
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	Phone      string          `json:"phone"`
	Position   string          `json:"position"`
	Salary     decimal.Decimal `json:"salary"`
	StartDate  time.Time       `json:"startDate"`
	Status     EmployeeStatus  `json:"status"`
	AuditFields
}

// EmployeeFilter narrows an employee listing. Empty fields are not applied.
type EmployeeFilter struct {
	BranchID string
}
