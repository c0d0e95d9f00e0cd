package domain

import "github.com/shopspring/decimal"

// Payroll is the pay of one employee for one month.
// Total is derived at write time and stored with the record.
type Payroll struct {
	PayrollID    string          `json:"id"`
	EmployeeID   string          `json:"employeeId"`
	EmployeeName string          `json:"employeeName,omitempty"`
	BranchID     string          `json:"branchId"`
	BranchName   string          `json:"branchName,omitempty"`
	Month        int             `json:"month"`
	Year         int             `json:"year"`
	BaseSalary   decimal.Decimal `json:"baseSalary"`
	Bonuses      decimal.Decimal `json:"bonuses"`
	Adjustments  decimal.Decimal `json:"adjustments"`
	Total        decimal.Decimal `json:"total"`
	AuditFields
}

// RecomputeTotal sets Total = BaseSalary + Bonuses + Adjustments.
func (p *Payroll) RecomputeTotal() {
	p.Total = p.BaseSalary.Add(p.Bonuses).Add(p.Adjustments)
}

// PayrollFilter narrows a payroll listing. Zero fields are not applied.
type PayrollFilter struct {
	BranchID   string
	EmployeeID string
	Month      int
	Year       int
}
