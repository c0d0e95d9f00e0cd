package domain

// Branch is the unit of data partitioning. Every employee, attendance,
// payroll, income, expense and sale record belongs to exactly one branch.
type Branch struct {
	BranchID string `json:"id"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	IsActive bool   `json:"isActive"`
	AuditFields
}
