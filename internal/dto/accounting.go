package dto

import "github.com/shopspring/decimal"

// CreateIncomeRequest defines the data needed to record income.
type CreateIncomeRequest struct {
	BranchID       string           `json:"branchId"`
	Amount         *decimal.Decimal `json:"amount" binding:"required"`
	Date           string           `json:"date" binding:"required,isodate"`
	Description    string           `json:"description"`
	AttachmentURL  string           `json:"attachmentUrl"`
	AttachmentName string           `json:"attachmentName"`
}

// UpdateIncomeRequest defines the fields of an income record that can be changed.
type UpdateIncomeRequest struct {
	BranchID       *string          `json:"branchId" binding:"omitempty,min=1"`
	Amount         *decimal.Decimal `json:"amount"`
	Date           *string          `json:"date" binding:"omitempty,isodate"`
	Description    *string          `json:"description"`
	AttachmentURL  *string          `json:"attachmentUrl"`
	AttachmentName *string          `json:"attachmentName"`
}

// CreateExpenseRequest defines the data needed to record an expense.
type CreateExpenseRequest struct {
	BranchID       string           `json:"branchId"`
	CategoryID     *string          `json:"categoryId"`
	Amount         *decimal.Decimal `json:"amount" binding:"required"`
	Date           string           `json:"date" binding:"required,isodate"`
	Description    string           `json:"description"`
	AttachmentURL  string           `json:"attachmentUrl"`
	AttachmentName string           `json:"attachmentName"`
}

// UpdateExpenseRequest defines the fields of an expense that can be changed.
type UpdateExpenseRequest struct {
	BranchID       *string          `json:"branchId" binding:"omitempty,min=1"`
	CategoryID     *string          `json:"categoryId"`
	Amount         *decimal.Decimal `json:"amount"`
	Date           *string          `json:"date" binding:"omitempty,isodate"`
	Description    *string          `json:"description"`
	AttachmentURL  *string          `json:"attachmentUrl"`
	AttachmentName *string          `json:"attachmentName"`
}

// CreateExpenseCategoryRequest defines the data needed to create an expense category.
type CreateExpenseCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// LedgerParams defines query parameters for income, expense, sales and
// profit/loss queries.
type LedgerParams struct {
	BranchID string `form:"branchId"`
	DateRangeParams
}
