package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Income is money received by a branch.
type Income struct {
	IncomeID       string          `json:"id"`
	BranchID       string          `json:"branchId"`
	BranchName     string          `json:"branchName,omitempty"`
	Amount         decimal.Decimal `json:"amount"`
	Date           time.Time       `json:"date"`
	Description    string          `json:"description"`
	AttachmentURL  string          `json:"attachmentUrl"`
	AttachmentName string          `json:"attachmentName"`
	AuditFields
}

// ExpenseCategory groups expenses. Categories are global, not branch scoped.
type ExpenseCategory struct {
	CategoryID  string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	AuditFields
}

// Expense is money spent by a branch.
type Expense struct {
	ExpenseID      string          `json:"id"`
	BranchID       string          `json:"branchId"`
	BranchName     string          `json:"branchName,omitempty"`
	CategoryID     *string         `json:"categoryId,omitempty"`
	CategoryName   string          `json:"categoryName,omitempty"`
	Amount         decimal.Decimal `json:"amount"`
	Date           time.Time       `json:"date"`
	Description    string          `json:"description"`
	AttachmentURL  string          `json:"attachmentUrl"`
	AttachmentName string          `json:"attachmentName"`
	AuditFields
}

// LedgerFilter narrows income, expense and sales listings. Empty fields are not applied.
type LedgerFilter struct {
	BranchID string
	Period   DateRange
}

// ProfitLoss is derived at read time from the incomes and expenses matching a filter.
type ProfitLoss struct {
	TotalIncome  decimal.Decimal `json:"totalIncome"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
	NetProfit    decimal.Decimal `json:"netProfit"`
	IncomeCount  int             `json:"incomes"`
	ExpenseCount int             `json:"expenses"`
}

// NewProfitLoss sums the amounts of incomes and expenses.
// An empty input yields all-zero totals.
func NewProfitLoss(incomes []Income, expenses []Expense) ProfitLoss {
	totalIncome := decimal.Zero
	for _, in := range incomes {
		totalIncome = totalIncome.Add(in.Amount)
	}
	totalExpense := decimal.Zero
	for _, ex := range expenses {
		totalExpense = totalExpense.Add(ex.Amount)
	}
	return ProfitLoss{
		TotalIncome:  totalIncome,
		TotalExpense: totalExpense,
		NetProfit:    totalIncome.Sub(totalExpense),
		IncomeCount:  len(incomes),
		ExpenseCount: len(expenses),
	}
}
