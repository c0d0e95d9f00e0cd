package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is a sales entry recorded by a branch.
type Sale struct {
	SaleID     string          `json:"id"`
	BranchID   string          `json:"branchId"`
	BranchName string          `json:"branchName,omitempty"`
	Amount     decimal.Decimal `json:"amount"`
	Profit     decimal.Decimal `json:"profit"`
	Date       time.Time       `json:"date"`
	Note       string          `json:"note"`
	AuditFields
}

// SalesSummary is derived at read time, never stored.
type SalesSummary struct {
	TotalSales    int             `json:"totalSales"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	TotalProfit   decimal.Decimal `json:"totalProfit"`
	AverageAmount decimal.Decimal `json:"averageAmount"`
	AverageProfit decimal.Decimal `json:"averageProfit"`
}

// NewSalesSummary totals sales. Averages are zero when there are no sales.
func NewSalesSummary(sales []Sale) SalesSummary {
	summary := SalesSummary{
		TotalSales:    len(sales),
		TotalAmount:   decimal.Zero,
		TotalProfit:   decimal.Zero,
		AverageAmount: decimal.Zero,
		AverageProfit: decimal.Zero,
	}
	for _, s := range sales {
		summary.TotalAmount = summary.TotalAmount.Add(s.Amount)
		summary.TotalProfit = summary.TotalProfit.Add(s.Profit)
	}
	if len(sales) > 0 {
		count := decimal.NewFromInt(int64(len(sales)))
		summary.AverageAmount = summary.TotalAmount.Div(count)
		summary.AverageProfit = summary.TotalProfit.Div(count)
	}
	return summary
}
