package dto

import "github.com/shopspring/decimal"

// CreateSaleRequest defines the data needed to record a sale.
type CreateSaleRequest struct {
	BranchID string           `json:"branchId"`
	Amount   *decimal.Decimal `json:"amount" binding:"required"`
	Profit   *decimal.Decimal `json:"profit" binding:"required"`
	Date     string           `json:"date" binding:"required,isodate"`
	Note     string           `json:"note"`
}

// UpdateSaleRequest defines the fields of a sale that can be changed.
type UpdateSaleRequest struct {
	BranchID *string          `json:"branchId" binding:"omitempty,min=1"`
	Amount   *decimal.Decimal `json:"amount"`
	Profit   *decimal.Decimal `json:"profit"`
	Date     *string          `json:"date" binding:"omitempty,isodate"`
	Note     *string          `json:"note"`
}
