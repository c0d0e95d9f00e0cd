package repositories

import (
	"context"

	"github.com/alfadli/hrm_backend/internal/core/domain"
)

// SaleReader defines read operations for sales data
type SaleReader interface {
	FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error)
	ListSales(ctx context.Context, filter domain.LedgerFilter) ([]domain.Sale, error)
}

// SaleWriter defines write operations for sales data
type SaleWriter interface {
	SaveSale(ctx context.Context, sale domain.Sale) error
	UpdateSale(ctx context.Context, sale domain.Sale) error
	DeleteSale(ctx context.Context, saleID string) error
}

// SaleRepositoryFacade combines all sales-related repository interfaces
type SaleRepositoryFacade interface {
	SaleReader
	SaleWriter
}
