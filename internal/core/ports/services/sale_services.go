package services

import (
	"context"

	"github.com/alfadli/hrm_backend/internal/core/domain"
	"github.com/alfadli/hrm_backend/internal/dto"
)

// SaleSvcFacade defines sales operations
type SaleSvcFacade interface {
	CreateSale(ctx context.Context, identity domain.Identity, req dto.CreateSaleRequest) (*domain.Sale, error)
	ListSales(ctx context.Context, identity domain.Identity, params dto.LedgerParams) ([]domain.Sale, error)
	GetSale(ctx context.Context, identity domain.Identity, saleID string) (*domain.Sale, error)
	UpdateSale(ctx context.Context, identity domain.Identity, saleID string, req dto.UpdateSaleRequest) (*domain.Sale, error)
	DeleteSale(ctx context.Context, identity domain.Identity, saleID string) error
	// GetSalesSummary totals the sales visible to identity under params.
	GetSalesSummary(ctx context.Context, identity domain.Identity, params dto.LedgerParams) (*domain.SalesSummary, error)
}
