package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/alfadli/hrm_backend/internal/apperrors"
	"github.com/alfadli/hrm_backend/internal/core/domain"
	"github.com/alfadli/hrm_backend/internal/core/policy"
	portsrepo "github.com/alfadli/hrm_backend/internal/core/ports/repositories"
	portssvc "github.com/alfadli/hrm_backend/internal/core/ports/services"
	"github.com/alfadli/hrm_backend/internal/dto"
	"github.com/google/uuid"
)

// saleService implements the SaleSvcFacade interface
type saleService struct {
	BaseService
	saleRepo portsrepo.SaleRepositoryFacade
}

// NewSaleService creates a new sales service with the provided dependencies
func NewSaleService(saleRepo portsrepo.SaleRepositoryFacade) portssvc.SaleSvcFacade {
	return &saleService{saleRepo: saleRepo}
}

var _ portssvc.SaleSvcFacade = (*saleService)(nil)

func (s *saleService) CreateSale(ctx context.Context, identity domain.Identity, req dto.CreateSaleRequest) (*domain.Sale, error) {
	decision, err := s.Authorize(ctx, identity, policy.Request{
		Kind: policy.KindSale, Op: policy.OpCreate, TargetBranchID: req.BranchID,
	})
	if err != nil {
		return nil, err
	}
	branchID, err := createBranch(decision)
	if err != nil {
		return nil, err
	}
	if req.Amount == nil || req.Profit == nil {
		return nil, apperrors.NewValidationFailedError("amount and profit are required")
	}
	date, err := dto.ParseDate(req.Date)
	if err != nil {
		return nil, validationError(err)
	}

	sale := domain.Sale{
		SaleID:      uuid.NewString(),
		BranchID:    branchID,
		Amount:      *req.Amount,
		Profit:      *req.Profit,
		Date:        date,
		Note:        req.Note,
		AuditFields: domain.NewAuditFields(identity.UserID(), s.now()),
	}

	if err := s.saleRepo.SaveSale(ctx, sale); err != nil {
		s.LogError(ctx, err, "Failed to save sale", slog.String("sale_id", sale.SaleID))
		return nil, err
	}

	s.LogInfo(ctx, "Sale recorded successfully",
		slog.String("sale_id", sale.SaleID),
		slog.String("branch_id", branchID))
	return &sale, nil
}

func (s *saleService) ListSales(ctx context.Context, identity domain.Identity, params dto.LedgerParams) ([]domain.Sale, error) {
	filter, err := s.saleFilter(ctx, identity, params)
	if err != nil {
		return nil, err
	}

	sales, err := s.saleRepo.ListSales(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list sales")
		return nil, err
	}
	if sales == nil {
		return []domain.Sale{}, nil
	}
	return sales, nil
}

func (s *saleService) GetSale(ctx context.Context, identity domain.Identity, saleID string) (*domain.Sale, error) {
	decision, err := s.Authorize(ctx, identity, policy.Request{Kind: policy.KindSale, Op: policy.OpRead})
	if err != nil {
		return nil, err
	}

	sale, err := s.findSale(ctx, saleID)
	if err != nil {
		return nil, err
	}
	if !decision.Admits(sale.BranchID) {
		return nil, apperrors.NewForbiddenError("Access denied")
	}
	return sale, nil
}

func (s *saleService) UpdateSale(ctx context.Context, identity domain.Identity, saleID string, req dto.UpdateSaleRequest) (*domain.Sale, error) {
	if err := s.Precheck(ctx, identity, policy.Request{Kind: policy.KindSale, Op: policy.OpUpdate}); err != nil {
		return nil, err
	}

	sale, err := s.findSale(ctx, saleID)
	if err != nil {
		return nil, err
	}
	if err := s.AuthorizeUpdate(ctx, identity, policy.KindSale, sale.BranchID, req.BranchID); err != nil {
		return nil, err
	}

	if req.BranchID != nil && *req.BranchID != sale.BranchID {
		sale.BranchID = *req.BranchID
		sale.BranchName = ""
	}
	if req.Amount != nil {
		sale.Amount = *req.Amount
	}
	if req.Profit != nil {
		sale.Profit = *req.Profit
	}
	if req.Date != nil {
		date, err := dto.ParseDate(*req.Date)
		if err != nil {
			return nil, validationError(err)
		}
		sale.Date = date
	}
	if req.Note != nil {
		sale.Note = *req.Note
	}
	sale.Touch(identity.UserID(), s.now())

	if err := s.saleRepo.UpdateSale(ctx, *sale); err != nil {
		s.LogError(ctx, err, "Failed to update sale", slog.String("sale_id", saleID))
		return nil, err
	}

	s.LogInfo(ctx, "Sale updated successfully", slog.String("sale_id", saleID))
	return sale, nil
}

func (s *saleService) DeleteSale(ctx context.Context, identity domain.Identity, saleID string) error {
	if err := s.Precheck(ctx, identity, policy.Request{Kind: policy.KindSale, Op: policy.OpDelete}); err != nil {
		return err
	}

	sale, err := s.findSale(ctx, saleID)
	if err != nil {
		return err
	}
	if _, err := s.Authorize(ctx, identity, policy.Request{
		Kind: policy.KindSale, Op: policy.OpDelete, OwnerBranchID: sale.BranchID,
	}); err != nil {
		return err
	}

	if err := s.saleRepo.DeleteSale(ctx, saleID); err != nil {
		s.LogError(ctx, err, "Failed to delete sale", slog.String("sale_id", saleID))
		return err
	}

	s.LogInfo(ctx, "Sale deleted successfully", slog.String("sale_id", saleID))
	return nil
}

func (s *saleService) GetSalesSummary(ctx context.Context, identity domain.Identity, params dto.LedgerParams) (*domain.SalesSummary, error) {
	filter, err := s.saleFilter(ctx, identity, params)
	if err != nil {
		return nil, err
	}

	sales, err := s.saleRepo.ListSales(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list sales for summary")
		return nil, err
	}

	summary := domain.NewSalesSummary(sales)
	return &summary, nil
}

func (s *saleService) saleFilter(ctx context.Context, identity domain.Identity, params dto.LedgerParams) (domain.LedgerFilter, error) {
	decision, err := s.Authorize(ctx, identity, policy.Request{Kind: policy.KindSale, Op: policy.OpRead, TargetBranchID: params.BranchID})
	if err != nil {
		return domain.LedgerFilter{}, err
	}
	period, err := params.Period()
	if err != nil {
		return domain.LedgerFilter{}, validationError(err)
	}
	return domain.LedgerFilter{BranchID: readFilter(decision), Period: period}, nil
}

func (s *saleService) findSale(ctx context.Context, saleID string) (*domain.Sale, error) {
	sale, err := s.saleRepo.FindSaleByID(ctx, saleID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Sale not found")
		}
		s.LogError(ctx, err, "Failed to find sale by ID", slog.String("sale_id", saleID))
		return nil, err
	}
	return sale, nil
}
