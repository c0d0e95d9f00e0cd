package services

import (
	"context"

	"github.com/alfadli/hrm_backend/internal/core/domain"
	"github.com/alfadli/hrm_backend/internal/dto"
)

// BranchSvcFacade defines branch operations. Only admins may write.
type BranchSvcFacade interface {
	CreateBranch(ctx context.Context, identity domain.Identity, req dto.CreateBranchRequest) (*domain.Branch, error)
	// ListBranches returns every branch, inactive included, for admins and
	// managers, and only the home branch for staff.
	ListBranches(ctx context.Context, identity domain.Identity) ([]domain.Branch, error)
	GetBranch(ctx context.Context, identity domain.Identity, branchID string) (*domain.Branch, error)
	UpdateBranch(ctx context.Context, identity domain.Identity, branchID string, req dto.UpdateBranchRequest) (*domain.Branch, error)
	DeleteBranch(ctx context.Context, identity domain.Identity, branchID string) error
}
