package repositories

import (
	"context"

	"github.com/alfadli/hrm_backend/internal/core/domain"
)

// BranchReader defines read operations for branch data
type BranchReader interface {
	// FindBranchByID retrieves a branch, active or not.
	FindBranchByID(ctx context.Context, branchID string) (*domain.Branch, error)

	// ListBranches returns every branch, or only branchID when it is not empty.
	ListBranches(ctx context.Context, branchID string) ([]domain.Branch, error)
}

// BranchWriter defines write operations for branch data
type BranchWriter interface {
	SaveBranch(ctx context.Context, branch domain.Branch) error
	UpdateBranch(ctx context.Context, branch domain.Branch) error
	DeleteBranch(ctx context.Context, branchID string) error
}

// BranchRepositoryFacade combines all branch-related repository interfaces
type BranchRepositoryFacade interface {
	BranchReader
	BranchWriter
}
