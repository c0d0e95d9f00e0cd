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

// branchService implements the BranchSvcFacade interface
type branchService struct {
	BaseService
	branchRepo portsrepo.BranchRepositoryFacade
}

// NewBranchService creates a new branch service with the provided dependencies
func NewBranchService(branchRepo portsrepo.BranchRepositoryFacade) portssvc.BranchSvcFacade {
	return &branchService{branchRepo: branchRepo}
}

var _ portssvc.BranchSvcFacade = (*branchService)(nil)

func (s *branchService) CreateBranch(ctx context.Context, identity domain.Identity, req dto.CreateBranchRequest) (*domain.Branch, error) {
	if _, err := s.Authorize(ctx, identity, policy.Request{Kind: policy.KindBranch, Op: policy.OpCreate}); err != nil {
		return nil, err
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	branch := domain.Branch{
		BranchID:    uuid.NewString(),
		Name:        req.Name,
		Address:     req.Address,
		Phone:       req.Phone,
		Email:       req.Email,
		IsActive:    isActive,
		AuditFields: domain.NewAuditFields(identity.UserID(), s.now()),
	}

	if err := s.branchRepo.SaveBranch(ctx, branch); err != nil {
		s.LogError(ctx, err, "Failed to save branch", slog.String("branch_id", branch.BranchID))
		return nil, err
	}

	s.LogInfo(ctx, "Branch created successfully",
		slog.String("branch_id", branch.BranchID),
		slog.String("creator_id", identity.UserID()))
	return &branch, nil
}

func (s *branchService) ListBranches(ctx context.Context, identity domain.Identity) ([]domain.Branch, error) {
	decision, err := s.Authorize(ctx, identity, policy.Request{Kind: policy.KindBranch, Op: policy.OpRead})
	if err != nil {
		return nil, err
	}

	branches, err := s.branchRepo.ListBranches(ctx, readFilter(decision))
	if err != nil {
		s.LogError(ctx, err, "Failed to list branches")
		return nil, err
	}
	if branches == nil {
		return []domain.Branch{}, nil
	}
	return branches, nil
}

func (s *branchService) GetBranch(ctx context.Context, identity domain.Identity, branchID string) (*domain.Branch, error) {
	decision, err := s.Authorize(ctx, identity, policy.Request{Kind: policy.KindBranch, Op: policy.OpRead})
	if err != nil {
		return nil, err
	}

	branch, err := s.findBranch(ctx, branchID)
	if err != nil {
		return nil, err
	}
	if !decision.Admits(branch.BranchID) {
		return nil, apperrors.NewForbiddenError("Access denied to this branch")
	}
	return branch, nil
}

func (s *branchService) UpdateBranch(ctx context.Context, identity domain.Identity, branchID string, req dto.UpdateBranchRequest) (*domain.Branch, error) {
	if _, err := s.Authorize(ctx, identity, policy.Request{Kind: policy.KindBranch, Op: policy.OpUpdate, OwnerBranchID: branchID}); err != nil {
		return nil, err
	}

	branch, err := s.findBranch(ctx, branchID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		branch.Name = *req.Name
	}
	if req.Address != nil {
		branch.Address = *req.Address
	}
	if req.Phone != nil {
		branch.Phone = *req.Phone
	}
	if req.Email != nil {
		branch.Email = *req.Email
	}
	if req.IsActive != nil {
		branch.IsActive = *req.IsActive
	}
	branch.Touch(identity.UserID(), s.now())

	if err := s.branchRepo.UpdateBranch(ctx, *branch); err != nil {
		s.LogError(ctx, err, "Failed to update branch", slog.String("branch_id", branchID))
		return nil, err
	}

	s.LogInfo(ctx, "Branch updated successfully", slog.String("branch_id", branchID))
	return branch, nil
}

func (s *branchService) DeleteBranch(ctx context.Context, identity domain.Identity, branchID string) error {
	if _, err := s.Authorize(ctx, identity, policy.Request{Kind: policy.KindBranch, Op: policy.OpDelete, OwnerBranchID: branchID}); err != nil {
		return err
	}

	if _, err := s.findBranch(ctx, branchID); err != nil {
		return err
	}

	if err := s.branchRepo.DeleteBranch(ctx, branchID); err != nil {
		s.LogError(ctx, err, "Failed to delete branch", slog.String("branch_id", branchID))
		return err
	}

	s.LogInfo(ctx, "Branch deleted successfully", slog.String("branch_id", branchID))
	return nil
}

func (s *branchService) findBranch(ctx context.Context, branchID string) (*domain.Branch, error) {
	branch, err := s.branchRepo.FindBranchByID(ctx, branchID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Branch not found")
		}
		s.LogError(ctx, err, "Failed to find branch by ID", slog.String("branch_id", branchID))
		return nil, err
	}
	return branch, nil
}
