package pgsql

import (
	"context"
	"fmt"

	"github.com/alfadli/hrm_backend/internal/apperrors"
	"github.com/alfadli/hrm_backend/internal/core/domain"
	portsrepo "github.com/alfadli/hrm_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxBranchRepository struct {
	BaseRepository
}

func newPgxBranchRepository(pool *pgxpool.Pool) portsrepo.BranchRepositoryFacade {
	return &PgxBranchRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.BranchRepositoryFacade = (*PgxBranchRepository)(nil)

const FULL_BRANCH_SELECT_QUERY = `
SELECT
	b.branch_id, b.name, b.address, b.phone, b.email, b.is_active,
	b.created_at, b.created_by, b.last_updated_at, b.last_updated_by
FROM branches b
`

func (r *PgxBranchRepository) getBranches(ctx context.Context, filterQuery string, args ...any) ([]domain.Branch, error) {
	rows, err := r.Pool.Query(ctx, FULL_BRANCH_SELECT_QUERY+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query branches", err)
	}
	defer rows.Close()
	return collect[domain.Branch](rows, "branch")
}

func (r *PgxBranchRepository) FindBranchByID(ctx context.Context, branchID string) (*domain.Branch, error) {
	branches, err := r.getBranches(ctx, "WHERE b.branch_id = $1", branchID)
	if err != nil {
		return nil, err
	}
	return oneRow(branches)
}

func (r *PgxBranchRepository) ListBranches(ctx context.Context, branchID string) ([]domain.Branch, error) {
	var f filter
	f.eq("b.branch_id", branchID)
	return r.getBranches(ctx, f.where()+" ORDER BY b.name", f.args...)
}

func (r *PgxBranchRepository) SaveBranch(ctx context.Context, branch domain.Branch) error {
	query := `
		INSERT INTO branches (
			branch_id, name, address, phone, email, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		branch.BranchID, branch.Name, branch.Address, branch.Phone, branch.Email, branch.IsActive,
		branch.CreatedAt, branch.CreatedBy, branch.LastUpdatedAt, branch.LastUpdatedBy,
	)
	if err != nil {
		return writeError(err, "save", "Branch")
	}
	return nil
}

func (r *PgxBranchRepository) UpdateBranch(ctx context.Context, branch domain.Branch) error {
	query := `
		UPDATE branches
		SET name = $1, address = $2, phone = $3, email = $4, is_active = $5,
			last_updated_at = $6, last_updated_by = $7
		WHERE branch_id = $8;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		branch.Name, branch.Address, branch.Phone, branch.Email, branch.IsActive,
		branch.LastUpdatedAt, branch.LastUpdatedBy, branch.BranchID,
	)
	if err != nil {
		return writeError(err, "update", "Branch")
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("branch %s: %w", branch.BranchID, apperrors.ErrNotFound)
	}
	return nil
}

// DeleteBranch fails with a conflict while employees or records still reference the branch.
func (r *PgxBranchRepository) DeleteBranch(ctx context.Context, branchID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM branches WHERE branch_id = $1;`, branchID)
	if err != nil {
		return writeError(err, "delete", "Branch")
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("branch %s: %w", branchID, apperrors.ErrNotFound)
	}
	return nil
}
