package services

import (
	"context"
	"errors"

	"github.com/alfadli/hrm_backend/internal/apperrors"
	portsrepo "github.com/alfadli/hrm_backend/internal/core/ports/repositories"
)

// ensureEmployeeInBranch fails unless employeeID exists and is employed at branchID.
// A nil reader skips the check.
func ensureEmployeeInBranch(ctx context.Context, reader portsrepo.EmployeeReader, employeeID, branchID string) error {
	if reader == nil {
		return nil
	}
	employee, err := reader.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("Employee not found")
		}
		return err
	}
	if employee.BranchID != branchID {
		return apperrors.NewValidationFailedError("employee does not belong to this branch")
	}
	return nil
}
