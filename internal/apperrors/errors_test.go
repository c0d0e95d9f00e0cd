package apperrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/alfadli/hrm_backend/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestAppError_MatchesSentinels(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{name: "not found", err: apperrors.NewNotFoundError("Employee not found"), sentinel: apperrors.ErrNotFound},
		{name: "forbidden", err: apperrors.NewForbiddenError("Managers cannot delete expenses"), sentinel: apperrors.ErrForbidden},
		{name: "unauthorized", err: apperrors.NewUnauthorizedError("Invalid token"), sentinel: apperrors.ErrUnauthorized},
		{name: "validation", err: apperrors.NewValidationFailedError("branchId is required"), sentinel: apperrors.ErrValidation},
		{name: "conflict", err: apperrors.NewConflictError("email already registered"), sentinel: apperrors.ErrDuplicate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("service layer: %w", tt.err)
			assert.True(t, errors.Is(wrapped, tt.sentinel))
		})
	}
}

func TestMessage(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", apperrors.NewForbiddenError("You can only create income in your branch"))
	assert.Equal(t, "You can only create income in your branch", apperrors.Message(err, "Forbidden"))
	assert.Equal(t, "Forbidden", apperrors.Message(errors.New("plain"), "Forbidden"))
}
