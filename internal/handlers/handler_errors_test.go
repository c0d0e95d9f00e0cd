package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/alfadli/hrm_backend/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestErrorStatus(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"forbidden reason", apperrors.NewForbiddenError("Only admins can delete branches"), http.StatusForbidden, "Only admins can delete branches"},
		{"wrapped not found", fmt.Errorf("branch B1: %w", apperrors.ErrNotFound), http.StatusNotFound, "Resource not found"},
		{"validation", apperrors.NewValidationFailedError("branchId is required"), http.StatusBadRequest, "branchId is required"},
		{"conflict sentinel", apperrors.ErrDuplicate, http.StatusConflict, "Resource already exists"},
		{"internal app error", apperrors.NewAppError(500, "failed to query sales", errors.New("boom")), http.StatusInternalServerError, "Internal server error"},
		{"plain error", errors.New("boom"), http.StatusInternalServerError, "Internal server error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := errorStatus(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}
