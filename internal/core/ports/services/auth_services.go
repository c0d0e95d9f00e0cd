package services

import (
	"context"
	"time"

	"github.com/alfadli/hrm_backend/internal/core/domain"
)

// TokenSvcFacade defines the interface for token management services.
type TokenSvcFacade interface {
	// GenerateAccessToken signs a token whose claims carry the user's role and branch.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
}
