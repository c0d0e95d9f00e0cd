package services

import (
	"context"
	"time"

	"github.com/alfadli/hrm_backend/internal/core/domain"
	portssvc "github.com/alfadli/hrm_backend/internal/core/ports/services"
	"github.com/alfadli/hrm_backend/internal/platform/config"
	"github.com/alfadli/hrm_backend/internal/utils"
)

// tokenService implements the TokenSvcFacade for issuing JWT access tokens.
type tokenService struct {
	BaseService
	cfg *config.Config
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg}
}

// GenerateAccessToken creates a new JWT access token for the given user.
func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	expiryTime := s.now().Add(s.cfg.JWTExpiryDuration)

	accessToken, err := utils.GenerateJWT(utils.TokenSubject{
		UserID:   user.UserID,
		Role:     string(user.Role),
		BranchID: user.BranchID,
	}, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate access token")
		return "", time.Time{}, err
	}
	return accessToken, expiryTime, nil
}
