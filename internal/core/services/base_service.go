package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/alfadli/hrm_backend/internal/apperrors"
	"github.com/alfadli/hrm_backend/internal/core/domain"
	"github.com/alfadli/hrm_backend/internal/core/policy"
	"github.com/alfadli/hrm_backend/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	// Now returns the current time; tests pin it.
	Now func() time.Time
}

func (s *BaseService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		// Return a default logger if not found in context
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Debug(msg, keyvals...)
}

// Authorize evaluates req for identity and returns the decision, or a
// forbidden error carrying the denial reason.
func (s *BaseService) Authorize(ctx context.Context, identity domain.Identity, req policy.Request) (policy.Decision, error) {
	decision := policy.Evaluate(identity, req)
	if !decision.Allowed() {
		userID, role := "", ""
		if identity != nil {
			userID, role = identity.UserID(), string(identity.Role())
		}
		s.LogDebug(ctx, "Access denied",
			slog.String("user_id", userID),
			slog.String("role", role),
			slog.String("kind", string(req.Kind)),
			slog.String("op", string(req.Op)),
			slog.String("reason", decision.Reason))
		return decision, decision.Err()
	}
	return decision, nil
}

// Precheck refuses an UPDATE or DELETE that no stored record could allow,
// before the record is looked up.
func (s *BaseService) Precheck(ctx context.Context, identity domain.Identity, req policy.Request) error {
	decision := policy.Precheck(identity, req)
	if !decision.Allowed() {
		s.LogDebug(ctx, "Access denied before lookup",
			slog.String("kind", string(req.Kind)),
			slog.String("op", string(req.Op)),
			slog.String("reason", decision.Reason))
		return decision.Err()
	}
	return nil
}

// AuthorizeUpdate looks at both the stored owner branch and, when the update
// moves the record, the branch it is moved to.
func (s *BaseService) AuthorizeUpdate(ctx context.Context, identity domain.Identity, kind policy.Kind, ownerBranchID string, newBranchID *string) error {
	if _, err := s.Authorize(ctx, identity, policy.Request{Kind: kind, Op: policy.OpUpdate, OwnerBranchID: ownerBranchID}); err != nil {
		return err
	}
	if newBranchID != nil && *newBranchID != ownerBranchID {
		if _, err := s.Authorize(ctx, identity, policy.Request{Kind: kind, Op: policy.OpUpdate, OwnerBranchID: *newBranchID}); err != nil {
			return err
		}
	}
	return nil
}

// createBranch returns the branch an allowed CREATE writes to.
func createBranch(decision policy.Decision) (string, error) {
	if decision.BranchID == "" {
		return "", apperrors.NewValidationFailedError("branchId is required")
	}
	return decision.BranchID, nil
}

// readFilter returns the branch a list query must be restricted to, or "" for none.
func readFilter(decision policy.Decision) string {
	if decision.Effect == policy.AllowWithBranchFilter {
		return decision.BranchID
	}
	return ""
}

func validationError(err error) error {
	return apperrors.NewValidationFailedError(err.Error())
}
