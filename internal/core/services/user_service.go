package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/alfadli/hrm_backend/internal/apperrors"
	"github.com/alfadli/hrm_backend/internal/core/domain"
	"github.com/alfadli/hrm_backend/internal/core/policy"
	portsrepo "github.com/alfadli/hrm_backend/internal/core/ports/repositories"
	portssvc "github.com/alfadli/hrm_backend/internal/core/ports/services"
	"github.com/alfadli/hrm_backend/internal/dto"
	"github.com/alfadli/hrm_backend/internal/utils"
	"github.com/google/uuid"
)

// systemUserID is recorded as creator of users seeded at startup.
const systemUserID = "SYSTEM"

// userService implements the UserSvcFacade interface
type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new user service with the provided dependencies
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *userService) GetUserByID(ctx context.Context, identity domain.Identity, userID string) (*domain.User, error) {
	if _, err := s.Authorize(ctx, identity, policy.Request{Kind: policy.KindUser, Op: policy.OpRead, TargetUserID: userID}); err != nil {
		return nil, err
	}
	return s.findUser(ctx, userID)
}

func (s *userService) GetProfile(ctx context.Context, identity domain.Identity) (*domain.User, error) {
	if identity == nil {
		return nil, apperrors.NewUnauthorizedError("Unauthorized")
	}
	return s.findUser(ctx, identity.UserID())
}

func (s *userService) ListUsers(ctx context.Context, identity domain.Identity) ([]domain.User, error) {
	if _, err := s.Authorize(ctx, identity, policy.Request{Kind: policy.KindUser, Op: policy.OpRead}); err != nil {
		return nil, err
	}

	users, err := s.userRepo.FindUsers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list users")
		return nil, err
	}
	if users == nil {
		return []domain.User{}, nil
	}
	return users, nil
}

func (s *userService) CreateUser(ctx context.Context, identity domain.Identity, req dto.CreateUserRequest) (*domain.User, error) {
	if _, err := s.Authorize(ctx, identity, policy.Request{Kind: policy.KindUser, Op: policy.OpCreate}); err != nil {
		return nil, err
	}
	return s.createUser(ctx, identity.UserID(), req)
}

func (s *userService) createUser(ctx context.Context, creatorID string, req dto.CreateUserRequest) (*domain.User, error) {
	role := req.Role
	if role == "" {
		role = domain.RoleStaff
	}
	if !role.IsValid() {
		return nil, apperrors.NewValidationFailedError("invalid role")
	}
	branchID := req.BranchID
	if branchID != nil && *branchID == "" {
		branchID = nil
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		if errors.Is(err, utils.ErrPasswordTooLong) {
			return nil, apperrors.NewValidationFailedError(err.Error())
		}
		s.LogError(ctx, err, "Failed to hash password")
		return nil, err
	}

	user := domain.User{
		UserID:       uuid.NewString(),
		Email:        normalizeEmail(req.Email),
		Name:         req.Name,
		Role:         role,
		BranchID:     branchID,
		PasswordHash: hash,
		AuditFields:  domain.NewAuditFields(creatorID, s.now()),
	}
	if _, err := user.Identity(); err != nil {
		return nil, identityValidationError(err)
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to save user", slog.String("email", user.Email))
		return nil, err
	}

	s.LogInfo(ctx, "User created successfully",
		slog.String("user_id", user.UserID),
		slog.String("role", string(user.Role)))
	return &user, nil
}

func (s *userService) UpdateUser(ctx context.Context, identity domain.Identity, userID string, req dto.UpdateUserRequest) (*domain.User, error) {
	if _, err := s.Authorize(ctx, identity, policy.Request{Kind: policy.KindUser, Op: policy.OpUpdate, TargetUserID: userID}); err != nil {
		return nil, err
	}

	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Role != nil {
		user.Role = *req.Role
	}
	if req.BranchID != nil {
		if *req.BranchID == "" {
			user.BranchID = nil
		} else {
			branchID := *req.BranchID
			user.BranchID = &branchID
		}
	}
	if _, err := user.Identity(); err != nil {
		return nil, identityValidationError(err)
	}
	user.Touch(identity.UserID(), s.now())

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		s.LogError(ctx, err, "Failed to update user", slog.String("user_id", userID))
		return nil, err
	}

	s.LogInfo(ctx, "User updated successfully", slog.String("user_id", userID))
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, identity domain.Identity, userID string) error {
	if _, err := s.Authorize(ctx, identity, policy.Request{Kind: policy.KindUser, Op: policy.OpDelete, TargetUserID: userID}); err != nil {
		return err
	}

	if _, err := s.findUser(ctx, userID); err != nil {
		return err
	}

	if err := s.userRepo.MarkUserDeleted(ctx, userID, s.now(), identity.UserID()); err != nil {
		s.LogError(ctx, err, "Failed to delete user", slog.String("user_id", userID))
		return err
	}

	s.LogInfo(ctx, "User deleted successfully",
		slog.String("user_id", userID),
		slog.String("deleted_by", identity.UserID()))
	return nil
}

// EnsureAdmin seeds an ADMIN account. It is a no-op when the email is taken.
func (s *userService) EnsureAdmin(ctx context.Context, email, password, name string) error {
	_, err := s.userRepo.FindUserByEmail(ctx, normalizeEmail(email))
	if err == nil {
		s.LogDebug(ctx, "Admin account already present", slog.String("email", email))
		return nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to look up admin account", slog.String("email", email))
		return err
	}

	_, err = s.createUser(ctx, systemUserID, dto.CreateUserRequest{
		Email:    email,
		Password: password,
		Name:     name,
		Role:     domain.RoleAdmin,
	})
	return err
}

// AuthenticateUser checks email and password. A STAFF account without a
// branch cannot log in.
func (s *userService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewUnauthorizedError("Invalid credentials")
		}
		s.LogError(ctx, err, "Failed to find user by email")
		return nil, err
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		s.LogDebug(ctx, "Password mismatch", slog.String("user_id", user.UserID))
		return nil, apperrors.NewUnauthorizedError("Invalid credentials")
	}
	if _, err := user.Identity(); err != nil {
		if errors.Is(err, domain.ErrStaffWithoutBranch) {
			return nil, apperrors.NewForbiddenError("Staff account has no branch assigned")
		}
		return nil, apperrors.NewUnauthorizedError("Invalid credentials")
	}
	return user, nil
}

func (s *userService) findUser(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("User not found")
		}
		s.LogError(ctx, err, "Failed to find user by ID", slog.String("user_id", userID))
		return nil, err
	}
	return user, nil
}

func identityValidationError(err error) error {
	if errors.Is(err, domain.ErrStaffWithoutBranch) {
		return apperrors.NewValidationFailedError("branchId is required for STAFF users")
	}
	return validationError(err)
}
