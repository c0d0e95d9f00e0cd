package services

import (
	"context"

	"github.com/alfadli/hrm_backend/internal/core/domain"
	"github.com/alfadli/hrm_backend/internal/dto"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID. Only admins may read other users.
	GetUserByID(ctx context.Context, identity domain.Identity, userID string) (*domain.User, error)

	// GetProfile retrieves the caller's own user record.
	GetProfile(ctx context.Context, identity domain.Identity) (*domain.User, error)

	// ListUsers retrieves every user.
	ListUsers(ctx context.Context, identity domain.Identity) ([]domain.User, error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	// CreateUser creates a new user.
	CreateUser(ctx context.Context, identity domain.Identity, req dto.CreateUserRequest) (*domain.User, error)

	// UpdateUser updates an existing user.
	UpdateUser(ctx context.Context, identity domain.Identity, userID string, req dto.UpdateUserRequest) (*domain.User, error)
}

// UserLifecycleSvc defines operations for managing user lifecycle
type UserLifecycleSvc interface {
	// DeleteUser marks a user as deleted (soft delete). Nobody may delete themselves.
	DeleteUser(ctx context.Context, identity domain.Identity, userID string) error

	// EnsureAdmin creates an ADMIN with the given credentials unless the email is already registered.
	EnsureAdmin(ctx context.Context, email, password, name string) error
}

// UserAuthSvc defines operations for user authentication
type UserAuthSvc interface {
	// AuthenticateUser authenticates a user with email and password.
	AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserLifecycleSvc
	UserAuthSvc
}
