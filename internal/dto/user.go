package dto

import (
	"time"

	"github.com/alfadli/hrm_backend/internal/core/domain"
)

// CreateUserRequest defines the data needed to create a user.
// STAFF users must be given a branch.
type CreateUserRequest struct {
	Email    string      `json:"email" binding:"required,email"`
	Password string      `json:"password" binding:"required,min=6"`
	Name     string      `json:"name" binding:"required"`
	Role     domain.Role `json:"role" binding:"omitempty,oneof=ADMIN MANAGER STAFF"`
	BranchID *string     `json:"branchId"`
}

// UpdateUserRequest defines the fields of a user that can be changed.
type UpdateUserRequest struct {
	Name     *string      `json:"name" binding:"omitempty,min=1"`
	Role     *domain.Role `json:"role" binding:"omitempty,oneof=ADMIN MANAGER STAFF"`
	BranchID *string      `json:"branchId"`
}

// UserResponse is a user without credentials.
type UserResponse struct {
	UserID     string      `json:"id"`
	Email      string      `json:"email"`
	Name       string      `json:"name"`
	Role       domain.Role `json:"role"`
	BranchID   *string     `json:"branchId"`
	BranchName string      `json:"branchName,omitempty"`
	CreatedAt  time.Time   `json:"createdAt"`
	UpdatedAt  time.Time   `json:"updatedAt"`
}

// ToUserResponse converts a domain.User to UserResponse.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:     user.UserID,
		Email:      user.Email,
		Name:       user.Name,
		Role:       user.Role,
		BranchID:   user.BranchID,
		BranchName: user.BranchName,
		CreatedAt:  user.CreatedAt,
		UpdatedAt:  user.LastUpdatedAt,
	}
}

// ToListUserResponse converts a slice of domain.User to UserResponse DTOs.
func ToListUserResponse(users []domain.User) []UserResponse {
	res := make([]UserResponse, len(users))
	for i := range users {
		res[i] = ToUserResponse(&users[i])
	}
	return res
}
