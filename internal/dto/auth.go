package dto

import "github.com/alfadli/hrm_backend/internal/core/policy"

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	AccessToken string             `json:"access_token"`
	User        UserResponse       `json:"user"`
	Permissions policy.Affordances `json:"permissions"`
}

// ProfileResponse is the caller's own user together with the controls the
// client should enable for them.
type ProfileResponse struct {
	User        UserResponse       `json:"user"`
	Permissions policy.Affordances `json:"permissions"`
}
