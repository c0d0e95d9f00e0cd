package dto

import "github.com/alfadli/hrm_backend/internal/core/domain"

// CreateAttendanceRequest defines the data needed to record attendance.
type CreateAttendanceRequest struct {
	EmployeeID string                  `json:"employeeId" binding:"required"`
	BranchID   string                  `json:"branchId"`
	Date       string                  `json:"date" binding:"required,isodate"`
	Status     domain.AttendanceStatus `json:"status" binding:"required,oneof=present absent late"`
	Notes      string                  `json:"notes"`
}

// UpdateAttendanceRequest defines the fields of an attendance record that can be changed.
type UpdateAttendanceRequest struct {
	EmployeeID *string                  `json:"employeeId" binding:"omitempty,min=1"`
	BranchID   *string                  `json:"branchId" binding:"omitempty,min=1"`
	Date       *string                  `json:"date" binding:"omitempty,isodate"`
	Status     *domain.AttendanceStatus `json:"status" binding:"omitempty,oneof=present absent late"`
	Notes      *string                  `json:"notes"`
}

// ListAttendanceParams defines query parameters for listing attendance.
type ListAttendanceParams struct {
	BranchID   string `form:"branchId"`
	EmployeeID string `form:"employeeId"`
	DateRangeParams
}
