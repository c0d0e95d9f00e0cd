package services

import (
	"context"

	"github.com/alfadli/hrm_backend/internal/core/domain"
	"github.com/alfadli/hrm_backend/internal/dto"
)

// AttendanceSvcFacade defines attendance operations
type AttendanceSvcFacade interface {
	CreateAttendance(ctx context.Context, identity domain.Identity, req dto.CreateAttendanceRequest) (*domain.Attendance, error)
	ListAttendance(ctx context.Context, identity domain.Identity, params dto.ListAttendanceParams) ([]domain.Attendance, error)
	GetAttendance(ctx context.Context, identity domain.Identity, attendanceID string) (*domain.Attendance, error)
	UpdateAttendance(ctx context.Context, identity domain.Identity, attendanceID string, req dto.UpdateAttendanceRequest) (*domain.Attendance, error)
	DeleteAttendance(ctx context.Context, identity domain.Identity, attendanceID string) error
}
