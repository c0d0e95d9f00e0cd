package repositories

import (
	"context"

	"github.com/alfadli/hrm_backend/internal/core/domain"
)

// AttendanceReader defines read operations for attendance data
type AttendanceReader interface {
	FindAttendanceByID(ctx context.Context, attendanceID string) (*domain.Attendance, error)
	ListAttendance(ctx context.Context, filter domain.AttendanceFilter) ([]domain.Attendance, error)
}

// AttendanceWriter defines write operations for attendance data
type AttendanceWriter interface {
	SaveAttendance(ctx context.Context, attendance domain.Attendance) error
	UpdateAttendance(ctx context.Context, attendance domain.Attendance) error
	DeleteAttendance(ctx context.Context, attendanceID string) error
}

// AttendanceRepositoryFacade combines all attendance-related repository interfaces
type AttendanceRepositoryFacade interface {
	AttendanceReader
	AttendanceWriter
}
