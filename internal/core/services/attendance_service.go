package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/alfadli/hrm_backend/internal/apperrors"
	"github.com/alfadli/hrm_backend/internal/core/domain"
	"github.com/alfadli/hrm_backend/internal/core/policy"
	portsrepo "github.com/alfadli/hrm_backend/internal/core/ports/repositories"
	portssvc "github.com/alfadli/hrm_backend/internal/core/ports/services"
	"github.com/alfadli/hrm_backend/internal/dto"
	"github.com/google/uuid"
)

// attendanceService implements the AttendanceSvcFacade interface
type attendanceService struct {
	BaseService
	attendanceRepo portsrepo.AttendanceRepositoryFacade
	employeeReader portsrepo.EmployeeReader
}

// AttendanceServiceOption is a functional option for configuring the attendance service
type AttendanceServiceOption func(*attendanceService)

// WithAttendanceEmployeeReader makes the service check that the employee
// exists and belongs to the record's branch.
func WithAttendanceEmployeeReader(reader portsrepo.EmployeeReader) AttendanceServiceOption {
	return func(s *attendanceService) {
		s.employeeReader = reader
	}
}

// NewAttendanceService creates a new attendance service with the provided dependencies
func NewAttendanceService(attendanceRepo portsrepo.AttendanceRepositoryFacade, options ...AttendanceServiceOption) portssvc.AttendanceSvcFacade {
	s := &attendanceService{attendanceRepo: attendanceRepo}
	for _, option := range options {
		option(s)
	}
	return s
}

var _ portssvc.AttendanceSvcFacade = (*attendanceService)(nil)

func (s *attendanceService) CreateAttendance(ctx context.Context, identity domain.Identity, req dto.CreateAttendanceRequest) (*domain.Attendance, error) {
	decision, err := s.Authorize(ctx, identity, policy.Request{
		Kind: policy.KindAttendance, Op: policy.OpCreate, TargetBranchID: req.BranchID,
	})
	if err != nil {
		return nil, err
	}
	branchID, err := createBranch(decision)
	if err != nil {
		return nil, err
	}

	date, err := dto.ParseDate(req.Date)
	if err != nil {
		return nil, validationError(err)
	}
	if err := ensureEmployeeInBranch(ctx, s.employeeReader, req.EmployeeID, branchID); err != nil {
		return nil, err
	}

	attendance := domain.Attendance{
		AttendanceID: uuid.NewString(),
		EmployeeID:   req.EmployeeID,
		BranchID:     branchID,
		Date:         date,
		Status:       req.Status,
		Notes:        req.Notes,
		AuditFields:  domain.NewAuditFields(identity.UserID(), s.now()),
	}

	if err := s.attendanceRepo.SaveAttendance(ctx, attendance); err != nil {
		s.LogError(ctx, err, "Failed to save attendance",
			slog.String("attendance_id", attendance.AttendanceID),
			slog.String("employee_id", attendance.EmployeeID))
		return nil, err
	}

	s.LogInfo(ctx, "Attendance recorded successfully",
		slog.String("attendance_id", attendance.AttendanceID),
		slog.String("branch_id", branchID))
	return &attendance, nil
}

func (s *attendanceService) ListAttendance(ctx context.Context, identity domain.Identity, params dto.ListAttendanceParams) ([]domain.Attendance, error) {
	decision, err := s.Authorize(ctx, identity, policy.Request{
		Kind: policy.KindAttendance, Op: policy.OpRead, TargetBranchID: params.BranchID,
	})
	if err != nil {
		return nil, err
	}
	period, err := params.Period()
	if err != nil {
		return nil, validationError(err)
	}

	records, err := s.attendanceRepo.ListAttendance(ctx, domain.AttendanceFilter{
		BranchID:   readFilter(decision),
		EmployeeID: params.EmployeeID,
		Period:     period,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to list attendance")
		return nil, err
	}
	if records == nil {
		return []domain.Attendance{}, nil
	}
	return records, nil
}

func (s *attendanceService) GetAttendance(ctx context.Context, identity domain.Identity, attendanceID string) (*domain.Attendance, error) {
	decision, err := s.Authorize(ctx, identity, policy.Request{Kind: policy.KindAttendance, Op: policy.OpRead})
	if err != nil {
		return nil, err
	}

	attendance, err := s.findAttendance(ctx, attendanceID)
	if err != nil {
		return nil, err
	}
	if !decision.Admits(attendance.BranchID) {
		return nil, apperrors.NewForbiddenError("Access denied")
	}
	return attendance, nil
}

func (s *attendanceService) UpdateAttendance(ctx context.Context, identity domain.Identity, attendanceID string, req dto.UpdateAttendanceRequest) (*domain.Attendance, error) {
	if err := s.Precheck(ctx, identity, policy.Request{Kind: policy.KindAttendance, Op: policy.OpUpdate}); err != nil {
		return nil, err
	}

	attendance, err := s.findAttendance(ctx, attendanceID)
	if err != nil {
		return nil, err
	}
	if err := s.AuthorizeUpdate(ctx, identity, policy.KindAttendance, attendance.BranchID, req.BranchID); err != nil {
		return nil, err
	}

	employeeChanged := false
	if req.BranchID != nil && *req.BranchID != attendance.BranchID {
		attendance.BranchID = *req.BranchID
		attendance.BranchName = ""
		employeeChanged = true
	}
	if req.EmployeeID != nil && *req.EmployeeID != attendance.EmployeeID {
		attendance.EmployeeID = *req.EmployeeID
		attendance.EmployeeName = ""
		employeeChanged = true
	}
	if employeeChanged {
		if err := ensureEmployeeInBranch(ctx, s.employeeReader, attendance.EmployeeID, attendance.BranchID); err != nil {
			return nil, err
		}
	}
	if req.Date != nil {
		date, err := dto.ParseDate(*req.Date)
		if err != nil {
			return nil, validationError(err)
		}
		attendance.Date = date
	}
	if req.Status != nil {
		attendance.Status = *req.Status
	}
	if req.Notes != nil {
		attendance.Notes = *req.Notes
	}
	attendance.Touch(identity.UserID(), s.now())

	if err := s.attendanceRepo.UpdateAttendance(ctx, *attendance); err != nil {
		s.LogError(ctx, err, "Failed to update attendance", slog.String("attendance_id", attendanceID))
		return nil, err
	}

	s.LogInfo(ctx, "Attendance updated successfully", slog.String("attendance_id", attendanceID))
	return attendance, nil
}

func (s *attendanceService) DeleteAttendance(ctx context.Context, identity domain.Identity, attendanceID string) error {
	if err := s.Precheck(ctx, identity, policy.Request{Kind: policy.KindAttendance, Op: policy.OpDelete}); err != nil {
		return err
	}

	attendance, err := s.findAttendance(ctx, attendanceID)
	if err != nil {
		return err
	}
	if _, err := s.Authorize(ctx, identity, policy.Request{
		Kind: policy.KindAttendance, Op: policy.OpDelete, OwnerBranchID: attendance.BranchID,
	}); err != nil {
		return err
	}

	if err := s.attendanceRepo.DeleteAttendance(ctx, attendanceID); err != nil {
		s.LogError(ctx, err, "Failed to delete attendance", slog.String("attendance_id", attendanceID))
		return err
	}

	s.LogInfo(ctx, "Attendance deleted successfully", slog.String("attendance_id", attendanceID))
	return nil
}

func (s *attendanceService) findAttendance(ctx context.Context, attendanceID string) (*domain.Attendance, error) {
	attendance, err := s.attendanceRepo.FindAttendanceByID(ctx, attendanceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Attendance record not found")
		}
		s.LogError(ctx, err, "Failed to find attendance by ID", slog.String("attendance_id", attendanceID))
		return nil, err
	}
	return attendance, nil
}
