package pgsql

import (
	"context"
	"fmt"

	"github.com/alfadli/hrm_backend/internal/apperrors"
	"github.com/alfadli/hrm_backend/internal/core/domain"
	portsrepo "github.com/alfadli/hrm_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAttendanceRepository struct {
	BaseRepository
}

func newPgxAttendanceRepository(pool *pgxpool.Pool) portsrepo.AttendanceRepositoryFacade {
	return &PgxAttendanceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AttendanceRepositoryFacade = (*PgxAttendanceRepository)(nil)

const FULL_ATTENDANCE_SELECT_QUERY = `
SELECT
	a.attendance_id, a.employee_id, COALESCE(e.name, '') AS employee_name,
	a.branch_id, COALESCE(b.name, '') AS branch_name,
	a.date, a.status, a.notes,
	a.created_at, a.created_by, a.last_updated_at, a.last_updated_by
FROM attendance a
LEFT JOIN employees e ON e.employee_id = a.employee_id
LEFT JOIN branches b ON b.branch_id = a.branch_id
`

func (r *PgxAttendanceRepository) getAttendance(ctx context.Context, filterQuery string, args ...any) ([]domain.Attendance, error) {
	rows, err := r.Pool.Query(ctx, FULL_ATTENDANCE_SELECT_QUERY+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query attendance", err)
	}
	defer rows.Close()
	return collect[domain.Attendance](rows, "attendance")
}

func (r *PgxAttendanceRepository) FindAttendanceByID(ctx context.Context, attendanceID string) (*domain.Attendance, error) {
	records, err := r.getAttendance(ctx, "WHERE a.attendance_id = $1", attendanceID)
	if err != nil {
		return nil, err
	}
	return oneRow(records)
}

func (r *PgxAttendanceRepository) ListAttendance(ctx context.Context, af domain.AttendanceFilter) ([]domain.Attendance, error) {
	var f filter
	f.eq("a.branch_id", af.BranchID)
	f.eq("a.employee_id", af.EmployeeID)
	f.period("a.date", af.Period)
	return r.getAttendance(ctx, f.where()+" ORDER BY a.date DESC, a.created_at DESC", f.args...)
}

func (r *PgxAttendanceRepository) SaveAttendance(ctx context.Context, attendance domain.Attendance) error {
	query := `
		INSERT INTO attendance (
			attendance_id, employee_id, branch_id, date, status, notes,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		attendance.AttendanceID, attendance.EmployeeID, attendance.BranchID,
		attendance.Date, attendance.Status, attendance.Notes,
		attendance.CreatedAt, attendance.CreatedBy, attendance.LastUpdatedAt, attendance.LastUpdatedBy,
	)
	if err != nil {
		return writeError(err, "save", "Attendance record")
	}
	return nil
}

func (r *PgxAttendanceRepository) UpdateAttendance(ctx context.Context, attendance domain.Attendance) error {
	query := `
		UPDATE attendance
		SET employee_id = $1, branch_id = $2, date = $3, status = $4, notes = $5,
			last_updated_at = $6, last_updated_by = $7
		WHERE attendance_id = $8;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		attendance.EmployeeID, attendance.BranchID, attendance.Date, attendance.Status, attendance.Notes,
		attendance.LastUpdatedAt, attendance.LastUpdatedBy, attendance.AttendanceID,
	)
	if err != nil {
		return writeError(err, "update", "Attendance record")
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("attendance %s: %w", attendance.AttendanceID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxAttendanceRepository) DeleteAttendance(ctx context.Context, attendanceID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM attendance WHERE attendance_id = $1;`, attendanceID)
	if err != nil {
		return writeError(err, "delete", "Attendance record")
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("attendance %s: %w", attendanceID, apperrors.ErrNotFound)
	}
	return nil
}
