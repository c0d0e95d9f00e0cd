package pgsql

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alfadli/hrm_backend/internal/apperrors"
	"github.com/alfadli/hrm_backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// writeError translates constraint violations into application errors.
// Everything else is wrapped as an internal error.
func writeError(err error, action, entity string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return apperrors.NewConflictError(fmt.Sprintf("%s already exists", entity))
		case pgForeignKeyViolation:
			if action == "delete" {
				return apperrors.NewConflictError(fmt.Sprintf("%s is still referenced by other records", entity))
			}
			return apperrors.NewValidationFailedError(fmt.Sprintf("%s references a record that does not exist", entity))
		}
	}
	return apperrors.NewAppError(500, fmt.Sprintf("failed to %s %s", action, strings.ToLower(entity)), err)
}

// oneRow returns the first element of rows, or ErrNotFound.
func oneRow[T any](rows []T) (*T, error) {
	if len(rows) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &rows[0], nil
}

// collect scans every row into T by column name.
func collect[T any](rows pgx.Rows, entity string) ([]T, error) {
	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []T{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect "+entity+" rows", err)
	}
	return items, nil
}

// filter accumulates WHERE conditions with numbered placeholders.
type filter struct {
	conds []string
	args  []any
}

func (f *filter) add(cond string, arg any) {
	f.args = append(f.args, arg)
	f.conds = append(f.conds, fmt.Sprintf(cond, len(f.args)))
}

// eq adds "column = $n" when value is not the zero value.
func (f *filter) eq(column string, value any) {
	switch v := value.(type) {
	case string:
		if v == "" {
			return
		}
	case int:
		if v == 0 {
			return
		}
	}
	f.add(column+" = $%d", value)
}

// period adds the inclusive bounds of r on column.
func (f *filter) period(column string, r domain.DateRange) {
	if r.From != nil {
		f.add(column+" >= $%d", dateOnly(*r.From))
	}
	if r.To != nil {
		f.add(column+" <= $%d", dateOnly(*r.To))
	}
}

func (f *filter) where() string {
	if len(f.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(f.conds, " AND ")
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
