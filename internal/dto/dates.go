package dto

import (
	"fmt"
	"time"

	"github.com/alfadli/hrm_backend/internal/core/domain"
)

// DateLayout is the calendar date format accepted alongside RFC3339.
const DateLayout = "2006-01-02"

// ParseDate accepts YYYY-MM-DD or an RFC3339 timestamp.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD or RFC3339", s)
	}
	return t, nil
}

// IsDate reports whether s parses with ParseDate. It backs the isodate binding tag.
func IsDate(s string) bool {
	_, err := ParseDate(s)
	return err == nil
}

func parseOptionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// DateRangeParams are the startDate/endDate query parameters shared by the
// ledger, attendance and sales listings.
type DateRangeParams struct {
	StartDate string `form:"startDate" binding:"omitempty,isodate"`
	EndDate   string `form:"endDate" binding:"omitempty,isodate"`
}

// Period converts the parameters into a domain.DateRange.
func (p DateRangeParams) Period() (domain.DateRange, error) {
	from, err := parseOptionalDate(p.StartDate)
	if err != nil {
		return domain.DateRange{}, err
	}
	to, err := parseOptionalDate(p.EndDate)
	if err != nil {
		return domain.DateRange{}, err
	}
	return domain.DateRange{From: from, To: to}, nil
}
