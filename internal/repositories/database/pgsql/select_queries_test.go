package pgsql

import (
	"reflect"
	"strings"
	"testing"

	"github.com/alfadli/hrm_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// selectedColumns returns the output column names of a SELECT list,
// normalized the way pgx matches them to struct fields.
func selectedColumns(t *testing.T, query string) []string {
	t.Helper()
	start := strings.Index(query, "SELECT")
	end := strings.Index(query, "FROM ")
	require.True(t, start >= 0 && end > start, "query has no SELECT ... FROM")

	var items []string
	depth, last := 0, start+len("SELECT")
	for i := last; i < end; i++ {
		switch query[i] {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				items = append(items, query[last:i])
				last = i + 1
			}
		}
	}
	items = append(items, query[last:end])

	cols := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if idx := strings.LastIndex(item, " AS "); idx >= 0 {
			item = item[idx+len(" AS "):]
		} else if idx := strings.LastIndex(item, "."); idx >= 0 {
			item = item[idx+1:]
		}
		cols = append(cols, normalizeName(item))
	}
	return cols
}

func structFields(typ reflect.Type) []string {
	var names []string
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if f.Anonymous && f.Type.Kind() == reflect.Struct {
			names = append(names, structFields(f.Type)...)
			continue
		}
		names = append(names, normalizeName(f.Name))
	}
	return names
}

func normalizeName(s string) string {
	return strings.ToLower(strings.ReplaceAll(s, "_", ""))
}

func TestSelectQueries_CoverEveryField(t *testing.T) {
	tests := []struct {
		name  string
		query string
		model any
	}{
		{name: "branch", query: FULL_BRANCH_SELECT_QUERY, model: domain.Branch{}},
		{name: "employee", query: FULL_EMPLOYEE_SELECT_QUERY, model: domain.Employee{}},
		{name: "attendance", query: FULL_ATTENDANCE_SELECT_QUERY, model: domain.Attendance{}},
		{name: "payroll", query: FULL_PAYROLL_SELECT_QUERY, model: domain.Payroll{}},
		{name: "income", query: FULL_INCOME_SELECT_QUERY, model: domain.Income{}},
		{name: "expense", query: FULL_EXPENSE_SELECT_QUERY, model: domain.Expense{}},
		{name: "expense category", query: FULL_EXPENSE_CATEGORY_SELECT_QUERY, model: domain.ExpenseCategory{}},
		{name: "sale", query: FULL_SALE_SELECT_QUERY, model: domain.Sale{}},
		{name: "user", query: FULL_USER_SELECT_QUERY, model: domain.User{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ElementsMatch(t, structFields(reflect.TypeOf(tt.model)), selectedColumns(t, tt.query))
		})
	}
}

func TestSelectQueries_JoinRelatedNames(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		columns []string
		joins   []string
	}{
		{
			name:    "employee",
			query:   FULL_EMPLOYEE_SELECT_QUERY,
			columns: []string{"branchname"},
			joins:   []string{"LEFT JOIN branches b ON b.branch_id = e.branch_id"},
		},
		{
			name:    "attendance",
			query:   FULL_ATTENDANCE_SELECT_QUERY,
			columns: []string{"branchname", "employeename"},
			joins: []string{
				"LEFT JOIN employees e ON e.employee_id = a.employee_id",
				"LEFT JOIN branches b ON b.branch_id = a.branch_id",
			},
		},
		{
			name:    "payroll",
			query:   FULL_PAYROLL_SELECT_QUERY,
			columns: []string{"branchname", "employeename"},
			joins: []string{
				"LEFT JOIN employees e ON e.employee_id = p.employee_id",
				"LEFT JOIN branches b ON b.branch_id = p.branch_id",
			},
		},
		{
			name:    "income",
			query:   FULL_INCOME_SELECT_QUERY,
			columns: []string{"branchname"},
			joins:   []string{"LEFT JOIN branches b ON b.branch_id = i.branch_id"},
		},
		{
			name:    "expense",
			query:   FULL_EXPENSE_SELECT_QUERY,
			columns: []string{"branchname", "categoryname"},
			joins:   []string{"LEFT JOIN branches b ON b.branch_id = x.branch_id"},
		},
		{
			name:    "sale",
			query:   FULL_SALE_SELECT_QUERY,
			columns: []string{"branchname"},
			joins:   []string{"LEFT JOIN branches b ON b.branch_id = s.branch_id"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cols := selectedColumns(t, tt.query)
			for _, col := range tt.columns {
				assert.Contains(t, cols, col)
			}
			for _, join := range tt.joins {
				assert.Contains(t, tt.query, join)
			}
		})
	}
}
