package domain

import "time"

// AttendanceStatus records whether an employee showed up on a given day.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceLate    AttendanceStatus = "late"
)

// Attendance is one employee's attendance on one day.
// EmployeeName and BranchName are joined in on reads only.
type Attendance struct {
	AttendanceID string           `json:"id"`
	EmployeeID   string           `json:"employeeId"`
	EmployeeName string           `json:"employeeName,omitempty"`
	BranchID     string           `json:"branchId"`
	BranchName   string           `json:"branchName,omitempty"`
	Date         time.Time        `json:"date"`
	Status       AttendanceStatus `json:"status"`
	Notes        string           `json:"notes"`
	AuditFields
}

// AttendanceFilter narrows an attendance listing. Empty fields are not applied.
type AttendanceFilter struct {
	BranchID   string
	EmployeeID string
	Period     DateRange
}
