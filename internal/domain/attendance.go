package domain

import "time"

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusLate    Status = "late"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusLate:
		return true
	default:
		return false
	}
}

// AttendanceRecord is persisted in the "attendance_records" blob. There is at
// most one record per (EmployeeID, Date).
type AttendanceRecord struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employeeId"`
	Date       Date      `json:"date"`
	Status     Status    `json:"status"`
	Timestamp  time.Time `json:"timestamp"`
	Notes      string    `json:"notes,omitempty"`
}

func RecordID(employeeID string, date Date) string {
	return employeeID + "-" + date.String()
}

// AttendanceSession is the derived outcome of one calendar date.
type AttendanceSession struct {
	Date           Date               `json:"date"`
	Records        []AttendanceRecord `json:"records"`
	TotalEmployees int                `json:"totalEmployees"`
	PresentCount   int                `json:"presentCount"`
	AbsentCount    int                `json:"absentCount"`
	LateCount      int                `json:"lateCount"`
}
