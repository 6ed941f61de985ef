package events

import "time"

const (
	AttendanceMarkedTopic        = "attendance.marked.v1"
	AttendanceMarkRequestedTopic = "attendance.mark.requested.v1"
)

const AttendanceMarked = "attendance_marked"

type AttendanceMarkedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	Source     string    `json:"source,omitempty"`
	RecordID   string    `json:"record_id"`
	EmployeeID string    `json:"employee_id"`
	Date       string    `json:"date"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

// AttendanceMarkRequestedEvent comes from external check-in devices. Either
// EmployeeID or EmployeeCode identifies the employee; an empty Date means
// the day the message is consumed.
type AttendanceMarkRequestedEvent struct {
	EmployeeID   string    `json:"employee_id,omitempty"`
	EmployeeCode string    `json:"employee_code,omitempty"`
	Date         string    `json:"date,omitempty"`
	Status       string    `json:"status"`
	Notes        string    `json:"notes,omitempty"`
	RequestedAt  time.Time `json:"requested_at"`
}
