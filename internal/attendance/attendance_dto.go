package attendance

import "github.com/vivek068790/Employee-Register-App/internal/domain"

// MarkAttendanceRequest identifies the employee by id or, for check-in
// devices, by employee code. Empty Date means today; empty Status derives
// present/late from the marking time.
type MarkAttendanceRequest struct {
	EmployeeID   string `json:"employeeId"`
	EmployeeCode string `json:"employeeCode"`
	Date         string `json:"date"`
	Status       string `json:"status" binding:"omitempty,oneof=present absent late"`
	Notes        string `json:"notes" binding:"max=500"`
}

type AttendanceResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employeeId"`
	Date       string `json:"date"`
	Status     string `json:"status"`
	Timestamp  string `json:"timestamp"`
	Notes      string `json:"notes,omitempty"`
}

type EmployeeSummary struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	EmployeeID string `json:"employeeId"`
	Gender     string `json:"gender"`
	Position   string `json:"position,omitempty"`
}

// AbsentPlan is the frozen set of employees to mark absent on Date.
type AbsentPlan struct {
	Date        domain.Date `json:"date"`
	EmployeeIDs []string    `json:"employeeIds"`
}

type BulkResult struct {
	Date    domain.Date `json:"date"`
	Marked  []string    `json:"marked"`
	Skipped []string    `json:"skipped,omitempty"`
}
