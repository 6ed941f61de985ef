package employee

type CreateEmployeeRequest struct {
	Name       string `json:"name" binding:"required,notblank"`
	EmployeeID string `json:"employeeId" binding:"required,notblank"`
	Email      string `json:"email" binding:"omitempty,email"`
	Phone      string `json:"phone"`
	Gender     string `json:"gender" binding:"required,oneof=male female"`
	Position   string `json:"position"`
}

// UpdateEmployeeRequest only touches the fields that are present.
type UpdateEmployeeRequest struct {
	Name       *string `json:"name"`
	EmployeeID *string `json:"employeeId"`
	Email      *string `json:"email"`
	Phone      *string `json:"phone"`
	Gender     *string `json:"gender"`
	Position   *string `json:"position"`
}

type EmployeeResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	EmployeeID string `json:"employeeId"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Gender     string `json:"gender"`
	Position   string `json:"position,omitempty"`
	DateAdded  string `json:"dateAdded"`
	// Status of the employee on ListQuery.Date, "unmarked" when none.
	AttendanceStatus string `json:"attendanceStatus,omitempty"`
}
