package domain

import (
	"strings"
	"time"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

// Employee is persisted as-is in the "attendance_employees" blob, so the
// JSON names are part of the storage format.
type Employee struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"employeeId"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Gender    Gender    `json:"gender"`
	Position  string    `json:"position,omitempty"`
	DateAdded time.Time `json:"dateAdded"`
}

// EmployeeInput carries the user-editable fields of an employee.
type EmployeeInput struct {
	Name     string
	Code     string
	Email    string
	Phone    string
	Gender   Gender
	Position string
}

// EmployeePatch is a partial edit; nil fields are left untouched.
type EmployeePatch struct {
	Name     *string
	Code     *string
	Email    *string
	Phone    *string
	Gender   *Gender
	Position *string
}

func (p EmployeePatch) Apply(e Employee) Employee {
	if p.Name != nil {
		e.Name = strings.TrimSpace(*p.Name)
	}
	if p.Code != nil {
		e.Code = strings.TrimSpace(*p.Code)
	}
	if p.Email != nil {
		e.Email = strings.TrimSpace(*p.Email)
	}
	if p.Phone != nil {
		e.Phone = strings.TrimSpace(*p.Phone)
	}
	if p.Gender != nil {
		e.Gender = *p.Gender
	}
	if p.Position != nil {
		e.Position = strings.TrimSpace(*p.Position)
	}
	return e
}

// SameCode reports whether two employee codes collide. Codes are compared
// case-insensitively after trimming.
func SameCode(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
