package recordstore

import (
	"context"
	"strings"

	"github.com/vivek068790/Employee-Register-App/internal/domain"
	employeeerrors "github.com/vivek068790/Employee-Register-App/internal/employee/errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

var validate = validator.New()

func (s *Store) ListEmployees(_ context.Context) []domain.Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.employees)
}

func (s *Store) FindEmployee(_ context.Context, id string) (domain.Employee, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := indexOfEmployee(s.employees, id); i >= 0 {
		return s.employees[i], true
	}
	return domain.Employee{}, false
}

// AddEmployee assigns a fresh id and creation time and appends the employee.
func (s *Store) AddEmployee(ctx context.Context, in domain.EmployeeInput) (domain.Employee, error) {
	empl := domain.Employee{
		Name:     strings.TrimSpace(in.Name),
		Code:     strings.TrimSpace(in.Code),
		Email:    strings.TrimSpace(in.Email),
		Phone:    strings.TrimSpace(in.Phone),
		Gender:   in.Gender,
		Position: strings.TrimSpace(in.Position),
	}
	if err := validateEmployee(empl); err != nil {
		return domain.Employee{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if codeTaken(s.employees, empl.Code, "") {
		return domain.Employee{}, employeeerrors.ErrEmployeeCodeAlreadyExists
	}

	empl.ID = s.newID()
	empl.DateAdded = s.now()

	next := append(clone(s.employees), empl)
	if err := s.persist(ctx, &next, nil); err != nil {
		return domain.Employee{}, err
	}
	s.employees = next

	s.logger.Debug("employee added",
		zap.String("employee_id", empl.ID),
		zap.String("employee_code", empl.Code),
	)
	return empl, nil
}

// UpdateEmployee merges patch into the employee with the given id. An
// unknown id is a no-op and reports found=false without an error.
func (s *Store) UpdateEmployee(ctx context.Context, id string, patch domain.EmployeePatch) (domain.Employee, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOfEmployee(s.employees, id)
	if i < 0 {
		return domain.Employee{}, false, nil
	}

	merged := patch.Apply(s.employees[i])
	if err := validateEmployee(merged); err != nil {
		return domain.Employee{}, true, err
	}
	if codeTaken(s.employees, merged.Code, id) {
		return domain.Employee{}, true, employeeerrors.ErrEmployeeCodeAlreadyExists
	}

	next := clone(s.employees)
	next[i] = merged
	if err := s.persist(ctx, &next, nil); err != nil {
		return domain.Employee{}, true, err
	}
	s.employees = next
	return merged, true, nil
}

// DeleteEmployee removes the employee and every attendance record that
// references it in a single write. Deleting an unknown id still runs the
// (empty) cascade.
func (s *Store) DeleteEmployee(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	employees := make([]domain.Employee, 0, len(s.employees))
	found := false
	for _, e := range s.employees {
		if e.ID == id {
			found = true
			continue
		}
		employees = append(employees, e)
	}

	records := make([]domain.AttendanceRecord, 0, len(s.records))
	removed := 0
	for _, r := range s.records {
		if r.EmployeeID == id {
			removed++
			continue
		}
		records = append(records, r)
	}

	if err := s.persist(ctx, &employees, &records); err != nil {
		return false, err
	}
	s.employees = employees
	s.records = records

	s.logger.Debug("employee deleted",
		zap.String("employee_id", id),
		zap.Bool("found", found),
		zap.Int("records_removed", removed),
	)
	return found, nil
}

func validateEmployee(e domain.Employee) error {
	if e.Name == "" {
		return employeeerrors.ErrNameRequired
	}
	if e.Code == "" {
		return employeeerrors.ErrCodeRequired
	}
	if !e.Gender.Valid() {
		return employeeerrors.ErrInvalidGender
	}
	if e.Email != "" {
		if err := validate.Var(e.Email, "email"); err != nil {
			return employeeerrors.ErrInvalidEmail
		}
	}
	return nil
}

func codeTaken(employees []domain.Employee, code, exceptID string) bool {
	for _, e := range employees {
		if e.ID != exceptID && domain.SameCode(e.Code, code) {
			return true
		}
	}
	return false
}

func indexOfEmployee(employees []domain.Employee, id string) int {
	for i, e := range employees {
		if e.ID == id {
			return i
		}
	}
	return -1
}
