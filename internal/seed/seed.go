// Package seed loads a small demo roster into an empty store.
package seed

import (
	"context"

	"github.com/vivek068790/Employee-Register-App/internal/domain"

	"go.uber.org/zap"
)

type Store interface {
	ListEmployees(ctx context.Context) []domain.Employee
	AddEmployee(ctx context.Context, in domain.EmployeeInput) (domain.Employee, error)
}

func DemoEmployees() []domain.EmployeeInput {
	return []domain.EmployeeInput{
		{Name: "John Smith", Code: "EMP001", Email: "john.smith@company.com", Phone: "+1-555-0101", Gender: domain.GenderMale, Position: "Manager"},
		{Name: "Sarah Johnson", Code: "EMP002", Email: "sarah.johnson@company.com", Phone: "+1-555-0102", Gender: domain.GenderFemale, Position: "Developer"},
		{Name: "Mike Wilson", Code: "EMP003", Email: "mike.wilson@company.com", Phone: "+1-555-0103", Gender: domain.GenderMale, Position: "Designer"},
		{Name: "Emily Davis", Code: "EMP004", Email: "emily.davis@company.com", Phone: "+1-555-0104", Gender: domain.GenderFemale, Position: "Analyst"},
		{Name: "David Brown", Code: "EMP005", Email: "david.brown@company.com", Phone: "+1-555-0105", Gender: domain.GenderMale, Position: "Sales Rep"},
	}
}

// Demo adds the demo roster when the store has no employees. It returns how
// many employees were added.
func Demo(ctx context.Context, store Store, logger *zap.Logger) (int, error) {
	log := logger.Named("seed")
	if n := len(store.ListEmployees(ctx)); n > 0 {
		log.Info("roster not empty, skipping demo seed", zap.Int("employees", n))
		return 0, nil
	}

	added := 0
	for _, in := range DemoEmployees() {
		if _, err := store.AddEmployee(ctx, in); err != nil {
			log.Error("seed employee failed", zap.String("employee_code", in.Code), zap.Error(err))
			return added, err
		}
		added++
	}
	log.Info("demo roster seeded", zap.Int("employees", added))
	return added, nil
}
