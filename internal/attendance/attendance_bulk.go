package attendance

import (
	"context"
	"errors"

	"github.com/vivek068790/Employee-Register-App/internal/domain"
	employeeerrors "github.com/vivek068790/Employee-Register-App/internal/employee/errors"
	"github.com/vivek068790/Employee-Register-App/internal/recordstore"
	"github.com/vivek068790/Employee-Register-App/internal/report"
	"github.com/vivek068790/Employee-Register-App/internal/shared/contextutil"

	"go.uber.org/zap"
)

// PlanUnmarkedAbsent freezes the set of employees without a record on date.
// Employees added after this call are not part of the plan.
func (s *service) PlanUnmarkedAbsent(_ context.Context, date domain.Date) AbsentPlan {
	unmarked := report.UnmarkedEmployees(s.store.Snapshot(), date)
	plan := AbsentPlan{Date: date, EmployeeIDs: make([]string, len(unmarked))}
	for i, e := range unmarked {
		plan.EmployeeIDs[i] = e.ID
	}
	return plan
}

// ApplyAbsentPlan marks every planned employee absent. Employees deleted
// since planning are skipped; a storage error stops the batch and the
// result lists what was written so far.
func (s *service) ApplyAbsentPlan(ctx context.Context, plan AbsentPlan) (BulkResult, error) {
	rid := contextutil.GetRequestID(ctx)
	result := BulkResult{Date: plan.Date, Marked: make([]string, 0, len(plan.EmployeeIDs))}

	for _, id := range plan.EmployeeIDs {
		rec, err := s.store.MarkAttendance(ctx, recordstore.MarkInput{
			EmployeeID: id,
			Date:       plan.Date,
			Status:     domain.StatusAbsent,
		})
		if errors.Is(err, employeeerrors.ErrEmployeeNotFound) {
			result.Skipped = append(result.Skipped, id)
			continue
		}
		if err != nil {
			s.logger.Error("bulk absent interrupted",
				zap.String("request_id", rid),
				zap.String("date", plan.Date.String()),
				zap.Int("marked", len(result.Marked)),
				zap.Error(err),
			)
			return result, err
		}
		result.Marked = append(result.Marked, id)
		s.publishMarked(ctx, rec)
	}

	s.logger.Info("bulk absent applied",
		zap.String("request_id", rid),
		zap.String("date", plan.Date.String()),
		zap.Int("marked", len(result.Marked)),
		zap.Int("skipped", len(result.Skipped)),
	)
	return result, nil
}

func (s *service) MarkUnmarkedAbsent(ctx context.Context, date domain.Date) (BulkResult, error) {
	return s.ApplyAbsentPlan(ctx, s.PlanUnmarkedAbsent(ctx, date))
}
