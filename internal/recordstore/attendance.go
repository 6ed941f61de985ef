package recordstore

import (
	"context"
	"strings"

	attendanceerrors "github.com/vivek068790/Employee-Register-App/internal/attendance/errors"
	"github.com/vivek068790/Employee-Register-App/internal/domain"
	employeeerrors "github.com/vivek068790/Employee-Register-App/internal/employee/errors"

	"go.uber.org/zap"
)

type MarkInput struct {
	EmployeeID string
	Date       domain.Date
	Status     domain.Status
	Notes      string
}

func (s *Store) ListAttendanceRecords(_ context.Context) []domain.AttendanceRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.records)
}

func (s *Store) ListAttendanceForDate(_ context.Context, date domain.Date) []domain.AttendanceRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.AttendanceRecord, 0)
	for _, r := range s.records {
		if r.Date == date {
			out = append(out, r)
		}
	}
	return out
}

// MarkAttendance upserts the record for (EmployeeID, Date). An existing
// record keeps its identity and gets the new status, timestamp and notes.
func (s *Store) MarkAttendance(ctx context.Context, in MarkInput) (domain.AttendanceRecord, error) {
	if !in.Status.Valid() {
		return domain.AttendanceRecord{}, attendanceerrors.ErrInvalidStatus
	}
	if in.Date.IsZero() {
		return domain.AttendanceRecord{}, attendanceerrors.ErrInvalidDate
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if indexOfEmployee(s.employees, in.EmployeeID) < 0 {
		return domain.AttendanceRecord{}, employeeerrors.ErrEmployeeNotFound
	}

	next := clone(s.records)
	var rec domain.AttendanceRecord
	i := indexOfRecord(next, in.EmployeeID, in.Date)
	if i >= 0 {
		rec = next[i]
	} else {
		rec = domain.AttendanceRecord{
			ID:         domain.RecordID(in.EmployeeID, in.Date),
			EmployeeID: in.EmployeeID,
			Date:       in.Date,
		}
	}
	rec.Status = in.Status
	rec.Timestamp = s.now()
	rec.Notes = strings.TrimSpace(in.Notes)

	if i >= 0 {
		next[i] = rec
	} else {
		next = append(next, rec)
	}

	if err := s.persist(ctx, nil, &next); err != nil {
		return domain.AttendanceRecord{}, err
	}
	s.records = next

	s.logger.Debug("attendance marked",
		zap.String("employee_id", rec.EmployeeID),
		zap.String("date", rec.Date.String()),
		zap.String("status", string(rec.Status)),
		zap.Bool("overwrite", i >= 0),
	)
	return rec, nil
}

func indexOfRecord(records []domain.AttendanceRecord, employeeID string, date domain.Date) int {
	for i, r := range records {
		if r.EmployeeID == employeeID && r.Date == date {
			return i
		}
	}
	return -1
}
