package attendance

import (
	"context"
	"strings"
	"time"

	attendanceerrors "github.com/vivek068790/Employee-Register-App/internal/attendance/errors"
	"github.com/vivek068790/Employee-Register-App/internal/domain"
	employeeerrors "github.com/vivek068790/Employee-Register-App/internal/employee/errors"
	"github.com/vivek068790/Employee-Register-App/internal/events"
	"github.com/vivek068790/Employee-Register-App/internal/messaging/kafka"
	"github.com/vivek068790/Employee-Register-App/internal/recordstore"
	"github.com/vivek068790/Employee-Register-App/internal/report"
	"github.com/vivek068790/Employee-Register-App/internal/shared/contextutil"

	"go.uber.org/zap"
)

// Store is the part of the record store this feature needs.
type Store interface {
	FindEmployee(ctx context.Context, id string) (domain.Employee, bool)
	ListAttendanceForDate(ctx context.Context, date domain.Date) []domain.AttendanceRecord
	MarkAttendance(ctx context.Context, in recordstore.MarkInput) (domain.AttendanceRecord, error)
	Snapshot() recordstore.Snapshot
}

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	Mark(ctx context.Context, req MarkAttendanceRequest) (AttendanceResponse, error)
	ListByDate(ctx context.Context, date domain.Date) ([]AttendanceResponse, error)
	Unmarked(ctx context.Context, date domain.Date) ([]EmployeeSummary, error)
	ByStatus(ctx context.Context, date domain.Date, status domain.Status) ([]EmployeeSummary, error)

	PlanUnmarkedAbsent(ctx context.Context, date domain.Date) AbsentPlan
	ApplyAbsentPlan(ctx context.Context, plan AbsentPlan) (BulkResult, error)
	MarkUnmarkedAbsent(ctx context.Context, date domain.Date) (BulkResult, error)
}

type Option func(*service)

// WithLateAfter sets the local clock time after which a mark without an
// explicit status counts as late. Default 09:15.
func WithLateAfter(hour, minute int) Option {
	return func(s *service) {
		s.lateHour, s.lateMinute = hour, minute
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *service) { s.now = now }
}

func WithPublisher(p kafka.Publisher) Option {
	return func(s *service) {
		if p != nil {
			s.publisher = p
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(s *service) {
		if l != nil {
			s.logger = l.Named("attendance.service")
		}
	}
}

type service struct {
	store      Store
	publisher  kafka.Publisher
	now        func() time.Time
	lateHour   int
	lateMinute int
	logger     *zap.Logger
}

func NewService(store Store, opts ...Option) Service {
	s := &service{
		store:      store,
		publisher:  kafka.NewNoopPublisher(),
		now:        time.Now,
		lateHour:   9,
		lateMinute: 15,
		logger:     zap.L().Named("attendance.service"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) Mark(ctx context.Context, req MarkAttendanceRequest) (AttendanceResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	now := s.now()

	employeeID, err := s.resolveEmployee(ctx, req)
	if err != nil {
		s.logger.Warn("mark attendance rejected",
			zap.String("request_id", rid),
			zap.String("employee_id", req.EmployeeID),
			zap.String("employee_code", req.EmployeeCode),
			zap.Error(err),
		)
		return AttendanceResponse{}, err
	}

	date := domain.DateOf(now)
	if raw := strings.TrimSpace(req.Date); raw != "" {
		date, err = domain.ParseDate(raw)
		if err != nil {
			return AttendanceResponse{}, attendanceerrors.ErrInvalidDate
		}
	}

	status := domain.Status(strings.ToLower(strings.TrimSpace(req.Status)))
	if status == "" {
		status = s.statusAt(now)
	}

	rec, err := s.store.MarkAttendance(ctx, recordstore.MarkInput{
		EmployeeID: employeeID,
		Date:       date,
		Status:     status,
		Notes:      req.Notes,
	})
	if err != nil {
		s.logger.Warn("mark attendance failed",
			zap.String("request_id", rid),
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return AttendanceResponse{}, err
	}

	s.publishMarked(ctx, rec)
	s.logger.Info("attendance marked",
		zap.String("request_id", rid),
		zap.String("employee_id", rec.EmployeeID),
		zap.String("date", rec.Date.String()),
		zap.String("status", string(rec.Status)),
	)
	return mapToResponse(rec), nil
}

// resolveEmployee prefers the id; a code is looked up case-insensitively.
func (s *service) resolveEmployee(ctx context.Context, req MarkAttendanceRequest) (string, error) {
	id := strings.TrimSpace(req.EmployeeID)
	code := strings.TrimSpace(req.EmployeeCode)
	switch {
	case id != "":
		if _, ok := s.store.FindEmployee(ctx, id); !ok {
			return "", employeeerrors.ErrEmployeeNotFound
		}
		return id, nil
	case code != "":
		for _, e := range s.store.Snapshot().Employees {
			if domain.SameCode(e.Code, code) {
				return e.ID, nil
			}
		}
		return "", employeeerrors.ErrEmployeeNotFound
	}
	return "", attendanceerrors.ErrEmployeeRequired
}

func (s *service) statusAt(t time.Time) domain.Status {
	if t.Hour() > s.lateHour || (t.Hour() == s.lateHour && t.Minute() > s.lateMinute) {
		return domain.StatusLate
	}
	return domain.StatusPresent
}

func (s *service) ListByDate(ctx context.Context, date domain.Date) ([]AttendanceResponse, error) {
	records := s.store.ListAttendanceForDate(ctx, date)
	out := make([]AttendanceResponse, len(records))
	for i, r := range records {
		out[i] = mapToResponse(r)
	}
	return out, nil
}

func (s *service) Unmarked(_ context.Context, date domain.Date) ([]EmployeeSummary, error) {
	return mapToSummaries(report.UnmarkedEmployees(s.store.Snapshot(), date)), nil
}

func (s *service) ByStatus(_ context.Context, date domain.Date, status domain.Status) ([]EmployeeSummary, error) {
	if !status.Valid() {
		return nil, attendanceerrors.ErrInvalidStatus
	}
	return mapToSummaries(report.EmployeesWithStatus(s.store.Snapshot(), date, status)), nil
}

func (s *service) publishMarked(ctx context.Context, rec domain.AttendanceRecord) {
	rid := contextutil.GetRequestID(ctx)
	err := s.publisher.Publish(ctx, kafka.Message{
		Topic:         events.AttendanceMarkedTopic,
		Key:           rec.EmployeeID,
		EventType:     events.AttendanceMarked,
		AggregateType: "attendance",
		RequestID:     rid,
		Payload: events.AttendanceMarkedEvent{
			EventType:  events.AttendanceMarked,
			RequestID:  rid,
			Source:     contextutil.GetSource(ctx),
			RecordID:   rec.ID,
			EmployeeID: rec.EmployeeID,
			Date:       rec.Date.String(),
			Status:     string(rec.Status),
			OccurredAt: rec.Timestamp,
		},
	})
	if err != nil {
		s.logger.Error("publish attendance event failed",
			zap.String("request_id", rid),
			zap.String("record_id", rec.ID),
			zap.Error(err),
		)
	}
}

func mapToResponse(r domain.AttendanceRecord) AttendanceResponse {
	return AttendanceResponse{
		ID:         r.ID,
		EmployeeID: r.EmployeeID,
		Date:       r.Date.String(),
		Status:     string(r.Status),
		Timestamp:  r.Timestamp.UTC().Format(time.RFC3339),
		Notes:      r.Notes,
	}
}

func mapToSummaries(employees []domain.Employee) []EmployeeSummary {
	out := make([]EmployeeSummary, len(employees))
	for i, e := range employees {
		out[i] = EmployeeSummary{
			ID:         e.ID,
			Name:       e.Name,
			EmployeeID: e.Code,
			Gender:     string(e.Gender),
			Position:   e.Position,
		}
	}
	return out
}
