package report

import (
	"context"
	"time"

	attendanceerrors "github.com/vivek068790/Employee-Register-App/internal/attendance/errors"
	"github.com/vivek068790/Employee-Register-App/internal/domain"
	"github.com/vivek068790/Employee-Register-App/internal/export"
	"github.com/vivek068790/Employee-Register-App/internal/recordstore"
	"github.com/vivek068790/Employee-Register-App/internal/shared/contextutil"

	"go.uber.org/zap"
)

type Store interface {
	Snapshot() recordstore.Snapshot
}

//go:generate mockgen -source=report_service.go -destination=mock/report_service_mock.go -package=mock
type Service interface {
	Sessions(ctx context.Context) []domain.AttendanceSession
	Recent(ctx context.Context, limit int) []domain.AttendanceSession
	Session(ctx context.Context, date domain.Date) (domain.AttendanceSession, error)
	DayStats(ctx context.Context, date domain.Date) (DayStats, error)
	ExportSession(ctx context.Context, date domain.Date) (export.File, error)

	Overall(ctx context.Context) OverallStats
	Monthly(ctx context.Context, month time.Month, year int) MonthlyStats
	MonthlyByEmployee(ctx context.Context, month time.Month, year int) []EmployeeMonthStats
}

type service struct {
	store  Store
	logger *zap.Logger
}

func NewService(store Store, logger ...*zap.Logger) Service {
	l := zap.L().Named("report.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.service")
	}
	return &service{store: store, logger: l}
}

func (s *service) Sessions(_ context.Context) []domain.AttendanceSession {
	return AllSessions(s.store.Snapshot())
}

func (s *service) Recent(_ context.Context, limit int) []domain.AttendanceSession {
	return RecentSessions(s.store.Snapshot(), limit)
}

func (s *service) Session(_ context.Context, date domain.Date) (domain.AttendanceSession, error) {
	session, ok := SessionForDate(s.store.Snapshot(), date)
	if !ok {
		return domain.AttendanceSession{}, attendanceerrors.ErrSessionNotFound
	}
	return session, nil
}

func (s *service) DayStats(_ context.Context, date domain.Date) (DayStats, error) {
	snap := s.store.Snapshot()
	if len(snap.Employees) == 0 {
		return DayStats{}, attendanceerrors.ErrSessionNotFound
	}
	return Daily(snap, date), nil
}

func (s *service) ExportSession(ctx context.Context, date domain.Date) (export.File, error) {
	snap := s.store.Snapshot()
	session, ok := SessionForDate(snap, date)
	if !ok {
		return export.File{}, attendanceerrors.ErrSessionNotFound
	}

	body, err := export.AttendanceCSV(snap.Employees, session)
	if err != nil {
		s.logger.Error("session export failed",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.String("date", date.String()),
			zap.Error(err),
		)
		return export.File{}, err
	}
	return export.File{
		Name:        "attendance-" + date.String() + ".csv",
		ContentType: export.ContentTypeCSV,
		Body:        body,
	}, nil
}

func (s *service) Overall(_ context.Context) OverallStats {
	return Overall(s.store.Snapshot())
}

func (s *service) Monthly(_ context.Context, month time.Month, year int) MonthlyStats {
	return Monthly(s.store.Snapshot(), month, year)
}

func (s *service) MonthlyByEmployee(_ context.Context, month time.Month, year int) []EmployeeMonthStats {
	return MonthlyByEmployee(s.store.Snapshot(), month, year)
}
