package app

import (
	"context"
	"time"

	"github.com/vivek068790/Employee-Register-App/internal/attendance"
	"github.com/vivek068790/Employee-Register-App/internal/bootstrap"
	"github.com/vivek068790/Employee-Register-App/internal/domain"
	"github.com/vivek068790/Employee-Register-App/internal/shared/config"
	"github.com/vivek068790/Employee-Register-App/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AutoAbsentScheduler marks the day's unmarked employees absent once per
// day, at the first tick on or after the configured clock time.
type AutoAbsentScheduler struct {
	svc          attendance.Service
	hour, minute int
	audit        bootstrap.AuditLogger
	now          func() time.Time
	lastRun      domain.Date
	logger       *zap.Logger
}

func NewAutoAbsentScheduler(
	svc attendance.Service,
	cfg config.WorkerConfig,
	audit bootstrap.AuditLogger,
	logger *zap.Logger,
) (*AutoAbsentScheduler, error) {
	h, m, err := cfg.AutoAbsentClock()
	if err != nil {
		return nil, err
	}
	return &AutoAbsentScheduler{
		svc:    svc,
		hour:   h,
		minute: m,
		audit:  audit,
		now:    time.Now,
		logger: logger.Named("app.worker.auto_absent"),
	}, nil
}

func (s *AutoAbsentScheduler) due(now time.Time) bool {
	if s.lastRun == domain.DateOf(now) {
		return false
	}
	return now.Hour() > s.hour || (now.Hour() == s.hour && now.Minute() >= s.minute)
}

// Tick runs the job if it is due. A failed run is retried on the next tick.
func (s *AutoAbsentScheduler) Tick(ctx context.Context) (bool, error) {
	now := s.now()
	if !s.due(now) {
		return false, nil
	}

	today := domain.DateOf(now)
	rid := uuid.NewString()
	jctx := contextutil.WithSource(contextutil.WithRequestID(ctx, rid), contextutil.SourceWorker)

	result, err := s.svc.MarkUnmarkedAbsent(jctx, today)
	if err != nil {
		s.logger.Error("auto absent failed",
			zap.String("request_id", rid),
			zap.String("date", today.String()),
			zap.Int("marked_before_failure", len(result.Marked)),
			zap.Error(err),
		)
		return true, err
	}
	s.lastRun = today

	s.audit.Log(jctx, bootstrap.AuditLog{
		Action:  bootstrap.AuditAutoAbsent,
		Message: "Unmarked employees marked absent",
		Meta: map[string]any{
			"date":    today.String(),
			"marked":  len(result.Marked),
			"skipped": len(result.Skipped),
		},
	})
	return true, nil
}

func (s *AutoAbsentScheduler) Run(ctx context.Context, every time.Duration) {
	s.logger.Info("auto absent scheduler started",
		zap.Int("hour", s.hour),
		zap.Int("minute", s.minute),
		zap.Duration("tick", every),
	)

	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.audit.Log(context.Background(), bootstrap.AuditLog{
				Action:  bootstrap.AuditWorkerStopped,
				Message: "Auto absent scheduler stopped",
			})
			return
		case <-ticker.C:
			_, _ = s.Tick(ctx)
		}
	}
}
