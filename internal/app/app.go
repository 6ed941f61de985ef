package app

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/vivek068790/Employee-Register-App/internal/attendance"
	"github.com/vivek068790/Employee-Register-App/internal/bootstrap"
	"github.com/vivek068790/Employee-Register-App/internal/employee"
	"github.com/vivek068790/Employee-Register-App/internal/kvstore"
	"github.com/vivek068790/Employee-Register-App/internal/messaging/kafka"
	"github.com/vivek068790/Employee-Register-App/internal/messaging/kafka/producer"
	"github.com/vivek068790/Employee-Register-App/internal/payroll"
	"github.com/vivek068790/Employee-Register-App/internal/recordstore"
	"github.com/vivek068790/Employee-Register-App/internal/report"
	"github.com/vivek068790/Employee-Register-App/internal/seed"
	"github.com/vivek068790/Employee-Register-App/internal/shared/config"
	"github.com/vivek068790/Employee-Register-App/internal/shared/connection"

	"go.uber.org/zap"
)

// App owns the record store and everything built on it. The store is the
// single writer of its key-value medium, so background jobs run inside the
// same process as the HTTP API.
type App struct {
	cfg    config.Config
	logger *zap.Logger
	audit  bootstrap.AuditLogger

	Store      *recordstore.Store
	Publisher  kafka.Publisher
	Employees  employee.Service
	Attendance attendance.Service
	Payroll    payroll.Service
	Reports    report.Service

	stop    context.CancelFunc
	wg      sync.WaitGroup
	closers []func() error
}

// New opens the storage medium, loads the record store and wires the
// feature services.
func New(ctx context.Context, cfg config.Config, kv kvstore.Store, publisher kafka.Publisher, logger *zap.Logger) (*App, error) {
	store, err := recordstore.Open(ctx, kv, recordstore.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("open record store: %w", err)
	}

	lateHour, lateMinute, err := cfg.Attendance.LateAfterClock()
	if err != nil {
		return nil, err
	}
	payrollService, err := payroll.NewService(store, payroll.RateTable{
		Male:          cfg.Payroll.MaleDailyRate,
		Female:        cfg.Payroll.FemaleDailyRate,
		ContractorFee: cfg.Payroll.ContractorFee,
	}, logger)
	if err != nil {
		return nil, err
	}
	if publisher == nil {
		publisher = kafka.NewNoopPublisher()
	}

	a := &App{
		cfg:       cfg,
		logger:    logger,
		audit:     bootstrap.NewStdoutAuditLogger(logger),
		Store:     store,
		Publisher: publisher,
		Employees: employee.NewServiceWithPublisher(store, publisher, logger),
		Attendance: attendance.NewService(store,
			attendance.WithLateAfter(lateHour, lateMinute),
			attendance.WithPublisher(publisher),
			attendance.WithLogger(logger),
		),
		Payroll: payrollService,
		Reports: report.NewService(store, logger),
	}

	if cfg.SeedDemo {
		if _, err := seed.Demo(ctx, store, logger); err != nil {
			return nil, fmt.Errorf("seed demo roster: %w", err)
		}
	}
	return a, nil
}

// Open connects the configured infrastructure and builds the App on top.
func Open(ctx context.Context, cfg config.Config, logger *zap.Logger) (*App, error) {
	kv, err := connection.OpenKV(ctx, cfg)
	if err != nil {
		return nil, err
	}
	closers := []func() error{kv.Close}

	var publisher kafka.Publisher
	if cfg.Kafka.Broker != "" {
		writer, err := connection.ConnectKafkaWithRetry(cfg.Kafka.Broker, cfg.ConnectRetries)
		if err != nil {
			_ = kv.Close()
			return nil, err
		}
		publisher = producer.NewPublisher(writer)
		closers = append(closers, writer.Close)
	} else {
		logger.Info("KAFKA_BROKER not set, events are not published")
	}

	a, err := New(ctx, cfg, kv, publisher, logger)
	if err != nil {
		for _, c := range closers {
			_ = c()
		}
		return nil, err
	}
	a.closers = closers
	return a, nil
}

// Close stops the background goroutines, waits for them to return, then
// releases infrastructure in reverse order of acquisition.
func (a *App) Close() error {
	if a.stop != nil {
		a.stop()
	}
	a.wg.Wait()

	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

// StartBackground runs the auto-absent scheduler and, when a broker is
// configured, the mark-request consumer until ctx is done or Close is called.
func (a *App) StartBackground(ctx context.Context) error {
	scheduler, err := NewAutoAbsentScheduler(a.Attendance, a.cfg.Worker, a.audit, a.logger)
	if err != nil {
		return err
	}

	ctx, a.stop = context.WithCancel(ctx)
	a.goBackground(func() { scheduler.Run(ctx, a.cfg.Worker.Tick) })

	if a.cfg.Kafka.Broker != "" {
		a.startConsumer(ctx)
	}
	return nil
}

func (a *App) goBackground(fn func()) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		fn()
	}()
}

func (a *App) AuditLogger() bootstrap.AuditLogger {
	return a.audit
}
