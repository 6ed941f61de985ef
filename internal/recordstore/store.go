// Package recordstore owns the employee roster and the attendance records.
// Every mutation is validated, persisted to the key-value medium and only
// then made visible to readers.
package recordstore

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/vivek068790/Employee-Register-App/internal/domain"
	"github.com/vivek068790/Employee-Register-App/internal/kvstore"
	"github.com/vivek068790/Employee-Register-App/internal/shared/apperror"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	EmployeesKey = "attendance_employees"
	RecordsKey   = "attendance_records"
)

// Snapshot is a consistent copy of both collections. Callers own it.
type Snapshot struct {
	Employees []domain.Employee
	Records   []domain.AttendanceRecord
}

type Option func(*Store)

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithIDGenerator(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger.Named("recordstore")
		}
	}
}

type Store struct {
	kv     kvstore.Store
	now    func() time.Time
	newID  func() string
	logger *zap.Logger

	mu        sync.RWMutex
	employees []domain.Employee
	records   []domain.AttendanceRecord
}

// Open loads both collections from kv. Malformed blobs load as empty
// collections; an unreachable medium is an error.
func Open(ctx context.Context, kv kvstore.Store, opts ...Option) (*Store, error) {
	s := &Store{
		kv:     kv,
		now:    func() time.Time { return time.Now().UTC() },
		newID:  uuid.NewString,
		logger: zap.L().Named("recordstore"),
	}
	for _, opt := range opts {
		opt(s)
	}

	employees, err := loadBlob[domain.Employee](ctx, kv, EmployeesKey, s.logger)
	if err != nil {
		return nil, err
	}
	records, err := loadBlob[domain.AttendanceRecord](ctx, kv, RecordsKey, s.logger)
	if err != nil {
		return nil, err
	}
	s.employees = employees
	s.records = records

	s.logger.Info("record store loaded",
		zap.Int("employees", len(employees)),
		zap.Int("records", len(records)),
	)
	return s, nil
}

func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Employees: clone(s.employees),
		Records:   clone(s.records),
	}
}

func loadBlob[T any](ctx context.Context, kv kvstore.Store, key string, logger *zap.Logger) ([]T, error) {
	raw, ok, err := kv.Get(ctx, key)
	if err != nil {
		logger.Error("load blob failed", zap.String("key", key), zap.Error(err))
		return nil, storageError(err)
	}
	if !ok || len(raw) == 0 {
		return []T{}, nil
	}

	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		logger.Warn("malformed blob, loading empty collection",
			zap.String("key", key),
			zap.Error(err),
		)
		return []T{}, nil
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

// persist writes the given collections in one atomic batch. A nil pointer
// leaves that collection untouched.
func (s *Store) persist(ctx context.Context, employees *[]domain.Employee, records *[]domain.AttendanceRecord) error {
	entries := make(map[string][]byte, 2)
	if employees != nil {
		b, err := json.Marshal(*employees)
		if err != nil {
			return err
		}
		entries[EmployeesKey] = b
	}
	if records != nil {
		b, err := json.Marshal(*records)
		if err != nil {
			return err
		}
		entries[RecordsKey] = b
	}

	if err := s.kv.PutMany(ctx, entries); err != nil {
		s.logger.Error("persist failed", zap.Error(err))
		return storageError(err)
	}
	return nil
}

func storageError(err error) error {
	if errors.Is(err, kvstore.ErrQuotaExceeded) {
		return apperror.With(apperror.ErrStorageQuota, err)
	}
	return apperror.With(apperror.ErrStorageUnavailable, err)
}

func clone[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}
