// Package postgres stores blobs in a single kv_entries table through gorm.
package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/vivek068790/Employee-Register-App/internal/kvstore"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Entry struct {
	Key       string    `gorm:"column:key;type:varchar(120);primaryKey"`
	Value     []byte    `gorm:"column:value;type:bytea;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (Entry) TableName() string {
	return "kv_entries"
}

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate creates the kv_entries table when it does not exist.
func (s *Store) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&Entry{}); err != nil {
		return mapError("postgres migrate", err)
	}
	return nil
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var e Entry
	err := s.db.WithContext(ctx).
		Where("key = ?", key).
		Take(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, mapError("postgres get", err)
	}
	return e.Value, true, nil
}

func (s *Store) PutMany(ctx context.Context, entries map[string][]byte) error {
	if len(entries) == 0 {
		return nil
	}
	now := time.Now().UTC()
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, k := range kvstore.SortedKeys(entries) {
			row := Entry{Key: k, Value: entries[k], UpdatedAt: now}
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "key"}},
				DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
			}).Create(&row).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return mapError("postgres put", err)
	}
	return nil
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func mapError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		// disk_full
		case pgErr.Code == "53100":
			return kvstore.QuotaExceeded(op, err)
		// program_limit_exceeded, e.g. value too large for a bytea
		case strings.HasPrefix(pgErr.Code, "54"):
			return kvstore.QuotaExceeded(op, err)
		}
	}
	return kvstore.Unavailable(op, err)
}
