package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vivek068790/Employee-Register-App/internal/kvstore"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return New(gormDB), mock
}

func TestStore_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("hit", func(t *testing.T) {
		s, mock := setupStore(t)
		rows := sqlmock.NewRows([]string{"key", "value", "updated_at"}).
			AddRow("attendance_employees", []byte(`[]`), time.Now())
		mock.ExpectQuery(`SELECT \* FROM "kv_entries"`).WillReturnRows(rows)

		v, ok, err := s.Get(ctx, "attendance_employees")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, []byte(`[]`), v)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("miss", func(t *testing.T) {
		s, mock := setupStore(t)
		mock.ExpectQuery(`SELECT \* FROM "kv_entries"`).
			WillReturnRows(sqlmock.NewRows([]string{"key", "value", "updated_at"}))

		v, ok, err := s.Get(ctx, "attendance_records")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, v)
	})

	t.Run("driver error", func(t *testing.T) {
		s, mock := setupStore(t)
		mock.ExpectQuery(`SELECT \* FROM "kv_entries"`).WillReturnError(errors.New("conn reset"))

		_, _, err := s.Get(ctx, "attendance_records")
		assert.True(t, errors.Is(err, kvstore.ErrUnavailable))
	})
}

func TestStore_PutMany(t *testing.T) {
	ctx := context.Background()

	t.Run("commits every key", func(t *testing.T) {
		s, mock := setupStore(t)
		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO "kv_entries"`).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`INSERT INTO "kv_entries"`).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := s.PutMany(ctx, map[string][]byte{
			"attendance_employees": []byte(`[]`),
			"attendance_records":   []byte(`[]`),
		})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("second write fails -> rollback", func(t *testing.T) {
		s, mock := setupStore(t)
		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO "kv_entries"`).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`INSERT INTO "kv_entries"`).WillReturnError(&pgconn.PgError{Code: "53100", Message: "could not extend file"})
		mock.ExpectRollback()

		err := s.PutMany(ctx, map[string][]byte{
			"attendance_employees": []byte(`[]`),
			"attendance_records":   []byte(`[]`),
		})
		assert.True(t, errors.Is(err, kvstore.ErrQuotaExceeded))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
