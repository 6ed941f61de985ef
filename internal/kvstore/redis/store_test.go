package redis

import (
	"context"
	"errors"
	"testing"

	"github.com/vivek068790/Employee-Register-App/internal/kvstore"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("hit", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		s := New(rdb, "app:")

		mock.ExpectGet("app:attendance_employees").SetVal(`[]`)

		v, ok, err := s.Get(ctx, "attendance_employees")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, []byte(`[]`), v)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("miss", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		s := New(rdb, "")

		mock.ExpectGet("attendance_records").RedisNil()

		v, ok, err := s.Get(ctx, "attendance_records")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, v)
	})

	t.Run("connection error", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		s := New(rdb, "")

		mock.ExpectGet("attendance_records").SetErr(errors.New("dial tcp: connection refused"))

		_, _, err := s.Get(ctx, "attendance_records")
		assert.True(t, errors.Is(err, kvstore.ErrUnavailable))
	})
}

func TestStore_PutMany(t *testing.T) {
	ctx := context.Background()

	t.Run("writes sorted keys in one transaction", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		s := New(rdb, "")

		mock.ExpectTxPipeline()
		mock.ExpectSet("attendance_employees", "[]", 0).SetVal("OK")
		mock.ExpectSet("attendance_records", "[1]", 0).SetVal("OK")
		mock.ExpectTxPipelineExec()

		err := s.PutMany(ctx, map[string][]byte{
			"attendance_records":   []byte("[1]"),
			"attendance_employees": []byte("[]"),
		})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("oom maps to quota", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		s := New(rdb, "")

		mock.ExpectTxPipeline()
		mock.ExpectSet("k", "v", 0).SetErr(errors.New("OOM command not allowed when used memory > 'maxmemory'"))
		mock.ExpectTxPipelineExec()

		err := s.PutMany(ctx, map[string][]byte{"k": []byte("v")})
		assert.True(t, errors.Is(err, kvstore.ErrQuotaExceeded))
	})

	t.Run("aborted transaction maps to quota", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		s := New(rdb, "app:")

		mock.ExpectTxPipeline()
		mock.ExpectSet("app:attendance_records", "[]", 0).SetErr(errors.New("EXECABORT Transaction discarded because of previous errors."))
		mock.ExpectTxPipelineExec()

		err := s.PutMany(ctx, map[string][]byte{"attendance_records": []byte("[]")})
		assert.True(t, errors.Is(err, kvstore.ErrQuotaExceeded))
		assert.False(t, errors.Is(err, kvstore.ErrUnavailable))
	})

	t.Run("empty batch is a no-op", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		s := New(rdb, "")

		assert.NoError(t, s.PutMany(ctx, nil))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMapError(t *testing.T) {
	cases := []struct {
		name  string
		err   error
		quota bool
	}{
		{"oom on plain write", errors.New("OOM command not allowed when used memory > 'maxmemory'."), true},
		{"oom inside multi", errors.New("EXECABORT Transaction discarded because of previous errors."), true},
		{"connection refused", errors.New("dial tcp 127.0.0.1:6379: connect: connection refused"), false},
		{"readonly replica", errors.New("READONLY You can't write against a read only replica."), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := mapError("redis put", tc.err)
			assert.Equal(t, tc.quota, errors.Is(err, kvstore.ErrQuotaExceeded))
			assert.Equal(t, !tc.quota, errors.Is(err, kvstore.ErrUnavailable))
		})
	}
}
