// Package redis stores blobs in Redis. Multi-key writes go through
// MULTI/EXEC so readers never see half of a cascade.
package redis

import (
	"context"
	"errors"
	"strings"

	"github.com/vivek068790/Employee-Register-App/internal/kvstore"

	goredis "github.com/redis/go-redis/v9"
)

type Store struct {
	rdb    *goredis.Client
	prefix string
}

// New wraps an existing client. prefix is prepended to every key.
func New(rdb *goredis.Client, prefix string) *Store {
	return &Store{rdb: rdb, prefix: prefix}
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	v, err := s.rdb.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, mapError("redis get", err)
	}
	return v, true, nil
}

func (s *Store) PutMany(ctx context.Context, entries map[string][]byte) error {
	if len(entries) == 0 {
		return nil
	}
	_, err := s.rdb.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		for _, k := range kvstore.SortedKeys(entries) {
			pipe.Set(ctx, s.prefix+k, string(entries[k]), 0)
		}
		return nil
	})
	if err != nil {
		return mapError("redis put", err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.rdb.Close()
}

// mapError classifies a Redis failure. Under maxmemory with noeviction a
// plain SET answers OOM, but inside MULTI the SET is refused at queue time
// and go-redis only reports the EXECABORT of the whole transaction. The
// SETs queued here always have valid arguments, so EXECABORT means OOM.
func mapError(op string, err error) error {
	msg := err.Error()
	if strings.HasPrefix(msg, "OOM") || strings.HasPrefix(msg, "EXECABORT") {
		return kvstore.QuotaExceeded(op, err)
	}
	return kvstore.Unavailable(op, err)
}
