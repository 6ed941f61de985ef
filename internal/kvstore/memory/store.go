// Package memory is an in-process kvstore backend. It mirrors browser
// local storage, including an optional byte quota.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/vivek068790/Employee-Register-App/internal/kvstore"
)

type Option func(*Store)

// WithQuota caps the total size of keys plus values in bytes. Zero means
// unlimited.
func WithQuota(bytes int) Option {
	return func(s *Store) { s.quota = bytes }
}

type Store struct {
	mu     sync.RWMutex
	data   map[string][]byte
	quota  int
	closed bool
}

func New(opts ...Option) *Store {
	s := &Store{data: make(map[string][]byte)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, false, kvstore.Unavailable("memory get", fmt.Errorf("store is closed"))
	}
	v, ok := s.data[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

func (s *Store) PutMany(_ context.Context, entries map[string][]byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return kvstore.Unavailable("memory put", fmt.Errorf("store is closed"))
	}

	if s.quota > 0 {
		size := 0
		for k, v := range s.data {
			if _, replaced := entries[k]; replaced {
				continue
			}
			size += len(k) + len(v)
		}
		for k, v := range entries {
			size += len(k) + len(v)
		}
		if size > s.quota {
			return kvstore.QuotaExceeded("memory put", fmt.Errorf("%d bytes exceeds quota of %d", size, s.quota))
		}
	}

	for k, v := range entries {
		cp := make([]byte, len(v))
		copy(cp, v)
		s.data[k] = cp
	}
	return nil
}

func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}
