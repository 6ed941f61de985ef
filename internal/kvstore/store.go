// Package kvstore defines the key-value medium the record store persists its
// blobs to. Backends live in subpackages.
package kvstore

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrUnavailable reports that the medium could not be reached or failed
	// the operation.
	ErrUnavailable = errors.New("kvstore: storage unavailable")
	// ErrQuotaExceeded reports that the medium refused a write for lack of
	// space.
	ErrQuotaExceeded = errors.New("kvstore: storage quota exceeded")
)

//go:generate mockgen -source=store.go -destination=mock/store_mock.go -package=mock
type Store interface {
	// Get returns the value under key. A missing key is (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// PutMany writes every entry or none of them.
	PutMany(ctx context.Context, entries map[string][]byte) error
	Close() error
}

// Unavailable wraps cause so that errors.Is(err, ErrUnavailable) holds.
func Unavailable(op string, cause error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrUnavailable, cause)
}

// QuotaExceeded wraps cause so that errors.Is(err, ErrQuotaExceeded) holds.
func QuotaExceeded(op string, cause error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrQuotaExceeded, cause)
}
