package connection

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/vivek068790/Employee-Register-App/internal/kvstore/memory"
	"github.com/vivek068790/Employee-Register-App/internal/kvstore/sqlite"
	"github.com/vivek068790/Employee-Register-App/internal/shared/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenKV(t *testing.T) {
	ctx := context.Background()

	t.Run("memory", func(t *testing.T) {
		store, err := OpenKV(ctx, config.Config{Store: config.StoreConfig{Driver: config.DriverMemory}})
		require.NoError(t, err)
		defer store.Close()
		assert.IsType(t, &memory.Store{}, store)
	})

	t.Run("sqlite", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "kv.db")
		store, err := OpenKV(ctx, config.Config{Store: config.StoreConfig{Driver: config.DriverSQLite, SQLitePath: path}})
		require.NoError(t, err)
		defer store.Close()
		assert.IsType(t, &sqlite.Store{}, store)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := OpenKV(ctx, config.Config{Store: config.StoreConfig{Driver: "floppy"}})
		assert.Error(t, err)
	})
}
