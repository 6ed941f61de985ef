package connection

import (
	"context"
	"fmt"

	"github.com/vivek068790/Employee-Register-App/internal/kvstore"
	"github.com/vivek068790/Employee-Register-App/internal/kvstore/memory"
	kvpostgres "github.com/vivek068790/Employee-Register-App/internal/kvstore/postgres"
	kvredis "github.com/vivek068790/Employee-Register-App/internal/kvstore/redis"
	"github.com/vivek068790/Employee-Register-App/internal/kvstore/sqlite"
	"github.com/vivek068790/Employee-Register-App/internal/shared/config"

	"go.uber.org/zap"
)

// OpenKV opens the key-value medium selected by STORE_DRIVER. The caller
// owns the returned store and must Close it.
func OpenKV(ctx context.Context, cfg config.Config) (kvstore.Store, error) {
	log := zap.L().Named("connection.kv")

	switch cfg.Store.Driver {
	case config.DriverMemory:
		log.Warn("using in-memory store, data is lost on restart")
		return memory.New(), nil

	case config.DriverSQLite:
		store, err := sqlite.Open(cfg.Store.SQLitePath)
		if err != nil {
			return nil, err
		}
		log.Info("sqlite store opened", zap.String("path", cfg.Store.SQLitePath))
		return store, nil

	case config.DriverRedis:
		rdb, err := ConnectRedisWithRetry(cfg.Store.RedisAddr, cfg.ConnectRetries)
		if err != nil {
			return nil, err
		}
		return kvredis.New(rdb, cfg.Store.RedisPrefix), nil

	case config.DriverPostgres:
		db, err := ConnectGORMWithRetry(cfg.DB, cfg.ConnectRetries)
		if err != nil {
			return nil, err
		}
		store := kvpostgres.New(db)
		if err := store.Migrate(ctx); err != nil {
			_ = store.Close()
			return nil, fmt.Errorf("migrate kv table: %w", err)
		}
		return store, nil
	}

	return nil, fmt.Errorf("unsupported store driver %q", cfg.Store.Driver)
}
