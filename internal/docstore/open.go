package docstore

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sysu-ecnc-dev/sprint-planner/backend/internal/config"
)

// Open connects the store selected by cfg.Store.Driver and makes sure it is usable.
func Open(cfg *config.Config) (Store, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverFile:
		return NewFileStore(cfg.Store.DataDir)
	case config.StoreDriverPostgres:
		return openSQL(cfg, DialectPostgres)
	case config.StoreDriverSQLite:
		return openSQL(cfg, DialectSQLite)
	case config.StoreDriverRedis:
		return openRedis(cfg)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}

func openSQL(cfg *config.Config, dialect Dialect) (Store, error) {
	db, err := sql.Open(string(dialect), cfg.Database.DSN)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	// sql.Open does not connect
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	store := NewSQLStore(db, dialect)
	if err := store.Migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

func openRedis(cfg *config.Config) (Store, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Redis.ConnectTimeout)*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return NewRedisStore(rdb, cfg.Redis.KeyPrefix), nil
}
