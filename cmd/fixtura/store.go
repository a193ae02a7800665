package main

import (
	"context"
	"fmt"
	"time"

	"github.com/aretw0/fixtura/pkg/adapters/memory"
	"github.com/aretw0/fixtura/pkg/adapters/redis"
	"github.com/aretw0/fixtura/pkg/ports"
)

// openStore returns the redis store when an address is configured,
// otherwise an in-memory one. The returned close func is never nil.
func openStore(ctx context.Context) (ports.SchemaStore, func() error, error) {
	if cfg.Redis.Addr == "" {
		logger.Debug("Using in-memory schema store")
		return memory.NewStore(), func() error { return nil }, nil
	}

	store := redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB,
		redis.WithPrefix(cfg.Redis.Prefix),
		redis.WithTTL(time.Duration(cfg.Redis.TTL)),
	)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := store.Ping(pingCtx); err != nil {
		_ = store.Close()
		return nil, nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Redis.Addr, err)
	}

	logger.Info("Using redis schema store", "addr", cfg.Redis.Addr, "prefix", cfg.Redis.Prefix)
	return store, store.Close, nil
}

func applyRedisFlag(flagValue string, changed bool) {
	if changed {
		cfg.Redis.Addr = flagValue
	}
}
