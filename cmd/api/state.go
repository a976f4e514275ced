package main

import (
	"context"

	"victoriaos-connector/config"
	"victoriaos-connector/internal/trigger/repository"
	"victoriaos-connector/internal/trigger/repository/memory"
	"victoriaos-connector/internal/trigger/repository/redis"
	"victoriaos-connector/internal/trigger/repository/sqlite"
	"victoriaos-connector/pkg/log"
)

// openStore builds the webhook-id store selected by state.driver.
func openStore(ctx context.Context, cfg config.StateConfig, l log.Logger) (repository.Store, error) {
	switch cfg.Driver {
	case repository.DriverRedis:
		return redis.New(ctx, repository.RedisOptions{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			Prefix:   cfg.RedisPrefix,
		}, l)
	case repository.DriverSQLite:
		return sqlite.New(ctx, repository.SQLiteOptions{Path: cfg.SQLitePath}, l)
	case repository.DriverMemory, "":
		return memory.New(), nil
	default:
		return nil, repository.ValidDriver(cfg.Driver)
	}
}
