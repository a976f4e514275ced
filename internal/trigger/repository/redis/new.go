package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"victoriaos-connector/internal/trigger/repository"
	"victoriaos-connector/pkg/log"
)

const defaultPrefix = "victoriaos:trigger:"

// Client is the subset of the redis client the store uses.
type Client interface {
	Get(ctx context.Context, key string) *goredis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *goredis.StatusCmd
	Del(ctx context.Context, keys ...string) *goredis.IntCmd
	Ping(ctx context.Context) *goredis.StatusCmd
	Close() error
}

type implRepository struct {
	client Client
	prefix string
	l      log.Logger
}

// New connects to redis and returns a Store.
func New(ctx context.Context, opt repository.RedisOptions, l log.Logger) (repository.Store, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     opt.Addr,
		Password: opt.Password,
		DB:       opt.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", opt.Addr, err)
	}
	return NewWithClient(client, opt.Prefix, l), nil
}

// NewWithClient wraps an existing client.
func NewWithClient(client Client, prefix string, l log.Logger) repository.Store {
	if client == nil {
		panic("trigger/repository/redis: client is required")
	}
	if prefix == "" {
		prefix = defaultPrefix
	}
	if l == nil {
		l = log.NewNop()
	}
	return &implRepository{client: client, prefix: prefix, l: l}
}

func (r *implRepository) key(scopeID string) string {
	return r.prefix + scopeID
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("trigger/repository/redis.%s", method)
}

func (r *implRepository) Get(ctx context.Context, scopeID string) (string, error) {
	if scopeID == "" {
		return "", repository.ErrEmptyScope
	}
	id, err := r.client.Get(ctx, r.key(scopeID)).Result()
	if errors.Is(err, goredis.Nil) {
		return "", nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Get"), err)
		return "", fmt.Errorf("%w: %v", repository.ErrFailedToGet, err)
	}
	return id, nil
}

func (r *implRepository) Set(ctx context.Context, scopeID, webhookID string) error {
	if err := repository.CheckArgs(scopeID, webhookID); err != nil {
		return err
	}
	if err := r.client.Set(ctx, r.key(scopeID), webhookID, 0).Err(); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Set"), err)
		return fmt.Errorf("%w: %v", repository.ErrFailedToSet, err)
	}
	return nil
}

func (r *implRepository) Clear(ctx context.Context, scopeID string) error {
	if scopeID == "" {
		return repository.ErrEmptyScope
	}
	if err := r.client.Del(ctx, r.key(scopeID)).Err(); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Clear"), err)
		return fmt.Errorf("%w: %v", repository.ErrFailedToClear, err)
	}
	return nil
}

func (r *implRepository) Close() error {
	return r.client.Close()
}
