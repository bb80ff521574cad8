package database

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// NewRedis connects to the signal broker. An empty address disables it and
// returns a nil client, which the signal service treats as a no-op.
func NewRedis(ctx context.Context, addr string, password string, db int) (*redis.Client, error) {
	if addr == "" {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, errors.Wrapf(err, "redis ping %s", addr)
	}

	return client, nil
}
