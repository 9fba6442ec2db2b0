package db

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// ConnectRedis opens a Redis client and verifies the connection with a
// ping. The caller owns the client and must Close it on shutdown.
func ConnectRedis(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}
	return client, nil
}
