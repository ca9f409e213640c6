package redis

import (
	"context"
	"fmt"
	"time"

	"card-fraud-system/config"

	redisv9 "github.com/redis/go-redis/v9"
)

type Client struct {
	rdb       *redisv9.Client
	statusTTL time.Duration
	lockTTL   time.Duration
}

// NewClient создает новое подключение к Redis
func NewClient(cfg *config.Config) (*Client, error) {
	rdb := redisv9.NewClient(&redisv9.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{
		rdb:       rdb,
		statusTTL: secondsOrDefault(cfg.Redis.StatusTTLSeconds, 5*time.Minute),
		lockTTL:   secondsOrDefault(cfg.Redis.LockTTLSeconds, 10*time.Second),
	}, nil
}

// Close закрывает соединение с Redis
func (c *Client) Close() error {
	return c.rdb.Close()
}

func secondsOrDefault(seconds int, def time.Duration) time.Duration {
	if seconds <= 0 {
		return def
	}
	return time.Duration(seconds) * time.Second
}
