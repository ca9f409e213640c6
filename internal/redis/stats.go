package redis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"card-fraud-system/internal/models"

	redisv9 "github.com/redis/go-redis/v9"
)

const alertStatsPrefix = "alert_stats:"

func cardAlertCountKey(cardID string) string {
	return fmt.Sprintf("card:%s:alerts:daily:count", cardID)
}

// IncrementAlertStats увеличивает счетчик оповещений уровня level
func (c *Client) IncrementAlertStats(ctx context.Context, level models.AlertLevel) error {
	return c.rdb.Incr(ctx, alertStatsPrefix+string(level)).Err()
}

// IncrementCardAlertCount увеличивает счетчик оповещений по карте за сутки
func (c *Client) IncrementCardAlertCount(ctx context.Context, cardID string) error {
	key := cardAlertCountKey(cardID)
	pipe := c.rdb.Pipeline()
	pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, 24*time.Hour)
	_, err := pipe.Exec(ctx)
	return err
}

// GetCardAlertCount получает количество оповещений по карте за сутки
func (c *Client) GetCardAlertCount(ctx context.Context, cardID string) (int64, error) {
	count, err := c.rdb.Get(ctx, cardAlertCountKey(cardID)).Int64()
	if err == redisv9.Nil {
		return 0, nil
	}
	return count, err
}

// GetAlertStats получает счетчики оповещений по всем уровням
func (c *Client) GetAlertStats(ctx context.Context) (map[string]int64, error) {
	stats := make(map[string]int64)
	for _, level := range []models.AlertLevel{models.AlertLevelWarning, models.AlertLevelCritical} {
		count, err := c.rdb.Get(ctx, alertStatsPrefix+string(level)).Int64()
		if err == redisv9.Nil {
			count = 0
		} else if err != nil {
			return nil, fmt.Errorf("failed to get alert stats: %w", err)
		}
		stats[strings.ToLower(string(level))] = count
	}
	return stats, nil
}
