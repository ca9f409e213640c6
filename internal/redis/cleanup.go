package redis

import (
	"context"
	"fmt"
)

// ClearCardData очищает кэш статусов и счетчики (блокировки не трогаем)
func (c *Client) ClearCardData(ctx context.Context) error {
	patterns := []string{
		"card:*",
		alertStatsPrefix + "*",
	}

	for _, pattern := range patterns {
		iter := c.rdb.Scan(ctx, 0, pattern, 0).Iterator()
		for iter.Next(ctx) {
			if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
				return fmt.Errorf("failed to delete %s: %w", iter.Val(), err)
			}
		}
		if err := iter.Err(); err != nil {
			return fmt.Errorf("failed to clear pattern %s: %w", pattern, err)
		}
	}

	return nil
}
