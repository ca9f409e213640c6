package redis

import (
	"context"
	"fmt"

	"card-fraud-system/internal/models"

	redisv9 "github.com/redis/go-redis/v9"
)

func cardStatusKey(cardID string) string {
	return fmt.Sprintf("card:%s:status", cardID)
}

// CacheCardStatus сохраняет статус карты в кэше с TTL
func (c *Client) CacheCardStatus(ctx context.Context, cardID string, status models.CardStatus) error {
	return c.rdb.Set(ctx, cardStatusKey(cardID), string(status), c.statusTTL).Err()
}

// GetCachedCardStatus получает статус карты из кэша, пустая строка - промах кэша
func (c *Client) GetCachedCardStatus(ctx context.Context, cardID string) (models.CardStatus, error) {
	status, err := c.rdb.Get(ctx, cardStatusKey(cardID)).Result()
	if err == redisv9.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get card status: %w", err)
	}
	return models.CardStatus(status), nil
}

// InvalidateCardStatus удаляет статус карты из кэша
func (c *Client) InvalidateCardStatus(ctx context.Context, cardID string) error {
	return c.rdb.Del(ctx, cardStatusKey(cardID)).Err()
}
