package redis

import (
	"context"

	"card-fraud-system/internal/models"
)

// ClientInterface определяет интерфейс для работы с Redis
// Это позволяет легко создавать моки для тестирования
type ClientInterface interface {
	// CacheCardStatus сохраняет статус карты в кэше
	CacheCardStatus(ctx context.Context, cardID string, status models.CardStatus) error

	// GetCachedCardStatus получает статус карты из кэша
	GetCachedCardStatus(ctx context.Context, cardID string) (models.CardStatus, error)

	// InvalidateCardStatus удаляет статус карты из кэша
	InvalidateCardStatus(ctx context.Context, cardID string) error

	// IncrementAlertStats увеличивает счетчик оповещений по уровню
	IncrementAlertStats(ctx context.Context, level models.AlertLevel) error

	// IncrementCardAlertCount увеличивает счетчик оповещений по карте за сутки
	IncrementCardAlertCount(ctx context.Context, cardID string) error

	// GetCardAlertCount получает счетчик оповещений по карте за сутки
	GetCardAlertCount(ctx context.Context, cardID string) (int64, error)

	// GetAlertStats получает счетчики оповещений по уровням
	GetAlertStats(ctx context.Context) (map[string]int64, error)

	// ClearCardData очищает кэш и счетчики
	ClearCardData(ctx context.Context) error

	// Close закрывает соединение с Redis
	Close() error
}

// Убеждаемся, что Client реализует ClientInterface
var _ ClientInterface = (*Client)(nil)
