package redis

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"card-fraud-system/internal/locker"

	"github.com/google/uuid"
	redisv9 "github.com/redis/go-redis/v9"
)

// Снимаем блокировку, только если она все еще принадлежит нам
var releaseLockScript = redisv9.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Продлеваем TTL, только если блокировка все еще принадлежит нам
var renewLockScript = redisv9.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("PEXPIRE", KEYS[1], ARGV[2])
end
return 0
`)

const lockPollInterval = 50 * time.Millisecond

// CardLock - распределенная блокировка по id карты, общая для card-service
// и fraud-detection-service. Пока блокировка удерживается, ее TTL продлевается
// каждые ttl/3, поэтому TTL ограничивает только время жизни после падения владельца.
type CardLock struct {
	rdb *redisv9.Client
	ttl time.Duration
}

var _ locker.CardLocker = (*CardLock)(nil)

// CardLock возвращает распределенную блокировку поверх этого подключения
func (c *Client) CardLock() *CardLock {
	return &CardLock{rdb: c.rdb, ttl: c.lockTTL}
}

func cardLockKey(cardID string) string {
	return fmt.Sprintf("lock:card:%s", cardID)
}

func (l *CardLock) Lock(ctx context.Context, cardID string) (func(), error) {
	key := cardLockKey(cardID)
	token := uuid.New().String()

	for {
		acquired, err := l.rdb.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to acquire card lock: %w", err)
		}
		if acquired {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(lockPollInterval):
		}
	}

	stop := make(chan struct{})
	done := make(chan struct{})
	go l.renew(key, token, stop, done)

	var once sync.Once
	return func() {
		once.Do(func() {
			close(stop)
			<-done
			if err := releaseLockScript.Run(context.Background(), l.rdb, []string{key}, token).Err(); err != nil {
				log.Printf("Error releasing lock for card %s: %v", cardID, err)
			}
		})
	}, nil
}

// renew продлевает TTL до закрытия stop или до потери владения
func (l *CardLock) renew(key, token string, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(l.ttl / 3)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			owned, err := renewLockScript.Run(context.Background(), l.rdb, []string{key}, token, l.ttl.Milliseconds()).Int()
			if err != nil {
				log.Printf("Error renewing lock %s: %v", key, err)
				continue
			}
			if owned == 0 {
				log.Printf("Lock %s lost before release", key)
				return
			}
		}
	}
}
