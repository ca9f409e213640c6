package locker

import (
	"context"
	"sync"
)

// CardLocker сериализует проверку лимита, запись операции и детекцию по одной карте.
// Разные карты блокируются независимо.
type CardLocker interface {
	// Lock ждет эксклюзивный доступ к карте. Возвращенную функцию нужно вызвать для освобождения.
	Lock(ctx context.Context, cardID string) (unlock func(), err error)
}

type entry struct {
	slot chan struct{}
	refs int
}

// KeyedMutex - блокировка по id карты внутри одного процесса
type KeyedMutex struct {
	mu    sync.Mutex
	locks map[string]*entry
}

func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{locks: make(map[string]*entry)}
}

func (k *KeyedMutex) Lock(ctx context.Context, cardID string) (func(), error) {
	k.mu.Lock()
	e, ok := k.locks[cardID]
	if !ok {
		e = &entry{slot: make(chan struct{}, 1)}
		k.locks[cardID] = e
	}
	e.refs++
	k.mu.Unlock()

	select {
	case e.slot <- struct{}{}:
	case <-ctx.Done():
		k.release(cardID, e)
		return nil, ctx.Err()
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-e.slot
			k.release(cardID, e)
		})
	}, nil
}

func (k *KeyedMutex) release(cardID string, e *entry) {
	k.mu.Lock()
	defer k.mu.Unlock()

	e.refs--
	if e.refs == 0 {
		delete(k.locks, cardID)
	}
}

// size возвращает число карт с активными или ожидающими блокировками
func (k *KeyedMutex) size() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.locks)
}
