package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"
)

const (
	writeRetries    = 3
	writeRetryDelay = 50 * time.Millisecond
)

// isBusyError проверяет, что запись отклонена из-за блокировки БД (SQLITE_BUSY / SQLITE_LOCKED)
func isBusyError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "database is locked") ||
		strings.Contains(errStr, "SQLITE_BUSY") ||
		strings.Contains(errStr, "SQLITE_LOCKED")
}

// withWriteRetry повторяет запись только при конфликте блокировок, остальные ошибки
// возвращаются сразу и без изменений.
func withWriteRetry(ctx context.Context, write func() error) error {
	var lastErr error
	for attempt := 1; attempt <= writeRetries; attempt++ {
		err := write()
		if err == nil || !isBusyError(err) {
			return err
		}
		lastErr = err

		if attempt == writeRetries {
			break
		}
		select {
		case <-ctx.Done():
			return lastErr
		case <-time.After(writeRetryDelay * time.Duration(attempt)):
		}
	}

	return fmt.Errorf("write failed after %d attempts: %w", writeRetries, lastErr)
}
