package sqlite

import (
	"context"
	"time"

	"card-fraud-system/internal/models"
)

// SetStatus меняет статус карты. Повторная установка того же статуса допустима.
func (s *SQLiteStorage) SetStatus(ctx context.Context, cardID string, status models.CardStatus) (bool, error) {
	query := `
		UPDATE cards
		SET status = ?,
		    updated_at = ?
		WHERE id = ?
	`

	var affected int64
	err := withWriteRetry(ctx, func() error {
		result, err := s.DB.ExecContext(ctx, query, string(status), time.Now().UTC(), cardID)
		if err != nil {
			return err
		}
		affected, err = result.RowsAffected()
		return err
	})
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

// DeleteAlert удаляет оповещение по id
func (s *SQLiteStorage) DeleteAlert(ctx context.Context, alertID string) (bool, error) {
	result, err := s.DB.ExecContext(ctx, `DELETE FROM fraud_alerts WHERE id = ?`, alertID)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
