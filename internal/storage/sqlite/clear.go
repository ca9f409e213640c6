package sqlite

import "context"

// ClearAll удаляет все данные из БД с учетом внешних ключей
func (s *SQLiteStorage) ClearAll(ctx context.Context) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range []string{"fraud_alerts", "card_operations", "cards", "customers"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return err
		}
	}

	return tx.Commit()
}
