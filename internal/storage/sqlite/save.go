package sqlite

import (
	"context"
	"time"

	"card-fraud-system/internal/models"

	"github.com/google/uuid"
)

// SaveCustomer сохраняет клиента
func (s *SQLiteStorage) SaveCustomer(ctx context.Context, customer *models.Customer) error {
	query := `
		INSERT INTO customers (id, name, email, phone, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	return withWriteRetry(ctx, func() error {
		_, err := s.DB.ExecContext(ctx, query,
			customer.ID, customer.Name, customer.Email, customer.Phone, customer.CreatedAt.UTC(),
		)
		return err
	})
}

// SaveCard сохраняет новую карту вместе с параметрами её варианта
func (s *SQLiteStorage) SaveCard(ctx context.Context, card *models.Card) error {
	cardType, daily, monthly, rate, balance, err := variantColumns(card.Variant)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO cards (
			id, card_number, expiration_date, status, customer_id, card_type,
			daily_limit, monthly_limit, interest_rate, available_balance, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	now := time.Now().UTC()
	return withWriteRetry(ctx, func() error {
		_, err := s.DB.ExecContext(ctx, query,
			card.ID, card.CardNumber, card.ExpirationDate.UTC(), string(card.Status), card.CustomerID, cardType,
			daily, monthly, rate, balance, card.CreatedAt.UTC(), now,
		)
		return err
	})
}

// AppendOperation добавляет операцию в журнал
func (s *SQLiteStorage) AppendOperation(ctx context.Context, op *models.CardOperation) (*models.CardOperation, error) {
	saved := *op
	if saved.ID == "" {
		saved.ID = "op_" + uuid.New().String()
	}

	query := `
		INSERT INTO card_operations (id, card_id, operation_date, amount, operation_type, location)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	err := withWriteRetry(ctx, func() error {
		_, err := s.DB.ExecContext(ctx, query,
			saved.ID, saved.CardID, saved.OperationDate.UTC(), saved.Amount.String(), string(saved.Type), saved.Location,
		)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &saved, nil
}

// SaveAlert сохраняет оповещение и назначает ему id
func (s *SQLiteStorage) SaveAlert(ctx context.Context, alert *models.FraudAlert) (*models.FraudAlert, error) {
	saved := *alert
	if saved.ID == "" {
		saved.ID = "alert_" + uuid.New().String()
	}
	if saved.CreatedAt.IsZero() {
		saved.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO fraud_alerts (id, card_id, description, level, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	err := withWriteRetry(ctx, func() error {
		_, err := s.DB.ExecContext(ctx, query,
			saved.ID, saved.CardID, saved.Description, string(saved.Level), saved.CreatedAt.UTC(),
		)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &saved, nil
}
