package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"card-fraud-system/internal/models"

	"github.com/shopspring/decimal"
)

// GetCustomer получает клиента по id
func (s *SQLiteStorage) GetCustomer(ctx context.Context, customerID string) (*models.Customer, error) {
	return s.getCustomer(ctx, `SELECT id, name, email, phone, created_at FROM customers WHERE id = ?`, customerID)
}

// FindCustomerByEmail получает клиента по email
func (s *SQLiteStorage) FindCustomerByEmail(ctx context.Context, email string) (*models.Customer, error) {
	return s.getCustomer(ctx, `SELECT id, name, email, phone, created_at FROM customers WHERE email = ?`, email)
}

func (s *SQLiteStorage) getCustomer(ctx context.Context, query string, arg string) (*models.Customer, error) {
	var c models.Customer
	var phone sql.NullString
	err := s.DB.QueryRowContext(ctx, query, arg).Scan(&c.ID, &c.Name, &c.Email, &phone, &c.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	c.Phone = phone.String
	return &c, nil
}

// ListCustomers получает всех клиентов
func (s *SQLiteStorage) ListCustomers(ctx context.Context) ([]*models.Customer, error) {
	rows, err := s.DB.QueryContext(ctx, `SELECT id, name, email, phone, created_at FROM customers ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []*models.Customer
	for rows.Next() {
		var c models.Customer
		var phone sql.NullString
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &phone, &c.CreatedAt); err != nil {
			return nil, err
		}
		c.Phone = phone.String
		customers = append(customers, &c)
	}
	return customers, rows.Err()
}

// GetCard получает карту по id
func (s *SQLiteStorage) GetCard(ctx context.Context, cardID string) (*models.Card, error) {
	query := `SELECT ` + cardColumns + ` FROM cards WHERE id = ?`

	card, err := scanCard(s.DB.QueryRowContext(ctx, query, cardID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return card, nil
}

// ListCardsByCustomer получает карты клиента
func (s *SQLiteStorage) ListCardsByCustomer(ctx context.Context, customerID string) ([]*models.Card, error) {
	query := `SELECT ` + cardColumns + ` FROM cards WHERE customer_id = ? ORDER BY created_at, id`

	rows, err := s.DB.QueryContext(ctx, query, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cards []*models.Card
	for rows.Next() {
		card, err := scanCard(rows)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, rows.Err()
}

// GetOperation получает операцию по id
func (s *SQLiteStorage) GetOperation(ctx context.Context, operationID string) (*models.CardOperation, error) {
	query := `SELECT ` + operationColumns + ` FROM card_operations WHERE id = ?`

	op, err := scanOperation(s.DB.QueryRowContext(ctx, query, operationID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return op, nil
}

// ListOperations получает историю карты, новые операции первыми
func (s *SQLiteStorage) ListOperations(ctx context.Context, cardID string) ([]*models.CardOperation, error) {
	return s.FindOperations(ctx, models.OperationFilter{CardID: cardID})
}

// ListOperationsSince получает историю карты начиная с since
func (s *SQLiteStorage) ListOperationsSince(ctx context.Context, cardID string, since time.Time) ([]*models.CardOperation, error) {
	return s.FindOperations(ctx, models.OperationFilter{CardID: cardID, From: &since})
}

// FindOperations выполняет выборку по фильтру. Границы суммы сравниваются
// в decimal после выборки, так как суммы хранятся строкой.
func (s *SQLiteStorage) FindOperations(ctx context.Context, filter models.OperationFilter) ([]*models.CardOperation, error) {
	var (
		conditions []string
		args       []any
	)
	if filter.CardID != "" {
		conditions = append(conditions, "card_id = ?")
		args = append(args, filter.CardID)
	}
	if filter.Type != "" {
		conditions = append(conditions, "operation_type = ?")
		args = append(args, string(filter.Type))
	}
	if filter.Location != "" {
		conditions = append(conditions, "location = ?")
		args = append(args, filter.Location)
	}
	if filter.From != nil {
		conditions = append(conditions, "operation_date >= ?")
		args = append(args, filter.From.UTC())
	}
	if filter.To != nil {
		conditions = append(conditions, "operation_date <= ?")
		args = append(args, filter.To.UTC())
	}

	query := `SELECT ` + operationColumns + ` FROM card_operations`
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, " AND ")
	}
	query += ` ORDER BY operation_date DESC, rowid DESC`

	amountFiltered := filter.MinAmount != nil || filter.MaxAmount != nil
	if filter.Limit > 0 && !amountFiltered {
		query += ` LIMIT ?`
		args = append(args, filter.Limit)
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	operations, err := collectOperations(rows)
	if err != nil || !amountFiltered {
		return operations, err
	}

	filtered := make([]*models.CardOperation, 0, len(operations))
	for _, op := range operations {
		if filter.MinAmount != nil && op.Amount.LessThan(*filter.MinAmount) {
			continue
		}
		if filter.MaxAmount != nil && op.Amount.GreaterThan(*filter.MaxAmount) {
			continue
		}
		filtered = append(filtered, op)
		if filter.Limit > 0 && len(filtered) == filter.Limit {
			break
		}
	}
	return filtered, nil
}

// TotalAmount считает сумму операций карты за период [from, to]
func (s *SQLiteStorage) TotalAmount(ctx context.Context, cardID string, from, to time.Time) (decimal.Decimal, error) {
	operations, err := s.FindOperations(ctx, models.OperationFilter{CardID: cardID, From: &from, To: &to})
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, op := range operations {
		total = total.Add(op.Amount)
	}
	return total, nil
}

// ListAlerts получает оповещения карты (или все при пустом cardID), новые первыми
func (s *SQLiteStorage) ListAlerts(ctx context.Context, cardID string) ([]*models.FraudAlert, error) {
	query := `SELECT ` + alertColumns + ` FROM fraud_alerts`
	var args []any
	if cardID != "" {
		query += ` WHERE card_id = ?`
		args = append(args, cardID)
	}
	query += ` ORDER BY created_at DESC, rowid DESC`

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return collectAlerts(rows)
}

// ListAlertsByLevel получает оповещения заданного уровня, новые первыми
func (s *SQLiteStorage) ListAlertsByLevel(ctx context.Context, level models.AlertLevel) ([]*models.FraudAlert, error) {
	query := `SELECT ` + alertColumns + ` FROM fraud_alerts WHERE level = ? ORDER BY created_at DESC, rowid DESC`

	rows, err := s.DB.QueryContext(ctx, query, string(level))
	if err != nil {
		return nil, err
	}
	return collectAlerts(rows)
}
