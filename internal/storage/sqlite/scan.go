package sqlite

import (
	"database/sql"
	"fmt"

	"card-fraud-system/internal/models"

	"github.com/shopspring/decimal"
)

type rowScanner interface {
	Scan(dest ...any) error
}

const cardColumns = `id, card_number, expiration_date, status, customer_id, card_type,
	daily_limit, monthly_limit, interest_rate, available_balance, created_at`

const operationColumns = `id, operation_date, amount, operation_type, location, card_id`

const alertColumns = `id, description, level, card_id, created_at`

func nullDecimal(d decimal.Decimal) sql.NullString {
	return sql.NullString{String: d.String(), Valid: true}
}

func parseNullDecimal(column string, ns sql.NullString) (decimal.Decimal, error) {
	if !ns.Valid {
		return decimal.Zero, fmt.Errorf("column %s is NULL", column)
	}
	d, err := decimal.NewFromString(ns.String)
	if err != nil {
		return decimal.Zero, fmt.Errorf("column %s: %w", column, err)
	}
	return d, nil
}

// variantColumns раскладывает вариант карты по колонкам таблицы cards
func variantColumns(v models.CardVariant) (cardType string, daily, monthly, rate, balance sql.NullString, err error) {
	switch v := v.(type) {
	case models.DebitVariant:
		return string(models.CardTypeDebit), nullDecimal(v.DailyLimit), monthly, rate, balance, nil
	case models.CreditVariant:
		return string(models.CardTypeCredit), daily, nullDecimal(v.MonthlyLimit), nullDecimal(v.InterestRate), balance, nil
	case models.PrepaidVariant:
		return string(models.CardTypePrepaid), daily, monthly, rate, nullDecimal(v.AvailableBalance), nil
	}
	return "", daily, monthly, rate, balance, fmt.Errorf("unsupported card variant %T", v)
}

func scanCard(row rowScanner) (*models.Card, error) {
	var (
		card                          models.Card
		cardType                      string
		daily, monthly, rate, balance sql.NullString
	)
	err := row.Scan(
		&card.ID, &card.CardNumber, &card.ExpirationDate, &card.Status, &card.CustomerID, &cardType,
		&daily, &monthly, &rate, &balance, &card.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	switch models.CardType(cardType) {
	case models.CardTypeDebit:
		limit, err := parseNullDecimal("daily_limit", daily)
		if err != nil {
			return nil, err
		}
		card.Variant = models.DebitVariant{DailyLimit: limit}
	case models.CardTypeCredit:
		limit, err := parseNullDecimal("monthly_limit", monthly)
		if err != nil {
			return nil, err
		}
		interest, err := parseNullDecimal("interest_rate", rate)
		if err != nil {
			return nil, err
		}
		card.Variant = models.CreditVariant{MonthlyLimit: limit, InterestRate: interest}
	case models.CardTypePrepaid:
		available, err := parseNullDecimal("available_balance", balance)
		if err != nil {
			return nil, err
		}
		card.Variant = models.PrepaidVariant{AvailableBalance: available}
	}
	// Неизвестный тип оставляет Variant пустым: такую карту отклонит проверка лимита

	return &card, nil
}

func scanOperation(row rowScanner) (*models.CardOperation, error) {
	var (
		op     models.CardOperation
		amount string
	)
	if err := row.Scan(&op.ID, &op.OperationDate, &amount, &op.Type, &op.Location, &op.CardID); err != nil {
		return nil, err
	}
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("operation %s amount: %w", op.ID, err)
	}
	op.Amount = d
	return &op, nil
}

func scanAlert(row rowScanner) (*models.FraudAlert, error) {
	var alert models.FraudAlert
	if err := row.Scan(&alert.ID, &alert.Description, &alert.Level, &alert.CardID, &alert.CreatedAt); err != nil {
		return nil, err
	}
	return &alert, nil
}

func collectOperations(rows *sql.Rows) ([]*models.CardOperation, error) {
	defer rows.Close()

	var operations []*models.CardOperation
	for rows.Next() {
		op, err := scanOperation(rows)
		if err != nil {
			return nil, err
		}
		operations = append(operations, op)
	}
	return operations, rows.Err()
}

func collectAlerts(rows *sql.Rows) ([]*models.FraudAlert, error) {
	defer rows.Close()

	var alerts []*models.FraudAlert
	for rows.Next() {
		alert, err := scanAlert(rows)
		if err != nil {
			return nil, err
		}
		alerts = append(alerts, alert)
	}
	return alerts, rows.Err()
}
