package sqlite

import (
	"context"
	"sort"
	"time"

	"card-fraud-system/internal/models"

	"github.com/shopspring/decimal"
)

// TopCardsByUsage возвращает карты с наибольшим числом операций
func (s *SQLiteStorage) TopCardsByUsage(ctx context.Context, limit int) ([]*models.CardUsage, error) {
	query := `
		SELECT c.id, c.card_number, o.amount
		FROM card_operations o
		JOIN cards c ON c.id = o.card_id
	`

	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	usage := make(map[string]*models.CardUsage)
	for rows.Next() {
		var cardID, number, amount string
		if err := rows.Scan(&cardID, &number, &amount); err != nil {
			return nil, err
		}
		d, err := decimal.NewFromString(amount)
		if err != nil {
			return nil, err
		}
		u, ok := usage[cardID]
		if !ok {
			u = &models.CardUsage{CardID: cardID, CardNumber: models.MaskCardNumber(number)}
			usage[cardID] = u
		}
		u.OperationCount++
		u.TotalAmount = u.TotalAmount.Add(d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	result := make([]*models.CardUsage, 0, len(usage))
	for _, u := range usage {
		result = append(result, u)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].OperationCount != result[j].OperationCount {
			return result[i].OperationCount > result[j].OperationCount
		}
		return result[i].CardID < result[j].CardID
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// MonthlyTotalsByType суммирует операции за месяц по типам
func (s *SQLiteStorage) MonthlyTotalsByType(ctx context.Context, year int, month time.Month) ([]*models.TypeTotal, error) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0).Add(-time.Nanosecond)

	operations, err := s.FindOperations(ctx, models.OperationFilter{From: &from, To: &to})
	if err != nil {
		return nil, err
	}

	totals := make(map[models.OperationType]*models.TypeTotal)
	for _, op := range operations {
		t, ok := totals[op.Type]
		if !ok {
			t = &models.TypeTotal{Type: op.Type}
			totals[op.Type] = t
		}
		t.OperationCount++
		t.TotalAmount = t.TotalAmount.Add(op.Amount)
	}

	result := make([]*models.TypeTotal, 0, len(totals))
	for _, opType := range models.OperationTypes {
		if t, ok := totals[opType]; ok {
			result = append(result, t)
		}
	}
	return result, nil
}

// CardStatusDistribution считает карты по статусам
func (s *SQLiteStorage) CardStatusDistribution(ctx context.Context) ([]*models.StatusCount, error) {
	rows, err := s.DB.QueryContext(ctx, `SELECT status, COUNT(*) FROM cards GROUP BY status ORDER BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*models.StatusCount
	for rows.Next() {
		var sc models.StatusCount
		if err := rows.Scan(&sc.Status, &sc.Count); err != nil {
			return nil, err
		}
		result = append(result, &sc)
	}
	return result, rows.Err()
}

// DailySummary группирует операции начиная с since по дням (UTC), последние дни первыми
func (s *SQLiteStorage) DailySummary(ctx context.Context, since time.Time) ([]*models.DailySummary, error) {
	operations, err := s.FindOperations(ctx, models.OperationFilter{From: &since})
	if err != nil {
		return nil, err
	}

	days := make(map[string]*models.DailySummary)
	for _, op := range operations {
		day := op.OperationDate.UTC().Format("2006-01-02")
		d, ok := days[day]
		if !ok {
			d = &models.DailySummary{Day: day}
			days[day] = d
		}
		d.OperationCount++
		d.TotalAmount = d.TotalAmount.Add(op.Amount)
	}

	result := make([]*models.DailySummary, 0, len(days))
	for _, d := range days {
		result = append(result, d)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Day > result[j].Day })
	return result, nil
}

// TopLocations возвращает места с наибольшим числом операций
func (s *SQLiteStorage) TopLocations(ctx context.Context, limit int) ([]*models.LocationActivity, error) {
	query := `
		SELECT location, COUNT(*) AS cnt
		FROM card_operations
		GROUP BY location
		ORDER BY cnt DESC, location
		LIMIT ?
	`

	rows, err := s.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*models.LocationActivity
	for rows.Next() {
		var la models.LocationActivity
		if err := rows.Scan(&la.Location, &la.OperationCount); err != nil {
			return nil, err
		}
		result = append(result, &la)
	}
	return result, rows.Err()
}

// AverageAmountByCardType считает среднюю сумму операции по типу карты
func (s *SQLiteStorage) AverageAmountByCardType(ctx context.Context) ([]*models.CardTypeAverage, error) {
	query := `
		SELECT c.card_type, o.amount
		FROM card_operations o
		JOIN cards c ON c.id = o.card_id
	`

	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	type acc struct {
		count int
		total decimal.Decimal
	}
	byType := make(map[models.CardType]*acc)
	for rows.Next() {
		var cardType models.CardType
		var amount string
		if err := rows.Scan(&cardType, &amount); err != nil {
			return nil, err
		}
		d, err := decimal.NewFromString(amount)
		if err != nil {
			return nil, err
		}
		a, ok := byType[cardType]
		if !ok {
			a = &acc{}
			byType[cardType] = a
		}
		a.count++
		a.total = a.total.Add(d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	var result []*models.CardTypeAverage
	for _, cardType := range []models.CardType{models.CardTypeDebit, models.CardTypeCredit, models.CardTypePrepaid} {
		a, ok := byType[cardType]
		if !ok {
			continue
		}
		result = append(result, &models.CardTypeAverage{
			Type:           cardType,
			OperationCount: a.count,
			AverageAmount:  a.total.Div(decimal.NewFromInt(int64(a.count))).Round(2),
		})
	}
	return result, nil
}
