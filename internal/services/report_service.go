package services

import (
	"context"
	"time"

	"card-fraud-system/internal/models"
	"card-fraud-system/internal/storage"
)

const (
	topCardsLimit     = 5
	topLocationsLimit = 10
	maxSummaryDays    = 366
)

// ReportServiceImpl реализует интерфейс ReportService
type ReportServiceImpl struct {
	reports storage.ReportRepository
	now     func() time.Time
}

func NewReportService(reports storage.ReportRepository) ReportService {
	return &ReportServiceImpl{
		reports: reports,
		now:     time.Now,
	}
}

func (s *ReportServiceImpl) TopCards(ctx context.Context) ([]*models.CardUsage, error) {
	return s.reports.TopCardsByUsage(ctx, topCardsLimit)
}

func (s *ReportServiceImpl) MonthlyTotals(ctx context.Context, year int, month int) ([]*models.TypeTotal, error) {
	if month < 1 || month > 12 || year < 1 {
		return nil, ErrInvalidReportRange
	}
	return s.reports.MonthlyTotalsByType(ctx, year, time.Month(month))
}

func (s *ReportServiceImpl) StatusDistribution(ctx context.Context) ([]*models.StatusCount, error) {
	return s.reports.CardStatusDistribution(ctx)
}

// DailySummary строит сводку за последние days дней, включая сегодняшний
func (s *ReportServiceImpl) DailySummary(ctx context.Context, days int) ([]*models.DailySummary, error) {
	if days < 1 || days > maxSummaryDays {
		return nil, ErrInvalidReportRange
	}
	now := s.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return s.reports.DailySummary(ctx, today.AddDate(0, 0, -(days-1)))
}

func (s *ReportServiceImpl) TopLocations(ctx context.Context) ([]*models.LocationActivity, error) {
	return s.reports.TopLocations(ctx, topLocationsLimit)
}

func (s *ReportServiceImpl) AverageByCardType(ctx context.Context) ([]*models.CardTypeAverage, error) {
	return s.reports.AverageAmountByCardType(ctx)
}
