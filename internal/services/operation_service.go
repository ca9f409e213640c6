package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"card-fraud-system/internal/fraud"
	"card-fraud-system/internal/kafka"
	"card-fraud-system/internal/locker"
	"card-fraud-system/internal/logger"
	"card-fraud-system/internal/metrics"
	"card-fraud-system/internal/models"
	"card-fraud-system/internal/storage"

	"github.com/shopspring/decimal"
)

const (
	DetectionCompleted = "completed"
	DetectionQueued    = "queued"
	DetectionNotQueued = "not_queued"

	recentOperationsWindow = 30 * 24 * time.Hour
)

// AdmissionPolicy задает, как проводится операция
type AdmissionPolicy struct {
	// RequireActive отклоняет операции по картам не в статусе ACTIVE
	RequireActive bool
	// AsyncDetection публикует событие операции вместо синхронного запуска правил
	AsyncDetection bool
}

// OperationServiceImpl реализует интерфейс OperationService
type OperationServiceImpl struct {
	cards   storage.CardRegistry
	ledger  storage.OperationLedger
	fraud   FraudService
	locker  locker.CardLocker
	events  eventPublisher
	metrics *metrics.MetricsCollector
	policy  AdmissionPolicy
	now     func() time.Time
}

// NewOperationService создает сервис операций. producer может быть nil только
// при синхронной детекции.
func NewOperationService(
	cards storage.CardRegistry,
	ledger storage.OperationLedger,
	fraudService FraudService,
	cardLocker locker.CardLocker,
	producer kafka.Producer,
	collector *metrics.MetricsCollector,
	policy AdmissionPolicy,
) OperationService {
	return &OperationServiceImpl{
		cards:   cards,
		ledger:  ledger,
		fraud:   fraudService,
		locker:  cardLocker,
		events:  eventPublisher{producer: producer, service: ServiceCardService},
		metrics: collector,
		policy:  policy,
		now:     time.Now,
	}
}

// RecordOperation проводит операцию под блокировкой карты: проверка статуса и лимита,
// запись в журнал и затем детекция (синхронно или через Kafka).
// Если запись прошла, а детекция нет, возвращается ответ вместе с ошибкой.
func (s *OperationServiceImpl) RecordOperation(ctx context.Context, req *models.RecordOperationRequest) (*models.RecordOperationResponse, error) {
	if err := validateOperation(req); err != nil {
		s.reject(req, metrics.RejectInvalid, err)
		return nil, err
	}

	logger.LogEvent(logger.EventOperationReceived, ServiceCardService, logger.ComponentAPI, map[string]interface{}{
		"card_id":  req.CardID,
		"amount":   req.Amount.String(),
		"type":     string(req.Type),
		"location": req.Location,
	})

	unlock, err := s.locker.Lock(ctx, req.CardID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	card, err := s.cards.GetCard(ctx, req.CardID)
	if err != nil {
		return nil, err
	}
	if card == nil {
		s.reject(req, metrics.RejectCardNotFound, ErrCardNotFound)
		return nil, ErrCardNotFound
	}
	if s.policy.RequireActive && card.Status != models.CardStatusActive {
		s.reject(req, metrics.RejectCardNotActive, ErrCardNotActive)
		return nil, ErrCardNotActive
	}
	if !fraud.VerifyLimit(card, req.Amount) {
		s.reject(req, metrics.RejectLimitExceeded, ErrLimitExceeded)
		return nil, ErrLimitExceeded
	}

	opDate := s.now()
	if req.Timestamp != nil {
		opDate = *req.Timestamp
	}

	op, err := s.ledger.AppendOperation(ctx, &models.CardOperation{
		OperationDate: opDate,
		Amount:        req.Amount,
		Type:          req.Type,
		Location:      req.Location,
		CardID:        card.ID,
	})
	if err != nil {
		return nil, err
	}

	s.metrics.RecordOperation(op.Type)
	logger.LogEvent(logger.EventOperationRecorded, ServiceCardService, logger.ComponentSQLite, map[string]interface{}{
		"operation_id": op.ID,
		"card_id":      op.CardID,
		"amount":       op.Amount.String(),
	})

	resp := &models.RecordOperationResponse{
		Operation:  op,
		CardStatus: card.Status,
		Alerts:     []*models.FraudAlert{},
	}

	if s.policy.AsyncDetection {
		if err := s.events.operationRecorded(op); err != nil {
			resp.Detection = DetectionNotQueued
			return resp, fmt.Errorf("%w: %v", ErrDetectionNotQueued, err)
		}
		resp.Detection = DetectionQueued
		return resp, nil
	}

	// Операция уже в журнале: отмена запроса не должна пропустить детекцию
	result, err := s.fraud.Detect(context.WithoutCancel(ctx), card.ID)
	if result != nil {
		resp.Alerts = result.Alerts
		resp.CardStatus = result.FinalStatus
	}
	if err != nil {
		return resp, err
	}
	resp.Detection = DetectionCompleted
	return resp, nil
}

func validateOperation(req *models.RecordOperationRequest) error {
	if !req.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	if !req.Type.IsValid() {
		return ErrInvalidOperation
	}
	if strings.TrimSpace(req.Location) == "" {
		return ErrInvalidLocation
	}
	return nil
}

func (s *OperationServiceImpl) reject(req *models.RecordOperationRequest, reason string, err error) {
	s.metrics.RecordRejection(reason)
	logger.LogEvent(logger.EventOperationRejected, ServiceCardService, logger.ComponentAPI, map[string]interface{}{
		"card_id": req.CardID,
		"amount":  req.Amount.String(),
		"reason":  reason,
	})
	log.Printf("Operation for card %s rejected: %v", req.CardID, err)
}

func (s *OperationServiceImpl) GetOperation(ctx context.Context, operationID string) (*models.CardOperation, error) {
	op, err := s.ledger.GetOperation(ctx, operationID)
	if err != nil {
		return nil, err
	}
	if op == nil {
		return nil, ErrOperationNotFound
	}
	return op, nil
}

func (s *OperationServiceImpl) ListOperationsByCard(ctx context.Context, cardID string) ([]*models.CardOperation, error) {
	if err := s.ensureCard(ctx, cardID); err != nil {
		return nil, err
	}
	return s.ledger.ListOperations(ctx, cardID)
}

func (s *OperationServiceImpl) FindOperations(ctx context.Context, filter models.OperationFilter) ([]*models.CardOperation, error) {
	if filter.Type != "" && !filter.Type.IsValid() {
		return nil, ErrInvalidOperation
	}
	return s.ledger.FindOperations(ctx, filter)
}

func (s *OperationServiceImpl) RecentOperations(ctx context.Context, cardID string) ([]*models.CardOperation, error) {
	if err := s.ensureCard(ctx, cardID); err != nil {
		return nil, err
	}
	return s.ledger.ListOperationsSince(ctx, cardID, s.now().Add(-recentOperationsWindow))
}

func (s *OperationServiceImpl) TotalAmount(ctx context.Context, cardID string, from, to time.Time) (decimal.Decimal, error) {
	if to.Before(from) {
		return decimal.Zero, ErrInvalidReportRange
	}
	if err := s.ensureCard(ctx, cardID); err != nil {
		return decimal.Zero, err
	}
	return s.ledger.TotalAmount(ctx, cardID, from, to)
}

func (s *OperationServiceImpl) ensureCard(ctx context.Context, cardID string) error {
	card, err := s.cards.GetCard(ctx, cardID)
	if err != nil {
		return err
	}
	if card == nil {
		return ErrCardNotFound
	}
	return nil
}
