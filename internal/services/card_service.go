package services

import (
	"context"
	"log"
	"time"

	"card-fraud-system/internal/fraud"
	"card-fraud-system/internal/generator"
	"card-fraud-system/internal/kafka"
	"card-fraud-system/internal/locker"
	"card-fraud-system/internal/logger"
	"card-fraud-system/internal/models"
	"card-fraud-system/internal/redis"
	"card-fraud-system/internal/storage"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CardServiceImpl реализует интерфейс CardService
type CardServiceImpl struct {
	cards     storage.CardRegistry
	customers storage.CustomerRepository
	locker    locker.CardLocker
	events    eventPublisher
	cache     redis.ClientInterface // Опциональный кэш статусов
	numbers   *generator.OperationGenerator
	now       func() time.Time
}

// NewCardService создает сервис карт. producer и cache могут быть nil.
func NewCardService(
	cards storage.CardRegistry,
	customers storage.CustomerRepository,
	cardLocker locker.CardLocker,
	producer kafka.Producer,
	cache redis.ClientInterface,
) CardService {
	return &CardServiceImpl{
		cards:     cards,
		customers: customers,
		locker:    cardLocker,
		events:    eventPublisher{producer: producer, service: ServiceCardService},
		cache:     cache,
		numbers:   generator.NewOperationGenerator(),
		now:       time.Now,
	}
}

func (s *CardServiceImpl) IssueCard(ctx context.Context, req *models.IssueCardRequest) (*models.Card, error) {
	variant, err := variantFromRequest(req)
	if err != nil {
		return nil, err
	}

	customer, err := s.customers.GetCustomer(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}

	now := s.now()
	card := &models.Card{
		ID:             "card_" + uuid.New().String(),
		CardNumber:     s.numbers.CardNumber(),
		ExpirationDate: now.AddDate(3, 0, 0),
		Status:         models.CardStatusActive,
		CustomerID:     customer.ID,
		Variant:        variant,
		CreatedAt:      now,
	}
	if err := s.cards.SaveCard(ctx, card); err != nil {
		return nil, err
	}

	logger.LogEvent(logger.EventCardIssued, ServiceCardService, logger.ComponentSQLite, map[string]interface{}{
		"card_id":     card.ID,
		"customer_id": card.CustomerID,
		"type":        string(card.Type()),
	})
	s.cacheStatus(ctx, card.ID, card.Status)

	return card, nil
}

// variantFromRequest собирает вариант карты, проверяя обязательные для типа поля
func variantFromRequest(req *models.IssueCardRequest) (models.CardVariant, error) {
	switch req.Type {
	case models.CardTypeDebit:
		if !validLimit(req.DailyLimit) {
			return nil, ErrInvalidLimit
		}
		return models.DebitVariant{DailyLimit: *req.DailyLimit}, nil
	case models.CardTypeCredit:
		if !validLimit(req.MonthlyLimit) {
			return nil, ErrInvalidLimit
		}
		rate := decimal.Zero
		if req.InterestRate != nil {
			if req.InterestRate.IsNegative() {
				return nil, ErrInvalidLimit
			}
			rate = *req.InterestRate
		}
		return models.CreditVariant{MonthlyLimit: *req.MonthlyLimit, InterestRate: rate}, nil
	case models.CardTypePrepaid:
		if !validLimit(req.InitialBalance) {
			return nil, ErrInvalidLimit
		}
		return models.PrepaidVariant{AvailableBalance: *req.InitialBalance}, nil
	}
	return nil, ErrUnknownCardType
}

func validLimit(v *decimal.Decimal) bool {
	return v != nil && !v.IsNegative()
}

func (s *CardServiceImpl) IssueDebitCard(ctx context.Context, customerID string, dailyLimit decimal.Decimal) (*models.Card, error) {
	return s.IssueCard(ctx, &models.IssueCardRequest{
		CustomerID: customerID,
		Type:       models.CardTypeDebit,
		DailyLimit: &dailyLimit,
	})
}

func (s *CardServiceImpl) IssueCreditCard(ctx context.Context, customerID string, monthlyLimit, interestRate decimal.Decimal) (*models.Card, error) {
	return s.IssueCard(ctx, &models.IssueCardRequest{
		CustomerID:   customerID,
		Type:         models.CardTypeCredit,
		MonthlyLimit: &monthlyLimit,
		InterestRate: &interestRate,
	})
}

func (s *CardServiceImpl) IssuePrepaidCard(ctx context.Context, customerID string, initialBalance decimal.Decimal) (*models.Card, error) {
	return s.IssueCard(ctx, &models.IssueCardRequest{
		CustomerID:     customerID,
		Type:           models.CardTypePrepaid,
		InitialBalance: &initialBalance,
	})
}

func (s *CardServiceImpl) GetCard(ctx context.Context, cardID string) (*models.Card, error) {
	card, err := s.cards.GetCard(ctx, cardID)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, ErrCardNotFound
	}
	return card, nil
}

func (s *CardServiceImpl) GetCardStatus(ctx context.Context, cardID string) (models.CardStatus, error) {
	if s.cache != nil {
		status, err := s.cache.GetCachedCardStatus(ctx, cardID)
		if err != nil {
			log.Printf("Error reading cached status for card %s: %v", cardID, err)
		} else if status != "" {
			return status, nil
		}
	}

	card, err := s.GetCard(ctx, cardID)
	if err != nil {
		return "", err
	}
	s.cacheStatus(ctx, cardID, card.Status)
	return card.Status, nil
}

func (s *CardServiceImpl) ListCardsByCustomer(ctx context.Context, customerID string) ([]*models.Card, error) {
	customer, err := s.customers.GetCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}
	return s.cards.ListCardsByCustomer(ctx, customerID)
}

func (s *CardServiceImpl) ActivateCard(ctx context.Context, cardID string) (*models.Card, error) {
	return s.transition(ctx, cardID, models.CardStatusActive)
}

func (s *CardServiceImpl) SuspendCard(ctx context.Context, cardID string) (*models.Card, error) {
	return s.transition(ctx, cardID, models.CardStatusSuspended)
}

func (s *CardServiceImpl) BlockCard(ctx context.Context, cardID string) (*models.Card, error) {
	return s.transition(ctx, cardID, models.CardStatusBlocked)
}

// transition выполняет ручную смену статуса под блокировкой карты.
// Повторная приостановка или блокировка разрешены, повторная активация - нет.
func (s *CardServiceImpl) transition(ctx context.Context, cardID string, to models.CardStatus) (*models.Card, error) {
	unlock, err := s.locker.Lock(ctx, cardID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	card, err := s.GetCard(ctx, cardID)
	if err != nil {
		return nil, err
	}
	if to == models.CardStatusActive && card.Status == models.CardStatusActive {
		return nil, ErrAlreadyActive
	}

	found, err := s.cards.SetStatus(ctx, cardID, to)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrCardNotFound
	}

	from := card.Status
	card.Status = to

	logger.LogEvent(logger.EventCardStatusChanged, ServiceCardService, logger.ComponentSQLite, map[string]interface{}{
		"card_id":         cardID,
		"previous_status": string(from),
		"status":          string(to),
		"source":          models.StatusSourceManual,
	})
	if err := s.events.statusChanged(cardID, from, to, models.StatusSourceManual); err != nil {
		log.Printf("Error publishing status event for card %s: %v", cardID, err)
	}
	s.cacheStatus(ctx, cardID, to)

	return card, nil
}

func (s *CardServiceImpl) VerifyLimit(ctx context.Context, cardID string, amount decimal.Decimal) (bool, error) {
	card, err := s.GetCard(ctx, cardID)
	if err != nil {
		return false, err
	}
	return fraud.VerifyLimit(card, amount), nil
}

func (s *CardServiceImpl) cacheStatus(ctx context.Context, cardID string, status models.CardStatus) {
	if s.cache == nil {
		return
	}
	if err := s.cache.CacheCardStatus(ctx, cardID, status); err != nil {
		log.Printf("Error caching status for card %s: %v", cardID, err)
		return
	}
	logger.LogEvent(logger.EventRedisSaved, ServiceCardService, logger.ComponentRedis, map[string]interface{}{
		"card_id": cardID,
		"status":  string(status),
	})
}
