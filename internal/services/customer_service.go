package services

import (
	"context"
	"strings"
	"time"

	"card-fraud-system/internal/logger"
	"card-fraud-system/internal/models"
	"card-fraud-system/internal/storage"

	"github.com/google/uuid"
)

// CustomerServiceImpl реализует интерфейс CustomerService
type CustomerServiceImpl struct {
	repo storage.CustomerRepository
	now  func() time.Time
}

func NewCustomerService(repo storage.CustomerRepository) CustomerService {
	return &CustomerServiceImpl{
		repo: repo,
		now:  time.Now,
	}
}

func (s *CustomerServiceImpl) CreateCustomer(ctx context.Context, req *models.CreateCustomerRequest) (*models.Customer, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	if name == "" || email == "" {
		return nil, ErrInvalidCustomer
	}

	existing, err := s.repo.FindCustomerByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrCustomerExists
	}

	customer := &models.Customer{
		ID:        "cust_" + uuid.New().String(),
		Name:      name,
		Email:     email,
		Phone:     strings.TrimSpace(req.Phone),
		CreatedAt: s.now(),
	}
	if err := s.repo.SaveCustomer(ctx, customer); err != nil {
		return nil, err
	}

	logger.LogEvent(logger.EventDBUpdated, ServiceCardService, logger.ComponentSQLite, map[string]interface{}{
		"action":      "customer_created",
		"customer_id": customer.ID,
	})

	return customer, nil
}

func (s *CustomerServiceImpl) GetCustomer(ctx context.Context, customerID string) (*models.Customer, error) {
	customer, err := s.repo.GetCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}
	return customer, nil
}

func (s *CustomerServiceImpl) FindCustomerByEmail(ctx context.Context, email string) (*models.Customer, error) {
	customer, err := s.repo.FindCustomerByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}
	return customer, nil
}

func (s *CustomerServiceImpl) ListCustomers(ctx context.Context) ([]*models.Customer, error) {
	return s.repo.ListCustomers(ctx)
}
