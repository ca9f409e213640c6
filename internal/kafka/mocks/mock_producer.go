package mocks

import (
	"card-fraud-system/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockProducer является моком для kafka.Producer интерфейса
type MockProducer struct {
	mock.Mock
}

// SendOperationEvent мок для SendOperationEvent
func (m *MockProducer) SendOperationEvent(event *models.KafkaOperationEvent) error {
	args := m.Called(event)
	return args.Error(0)
}

// SendAlertEvent мок для SendAlertEvent
func (m *MockProducer) SendAlertEvent(event *models.KafkaAlertEvent) error {
	args := m.Called(event)
	return args.Error(0)
}

// SendStatusEvent мок для SendStatusEvent
func (m *MockProducer) SendStatusEvent(event *models.KafkaStatusEvent) error {
	args := m.Called(event)
	return args.Error(0)
}

// Close мок для Close
func (m *MockProducer) Close() error {
	args := m.Called()
	return args.Error(0)
}
