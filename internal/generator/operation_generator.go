package generator

import (
	"math/rand"
	"strings"
	"sync"
	"time"

	"card-fraud-system/internal/models"

	"github.com/shopspring/decimal"
)

var locations = []string{
	"Paris", "London", "Berlin", "Madrid", "Rome",
	"Amsterdam", "Lisbon", "Vienna", "Prague", "Warsaw",
}

// OperationGenerator генерирует номера карт и случайные операции для ручного тестирования.
// Безопасен для использования из нескольких горутин.
type OperationGenerator struct {
	mu   sync.Mutex
	rand *rand.Rand
}

func NewOperationGenerator() *OperationGenerator {
	return NewOperationGeneratorWithSeed(time.Now().UnixNano())
}

// NewOperationGeneratorWithSeed нужен для воспроизводимых последовательностей в тестах
func NewOperationGeneratorWithSeed(seed int64) *OperationGenerator {
	return &OperationGenerator{
		rand: rand.New(rand.NewSource(seed)),
	}
}

// CardNumber генерирует номер карты из 16 случайных цифр
func (g *OperationGenerator) CardNumber() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	var b strings.Builder
	b.Grow(16)
	for i := 0; i < 16; i++ {
		b.WriteByte(byte('0' + g.rand.Intn(10)))
	}
	return b.String()
}

// GenerateOperation возвращает случайный запрос на операцию по карте cardID.
// Сумма от 1.00 до 9999.99, так что иногда срабатывает правило крупной суммы.
func (g *OperationGenerator) GenerateOperation(cardID string) *models.RecordOperationRequest {
	g.mu.Lock()
	defer g.mu.Unlock()

	cents := 100 + g.rand.Int63n(999900)
	return &models.RecordOperationRequest{
		CardID:   cardID,
		Amount:   decimal.New(cents, -2),
		Type:     models.OperationTypes[g.rand.Intn(len(models.OperationTypes))],
		Location: locations[g.rand.Intn(len(locations))],
	}
}
