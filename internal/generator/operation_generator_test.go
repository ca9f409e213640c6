package generator

import (
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOperationGenerator(t *testing.T) {
	gen := NewOperationGenerator()
	require.NotNil(t, gen)
	assert.NotNil(t, gen.rand)
}

func TestOperationGenerator_CardNumber(t *testing.T) {
	gen := NewOperationGenerator()

	number := gen.CardNumber()
	require.Len(t, number, 16)
	for _, r := range number {
		assert.True(t, r >= '0' && r <= '9', "unexpected symbol %q in %s", r, number)
	}
}

func TestOperationGenerator_CardNumber_Differs(t *testing.T) {
	gen := NewOperationGeneratorWithSeed(42)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		seen[gen.CardNumber()] = true
	}
	assert.Len(t, seen, 100)
}

func TestOperationGenerator_GenerateOperation(t *testing.T) {
	gen := NewOperationGenerator()

	for i := 0; i < 200; i++ {
		req := gen.GenerateOperation("card_1")
		require.NotNil(t, req)

		assert.Equal(t, "card_1", req.CardID)
		assert.True(t, req.Type.IsValid(), "unexpected type %s", req.Type)
		assert.Contains(t, locations, req.Location)
		assert.True(t, req.Amount.GreaterThanOrEqual(decimal.NewFromInt(1)))
		assert.True(t, req.Amount.LessThan(decimal.NewFromInt(10000)))
		assert.LessOrEqual(t, -req.Amount.Exponent(), int32(2))
		assert.Nil(t, req.Timestamp)
	}
}

func TestOperationGenerator_Deterministic(t *testing.T) {
	first := NewOperationGeneratorWithSeed(7)
	second := NewOperationGeneratorWithSeed(7)

	a := first.GenerateOperation("card_1")
	b := second.GenerateOperation("card_1")
	assert.True(t, a.Amount.Equal(b.Amount))
	assert.Equal(t, a.Type, b.Type)
	assert.Equal(t, a.Location, b.Location)
}

func TestOperationGenerator_Concurrent(t *testing.T) {
	gen := NewOperationGenerator()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				gen.GenerateOperation("card_x")
				gen.CardNumber()
			}
		}()
	}
	wg.Wait()
}
