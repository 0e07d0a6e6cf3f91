package delivery_test

import (
	"testing"

	"alattar_back_end/internal/cart"
	"alattar_back_end/internal/delivery"
	"alattar_back_end/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAreas_TableIsFixed(t *testing.T) {
	t.Parallel()

	areas := delivery.Areas()
	require.Len(t, areas, 3)
	assert.Equal(t, models.DeliveryArea{Name: "الضفة الغربية", Cost: 15}, areas[0])
	assert.Equal(t, models.DeliveryArea{Name: "القدس", Cost: 25}, areas[1])
	assert.Equal(t, models.DeliveryArea{Name: "أماكن الـ48", Cost: 60}, areas[2])

	for _, a := range areas {
		assert.GreaterOrEqual(t, a.Cost, 0.0)
	}
}

func TestDefault_IsFirstEntry(t *testing.T) {
	t.Parallel()

	assert.Equal(t, delivery.Areas()[0], delivery.Default())
}

func TestLookup(t *testing.T) {
	t.Parallel()

	area, ok := delivery.Lookup("القدس")
	require.True(t, ok)
	assert.Equal(t, 25.0, area.Cost)

	_, ok = delivery.Lookup("غزة")
	assert.False(t, ok)
}

// Sélectionner la zone R donne total = sous-total + table[R].
func TestTotalWithArea(t *testing.T) {
	t.Parallel()

	items := []models.CartItem{
		{ID: 1, Price: 25, Quantity: 2},
		{ID: 8, Price: 100, Quantity: 1},
	}
	subtotal := cart.Subtotal(items)

	for _, area := range delivery.Areas() {
		assert.Equal(t, subtotal+area.Cost, cart.Total(items, area.Cost))
	}
}
