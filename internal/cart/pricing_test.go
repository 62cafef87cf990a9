package cart

import (
	"testing"

	"github.com/elavarasan-maker/RETAILIQO/internal/catalog"
	"github.com/stretchr/testify/assert"
)

func item(id string, price float64, qty int) catalog.CartItem {
	return catalog.CartItem{
		Product:  catalog.Product{ID: id, Price: price, Stock: 10000, MinOrderQty: 1},
		Quantity: qty,
	}
}

func TestTotalsBelowFreeShipping(t *testing.T) {
	c := &Cart{Items: []catalog.CartItem{item("A", 1000, 2)}}
	got := c.Totals()

	assert.Equal(t, 2000.0, got.Subtotal)
	assert.Equal(t, 360.0, got.GST)
	assert.Equal(t, 500.0, got.Shipping)
	assert.Equal(t, 2860.0, got.Total)
}

func TestTotalsAboveFreeShipping(t *testing.T) {
	c := &Cart{Items: []catalog.CartItem{item("A", 3000, 2)}}
	got := c.Totals()

	assert.Equal(t, 6000.0, got.Subtotal)
	assert.Equal(t, 1080.0, got.GST)
	assert.Equal(t, 0.0, got.Shipping)
	assert.Equal(t, 7080.0, got.Total)
}

func TestTotalsFreeShippingBoundary(t *testing.T) {
	// Exactly 5000 still pays shipping; the threshold is strict.
	c := &Cart{Items: []catalog.CartItem{item("A", 5000, 1)}}
	got := c.Totals()

	assert.Equal(t, 5000.0, got.Subtotal)
	assert.Equal(t, 500.0, got.Shipping)
	assert.Equal(t, 6400.0, got.Total)
}

func TestTotalsEmptyCart(t *testing.T) {
	c := &Cart{}
	got := c.Totals()

	assert.Equal(t, 0.0, got.Subtotal)
	assert.Equal(t, 0.0, got.GST)
	assert.Equal(t, 500.0, got.Shipping)
	assert.Equal(t, 500.0, got.Total)
}

func TestTotalsRounding(t *testing.T) {
	c := &Cart{Items: []catalog.CartItem{item("A", 33.33, 3)}}
	got := c.Totals()

	assert.Equal(t, 99.99, got.Subtotal)
	assert.Equal(t, 18.0, got.GST)
	assert.Equal(t, 617.99, got.Total)
}
