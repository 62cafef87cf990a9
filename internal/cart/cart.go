package cart

import (
	"github.com/elavarasan-maker/RETAILIQO/internal/catalog"
)

// Cart aggregates the merchant's pending line items. One line per product;
// quantity is always clamped to [1, stock].
type Cart struct {
	Items []catalog.CartItem
}

// Add puts a product in the cart at its minimum order quantity. Adding a
// product already carried is a no-op.
func (c *Cart) Add(p catalog.Product) {
	c.AddWithQuantity(p, p.MinOrderQty)
}

func (c *Cart) AddWithQuantity(p catalog.Product, qty int) {
	if c.find(p.ID) != nil {
		return
	}
	c.Items = append(c.Items, catalog.CartItem{Product: p, Quantity: clamp(qty, p.Stock)})
}

func (c *Cart) Remove(productID string) {
	out := c.Items[:0]
	for _, it := range c.Items {
		if it.ID != productID {
			out = append(out, it)
		}
	}
	c.Items = out
}

// UpdateQuantity sets a line's quantity, clamped to [1, stock]. Unknown
// product ids are ignored.
func (c *Cart) UpdateQuantity(productID string, qty int) {
	if it := c.find(productID); it != nil {
		it.Quantity = clamp(qty, it.Stock)
	}
}

func (c *Cart) Count() int { return len(c.Items) }

func (c *Cart) Clear() { c.Items = nil }

// Restock adds up to max under-stocked or trending catalog products at twice
// their minimum order quantity, skipping lines already carried. Returns how
// many lines were added.
func (c *Cart) Restock(products []catalog.Product, max int) int {
	carried := make(map[string]bool, len(c.Items))
	for _, it := range c.Items {
		carried[it.ID] = true
	}
	picks := catalog.RestockCandidates(products, carried, max)
	for _, p := range picks {
		c.Items = append(c.Items, catalog.CartItem{Product: p, Quantity: clamp(p.MinOrderQty*2, p.Stock)})
	}
	return len(picks)
}

func (c *Cart) find(productID string) *catalog.CartItem {
	for i := range c.Items {
		if c.Items[i].ID == productID {
			return &c.Items[i]
		}
	}
	return nil
}

func clamp(qty, stock int) int {
	if qty < 1 {
		return 1
	}
	if stock > 0 && qty > stock {
		return stock
	}
	return qty
}
