package cart

import "github.com/elavarasan-maker/RETAILIQO/internal/money"

const (
	GSTRate           = 0.18
	ShippingFee       = 500
	FreeShippingAbove = 5000
)

// Totals is the checkout price breakdown, recomputed from the live cart
// whenever it is needed. Nothing here is locked in until an order is placed.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	GST      float64 `json:"gst"`
	Shipping float64 `json:"shipping"`
	Total    float64 `json:"total"`
}

func (c *Cart) Totals() Totals {
	var subtotal float64
	for _, it := range c.Items {
		subtotal += it.Price * float64(it.Quantity)
	}
	subtotal = money.Round(subtotal)

	gst := money.Round(subtotal * GSTRate)
	shipping := float64(ShippingFee)
	if subtotal > FreeShippingAbove {
		shipping = 0
	}
	return Totals{
		Subtotal: subtotal,
		GST:      gst,
		Shipping: shipping,
		Total:    money.Round(subtotal + gst + shipping),
	}
}
