package cart

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/elavarasan-maker/RETAILIQO/internal/catalog"
	"github.com/elavarasan-maker/RETAILIQO/internal/orders"
)

var ErrEmptyCart = errors.New("cart is empty")

// OrderBook materializes checkout into a placed order.
type OrderBook interface {
	Place(ctx context.Context, o orders.Order, merchantMobile, source string) error
}

// Checkout turns the current cart into one order and empties it. Remote
// persistence is best effort; a rejected write is logged and the order still
// stands for the session.
type Checkout struct {
	Book OrderBook
}

func (s *Checkout) PlaceOrder(ctx context.Context, c *Cart, merchantMobile string) (orders.Order, error) {
	if c.Count() == 0 {
		return orders.Order{}, ErrEmptyCart
	}

	items := make([]catalog.CartItem, len(c.Items))
	copy(items, c.Items)

	o := orders.Order{
		ID:             orders.NewOrderID("RT"),
		Date:           time.Now().UTC(),
		Items:          items,
		Total:          c.Totals().Total,
		Status:         orders.StatusPending,
		TrackingNumber: orders.NewTrackingNumber(),
	}
	if err := s.Book.Place(ctx, o, merchantMobile, "checkout"); err != nil {
		log.Printf("order %s: place not persisted: %v", o.ID, err)
	}
	c.Clear()
	return o, nil
}
