package quotes

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/elavarasan-maker/RETAILIQO/internal/catalog"
	"github.com/elavarasan-maker/RETAILIQO/internal/money"
	"github.com/elavarasan-maker/RETAILIQO/internal/orders"
	"github.com/google/uuid"
)

// FallbackSupplierReply is appended verbatim when the AI gateway fails or
// returns nothing. The merchant never sees a raw upstream error.
const FallbackSupplierReply = "We can't go that low. How about a mid-point?"

var (
	ErrQuoteClosed    = errors.New("quote is already closed")
	ErrInvalidOffer   = errors.New("offer must be a positive amount")
	ErrUnknownProduct = errors.New("product not in catalog")
)

// Store is the slice of the remote data gateway the workflow needs.
type Store interface {
	Create(ctx context.Context, q Quote, merchantMobile string) error
	Update(ctx context.Context, q Quote) error
}

// ChatAI produces conversational replies: the simulated supplier side of a
// negotiation and the retail assistant thread.
type ChatAI interface {
	Reply(ctx context.Context, history []Message, message string) (string, error)
}

// OrderBook materializes an accepted deal into a placed order.
type OrderBook interface {
	Place(ctx context.Context, o orders.Order, merchantMobile, source string) error
}

// Service drives the quote lifecycle: Pending -> Negotiating -> Accepted or
// Rejected. Remote persistence is best effort per the gateway contract; a
// failed write is logged and the in-memory quote remains authoritative for
// the session.
type Service struct {
	Store Store
	AI    ChatAI
	Book  OrderBook
}

// Request opens a Pending quote at the listed price with an empty thread.
func (s *Service) Request(ctx context.Context, p catalog.Product, qty int, merchantMobile string) Quote {
	if qty <= 0 {
		qty = p.MinOrderQty
	}
	q := Quote{
		ID:            uuid.NewString(),
		ProductID:     p.ID,
		ProductName:   p.Name,
		SupplierName:  p.SupplierName,
		RequestedQty:  qty,
		Status:        StatusPending,
		QuotedPrice:   p.Price,
		OriginalPrice: p.Price,
		Date:          time.Now().UTC(),
		ChatHistory:   []Message{},
	}
	if err := s.Store.Create(ctx, q, merchantMobile); err != nil {
		log.Printf("quote %s: create not persisted: %v", q.ID, err)
	}
	return q
}

// CounterOffer appends the merchant's proposal, moves the quote to
// Negotiating at the offered price, and asks the AI gateway for the supplier
// reply. The history sent upstream is the thread as it stood before this
// offer; the framing message carries the new amount.
func (s *Service) CounterOffer(ctx context.Context, q Quote, offer float64) (Quote, error) {
	if !CanTransition(q.Status, StatusNegotiating) {
		return q, ErrQuoteClosed
	}
	if offer <= 0 {
		return q, ErrInvalidOffer
	}
	offer = money.Round(offer)

	prior := q.ChatHistory
	q.ChatHistory = appendMessage(prior, Message{
		Role: RoleUser,
		Text: fmt.Sprintf("Can we do ₹%s per unit?", formatAmount(offer)),
	})
	q.Status = StatusNegotiating
	q.QuotedPrice = offer

	framing := fmt.Sprintf("Wholesale negotiation for %s. Merchant offered ₹%s. Respond as supplier.",
		q.ProductName, formatAmount(offer))
	reply, err := s.AI.Reply(ctx, prior, framing)
	if err != nil || strings.TrimSpace(reply) == "" {
		if err != nil {
			log.Printf("quote %s: supplier reply failed: %v", q.ID, err)
		}
		reply = FallbackSupplierReply
	}
	q.ChatHistory = append(q.ChatHistory, Message{Role: RoleModel, Text: reply})

	if err := s.Store.Update(ctx, q); err != nil {
		log.Printf("quote %s: update not persisted: %v", q.ID, err)
	}
	return q, nil
}

// Accept closes the quote and converts it into one order: a single line item
// at the negotiated price times the requested quantity.
func (s *Service) Accept(ctx context.Context, q Quote, merchantMobile string) (Quote, orders.Order, error) {
	if !CanTransition(q.Status, StatusAccepted) {
		return q, orders.Order{}, ErrQuoteClosed
	}
	p, ok := catalog.FindProduct(q.ProductID)
	if !ok {
		return q, orders.Order{}, ErrUnknownProduct
	}

	item := catalog.CartItem{Product: p, Quantity: q.RequestedQty}
	item.Price = q.QuotedPrice
	o := orders.Order{
		ID:             orders.NewOrderID("ORD"),
		Date:           time.Now().UTC(),
		Items:          []catalog.CartItem{item},
		Total:          money.Round(q.QuotedPrice * float64(q.RequestedQty)),
		Status:         orders.StatusPending,
		TrackingNumber: orders.NewTrackingNumber(),
	}

	q.Status = StatusAccepted
	if err := s.Store.Update(ctx, q); err != nil {
		log.Printf("quote %s: accept not persisted: %v", q.ID, err)
	}
	if err := s.Book.Place(ctx, o, merchantMobile, "negotiation"); err != nil {
		log.Printf("quote %s: order %s not persisted: %v", q.ID, o.ID, err)
	}
	return q, o, nil
}

// Reject terminates the negotiation without an order.
func (s *Service) Reject(ctx context.Context, q Quote) (Quote, error) {
	if !CanTransition(q.Status, StatusRejected) {
		return q, ErrQuoteClosed
	}
	q.Status = StatusRejected
	if err := s.Store.Update(ctx, q); err != nil {
		log.Printf("quote %s: reject not persisted: %v", q.ID, err)
	}
	return q, nil
}

func appendMessage(history []Message, m Message) []Message {
	out := make([]Message, 0, len(history)+1)
	out = append(out, history...)
	return append(out, m)
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
