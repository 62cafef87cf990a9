// Package app is the navigation shell and the owner of all session state.
// The browser original kept this state in ambient globals; here one
// Controller holds it explicitly, loads the cached profile at start, and
// saves on every change.
package app

import (
	"context"
	"errors"
	"sync"

	"github.com/elavarasan-maker/RETAILIQO/internal/cart"
	"github.com/elavarasan-maker/RETAILIQO/internal/catalog"
	"github.com/elavarasan-maker/RETAILIQO/internal/orders"
	"github.com/elavarasan-maker/RETAILIQO/internal/quotes"
	"github.com/elavarasan-maker/RETAILIQO/internal/session"
)

var (
	ErrUnknownView    = errors.New("unknown view")
	ErrUnknownQuote   = errors.New("quote not found")
	ErrUnknownProduct = errors.New("product not in catalog")
)

// State is the session snapshot the shell exposes to the HTTP surface.
type State struct {
	User   session.Merchant `json:"user"`
	View   View             `json:"view"`
	Cart   []catalog.CartItem `json:"cart"`
	Quotes []quotes.Quote   `json:"quotes"`
	Orders []orders.Order   `json:"orders"`
}

// Controller drives one merchant session. The global mutex guards the state
// fields; quote workflows additionally serialize on a per-quote lock so two
// counter-offers against the same quote can never interleave, while a slow
// supplier reply leaves every other endpoint free. The login-time cloud sync
// full replace is kept as specified.
type Controller struct {
	Session  *session.Service
	Quotes   *quotes.Service
	Checkout *cart.Checkout
	AI       quotes.ChatAI

	mu        sync.Mutex
	user      session.Merchant
	view      View
	cart      cart.Cart
	quotes    []quotes.Quote
	orders    []orders.Order
	assistant []quotes.Message

	// one lock per quote id, so a slow supplier reply only stalls its own
	// negotiation. Always acquired before mu, never while holding it.
	quoteLocks map[string]*sync.Mutex
}

// AssistantGreeting opens every assistant thread.
const AssistantGreeting = "Hello! I am your RetailiQo AI Assistant. How can I help you grow your retail business today?"

// AssistantFallback replaces the reply when the AI gateway fails.
const AssistantFallback = "Sorry, I encountered an issue. Please try again later."

// NewController restores the cached profile and, for a logged-in merchant,
// performs the one-shot cloud sync before serving.
func NewController(ctx context.Context, sess *session.Service, qs *quotes.Service, co *cart.Checkout) *Controller {
	c := &Controller{
		Session:    sess,
		Quotes:     qs,
		Checkout:   co,
		AI:         qs.AI,
		view:       ViewHome,
		user:       session.Merchant{BusinessCategory: catalog.BusinessCategories[0]},
		assistant:  []quotes.Message{{Role: quotes.RoleModel, Text: AssistantGreeting}},
		quoteLocks: make(map[string]*sync.Mutex),
	}
	if m := sess.Restore(ctx); m != nil {
		c.user = *m
		if m.IsLoggedIn {
			snap := sess.SyncCloud(ctx, *m)
			c.user = snap.Merchant
			c.quotes = snap.Quotes
			c.orders = snap.Orders
		}
	}
	c.applyGate()
	return c
}

// State returns a copy of the current session.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot()
}

// Navigate switches views, subject to the subscription gate. The returned
// view is where the merchant actually landed.
func (c *Controller) Navigate(v View) (View, error) {
	if !ValidView(v) {
		return "", ErrUnknownView
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.view = v
	c.applyGate()
	return c.view, nil
}

// Onboard logs the merchant in, runs the cloud sync, and routes to
// subscription selection.
func (c *Controller) Onboard(ctx context.Context, m session.Merchant) (State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	user, err := c.Session.Onboard(ctx, m)
	if err != nil {
		return c.snapshot(), err
	}
	// Full-replace sync: any local edits made in the same step are discarded.
	snap := c.Session.SyncCloud(ctx, user)
	c.user = snap.Merchant
	c.quotes = snap.Quotes
	c.orders = snap.Orders
	c.view = ViewSubscription
	c.applyGate()
	return c.snapshot(), nil
}

// Subscribe activates a plan and releases the gate.
func (c *Controller) Subscribe(ctx context.Context, plan string) (State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	user, err := c.Session.Subscribe(ctx, c.user, plan)
	if err != nil {
		return c.snapshot(), err
	}
	c.user = user
	c.view = ViewDashboard
	c.applyGate()
	return c.snapshot(), nil
}

// Logout clears the cached profile and resets the session.
func (c *Controller) Logout(ctx context.Context) State {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.Session.Logout(ctx)
	c.user = session.Merchant{BusinessCategory: catalog.BusinessCategories[0]}
	c.cart.Clear()
	c.quotes = nil
	c.orders = nil
	c.assistant = []quotes.Message{{Role: quotes.RoleModel, Text: AssistantGreeting}}
	c.view = ViewHome
	return c.snapshot()
}

// AssistantSend appends the merchant's message to the assistant thread and
// asks the gateway for a reply. On failure the fallback text is appended
// instead; the thread only ever grows.
func (c *Controller) AssistantSend(ctx context.Context, message string) []quotes.Message {
	c.mu.Lock()
	prior := make([]quotes.Message, len(c.assistant))
	copy(prior, c.assistant)
	c.assistant = append(c.assistant, quotes.Message{Role: quotes.RoleUser, Text: message})
	c.mu.Unlock()

	reply, err := c.AI.Reply(ctx, prior, message)
	if err != nil || reply == "" {
		reply = AssistantFallback
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.assistant = append(c.assistant, quotes.Message{Role: quotes.RoleModel, Text: reply})
	out := make([]quotes.Message, len(c.assistant))
	copy(out, c.assistant)
	return out
}

// AssistantHistory returns a copy of the assistant thread.
func (c *Controller) AssistantHistory() []quotes.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]quotes.Message, len(c.assistant))
	copy(out, c.assistant)
	return out
}

// RequestQuote opens a Pending negotiation for a catalog product.
func (c *Controller) RequestQuote(ctx context.Context, productID string, qty int) (quotes.Quote, error) {
	p, ok := catalog.FindProduct(productID)
	if !ok {
		return quotes.Quote{}, ErrUnknownProduct
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	q := c.Quotes.Request(ctx, p, qty, c.user.Mobile)
	c.quotes = append([]quotes.Quote{q}, c.quotes...)
	c.view = ViewQuotes
	c.applyGate()
	return q, nil
}

// CounterOffer advances a negotiation with the merchant's price proposal.
// The quote's own lock is held across the supplier round trip; the global
// lock is not, so other endpoints keep serving while the AI answers.
func (c *Controller) CounterOffer(ctx context.Context, quoteID string, offer float64) (quotes.Quote, error) {
	qmu := c.quoteLock(quoteID)
	qmu.Lock()
	defer qmu.Unlock()

	c.mu.Lock()
	i := c.findQuote(quoteID)
	if i < 0 {
		c.mu.Unlock()
		return quotes.Quote{}, ErrUnknownQuote
	}
	current := c.quotes[i]
	c.mu.Unlock()

	q, err := c.Quotes.CounterOffer(ctx, current, offer)
	if err != nil {
		return q, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if i := c.findQuote(quoteID); i >= 0 {
		c.quotes[i] = q
	}
	return q, nil
}

// AcceptQuote converts a negotiation into an order and shows the order list.
func (c *Controller) AcceptQuote(ctx context.Context, quoteID string) (orders.Order, error) {
	qmu := c.quoteLock(quoteID)
	qmu.Lock()
	defer qmu.Unlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.findQuote(quoteID)
	if i < 0 {
		return orders.Order{}, ErrUnknownQuote
	}
	q, o, err := c.Quotes.Accept(ctx, c.quotes[i], c.user.Mobile)
	if err != nil {
		return orders.Order{}, err
	}
	c.quotes[i] = q
	c.orders = append([]orders.Order{o}, c.orders...)
	c.view = ViewOrders
	c.applyGate()
	return o, nil
}

// RejectQuote terminates a negotiation without an order.
func (c *Controller) RejectQuote(ctx context.Context, quoteID string) (quotes.Quote, error) {
	qmu := c.quoteLock(quoteID)
	qmu.Lock()
	defer qmu.Unlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.findQuote(quoteID)
	if i < 0 {
		return quotes.Quote{}, ErrUnknownQuote
	}
	q, err := c.Quotes.Reject(ctx, c.quotes[i])
	if err != nil {
		return q, err
	}
	c.quotes[i] = q
	return q, nil
}

// AddToCart puts a product in the cart at its minimum order quantity.
func (c *Controller) AddToCart(productID string) error {
	p, ok := catalog.FindProduct(productID)
	if !ok {
		return ErrUnknownProduct
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cart.Add(p)
	return nil
}

func (c *Controller) RemoveFromCart(productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cart.Remove(productID)
}

func (c *Controller) UpdateCartQuantity(productID string, qty int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cart.UpdateQuantity(productID, qty)
}

func (c *Controller) CartTotals() cart.Totals {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cart.Totals()
}

// AutoRestock fills the cart with low-stock and trending picks and lands on
// the cart view. Returns how many lines were added.
func (c *Controller) AutoRestock() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := c.cart.Restock(catalog.Products, 3)
	c.view = ViewCart
	c.applyGate()
	return n
}

// PlaceOrder checks out the current cart.
func (c *Controller) PlaceOrder(ctx context.Context) (orders.Order, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	o, err := c.Checkout.PlaceOrder(ctx, &c.cart, c.user.Mobile)
	if err != nil {
		return orders.Order{}, err
	}
	c.orders = append([]orders.Order{o}, c.orders...)
	return o, nil
}

// User returns the current merchant profile.
func (c *Controller) User() session.Merchant {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.user
}

// A logged-in, unsubscribed merchant always lands on the subscription view,
// whatever was requested.
func (c *Controller) applyGate() {
	if c.user.IsLoggedIn && !c.user.IsSubscribed {
		c.view = ViewSubscription
	}
}

func (c *Controller) quoteLock(id string) *sync.Mutex {
	c.mu.Lock()
	defer c.mu.Unlock()
	m, ok := c.quoteLocks[id]
	if !ok {
		m = &sync.Mutex{}
		c.quoteLocks[id] = m
	}
	return m
}

func (c *Controller) findQuote(id string) int {
	for i := range c.quotes {
		if c.quotes[i].ID == id {
			return i
		}
	}
	return -1
}

func (c *Controller) snapshot() State {
	items := make([]catalog.CartItem, len(c.cart.Items))
	copy(items, c.cart.Items)
	qs := make([]quotes.Quote, len(c.quotes))
	copy(qs, c.quotes)
	os := make([]orders.Order, len(c.orders))
	copy(os, c.orders)
	return State{User: c.user, View: c.view, Cart: items, Quotes: qs, Orders: os}
}
