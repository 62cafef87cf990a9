package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/elavarasan-maker/RETAILIQO/internal/app"
	"github.com/elavarasan-maker/RETAILIQO/internal/catalog"
	"github.com/elavarasan-maker/RETAILIQO/internal/dashboard"
	"github.com/elavarasan-maker/RETAILIQO/internal/orders"
	"github.com/elavarasan-maker/RETAILIQO/internal/session"
	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
)

const dataTimeout = 5 * time.Second

// PortalHandler exposes the merchant portal surface: session, marketplace,
// quotes, cart and orders.
type PortalHandler struct {
	App    *app.Controller
	Orders *orders.Repo
	Redis  *redis.Client
}

func (h *PortalHandler) Register(r *chi.Mux) {
	r.Get("/state", h.getState)
	r.Post("/navigate", h.navigate)
	r.Post("/onboarding", h.onboard)
	r.Post("/subscription", h.subscribe)
	r.Post("/logout", h.logout)

	r.Get("/products", h.listProducts)
	r.Get("/categories", h.listCategories)
	r.Get("/dashboard", h.getDashboard)
	r.Post("/restock", h.autoRestock)

	r.Post("/quotes", h.requestQuote)
	r.Post("/quotes/{id}/counter", h.counterOffer)
	r.Post("/quotes/{id}/accept", h.acceptQuote)
	r.Post("/quotes/{id}/reject", h.rejectQuote)

	r.Get("/cart", h.getCart)
	r.Post("/cart/items", h.addCartItem)
	r.Put("/cart/items/{id}", h.updateCartItem)
	r.Delete("/cart/items/{id}", h.removeCartItem)
	r.Post("/checkout", h.checkout)

	r.Get("/orders/{id}/tracking", h.orderTracking)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func errJSON(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}

func (h *PortalHandler) getState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.App.State())
}

func (h *PortalHandler) navigate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		View app.View `json:"view"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errJSON(w, http.StatusBadRequest, "invalid json")
		return
	}
	v, err := h.App.Navigate(req.View)
	if err != nil {
		errJSON(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]app.View{"view": v})
}

func (h *PortalHandler) onboard(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name             string `json:"name"`
		Mobile           string `json:"mobile"`
		ShopName         string `json:"shop_name"`
		Address          string `json:"address"`
		Location         string `json:"location"`
		BusinessCategory string `json:"business_category"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errJSON(w, http.StatusBadRequest, "invalid json")
		return
	}
	m := session.Merchant{
		Name: req.Name, Mobile: req.Mobile, ShopName: req.ShopName,
		Address: req.Address, Location: req.Location,
		BusinessCategory: req.BusinessCategory,
	}
	if m.BusinessCategory == "" {
		m.BusinessCategory = catalog.BusinessCategories[0]
	}

	ctx, cancel := context.WithTimeout(r.Context(), dataTimeout)
	defer cancel()

	state, err := h.App.Onboard(ctx, m)
	if err != nil {
		errJSON(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, state)
}

func (h *PortalHandler) subscribe(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Plan string `json:"plan"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errJSON(w, http.StatusBadRequest, "invalid json")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), dataTimeout)
	defer cancel()

	state, err := h.App.Subscribe(ctx, req.Plan)
	if err != nil {
		errJSON(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, state)
}

func (h *PortalHandler) logout(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), dataTimeout)
	defer cancel()
	writeJSON(w, http.StatusOK, h.App.Logout(ctx))
}

func (h *PortalHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	search := r.URL.Query().Get("q")
	writeJSON(w, http.StatusOK, catalog.Filter(catalog.Products, category, search))
}

func (h *PortalHandler) listCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{
		"categories":          catalog.Categories,
		"business_categories": catalog.BusinessCategories,
	})
}

func (h *PortalHandler) getDashboard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"weekly_sales": dashboard.WeeklySales(),
		"stock_levels": dashboard.StockLevels(),
	})
}

func (h *PortalHandler) autoRestock(w http.ResponseWriter, r *http.Request) {
	added := h.App.AutoRestock()
	writeJSON(w, http.StatusOK, map[string]any{"added": added, "cart": h.App.State().Cart})
}

func (h *PortalHandler) requestQuote(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID string `json:"product_id"`
		Qty       int    `json:"qty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errJSON(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.ProductID == "" {
		errJSON(w, http.StatusBadRequest, "missing product_id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), dataTimeout)
	defer cancel()

	q, err := h.App.RequestQuote(ctx, req.ProductID, req.Qty)
	if err != nil {
		errJSON(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, q)
}

func (h *PortalHandler) counterOffer(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Offer float64 `json:"offer"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errJSON(w, http.StatusBadRequest, "invalid json")
		return
	}

	q, err := h.App.CounterOffer(r.Context(), chi.URLParam(r, "id"), req.Offer)
	if err != nil {
		code := http.StatusConflict
		if errors.Is(err, app.ErrUnknownQuote) {
			code = http.StatusNotFound
		}
		errJSON(w, code, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, q)
}

func (h *PortalHandler) acceptQuote(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), dataTimeout)
	defer cancel()

	o, err := h.App.AcceptQuote(ctx, chi.URLParam(r, "id"))
	if err != nil {
		code := http.StatusConflict
		if errors.Is(err, app.ErrUnknownQuote) {
			code = http.StatusNotFound
		}
		errJSON(w, code, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, o)
}

func (h *PortalHandler) rejectQuote(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), dataTimeout)
	defer cancel()

	q, err := h.App.RejectQuote(ctx, chi.URLParam(r, "id"))
	if err != nil {
		code := http.StatusConflict
		if errors.Is(err, app.ErrUnknownQuote) {
			code = http.StatusNotFound
		}
		errJSON(w, code, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, q)
}

func (h *PortalHandler) getCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"items":  h.App.State().Cart,
		"totals": h.App.CartTotals(),
	})
}

func (h *PortalHandler) addCartItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID string `json:"product_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errJSON(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := h.App.AddToCart(req.ProductID); err != nil {
		errJSON(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": h.App.State().Cart})
}

func (h *PortalHandler) updateCartItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errJSON(w, http.StatusBadRequest, "invalid json")
		return
	}
	h.App.UpdateCartQuantity(chi.URLParam(r, "id"), req.Quantity)
	writeJSON(w, http.StatusOK, map[string]any{"items": h.App.State().Cart})
}

func (h *PortalHandler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	h.App.RemoveFromCart(chi.URLParam(r, "id"))
	writeJSON(w, http.StatusOK, map[string]any{"items": h.App.State().Cart})
}

func (h *PortalHandler) checkout(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), dataTimeout)
	defer cancel()

	o, err := h.App.PlaceOrder(ctx)
	if err != nil {
		errJSON(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, o)
}
