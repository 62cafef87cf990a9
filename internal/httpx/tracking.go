package httpx

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/elavarasan-maker/RETAILIQO/internal/redisx"
	"github.com/go-chi/chi/v5"
)

// orderTracking serves shipment status from the cache first, falling back to
// the database and re-priming the cache.
func (h *PortalHandler) orderTracking(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "id")
	if orderID == "" {
		errJSON(w, http.StatusBadRequest, "missing id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	key := fmt.Sprintf(redisx.KeyOrderStatus, orderID)
	if h.Redis != nil {
		if s, err := h.Redis.Get(ctx, key).Result(); err == nil && s != "" {
			writeJSON(w, http.StatusOK, json.RawMessage(s))
			return
		}
	}

	status, tracking, err := h.Orders.GetStatus(ctx, orderID)
	if err != nil {
		errJSON(w, http.StatusNotFound, "not found")
		return
	}
	body := map[string]any{"status": status, "tracking_number": tracking}
	b, _ := json.Marshal(body)
	if h.Redis != nil {
		_ = h.Redis.Set(ctx, key, b, redisx.TTLStatusCache).Err()
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(b)
}
