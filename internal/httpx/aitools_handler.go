package httpx

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/elavarasan-maker/RETAILIQO/internal/app"
	"github.com/elavarasan-maker/RETAILIQO/internal/catalog"
	"github.com/elavarasan-maker/RETAILIQO/internal/gemini"
	"github.com/go-chi/chi/v5"
)

const aiTimeout = 45 * time.Second

// Fallback and empty-result texts shown in place of raw gateway errors.
// The merchant never sees what actually went wrong upstream.
const (
	visionFallback   = "Error identifying product. Ensure image is clear."
	visionDefault    = "Analysis complete."
	adviceFallback   = "Error generating advice. Please try again."
	adviceDefault    = "Growth strategy generated."
	intelFallback    = "Error gathering market intel. Please try again."
	intelDefault     = "Market intelligence report generated."
	layoutFallback   = "Error generating layout. Please try again."
	layoutDefault    = "Custom store layout generated."
	strategyFallback = "Error generating strategy. Please try again."
)

// AIToolsHandler exposes the prompt-templated tools and the assistant chat.
// Every endpoint answers 200 with a result string; gateway failures surface
// as the domain fallback text, not as HTTP errors.
type AIToolsHandler struct {
	App *app.Controller
	AI  *gemini.Client
}

func (h *AIToolsHandler) Register(r *chi.Mux) {
	r.Post("/ai/vision", h.vision)
	r.Post("/ai/advice", h.advice)
	r.Post("/ai/intel", h.intel)
	r.Post("/ai/layout", h.layout)
	r.Post("/ai/strategy", h.strategy)
	r.Get("/assistant", h.assistantHistory)
	r.Post("/assistant", h.assistantSend)
}

func (h *AIToolsHandler) vision(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Image string `json:"image"` // base64-encoded JPEG
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Image == "" {
		errJSON(w, http.StatusBadRequest, "missing image")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), aiTimeout)
	defer cancel()

	res, err := h.AI.IdentifyProduct(ctx, req.Image)
	writeResult(w, "vision", res, err, visionDefault, visionFallback)
}

func (h *AIToolsHandler) advice(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Query string `json:"query"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Query) == "" {
		errJSON(w, http.StatusBadRequest, "missing query")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), aiTimeout)
	defer cancel()

	res, err := h.AI.BusinessAdvice(ctx, req.Query, h.App.User().Context())
	writeResult(w, "advice", res, err, adviceDefault, adviceFallback)
}

func (h *AIToolsHandler) intel(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Area string `json:"area"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Area) == "" {
		errJSON(w, http.StatusBadRequest, "missing area")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), aiTimeout)
	defer cancel()

	res, err := h.AI.MarketIntelligence(ctx, req.Area, h.App.User().Context())
	writeResult(w, "intel", res, err, intelDefault, intelFallback)
}

func (h *AIToolsHandler) layout(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Dimensions string `json:"dimensions"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Dimensions) == "" {
		errJSON(w, http.StatusBadRequest, "missing dimensions")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), aiTimeout)
	defer cancel()

	res, err := h.AI.StoreLayout(ctx, req.Dimensions, h.App.User().Context())
	writeResult(w, "layout", res, err, layoutDefault, layoutFallback)
}

// strategy analyzes a catalog deal and proposes counter-offer targets.
func (h *AIToolsHandler) strategy(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID string `json:"product_id"`
		Qty       int    `json:"qty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errJSON(w, http.StatusBadRequest, "invalid json")
		return
	}
	p, ok := catalog.FindProduct(req.ProductID)
	if !ok {
		errJSON(w, http.StatusNotFound, "product not in catalog")
		return
	}
	if req.Qty <= 0 {
		req.Qty = p.MinOrderQty
	}

	ctx, cancel := context.WithTimeout(r.Context(), aiTimeout)
	defer cancel()

	res, err := h.AI.NegotiationStrategy(ctx, p.Name, p.MRP, p.Price, req.Qty)
	writeResult(w, "strategy", res, err, strategyFallback, strategyFallback)
}

func (h *AIToolsHandler) assistantHistory(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"messages": h.App.AssistantHistory()})
}

func (h *AIToolsHandler) assistantSend(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Message) == "" {
		errJSON(w, http.StatusBadRequest, "missing message")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), aiTimeout)
	defer cancel()

	writeJSON(w, http.StatusOK, map[string]any{
		"messages": h.App.AssistantSend(ctx, req.Message),
	})
}

func writeResult(w http.ResponseWriter, tool, res string, err error, empty, fallback string) {
	if err != nil {
		log.Printf("ai %s failed: %v", tool, err)
		res = fallback
	} else if strings.TrimSpace(res) == "" {
		res = empty
	}
	writeJSON(w, http.StatusOK, map[string]string{"result": res})
}
