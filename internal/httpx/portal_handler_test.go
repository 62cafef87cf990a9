package httpx

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/elavarasan-maker/RETAILIQO/internal/app"
	"github.com/elavarasan-maker/RETAILIQO/internal/cart"
	"github.com/elavarasan-maker/RETAILIQO/internal/gemini"
	"github.com/elavarasan-maker/RETAILIQO/internal/orders"
	"github.com/elavarasan-maker/RETAILIQO/internal/quotes"
	"github.com/elavarasan-maker/RETAILIQO/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// In-memory gateway stand-ins. The portal handler is exercised through a real
// router so the tests cover routing, decoding and status mapping.

type memGateway struct {
	profile *session.Merchant
	quotes  []quotes.Quote
	orders  []orders.Order
	cached  *session.Merchant
}

func (m *memGateway) Get(_ context.Context, mobile string) (*session.Merchant, error) {
	if m.profile == nil || m.profile.Mobile != mobile {
		return nil, nil
	}
	p := *m.profile
	return &p, nil
}

func (m *memGateway) Upsert(_ context.Context, u session.Merchant) error {
	m.profile = &u
	return nil
}

func (m *memGateway) ListByMerchant(context.Context, string) ([]quotes.Quote, error) {
	return m.quotes, nil
}

func (m *memGateway) Create(_ context.Context, q quotes.Quote, _ string) error {
	m.quotes = append(m.quotes, q)
	return nil
}

func (m *memGateway) Update(context.Context, quotes.Quote) error { return nil }

func (m *memGateway) Place(_ context.Context, o orders.Order, _, _ string) error {
	m.orders = append(m.orders, o)
	return nil
}

func (m *memGateway) Load(context.Context) (*session.Merchant, error) { return m.cached, nil }
func (m *memGateway) Save(_ context.Context, u session.Merchant) error {
	m.cached = &u
	return nil
}
func (m *memGateway) Delete(context.Context) error {
	m.cached = nil
	return nil
}

type ordersFromGateway struct{ g *memGateway }

func (o *ordersFromGateway) ListByMerchant(context.Context, string) ([]orders.Order, error) {
	return o.g.orders, nil
}

type stubAI struct{ reply string }

func (s *stubAI) Reply(context.Context, []quotes.Message, string) (string, error) {
	return s.reply, nil
}

func newTestServer(t *testing.T) (*httptest.Server, *memGateway) {
	t.Helper()
	g := &memGateway{
		cached: &session.Merchant{
			Name: "Ravi Kumar", Mobile: "9876543210",
			ShopName: "Sri Lakshmi Stores", Address: "12 Bazaar Road", Location: "Coimbatore",
			BusinessCategory: "Supermarkets/Grocery Stores",
			IsLoggedIn:       true, IsSubscribed: true,
		},
	}
	sess := &session.Service{Profiles: g, Quotes: g, Orders: &ordersFromGateway{g}, Cache: g}
	qs := &quotes.Service{Store: g, AI: &stubAI{reply: "Best I can do is close."}, Book: g}
	ctrl := app.NewController(context.Background(), sess, qs, &cart.Checkout{Book: g})

	r := NewRouter()
	h := &PortalHandler{App: ctrl}
	h.Register(r)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, g
}

func getJSON(t *testing.T, url string, out any) int {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func postJSON(t *testing.T, url, body string, out any) int {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestHealthz(t *testing.T) {
	srv, _ := newTestServer(t)
	assert.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/healthz", nil))
}

func TestGetState(t *testing.T) {
	srv, _ := newTestServer(t)

	var st app.State
	code := getJSON(t, srv.URL+"/state", &st)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "9876543210", st.User.Mobile)
	assert.True(t, st.User.IsSubscribed)
}

func TestListProducts(t *testing.T) {
	srv, _ := newTestServer(t)

	var all []map[string]any
	code := getJSON(t, srv.URL+"/products", &all)
	assert.Equal(t, http.StatusOK, code)
	assert.Len(t, all, 10)

	var filtered []map[string]any
	getJSON(t, srv.URL+"/products?category=Electronics&q=soundcore", &filtered)
	require.Len(t, filtered, 1)
	assert.Equal(t, "P005", filtered[0]["id"])
}

func TestListCategories(t *testing.T) {
	srv, _ := newTestServer(t)

	var out map[string][]string
	code := getJSON(t, srv.URL+"/categories", &out)
	assert.Equal(t, http.StatusOK, code)
	assert.Len(t, out["categories"], 5)
	assert.Len(t, out["business_categories"], 6)
}

func TestGetDashboard(t *testing.T) {
	srv, _ := newTestServer(t)

	var out struct {
		WeeklySales []map[string]any `json:"weekly_sales"`
		StockLevels []map[string]any `json:"stock_levels"`
	}
	code := getJSON(t, srv.URL+"/dashboard", &out)
	assert.Equal(t, http.StatusOK, code)
	assert.Len(t, out.WeeklySales, 7)
	assert.Len(t, out.StockLevels, 4)
}

func TestNavigateEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)

	var out map[string]string
	code := postJSON(t, srv.URL+"/navigate", `{"view":"marketplace"}`, &out)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "marketplace", out["view"])

	code = postJSON(t, srv.URL+"/navigate", `{"view":"nope"}`, nil)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestOnboardingEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)

	body := `{"name":"Meena","mobile":"9999988888","shop_name":"Meena Mart","address":"4 Cross St","location":"Salem"}`
	var st app.State
	code := postJSON(t, srv.URL+"/onboarding", body, &st)
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, st.User.IsLoggedIn)
	assert.Equal(t, "Supermarkets/Grocery Stores", st.User.BusinessCategory)

	code = postJSON(t, srv.URL+"/onboarding", `{"name":"Meena"}`, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, code)
}

func TestQuoteFlowOverHTTP(t *testing.T) {
	srv, g := newTestServer(t)

	var q quotes.Quote
	code := postJSON(t, srv.URL+"/quotes", `{"product_id":"P001","qty":20}`, &q)
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, quotes.StatusPending, q.Status)

	code = postJSON(t, srv.URL+"/quotes/"+q.ID+"/counter", `{"offer":1300}`, &q)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, quotes.StatusNegotiating, q.Status)
	require.Len(t, q.ChatHistory, 2)
	assert.Equal(t, "Best I can do is close.", q.ChatHistory[1].Text)

	var o orders.Order
	code = postJSON(t, srv.URL+"/quotes/"+q.ID+"/accept", `{}`, &o)
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, 26000.0, o.Total)
	require.Len(t, g.orders, 1)

	// closed quotes conflict
	code = postJSON(t, srv.URL+"/quotes/"+q.ID+"/counter", `{"offer":1200}`, nil)
	assert.Equal(t, http.StatusConflict, code)

	code = postJSON(t, srv.URL+"/quotes/missing/accept", `{}`, nil)
	assert.Equal(t, http.StatusNotFound, code)

	code = postJSON(t, srv.URL+"/quotes", `{"product_id":"P999"}`, nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestCartFlowOverHTTP(t *testing.T) {
	srv, g := newTestServer(t)

	code := postJSON(t, srv.URL+"/cart/items", `{"product_id":"P001"}`, nil)
	require.Equal(t, http.StatusOK, code)

	req, err := http.NewRequest(http.MethodPut, srv.URL+"/cart/items/P001", strings.NewReader(`{"quantity":2}`))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var cartView struct {
		Items  []map[string]any `json:"items"`
		Totals cart.Totals      `json:"totals"`
	}
	code = getJSON(t, srv.URL+"/cart", &cartView)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, cartView.Items, 1)
	assert.Equal(t, 2900.0, cartView.Totals.Subtotal)

	var o orders.Order
	code = postJSON(t, srv.URL+"/checkout", `{}`, &o)
	require.Equal(t, http.StatusCreated, code)
	assert.True(t, strings.HasPrefix(o.ID, "RT-"))
	require.Len(t, g.orders, 1)

	// cart emptied, second checkout fails
	code = postJSON(t, srv.URL+"/checkout", `{}`, nil)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestRestockEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)

	var out struct {
		Added int              `json:"added"`
		Cart  []map[string]any `json:"cart"`
	}
	code := postJSON(t, srv.URL+"/restock", `{}`, &out)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, 3, out.Added)
	assert.Len(t, out.Cart, 3)
}

func geminiStub(t *testing.T, text string) *gemini.Client {
	t.Helper()
	body, _ := json.Marshal(map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{"parts": []map[string]string{{"text": text}}}},
		},
	})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(body)
	}))
	t.Cleanup(srv.Close)
	return gemini.NewClient("test-key", srv.URL, "")
}

func TestAIToolEndpoints(t *testing.T) {
	g := &memGateway{}
	sess := &session.Service{Profiles: g, Quotes: g, Orders: &ordersFromGateway{g}, Cache: g}
	qs := &quotes.Service{Store: g, AI: &stubAI{reply: "ok"}, Book: g}
	ctrl := app.NewController(context.Background(), sess, qs, &cart.Checkout{Book: g})

	r := NewRouter()
	ah := &AIToolsHandler{App: ctrl, AI: geminiStub(t, "Stock millets before Pongal.")}
	ah.Register(r)
	aiSrv := httptest.NewServer(r)
	t.Cleanup(aiSrv.Close)

	var out map[string]string
	code := postJSON(t, aiSrv.URL+"/ai/advice", `{"query":"sales are flat"}`, &out)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Stock millets before Pongal.", out["result"])

	code = postJSON(t, aiSrv.URL+"/ai/advice", `{"query":""}`, nil)
	assert.Equal(t, http.StatusBadRequest, code)

	code = postJSON(t, aiSrv.URL+"/ai/strategy", `{"product_id":"P001","qty":10}`, &out)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Stock millets before Pongal.", out["result"])

	code = postJSON(t, aiSrv.URL+"/ai/strategy", `{"product_id":"P999"}`, nil)
	assert.Equal(t, http.StatusNotFound, code)

	code = postJSON(t, aiSrv.URL+"/ai/vision", `{"image":"aGVsbG8="}`, &out)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Stock millets before Pongal.", out["result"])

	var thread struct {
		Messages []quotes.Message `json:"messages"`
	}
	code = getJSON(t, aiSrv.URL+"/assistant", &thread)
	assert.Equal(t, http.StatusOK, code)
	require.Len(t, thread.Messages, 1)
	assert.Equal(t, app.AssistantGreeting, thread.Messages[0].Text)

	code = postJSON(t, aiSrv.URL+"/assistant", `{"message":"hi"}`, &thread)
	assert.Equal(t, http.StatusOK, code)
	require.Len(t, thread.Messages, 3)
	assert.Equal(t, "ok", thread.Messages[2].Text)
}

func TestAIToolFallbackOnGatewayError(t *testing.T) {
	g := &memGateway{}
	sess := &session.Service{Profiles: g, Quotes: g, Orders: &ordersFromGateway{g}, Cache: g}
	qs := &quotes.Service{Store: g, AI: &stubAI{reply: "ok"}, Book: g}
	ctrl := app.NewController(context.Background(), sess, qs, &cart.Checkout{Book: g})

	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer bad.Close()

	r := NewRouter()
	ah := &AIToolsHandler{App: ctrl, AI: gemini.NewClient("test-key", bad.URL, "")}
	ah.Register(r)
	srv := httptest.NewServer(r)
	defer srv.Close()

	var out map[string]string
	code := postJSON(t, srv.URL+"/ai/advice", `{"query":"sales are flat"}`, &out)
	assert.Equal(t, http.StatusOK, code, "gateway errors never surface as HTTP errors")
	assert.Equal(t, adviceFallback, out["result"])

	code = postJSON(t, srv.URL+"/ai/vision", `{"image":"aGVsbG8="}`, &out)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, visionFallback, out["result"])
}
