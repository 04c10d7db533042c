package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rl1809/storefront/internal/adapter/storage"
	"github.com/rl1809/storefront/internal/core/domain"
	"github.com/rl1809/storefront/internal/core/service"
	"github.com/rl1809/storefront/internal/metrics"
	"github.com/rl1809/storefront/internal/port"
)

type testServer struct {
	handler http.Handler
	db      *sqlx.DB
	idem    port.IdempotencyStore
}

func newTestServer(t *testing.T, idem port.IdempotencyStore) *testServer {
	t.Helper()
	ctx := context.Background()

	db, err := storage.Open(ctx, storage.DriverSQLite, ":memory:", storage.PoolConfig{MaxOpenConns: 1})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, storage.Migrate(ctx, db))

	if idem == nil {
		idem = storage.NoopIdempotencyStore{}
	}

	log := zap.NewNop()
	m := metrics.New()
	a := storage.NewSQLAdapter(db)
	h := NewHTTPHandler(service.NewCatalogService(a, log), service.NewSaleService(a, log), idem, m, log)

	return &testServer{
		handler: NewRouter(h, RouterConfig{Logger: log, Metrics: m, RequestTimeout: 5 * time.Second}),
		db:      db,
		idem:    idem,
	}
}

func (s *testServer) do(t *testing.T, method, path string, body any, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	switch v := body.(type) {
	case nil:
	case string:
		buf.WriteString(v)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(v))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) seed(t *testing.T, stock int, price string) (customerID, productID int64) {
	t.Helper()
	rec := s.do(t, http.MethodPost, "/customers", map[string]any{"name": "Ana", "phone": "555-0100"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var c domain.Customer
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &c))

	rec = s.do(t, http.MethodPost, "/products", map[string]any{
		"name": "Shirt", "size": "M", "color": "blue", "price": json.Number(price), "stock": stock,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var p domain.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	return c.ID, p.ID
}

func (s *testServer) stock(t *testing.T, productID int64) int {
	t.Helper()
	rec := s.do(t, http.MethodGet, "/products", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var products []domain.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	for _, p := range products {
		if p.ID == productID {
			return p.Stock
		}
	}
	t.Fatalf("product %d not listed", productID)
	return 0
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Error
}

func TestHealthCheck(t *testing.T) {
	s := newTestServer(t, nil)

	rec := s.do(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestCustomers(t *testing.T) {
	s := newTestServer(t, nil)

	rec := s.do(t, http.MethodGet, "/customers", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = s.do(t, http.MethodPost, "/customers", map[string]any{"name": "Ana", "mail": "ana@example.com"})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":1,"name":"Ana","phone":null,"mail":"ana@example.com"}`, rec.Body.String())

	rec = s.do(t, http.MethodGet, "/customers", nil)
	assert.JSONEq(t, `[{"id":1,"name":"Ana","phone":null,"mail":"ana@example.com"}]`, rec.Body.String())
}

func TestCreateCustomer_EmptyName(t *testing.T) {
	s := newTestServer(t, nil)

	rec := s.do(t, http.MethodPost, "/customers", map[string]any{"name": ""})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec), "name")

	rec = s.do(t, http.MethodGet, "/customers", nil)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestCreateProduct_Invalid(t *testing.T) {
	s := newTestServer(t, nil)

	tests := []struct {
		name string
		body any
	}{
		{"missing price", map[string]any{"name": "Shirt", "stock": 1}},
		{"negative price", map[string]any{"name": "Shirt", "price": -1, "stock": 1}},
		{"negative stock", map[string]any{"name": "Shirt", "price": 1, "stock": -1}},
		{"missing name", map[string]any{"price": 1, "stock": 1}},
		{"malformed", `{"name":`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := s.do(t, http.MethodPost, "/products", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.NotEmpty(t, decodeError(t, rec))
		})
	}

	rec := s.do(t, http.MethodGet, "/products", nil)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestCreateSale_Success(t *testing.T) {
	s := newTestServer(t, nil)
	customerID, productID := s.seed(t, 5, "10.00")

	rec := s.do(t, http.MethodPost, "/sales", map[string]any{
		"customer_id": customerID,
		"items":       []map[string]any{{"product_id": productID, "quantity": 3}},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp struct {
		Message   string      `json:"message"`
		SaleID    int64       `json:"sale_id"`
		Reference string      `json:"reference"`
		Total     json.Number `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "sale recorded successfully", resp.Message)
	assert.Equal(t, int64(1), resp.SaleID)
	assert.NotEmpty(t, resp.Reference)
	assert.Equal(t, "30", resp.Total.String())
	assert.Equal(t, 2, s.stock(t, productID))

	rec = s.do(t, http.MethodGet, "/sales", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var sales []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sales))
	require.Len(t, sales, 1)
	assert.Equal(t, "Ana", sales[0]["customer_name"])
	assert.Equal(t, "555-0100", sales[0]["phone"])
	assert.Nil(t, sales[0]["mail"])
	assert.Contains(t, sales[0], "timestamp")

	rec = s.do(t, http.MethodGet, "/sales/1/items", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var items []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "Shirt", items[0]["product_name"])
	assert.Equal(t, "M", items[0]["size"])
	assert.Equal(t, "blue", items[0]["color"])
	assert.EqualValues(t, 3, items[0]["quantity"])
	assert.EqualValues(t, 10, items[0]["unit_price"])
}

func TestCreateSale_InsufficientStock(t *testing.T) {
	s := newTestServer(t, nil)
	customerID, productID := s.seed(t, 2, "10.00")

	rec := s.do(t, http.MethodPost, "/sales", map[string]any{
		"customer_id": customerID,
		"items":       []map[string]any{{"product_id": productID, "quantity": 3}},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "insufficient stock for product 1", decodeError(t, rec))
	assert.Equal(t, 2, s.stock(t, productID))

	rec = s.do(t, http.MethodGet, "/sales", nil)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestCreateSale_UnknownProductAfterValidOne(t *testing.T) {
	s := newTestServer(t, nil)
	customerID, productID := s.seed(t, 5, "10.00")

	rec := s.do(t, http.MethodPost, "/sales", map[string]any{
		"customer_id": customerID,
		"items": []map[string]any{
			{"product_id": productID, "quantity": 1},
			{"product_id": 999, "quantity": 1},
		},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "product 999 does not exist", decodeError(t, rec))
	assert.Equal(t, 5, s.stock(t, productID))
}

func TestCreateSale_BadRequests(t *testing.T) {
	s := newTestServer(t, nil)
	customerID, productID := s.seed(t, 5, "10.00")

	tests := []struct {
		name string
		body any
	}{
		{"malformed json", `{"customer_id":`},
		{"no items", map[string]any{"customer_id": customerID, "items": []any{}}},
		{"zero quantity", map[string]any{
			"customer_id": customerID,
			"items":       []map[string]any{{"product_id": productID, "quantity": 0}},
		}},
		{"unknown customer", map[string]any{
			"customer_id": 999,
			"items":       []map[string]any{{"product_id": productID, "quantity": 1}},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := s.do(t, http.MethodPost, "/sales", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.NotEmpty(t, decodeError(t, rec))
		})
	}
	assert.Equal(t, 5, s.stock(t, productID))
}

func TestListSaleItems(t *testing.T) {
	s := newTestServer(t, nil)

	for _, id := range []string{"42", "0", "-1"} {
		rec := s.do(t, http.MethodGet, "/sales/"+id+"/items", nil)
		assert.Equal(t, http.StatusOK, rec.Code, id)
		assert.JSONEq(t, `[]`, rec.Body.String(), id)
	}

	rec := s.do(t, http.MethodGet, "/sales/abc/items", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid sale id", decodeError(t, rec))
}

func TestInternalErrorIsHidden(t *testing.T) {
	s := newTestServer(t, nil)
	require.NoError(t, s.db.Close())

	for _, path := range []string{"/customers", "/products", "/sales"} {
		rec := s.do(t, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusInternalServerError, rec.Code, path)
		assert.Equal(t, "internal server error", decodeError(t, rec))
	}

	rec := s.do(t, http.MethodPost, "/sales", map[string]any{
		"customer_id": 1,
		"items":       []map[string]any{{"product_id": 1, "quantity": 1}},
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal server error", decodeError(t, rec))
}

func newRedisStore(t *testing.T) *storage.RedisAdapter {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return storage.NewRedisAdapter(client, time.Hour)
}

func TestCreateSale_IdempotentReplay(t *testing.T) {
	s := newTestServer(t, newRedisStore(t))
	customerID, productID := s.seed(t, 5, "10.00")
	body := map[string]any{
		"customer_id": customerID,
		"items":       []map[string]any{{"product_id": productID, "quantity": 2}},
	}

	first := s.do(t, http.MethodPost, "/sales", body, idempotencyHeader, "order-123")
	require.Equal(t, http.StatusCreated, first.Code, first.Body.String())

	second := s.do(t, http.MethodPost, "/sales", body, idempotencyHeader, "order-123")
	require.Equal(t, http.StatusCreated, second.Code)
	assert.Equal(t, "true", second.Header().Get("Idempotent-Replayed"))
	assert.JSONEq(t, first.Body.String(), second.Body.String())

	assert.Equal(t, 3, s.stock(t, productID))
}

func TestCreateSale_IdempotencyKeyInFlight(t *testing.T) {
	s := newTestServer(t, newRedisStore(t))
	customerID, productID := s.seed(t, 5, "10.00")

	status, _, err := s.idem.Reserve(context.Background(), "order-123", "other-request")
	require.NoError(t, err)
	require.Equal(t, port.IdempotencyReserved, status)

	rec := s.do(t, http.MethodPost, "/sales", map[string]any{
		"customer_id": customerID,
		"items":       []map[string]any{{"product_id": productID, "quantity": 1}},
	}, idempotencyHeader, "order-123")
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "duplicate request", decodeError(t, rec))
	assert.Equal(t, 5, s.stock(t, productID))
}

func TestCreateSale_RejectedKeyCanRetry(t *testing.T) {
	s := newTestServer(t, newRedisStore(t))
	customerID, productID := s.seed(t, 1, "10.00")
	body := map[string]any{
		"customer_id": customerID,
		"items":       []map[string]any{{"product_id": productID, "quantity": 2}},
	}

	rec := s.do(t, http.MethodPost, "/sales", body, idempotencyHeader, "order-9")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// the failed attempt released the key, so the retry is evaluated again
	rec = s.do(t, http.MethodPost, "/sales", body, idempotencyHeader, "order-9")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, rec.Header().Get("Idempotent-Replayed"))
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t, nil)
	s.do(t, http.MethodGet, "/health", nil)

	rec := s.do(t, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "storefront_http_requests_total")
}
