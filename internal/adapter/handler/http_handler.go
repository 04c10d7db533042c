package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rl1809/storefront/internal/core/domain"
	"github.com/rl1809/storefront/internal/core/service"
	"github.com/rl1809/storefront/internal/metrics"
	"github.com/rl1809/storefront/internal/port"
)

const (
	maxBodyBytes         = 1 << 20
	maxIdempotencyKeyLen = 128
	idempotencyHeader    = "Idempotency-Key"
)

type HTTPHandler struct {
	catalog     *service.CatalogService
	sales       *service.SaleService
	idempotency port.IdempotencyStore
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type CreateSaleResponse struct {
	Message string `json:"message"`
	domain.SaleReceipt
}

func NewHTTPHandler(
	catalog *service.CatalogService,
	sales *service.SaleService,
	idempotency port.IdempotencyStore,
	m *metrics.Metrics,
	logger *zap.Logger,
) *HTTPHandler {
	return &HTTPHandler{
		catalog:     catalog,
		sales:       sales,
		idempotency: idempotency,
		metrics:     m,
		logger:      logger,
	}
}

func (h *HTTPHandler) Routes(r chi.Router) {
	r.Get("/health", h.HealthCheck)

	r.Route("/customers", func(r chi.Router) {
		r.Post("/", h.CreateCustomer)
		r.Get("/", h.ListCustomers)
	})
	r.Route("/products", func(r chi.Router) {
		r.Post("/", h.CreateProduct)
		r.Get("/", h.ListProducts)
	})
	r.Route("/sales", func(r chi.Router) {
		r.Post("/", h.CreateSale)
		r.Get("/", h.ListSales)
		r.Get("/{id}/items", h.ListSaleItems)
	})
}

func (h *HTTPHandler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var req domain.NewCustomer
	if !h.decode(w, r, &req) {
		return
	}

	customer, err := h.catalog.CreateCustomer(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, customer)
}

func (h *HTTPHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.catalog.ListCustomers(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, customers)
}

func (h *HTTPHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req domain.NewProduct
	if !h.decode(w, r, &req) {
		return
	}

	product, err := h.catalog.CreateProduct(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, product)
}

func (h *HTTPHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalog.ListProducts(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *HTTPHandler) CreateSale(w http.ResponseWriter, r *http.Request) {
	var req domain.SaleRequest
	if !h.decode(w, r, &req) {
		h.metrics.ObserveSale("http", metrics.OutcomeRejected)
		return
	}

	key := r.Header.Get(idempotencyHeader)
	if len(key) > maxIdempotencyKeyLen {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "idempotency key too long"})
		return
	}

	owner := uuid.NewString()
	if key != "" {
		status, stored, err := h.idempotency.Reserve(r.Context(), key, owner)
		if err != nil {
			h.metrics.ObserveSale("http", metrics.OutcomeFailed)
			h.writeError(w, r, err)
			return
		}
		switch status {
		case port.IdempotencyCompleted:
			h.metrics.ObserveSale("http", metrics.OutcomeReplayed)
			w.Header().Set("Idempotent-Replayed", "true")
			writeRawJSON(w, http.StatusCreated, stored)
			return
		case port.IdempotencyPending:
			h.metrics.ObserveSale("http", metrics.OutcomeConflict)
			writeJSON(w, http.StatusConflict, ErrorResponse{Error: "duplicate request"})
			return
		}
	}

	receipt, err := h.sales.CreateSale(r.Context(), req)
	if err != nil {
		if key != "" {
			h.releaseKey(r.Context(), key, owner)
		}
		if domain.IsRejection(err) {
			h.metrics.ObserveSale("http", metrics.OutcomeRejected)
		} else {
			h.metrics.ObserveSale("http", metrics.OutcomeFailed)
		}
		h.writeError(w, r, err)
		return
	}

	body, err := json.Marshal(CreateSaleResponse{
		Message:     "sale recorded successfully",
		SaleReceipt: *receipt,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if key != "" {
		if err := h.idempotency.Complete(context.WithoutCancel(r.Context()), key, owner, body); err != nil {
			h.logger.Warn("store idempotent response",
				zap.String("request_id", chimw.GetReqID(r.Context())),
				zap.Int64("sale_id", receipt.SaleID),
				zap.Error(err),
			)
		}
	}

	h.metrics.ObserveSale("http", metrics.OutcomeCreated)
	writeRawJSON(w, http.StatusCreated, body)
}

func (h *HTTPHandler) ListSales(w http.ResponseWriter, r *http.Request) {
	sales, err := h.sales.ListSales(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sales)
}

func (h *HTTPHandler) ListSaleItems(w http.ResponseWriter, r *http.Request) {
	saleID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid sale id"})
		return
	}

	items, err := h.sales.ListSaleItems(r.Context(), saleID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *HTTPHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *HTTPHandler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return false
	}
	return true
}

func (h *HTTPHandler) releaseKey(ctx context.Context, key, owner string) {
	if err := h.idempotency.Release(context.WithoutCancel(ctx), key, owner); err != nil {
		h.logger.Warn("release idempotency key",
			zap.String("request_id", chimw.GetReqID(ctx)),
			zap.Error(err),
		)
	}
}

// writeError sends domain rejections back verbatim and hides everything else
// behind a generic 500.
func (h *HTTPHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if domain.IsRejection(err) {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: rejectionMessage(err)})
		return
	}

	h.logger.Error("request failed",
		zap.String("request_id", chimw.GetReqID(r.Context())),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Error(err),
	)
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}

func rejectionMessage(err error) string {
	var itemErr *domain.ItemError
	if errors.As(err, &itemErr) {
		return itemErr.Error()
	}
	return err.Error()
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeRawJSON(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(body)
}
