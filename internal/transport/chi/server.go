// Package chi exposes the order read API over HTTP.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/ordex/internal/domain"
	domorder "github.com/kailas-cloud/ordex/internal/domain/order"
	"github.com/kailas-cloud/ordex/internal/domain/search"
	healthuc "github.com/kailas-cloud/ordex/internal/usecase/health"
	orderuc "github.com/kailas-cloud/ordex/internal/usecase/order"
)

// Error codes returned in the response body.
const (
	codeBadRequest       = "bad_request"
	codeValidationFailed = "validation_failed"
	codeOrderNotFound    = "order_not_found"
	codeInternalError    = "internal_error"
)

// Server wires HTTP routes to the order and health services.
type Server struct {
	orders *orderuc.Service
	health *healthuc.Service
	limits search.Limits
	logger *zap.Logger
}

// NewServer creates an HTTP API server.
func NewServer(orders *orderuc.Service, health *healthuc.Service, logger *zap.Logger) *Server {
	return &Server{orders: orders, health: health, logger: logger}
}

// WithPagination overrides the default and maximum page size.
func (s *Server) WithPagination(defaultSize, maxSize int) *Server {
	s.limits = search.Limits{DefaultSize: defaultSize, MaxSize: maxSize}
	return s
}

// Routes mounts all API routes on the router.
func (s *Server) Routes(r chi.Router) {
	r.Route("/api/v1/orders", func(r chi.Router) {
		r.Get("/", s.searchOrders)
		r.Get("/{orderID}", s.getOrder)
	})
	r.Get("/health", s.healthCheck)
	r.Handle("/metrics", promhttp.Handler())
}

// getOrder handles GET /api/v1/orders/{orderID}.
func (s *Server) getOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderID")
	if orderID == "" {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "order id is required")
		return
	}

	o, err := s.orders.GetByID(r.Context(), orderID)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, getOrderResponse{Order: o})
}

// searchOrders handles GET /api/v1/orders.
func (s *Server) searchOrders(w http.ResponseWriter, r *http.Request) {
	params, err := filterParamsFromQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}

	filters, err := search.NewFiltersWithLimits(params, s.limits)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	page, err := s.orders.Search(r.Context(), filters)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, searchOrdersResponse{
		Total:      page.Total,
		Page:       page.Page,
		Size:       page.Size,
		TotalPages: page.TotalPages,
		Items:      page.Orders,
	})
}

// healthCheck handles GET /health.
func (s *Server) healthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	status := http.StatusOK
	if report.Status != healthuc.Healthy {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, healthResponse{
		Status: string(report.Status),
		Checks: report.Checks,
	})
}

// filterParamsFromQuery parses the search query string into raw filter params.
func filterParamsFromQuery(r *http.Request) (search.Params, error) {
	q := r.URL.Query()

	p := search.Params{
		OrderID:     q.Get("order_id"),
		OrderStatus: q.Get("order_status"),
		NationalID:  q.Get("national_id"),
		Mobile:      q.Get("mobile"),
		Email:       q.Get("email"),
		OrderDate:   q.Get("order_date"),
		SortBy:      q.Get("sort_by"),
		SortOrder:   q.Get("sort_order"),
	}

	var err error
	if p.Page, err = intParam(q.Get("page"), "page"); err != nil {
		return search.Params{}, err
	}
	if p.Size, err = intParam(q.Get("size"), "size"); err != nil {
		return search.Params{}, err
	}

	if raw := q.Get("encrypted"); raw != "" {
		enc, err := strconv.ParseBool(raw)
		if err != nil {
			return search.Params{}, errors.New("encrypted must be a boolean")
		}
		p.Encrypted = &enc
	}

	return p, nil
}

func intParam(raw, name string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New(name + " must be an integer")
	}
	return n, nil
}

// handleDomainError maps sentinel errors to HTTP responses.
func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrOrderNotFound):
		writeError(w, http.StatusNotFound, codeOrderNotFound, "order not found")
	case errors.Is(err, domain.ErrInvalidFilter):
		writeError(w, http.StatusBadRequest, codeValidationFailed, err.Error())
	default:
		s.logger.Error("request failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
	}
}

// --- Response shapes ---

type getOrderResponse struct {
	Order domorder.Order `json:"order"`
}

type searchOrdersResponse struct {
	Total      int              `json:"total"`
	Page       int              `json:"page"`
	Size       int              `json:"size"`
	TotalPages int              `json:"total_pages"`
	Items      []domorder.Order `json:"items"`
}

type healthResponse struct {
	Status string                          `json:"status"`
	Checks map[string]healthuc.CheckResult `json:"checks"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Code: code, Message: message})
}
