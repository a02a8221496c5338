package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/searchbeam/filterdsl"
	"github.com/searchbeam/filterdsl/internal/domain"
	healthuc "github.com/searchbeam/filterdsl/internal/usecase/health"
	registryuc "github.com/searchbeam/filterdsl/internal/usecase/registry"
	translateuc "github.com/searchbeam/filterdsl/internal/usecase/translate"
)

// errorCode identifies a machine-readable API error class.
type errorCode string

const (
	codeBadRequest            errorCode = "bad_request"
	codeInvalidFilters        errorCode = "invalid_filters"
	codeInvalidFilterOperator errorCode = "invalid_filter_operator"
	codeInvalidSort           errorCode = "invalid_sort"
	codeInvalidAggregation    errorCode = "invalid_aggregation"
	codeInvalidModel          errorCode = "invalid_model"
	codeInvalidModelName      errorCode = "invalid_model_name"
	codeModelNotFound         errorCode = "model_not_found"
	codeRegistryReadOnly      errorCode = "registry_read_only"
	codeInternalError         errorCode = "internal_error"
)

// errorResponse is the JSON error envelope.
type errorResponse struct {
	Code    errorCode `json:"code"`
	Message string    `json:"message"`
}

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server exposes the translation engine and model registry over HTTP.
type Server struct {
	translator    *translateuc.Service
	models        *registryuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	translator *translateuc.Service,
	models *registryuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		translator: translator,
		models:     models,
		health:     health,
		logger:     logger,
	}
	s.errorHandlers = []errorHandler{
		unknownOperatorHandler,
		sentinelHandler(domain.ErrModelNotFound, http.StatusNotFound, codeModelNotFound),
		sentinelHandler(domain.ErrInvalidModelName, http.StatusBadRequest, codeInvalidModelName),
		sentinelHandler(domain.ErrRegistryReadOnly, http.StatusMethodNotAllowed, codeRegistryReadOnly),
		sentinelHandler(filterdsl.ErrInvalidFilters, http.StatusBadRequest, codeInvalidFilters),
		sentinelHandler(filterdsl.ErrInvalidSort, http.StatusBadRequest, codeInvalidSort),
		sentinelHandler(filterdsl.ErrInvalidAgg, http.StatusBadRequest, codeInvalidAggregation),
		sentinelHandler(filterdsl.ErrInvalidModel, http.StatusBadRequest, codeInvalidModel),
	}
	return s
}

// Routes mounts all API endpoints on the router.
func (s *Server) Routes(r chi.Router) {
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)

	r.Route("/v1/models", func(r chi.Router) {
		r.Get("/", s.ListModels)
		r.Route("/{model}", func(r chi.Router) {
			r.Get("/", s.GetModel)
			r.Put("/", s.PutModel)
			r.Delete("/", s.DeleteModel)
			r.Post("/query", s.TranslateQuery)
		})
	})
}

// TranslateQuery handles POST /v1/models/{model}/query.
func (s *Server) TranslateQuery(w http.ResponseWriter, r *http.Request) {
	var req translateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	body, err := s.translator.Translate(r.Context(), chi.URLParam(r, "model"), searchRequestFromWire(req))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, body)
}

// ListModels handles GET /v1/models.
func (s *Server) ListModels(w http.ResponseWriter, r *http.Request) {
	models, err := s.models.List(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	items := make([]modelResponse, len(models))
	for i, m := range models {
		items[i] = modelToWire(m.Name, m.Model)
	}

	writeJSON(w, http.StatusOK, modelListResponse{Items: items})
}

// GetModel handles GET /v1/models/{model}.
func (s *Server) GetModel(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "model")

	m, err := s.models.Get(r.Context(), name)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, modelToWire(name, m))
}

// PutModel handles PUT /v1/models/{model}.
func (s *Server) PutModel(w http.ResponseWriter, r *http.Request) {
	var req putModelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if len(req.Fields) == 0 {
		writeError(w, http.StatusBadRequest, codeInvalidModel, "At least one field is required")
		return
	}

	name := chi.URLParam(r, "model")
	m, err := s.models.Put(r.Context(), name, req.Fields)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, modelToWire(name, m))
}

// DeleteModel handles DELETE /v1/models/{model}.
func (s *Server) DeleteModel(w http.ResponseWriter, r *http.Request) {
	if err := s.models.Delete(r.Context(), chi.URLParam(r, "model")); err != nil {
		s.handleDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, healthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code errorCode, message string) {
	writeJSON(w, status, errorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrModelNotFound,
		domain.ErrInvalidModelName,
		domain.ErrRegistryReadOnly,
		filterdsl.ErrInvalidFilterOperator,
		filterdsl.ErrInvalidFilters,
		filterdsl.ErrInvalidSort,
		filterdsl.ErrInvalidAgg,
		filterdsl.ErrInvalidModel,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code errorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

// unknownOperatorHandler handles unrecognized filter operators with the offending token as an extra field.
func unknownOperatorHandler(w http.ResponseWriter, err error, msg string) bool {
	if !errors.Is(err, filterdsl.ErrInvalidFilterOperator) {
		return false
	}
	var uoe *filterdsl.UnknownOperatorError
	if errors.As(err, &uoe) {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"code":     codeInvalidFilterOperator,
			"message":  msg,
			"operator": uoe.Token,
		})
		return true
	}
	writeError(w, http.StatusBadRequest, codeInvalidFilterOperator, msg)
	return true
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}

// translateRequest is the wire form of a translation call.
type translateRequest struct {
	Filters      any        `json:"filters"`
	Sort         []sortItem `json:"sort"`
	Aggregations []aggItem  `json:"aggregations"`
}

type sortItem struct {
	Field string `json:"field"`
	Order string `json:"order"`
}

type aggItem struct {
	Name  string `json:"name"`
	Field string `json:"field"`
	Size  int    `json:"size"`
}

// putModelRequest carries a model descriptor in its wire form.
type putModelRequest struct {
	Fields map[string]any `json:"fields"`
}

// modelResponse is the wire form of a stored model descriptor.
type modelResponse struct {
	Name   string            `json:"name"`
	Fields map[string]string `json:"fields"`
}

type modelListResponse struct {
	Items []modelResponse `json:"items"`
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func searchRequestFromWire(req translateRequest) filterdsl.SearchRequest {
	out := filterdsl.SearchRequest{Filters: req.Filters}
	for _, sf := range req.Sort {
		out.Sort = append(out.Sort, filterdsl.SortField{
			Field: sf.Field,
			Order: filterdsl.SortOrder(sf.Order),
		})
	}
	for _, agg := range req.Aggregations {
		out.Aggregations = append(out.Aggregations, filterdsl.Aggregation{
			Name:  agg.Name,
			Field: agg.Field,
			Size:  agg.Size,
		})
	}
	return out
}

func modelToWire(name string, m filterdsl.Model) modelResponse {
	fields := make(map[string]string, m.Len())
	for _, f := range m.Fields() {
		fields[f] = string(m.Type(f))
	}
	return modelResponse{Name: name, Fields: fields}
}
