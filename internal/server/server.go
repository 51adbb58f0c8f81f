package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/rpgo/savings-planner/internal/calculation"
	"github.com/rpgo/savings-planner/internal/config"
	"github.com/rpgo/savings-planner/internal/domain"
	"github.com/rpgo/savings-planner/internal/output"
	"go.uber.org/zap"
)

// DefaultMaxBodyBytes caps request bodies when no limit is configured.
const DefaultMaxBodyBytes int64 = 1 << 20

type handler struct {
	logger       *zap.Logger
	planner      *calculation.Planner
	parser       *config.InputParser
	maxBodyBytes int64
	version      string
}

// inputsRequest is any subset of the inputs, decoded over the defaults.
// CurrentAge shadows the embedded field so a missing age can be told apart
// from the default one.
type inputsRequest struct {
	CurrentAge *int `json:"current_age"`
	domain.InputParameters
}

func newInputsRequest() inputsRequest {
	return inputsRequest{InputParameters: config.DefaultInputs()}
}

// resolve applies an explicit age, or clears the default one when only a
// birth date was sent.
func (in inputsRequest) resolve() domain.InputParameters {
	params := in.InputParameters
	switch {
	case in.CurrentAge != nil:
		params.CurrentAge = *in.CurrentAge
	case params.BirthDate != nil:
		params.CurrentAge = 0
	}
	return params
}

// planRequest is a plan body: an optional name plus any subset of the inputs.
type planRequest struct {
	Name string `json:"name"`
	inputsRequest
}

// compareRequest is a configuration body whose defaults start from the built-in inputs.
type compareRequest struct {
	Defaults  inputsRequest        `json:"defaults"`
	Scenarios []domain.Scenario    `json:"scenarios"`
	Logging   domain.LoggingConfig `json:"logging"`
	Output    domain.OutputConfig  `json:"output"`
}

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

// NewHandler constructs the HTTP handler that serves the planning API.
func NewHandler(logger *zap.Logger, planner *calculation.Planner, maxBodyBytes int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if planner == nil {
		planner = calculation.NewPlanner()
	}
	if maxBodyBytes <= 0 {
		maxBodyBytes = DefaultMaxBodyBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{
		logger:       logger,
		planner:      planner,
		parser:       config.NewInputParser(),
		maxBodyBytes: maxBodyBytes,
		version:      trimmedVersion,
	}

	router := mux.NewRouter()
	router.Use(h.logRequests)
	router.MethodNotAllowedHandler = http.HandlerFunc(h.handleMethodNotAllowed)
	router.NotFoundHandler = http.HandlerFunc(h.handleNotFound)

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/plan", h.handlePlan).Methods(http.MethodPost)
	api.HandleFunc("/compare", h.handleCompare).Methods(http.MethodPost)
	api.HandleFunc("/defaults", h.handleDefaults).Methods(http.MethodGet)
	api.HandleFunc("/version", h.handleVersion).Methods(http.MethodGet)

	return router
}

func (h *handler) handlePlan(w http.ResponseWriter, r *http.Request) {
	req := planRequest{Name: "plan", inputsRequest: newInputsRequest()}
	if !h.decode(w, r, &req, "server.handlePlan") {
		return
	}

	result, err := h.planner.RunPlan(req.Name, req.resolve())
	if err != nil {
		h.respondValidationError(w, err, "server.handlePlan")
		return
	}

	if format := r.URL.Query().Get("format"); format != "" {
		summary := domain.NewScenarioSummary(result)
		h.render(w, &domain.ScenarioComparison{
			Scenarios:      []domain.ScenarioSummary{summary},
			Recommendation: calculation.Recommend([]domain.ScenarioSummary{summary}),
			Assumptions:    calculation.GenerateAssumptions(result.Inputs),
		}, format, "server.handlePlan")
		return
	}

	h.writeJSON(w, http.StatusOK, result)
}

func (h *handler) handleCompare(w http.ResponseWriter, r *http.Request) {
	req := compareRequest{Defaults: newInputsRequest()}
	if !h.decode(w, r, &req, "server.handleCompare") {
		return
	}
	cfg := domain.Configuration{
		Defaults:  req.Defaults.resolve(),
		Scenarios: req.Scenarios,
		Logging:   req.Logging,
		Output:    req.Output,
	}

	if err := h.parser.ValidateConfiguration(&cfg); err != nil {
		h.respondValidationError(w, err, "server.handleCompare")
		return
	}

	comparison, err := h.planner.RunScenarios(&cfg)
	if err != nil {
		h.respondValidationError(w, err, "server.handleCompare")
		return
	}

	if format := r.URL.Query().Get("format"); format != "" {
		h.render(w, comparison, format, "server.handleCompare")
		return
	}

	h.writeJSON(w, http.StatusOK, comparison)
}

func (h *handler) handleDefaults(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, config.DefaultInputs())
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) handleMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	h.respondError(w, http.StatusMethodNotAllowed,
		fmt.Sprintf("method %s not allowed on %s", r.Method, r.URL.Path), "method_not_allowed", "server.route")
}

func (h *handler) handleNotFound(w http.ResponseWriter, r *http.Request) {
	h.respondError(w, http.StatusNotFound, fmt.Sprintf("no route for %s", r.URL.Path), "not_found", "server.route")
}

// decode reads a size-limited JSON body into dst, writing the error response
// and returning false when the body is unusable.
func (h *handler) decode(w http.ResponseWriter, r *http.Request, dst any, op string) bool {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request body exceeds limit of %d bytes", h.maxBodyBytes), "request_too_large", op)
			return false
		}
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid JSON body: %v", err), "invalid_json", op)
		return false
	}
	return true
}

func (h *handler) render(w http.ResponseWriter, comparison *domain.ScenarioComparison, format, op string) {
	var buf bytes.Buffer
	if err := output.Render(&buf, comparison, format); err != nil {
		if errors.Is(err, output.ErrUnsupportedFormat) {
			h.respondError(w, http.StatusBadRequest, err.Error(), "unsupported_format", op)
			return
		}
		h.respondError(w, http.StatusInternalServerError, err.Error(), "internal", op)
		return
	}

	contentType := "text/plain; charset=utf-8"
	switch output.Extension(format) {
	case "json":
		contentType = "application/json"
	case "csv", "detailed.csv":
		contentType = "text/csv; charset=utf-8"
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.logger.Error("failed to write response", zap.String("op", op), zap.Error(err))
	}
}

func (h *handler) respondValidationError(w http.ResponseWriter, err error, op string) {
	kind := domain.KindName(err)
	if kind == "" {
		kind = "invalid_configuration"
	}
	h.respondError(w, http.StatusBadRequest, err.Error(), kind, op)
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg, kind, op string) {
	h.logger.Warn("request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("kind", kind),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, errorResponse{Error: msg, Kind: kind})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(status int) {
	s.status = status
	s.ResponseWriter.WriteHeader(status)
}

func (h *handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		h.logger.Info("request handled",
			zap.String("op", "server.request"),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}
