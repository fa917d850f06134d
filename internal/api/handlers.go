package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	charmlog "github.com/charmbracelet/log"

	"github.com/agusespa/codesift/internal/review"
	"github.com/agusespa/codesift/internal/types"
)

const maxBodyBytes = 1 << 20

const errMissingFields = "Code and language are required"

type Reviewer interface {
	Review(ctx context.Context, req review.Request) (*types.Review, error)
}

type Handlers struct {
	reviewer Reviewer
	logger   *charmlog.Logger
}

type AnalyzeRequest struct {
	Code     string `json:"code"`
	Language string `json:"language"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

func NewHandlers(reviewer Reviewer, logger *charmlog.Logger) *Handlers {
	if logger == nil {
		logger = charmlog.New(io.Discard)
	}
	return &Handlers{reviewer: reviewer, logger: logger}
}

// Routes returns the service mux wrapped with the CORS headers browsers need
// to call it directly.
func (h *Handlers) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", h.Health)
	mux.HandleFunc("POST /analyze", h.Analyze)
	mux.HandleFunc("OPTIONS /", h.Preflight)
	return withCORS(mux)
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

func (h *Handlers) Preflight(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (h *Handlers) Analyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if req.Code == "" || req.Language == "" {
		respondError(w, http.StatusBadRequest, errMissingFields)
		return
	}

	result, err := h.reviewer.Review(r.Context(), review.Request{Code: req.Code, Language: req.Language})
	if err != nil {
		if errors.Is(err, review.ErrNoCode) {
			respondError(w, http.StatusBadRequest, errMissingFields)
			return
		}
		h.logger.Error("analysis failed", "language", req.Language, "err", err)
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.logger.Info("analysis complete", "language", req.Language, "source", result.Source, "issues", len(result.Issues), "score", result.OverallScore)
	respondJSON(w, http.StatusOK, result)
}

func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "authorization, x-client-info, apikey, content-type")
		next.ServeHTTP(w, r)
	})
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
