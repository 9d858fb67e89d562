package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ssat-prep/backend/internal/generator"
	"github.com/ssat-prep/backend/internal/models"
	"github.com/ssat-prep/backend/internal/provider"
)

type Handler struct {
	generator *generator.Generator
	providers *provider.Client
}

func NewHandler(gen *generator.Generator, providers *provider.Client) *Handler {
	return &Handler{generator: gen, providers: providers}
}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var req models.GenerationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if !models.ValidContentTypes[req.ContentType] {
		writeError(w, http.StatusBadRequest, "content_type must be one of quantitative, reading, verbal, analogy, synonym, writing")
		return
	}
	if !models.ValidDifficulties[req.Difficulty] {
		writeError(w, http.StatusBadRequest, "difficulty must be 'standard' or 'advanced'")
		return
	}
	if req.Count < 0 {
		writeError(w, http.StatusBadRequest, "count must be a positive integer")
		return
	}
	if req.Count == 0 {
		req.Count = 1
	}

	resp, err := h.generator.Generate(r.Context(), req)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) ProviderStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.providers.ProbeAll())
}

// statusFor mirrors the failure kind: provider-boundary failures surface as
// 502, anything unexpected as 500. Request validation is rejected before
// generation starts.
func statusFor(err error) int {
	var callErr *provider.CallError
	switch {
	case errors.Is(err, generator.ErrNoProviderAvailable),
		errors.Is(err, generator.ErrEmptyResult),
		errors.As(err, &callErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, models.ErrorResponse{Error: msg, StatusCode: status})
}
