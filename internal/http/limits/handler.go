package limits

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"pennywise/internal/limit"
	"pennywise/internal/money"
)

type Handler struct {
	svc *limit.Service
}

func NewHandler(svc *limit.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Put("/", h.update)
}

type limitResponse struct {
	Category string `json:"category"`
	Limit    string `json:"limit"`
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	limits, err := h.svc.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := make([]limitResponse, len(limits))
	for i, l := range limits {
		resp[i] = limitResponse{Category: l.Category, Limit: money.FormatCents(l.Limit)}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// The category rides in the body rather than the path because expense
// categories contain slashes ("Rent/Mortgage").
type updateLimitRequest struct {
	Category string `json:"category"`
	Limit    string `json:"limit"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	var req updateLimitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	cents, err := money.ParseCents(req.Limit)
	if err != nil {
		http.Error(w, "invalid limit", http.StatusBadRequest)
		return
	}

	if err := h.svc.Update(r.Context(), req.Category, cents); err != nil {
		switch {
		case errors.Is(err, limit.ErrNotFound):
			http.Error(w, "limit not found", http.StatusNotFound)
		case errors.Is(err, limit.ErrInvalidLimit), errors.Is(err, limit.ErrInvalidCategory):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
