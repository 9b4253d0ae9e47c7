package importcsv

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"pennywise/internal/importer"
	"pennywise/internal/transaction"
)

// Uploads larger than this are rejected outright.
const maxUploadSize = 10 << 20

type Handler struct {
	importer *importer.Service
	txs      *transaction.Service
}

func NewHandler(impSvc *importer.Service, txSvc *transaction.Service) *Handler {
	return &Handler{importer: impSvc, txs: txSvc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.upload)
}

type importResponse struct {
	Imported int `json:"imported"`
}

func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file field", http.StatusBadRequest)
		return
	}
	defer file.Close()

	params, err := h.importer.Parse(file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	txs, err := h.txs.CreateBatch(r.Context(), params)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(importResponse{Imported: len(txs)}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
