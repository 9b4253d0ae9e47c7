package export

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"pennywise/internal/category"
	"pennywise/internal/export"
	"pennywise/internal/report"
	"pennywise/internal/transaction"
)

type Handler struct {
	svc *export.Service
}

func NewHandler(svc *export.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.download)
}

func (h *Handler) download(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := report.FilterSpec{
		Category:      q.Get("category"),
		Type:          transaction.Type(q.Get("type")),
		PaymentMethod: category.PaymentMethod(q.Get("payment_method")),
		DateRange:     report.DateRange(q.Get("date_range")),
	}

	filename := "transactions-" + time.Now().Format("20060102") + ".csv"

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)

	if _, err := h.svc.WriteCSV(r.Context(), filter, w); err != nil {
		// Headers are already out; all we can do is log.
		slog.Error("failed to write csv export", "error", err)
	}
}
