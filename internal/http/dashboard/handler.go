package dashboard

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"pennywise/internal/category"
	"pennywise/internal/dashboard"
	"pennywise/internal/money"
	"pennywise/internal/report"
	"pennywise/internal/transaction"
)

type Handler struct {
	svc         *dashboard.Service
	recentLimit int
}

func NewHandler(svc *dashboard.Service, recentLimit int) *Handler {
	return &Handler{svc: svc, recentLimit: recentLimit}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.overview)
}

type overviewResponse struct {
	Summary  summaryResponse       `json:"summary"`
	Trend    []trendPointResponse  `json:"trend"`
	Exceeded []exceededResponse    `json:"exceeded_limits"`
	Recent   []transactionResponse `json:"recent_transactions"`
}

type summaryResponse struct {
	TotalIncome    string            `json:"total_income"`
	TotalExpenses  string            `json:"total_expenses"`
	Balance        string            `json:"balance"`
	CategoryTotals map[string]string `json:"category_totals"`
}

type trendPointResponse struct {
	Label  string `json:"label"`
	Amount string `json:"amount"`
}

type exceededResponse struct {
	Category string `json:"category"`
	Spent    string `json:"spent"`
	Limit    string `json:"limit"`
}

type transactionResponse struct {
	ID          string `json:"id"`
	Amount      string `json:"amount"`
	Type        string `json:"type"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

func (h *Handler) overview(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := report.FilterSpec{
		Category:      q.Get("category"),
		Type:          transaction.Type(q.Get("type")),
		PaymentMethod: category.PaymentMethod(q.Get("payment_method")),
		DateRange:     report.DateRange(q.Get("date_range")),
	}

	recentN := h.recentLimit

	if s := q.Get("recent"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			http.Error(w, "invalid recent parameter", http.StatusBadRequest)
			return
		}

		recentN = n
	}

	overview, err := h.svc.Overview(r.Context(), filter, recentN)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(overview)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func toResponse(o *dashboard.Overview) overviewResponse {
	resp := overviewResponse{
		Summary: summaryResponse{
			TotalIncome:    money.FormatCents(o.Summary.TotalIncome),
			TotalExpenses:  money.FormatCents(o.Summary.TotalExpenses),
			Balance:        money.FormatCents(o.Summary.Balance),
			CategoryTotals: make(map[string]string, len(o.Summary.CategoryTotals)),
		},
		Trend:    make([]trendPointResponse, len(o.Trend)),
		Exceeded: make([]exceededResponse, len(o.Exceeded)),
		Recent:   make([]transactionResponse, len(o.Recent)),
	}

	for cat, cents := range o.Summary.CategoryTotals {
		resp.Summary.CategoryTotals[cat] = money.FormatCents(cents)
	}

	for i, p := range o.Trend {
		resp.Trend[i] = trendPointResponse{Label: p.Label, Amount: money.FormatCents(p.Amount)}
	}

	for i, e := range o.Exceeded {
		resp.Exceeded[i] = exceededResponse{
			Category: e.Category,
			Spent:    money.FormatCents(e.Spent),
			Limit:    money.FormatCents(e.Limit),
		}
	}

	for i, tx := range o.Recent {
		resp.Recent[i] = transactionResponse{
			ID:          tx.ID.String(),
			Amount:      money.FormatCents(tx.Amount),
			Type:        string(tx.Type),
			Category:    tx.Category,
			Description: tx.Description,
			Date:        tx.Date.Format(time.DateOnly),
		}
	}

	return resp
}
