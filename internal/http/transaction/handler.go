package transaction

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"pennywise/internal/category"
	"pennywise/internal/dashboard"
	"pennywise/internal/limit"
	"pennywise/internal/money"
	"pennywise/internal/report"
	"pennywise/internal/transaction"
)

type Handler struct {
	svc        *transaction.Service
	limits     *limit.Service
	dashboards *dashboard.Service
}

func NewHandler(svc *transaction.Service, limitSvc *limit.Service, dashSvc *dashboard.Service) *Handler {
	return &Handler{svc: svc, limits: limitSvc, dashboards: dashSvc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
}

type createTransactionRequest struct {
	Amount            string           `json:"amount"`
	Type              transaction.Type `json:"type"`
	Category          string           `json:"category"`
	Description       string           `json:"description"`
	Date              string           `json:"date"`
	Recurring         bool             `json:"recurring"`
	RecurringInterval string           `json:"recurring_interval"`
	PaymentMethod     string           `json:"payment_method"`
}

type createTransactionResponse struct {
	transactionResponse
	LimitWarning *limitWarning `json:"limit_warning,omitempty"`
}

// limitWarning tells the caller an expense pushed its category past the
// configured limit. The transaction is still recorded.
type limitWarning struct {
	Category string `json:"category"`
	Limit    string `json:"limit"`
	Spent    string `json:"spent"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	amount, err := money.ParseCents(req.Amount)
	if err != nil {
		http.Error(w, "invalid amount", http.StatusBadRequest)
		return
	}

	date, err := time.Parse(time.DateOnly, req.Date)
	if err != nil {
		http.Error(w, "invalid date, expected YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	tx, err := h.svc.Create(r.Context(), transaction.CreateParams{
		Amount:            amount,
		Type:              req.Type,
		Category:          req.Category,
		Description:       req.Description,
		Date:              date,
		Recurring:         req.Recurring,
		RecurringInterval: category.Interval(req.RecurringInterval),
		PaymentMethod:     category.PaymentMethod(req.PaymentMethod),
	})
	if err != nil {
		if isValidationErr(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	resp := createTransactionResponse{transactionResponse: toResponse(tx)}
	if warning := h.checkLimit(r, tx); warning != nil {
		resp.LimitWarning = warning
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// checkLimit reports whether the category's total spend now exceeds its
// configured limit. Failures here never block a create.
func (h *Handler) checkLimit(r *http.Request, tx *transaction.Transaction) *limitWarning {
	if tx.Type != transaction.TypeExpense {
		return nil
	}

	limits, err := h.limits.List(r.Context())
	if err != nil {
		slog.Error("failed to list limits", "error", err)
		return nil
	}

	txs, err := h.svc.List(r.Context())
	if err != nil {
		slog.Error("failed to list transactions", "error", err)
		return nil
	}

	for _, exceeded := range report.CheckLimits(txs, limits) {
		if exceeded.Category == tx.Category {
			return &limitWarning{
				Category: exceeded.Category,
				Limit:    money.FormatCents(exceeded.Limit),
				Spent:    money.FormatCents(exceeded.Spent),
			}
		}
	}

	return nil
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := report.FilterSpec{
		Category:      q.Get("category"),
		Type:          transaction.Type(q.Get("type")),
		PaymentMethod: category.PaymentMethod(q.Get("payment_method")),
		DateRange:     report.DateRange(q.Get("date_range")),
	}

	txs, err := h.dashboards.Filtered(r.Context(), filter)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(txs)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	tx, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, transaction.ErrNotFound) {
			http.Error(w, "transaction not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(tx)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func isValidationErr(err error) bool {
	for _, target := range []error{
		transaction.ErrInvalidAmount,
		transaction.ErrInvalidType,
		transaction.ErrInvalidCategory,
		transaction.ErrInvalidPaymentMethod,
		transaction.ErrInvalidInterval,
		transaction.ErrInvalidDate,
	} {
		if errors.Is(err, target) {
			return true
		}
	}

	return false
}
