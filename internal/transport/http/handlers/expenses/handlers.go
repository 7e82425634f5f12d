package expenseshandler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"washadmin/internal/domain/inventory"
	"washadmin/internal/domain/records"
	"washadmin/internal/transport/http/api"
	"washadmin/internal/transport/http/middleware"
)

type Handler struct {
	Svc *records.Service
	Rec *inventory.Reconciler
}

func NewHandler(svc *records.Service, rec *inventory.Reconciler) *Handler {
	return &Handler{Svc: svc, Rec: rec}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/expenses", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Get("/{expenseID}", h.handleGet)
		r.Put("/{expenseID}", h.handleUpdate)
		r.Delete("/{expenseID}", h.handleDelete)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.Svc.Expenses(r.Context())
	if err != nil {
		api.FailErr(w, err, "failed to list expenses", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, expenses, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	expense, err := h.Svc.Expense(r.Context(), chi.URLParam(r, "expenseID"))
	if err != nil {
		api.FailErr(w, err, "expense not found", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, expense, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var expense records.Expense
	if err := json.NewDecoder(r.Body).Decode(&expense); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	if expense.Category == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "category is required", middleware.GetRequestID(r.Context()))
		return
	}
	if expense.ID == "" {
		expense.ID = records.NewID(records.IDPrefixExpense)
	}

	if err := h.Rec.CreateExpense(r.Context(), expense); err != nil {
		api.FailErr(w, err, "failed to create expense", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, expense, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var expense records.Expense
	if err := json.NewDecoder(r.Body).Decode(&expense); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	expense.ID = chi.URLParam(r, "expenseID")

	if err := h.Rec.UpdateExpense(r.Context(), expense); err != nil {
		api.FailErr(w, err, "failed to update expense", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, expense, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.Rec.DeleteExpense(r.Context(), chi.URLParam(r, "expenseID")); err != nil {
		api.FailErr(w, err, "failed to delete expense", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]bool{"deleted": true}, middleware.GetRequestID(r.Context()))
}
