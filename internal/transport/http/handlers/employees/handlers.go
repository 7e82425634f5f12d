package employeeshandler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"washadmin/internal/domain/inventory"
	"washadmin/internal/domain/records"
	"washadmin/internal/transport/http/api"
	"washadmin/internal/transport/http/middleware"
)

// Handler serves employees and their money transactions. Transaction writes
// go through the inventory reconciler because a canister-issue purchase moves
// chemical stock.
type Handler struct {
	Svc *records.Service
	Rec *inventory.Reconciler
}

func NewHandler(svc *records.Service, rec *inventory.Reconciler) *Handler {
	return &Handler{Svc: svc, Rec: rec}
}

type transactionPayload struct {
	Date        time.Time                       `json:"date"`
	Type        records.EmployeeTransactionType `json:"type"`
	Amount      float64                         `json:"amount"`
	Description string                          `json:"description"`
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/employees", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Get("/{employeeID}", h.handleGet)
		r.Put("/{employeeID}", h.handleUpdate)
		r.Get("/{employeeID}/transactions", h.handleListTransactions)
		r.Post("/{employeeID}/transactions", h.handleCreateTransaction)
		r.Delete("/{employeeID}/transactions/{txnID}", h.handleDeleteTransaction)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	employees, err := h.Svc.Employees(r.Context())
	if err != nil {
		api.FailErr(w, err, "failed to list employees", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, employees, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	employee, err := h.Svc.Employee(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		api.FailErr(w, err, "employee not found", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, employee, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var employee records.Employee
	if err := json.NewDecoder(r.Body).Decode(&employee); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	if employee.FullName == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "fullName is required", middleware.GetRequestID(r.Context()))
		return
	}
	if employee.ID == "" {
		employee.ID = records.NewID(records.IDPrefixEmployee)
	}

	if err := h.Svc.SaveEmployee(r.Context(), employee); err != nil {
		api.FailErr(w, err, "failed to create employee", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, employee, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var employee records.Employee
	if err := json.NewDecoder(r.Body).Decode(&employee); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	employee.ID = chi.URLParam(r, "employeeID")
	if employee.FullName == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "fullName is required", middleware.GetRequestID(r.Context()))
		return
	}

	if err := h.Svc.SaveEmployee(r.Context(), employee); err != nil {
		api.FailErr(w, err, "failed to update employee", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, employee, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	txns, err := h.Svc.EmployeeTransactions(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		api.FailErr(w, err, "failed to list transactions", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, txns, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	var payload transactionPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	switch payload.Type {
	case records.EmployeeTxnPayment, records.EmployeeTxnLoan, records.EmployeeTxnBonus, records.EmployeeTxnPurchase:
	default:
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "unknown transaction type", middleware.GetRequestID(r.Context()))
		return
	}
	if payload.Amount < 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "amount must be non-negative", middleware.GetRequestID(r.Context()))
		return
	}
	if payload.Date.IsZero() {
		payload.Date = time.Now().UTC()
	}

	txn := records.EmployeeTransaction{
		ID:          records.NewID(records.IDPrefixEmployeeTransaction),
		EmployeeID:  chi.URLParam(r, "employeeID"),
		Date:        payload.Date,
		Type:        payload.Type,
		Amount:      payload.Amount,
		Description: payload.Description,
	}
	if err := h.Rec.CreateEmployeeTransaction(r.Context(), txn); err != nil {
		api.FailErr(w, err, "failed to create transaction", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, txn, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	txnID := chi.URLParam(r, "txnID")
	if err := h.Rec.DeleteEmployeeTransaction(r.Context(), employeeID, txnID); err != nil {
		api.FailErr(w, err, "failed to delete transaction", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]bool{"deleted": true}, middleware.GetRequestID(r.Context()))
}
