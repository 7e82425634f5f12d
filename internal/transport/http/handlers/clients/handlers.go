package clientshandler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"washadmin/internal/domain/balance"
	"washadmin/internal/domain/records"
	"washadmin/internal/transport/http/api"
	"washadmin/internal/transport/http/middleware"
)

type Handler struct {
	Svc *records.Service
	Rec *balance.Reconciler
}

func NewHandler(svc *records.Service, rec *balance.Reconciler) *Handler {
	return &Handler{Svc: svc, Rec: rec}
}

type balancePayload struct {
	Balance float64 `json:"balance"`
}

type transactionPayload struct {
	Date        time.Time `json:"date"`
	Type        string    `json:"type"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/clients", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Get("/{clientID}", h.handleGet)
		r.Put("/{clientID}/balance", h.handleSetBalance)
		r.Get("/{clientID}/transactions", h.handleListTransactions)
		r.Post("/{clientID}/transactions", h.handleCreateTransaction)
		r.Delete("/{clientID}/transactions/{txnID}", h.handleDeleteTransaction)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	clients, err := h.Svc.Clients(r.Context())
	if err != nil {
		api.FailErr(w, err, "failed to list clients", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, clients, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	client, err := h.Svc.Client(r.Context(), chi.URLParam(r, "clientID"))
	if err != nil {
		api.FailErr(w, err, "client not found", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, client, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var client records.Client
	if err := json.NewDecoder(r.Body).Decode(&client); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	if client.Name == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "name is required", middleware.GetRequestID(r.Context()))
		return
	}
	if client.Kind != records.ClientCounterAgent && client.Kind != records.ClientAggregator {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "kind must be counterAgent or aggregator", middleware.GetRequestID(r.Context()))
		return
	}
	if client.ID == "" {
		client.ID = records.NewID(records.IDPrefixClient)
	}

	if err := h.Svc.SaveClient(r.Context(), client); err != nil {
		api.FailErr(w, err, "failed to create client", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, client, middleware.GetRequestID(r.Context()))
}

// handleSetBalance is the out-of-band correction path: the submitted value
// replaces the running balance outright.
func (h *Handler) handleSetBalance(w http.ResponseWriter, r *http.Request) {
	var payload balancePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	clientID := chi.URLParam(r, "clientID")
	if err := h.Rec.SetBalance(r.Context(), clientID, payload.Balance); err != nil {
		api.FailErr(w, err, "failed to set balance", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]any{"clientId": clientID, "balance": payload.Balance}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	txns, err := h.Svc.ClientTransactions(r.Context(), chi.URLParam(r, "clientID"))
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
	if payload.Amount == 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "amount must be non-zero", middleware.GetRequestID(r.Context()))
		return
	}
	if payload.Date.IsZero() {
		payload.Date = time.Now().UTC()
	}

	txn := records.ClientTransaction{
		ID:          records.NewID(records.IDPrefixClientTransaction),
		ClientID:    chi.URLParam(r, "clientID"),
		Date:        payload.Date,
		Type:        payload.Type,
		Amount:      payload.Amount,
		Description: payload.Description,
	}
	if err := h.Rec.CreateTransaction(r.Context(), txn); err != nil {
		api.FailErr(w, err, "failed to create transaction", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, txn, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "clientID")
	txnID := chi.URLParam(r, "txnID")
	if err := h.Rec.DeleteTransaction(r.Context(), clientID, txnID); err != nil {
		api.FailErr(w, err, "failed to delete transaction", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]bool{"deleted": true}, middleware.GetRequestID(r.Context()))
}
