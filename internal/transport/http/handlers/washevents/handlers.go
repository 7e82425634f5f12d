package washeventshandler

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
	r.Route("/wash-events", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Get("/{eventID}", h.handleGet)
		r.Put("/{eventID}", h.handleUpdate)
		r.Delete("/{eventID}", h.handleDelete)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	events, err := h.Svc.WashEvents(r.Context())
	if err != nil {
		api.FailErr(w, err, "failed to list wash events", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, events, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	event, err := h.Svc.WashEvent(r.Context(), chi.URLParam(r, "eventID"))
	if err != nil {
		api.FailErr(w, err, "wash event not found", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, event, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var event records.WashEvent
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	if event.Services.Main.ServiceName == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "main service is required", middleware.GetRequestID(r.Context()))
		return
	}
	if event.ID == "" {
		event.ID = records.NewID(records.IDPrefixWashEvent)
	}

	if err := h.Rec.CreateWashEvent(r.Context(), event); err != nil {
		api.FailErr(w, err, "failed to create wash event", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, event, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var event records.WashEvent
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	event.ID = chi.URLParam(r, "eventID")

	if err := h.Rec.UpdateWashEvent(r.Context(), event); err != nil {
		api.FailErr(w, err, "failed to update wash event", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, event, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.Rec.DeleteWashEvent(r.Context(), chi.URLParam(r, "eventID")); err != nil {
		api.FailErr(w, err, "failed to delete wash event", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]bool{"deleted": true}, middleware.GetRequestID(r.Context()))
}
