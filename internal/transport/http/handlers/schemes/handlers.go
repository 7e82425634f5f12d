package schemeshandler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"washadmin/internal/domain/records"
	"washadmin/internal/domain/salary"
	"washadmin/internal/transport/http/api"
	"washadmin/internal/transport/http/middleware"
)

type Handler struct {
	Svc *records.Service
}

func NewHandler(svc *records.Service) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/salary-schemes", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Get("/{schemeID}", h.handleGet)
		r.Put("/{schemeID}", h.handleUpdate)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	schemes, err := h.Svc.Schemes(r.Context())
	if err != nil {
		api.FailErr(w, err, "failed to list schemes", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, schemes, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	scheme, err := h.Svc.Scheme(r.Context(), chi.URLParam(r, "schemeID"))
	if err != nil {
		api.FailErr(w, err, "scheme not found", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, scheme, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	scheme, ok := h.decodeScheme(w, r)
	if !ok {
		return
	}
	if scheme.ID == "" {
		scheme.ID = records.NewID(records.IDPrefixScheme)
	}

	if err := h.Svc.SaveScheme(r.Context(), scheme); err != nil {
		api.FailErr(w, err, "failed to create scheme", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, scheme, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	scheme, ok := h.decodeScheme(w, r)
	if !ok {
		return
	}
	scheme.ID = chi.URLParam(r, "schemeID")

	if err := h.Svc.SaveScheme(r.Context(), scheme); err != nil {
		api.FailErr(w, err, "failed to update scheme", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, scheme, middleware.GetRequestID(r.Context()))
}

// decodeScheme rejects documents the salary engine would silently ignore, so
// a typo in the type field fails loudly at write time rather than as zero
// earnings later.
func (h *Handler) decodeScheme(w http.ResponseWriter, r *http.Request) (records.SalaryScheme, bool) {
	var scheme records.SalaryScheme
	if err := json.NewDecoder(r.Body).Decode(&scheme); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return records.SalaryScheme{}, false
	}
	if scheme.Name == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "name is required", middleware.GetRequestID(r.Context()))
		return records.SalaryScheme{}, false
	}
	if _, ok := salary.Decode(scheme); !ok {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "type must be percentage or rate", middleware.GetRequestID(r.Context()))
		return records.SalaryScheme{}, false
	}
	return scheme, true
}
