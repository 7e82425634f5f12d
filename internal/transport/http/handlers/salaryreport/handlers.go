package salaryreporthandler

import (
	"net/http"
	"time"

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
	r.Get("/salary-report", h.handleReport)
}

// handleReport recomputes the full report from current records on every
// call. Optional from/to query parameters (RFC 3339 or YYYY-MM-DD) narrow
// the wash event window; the bounds are inclusive.
func (h *Handler) handleReport(w http.ResponseWriter, r *http.Request) {
	from, ok := parseDateParam(r.URL.Query().Get("from"))
	if !ok {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid from date", middleware.GetRequestID(r.Context()))
		return
	}
	to, ok := parseDateParam(r.URL.Query().Get("to"))
	if !ok {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid to date", middleware.GetRequestID(r.Context()))
		return
	}

	events, err := h.Svc.WashEvents(r.Context())
	if err != nil {
		api.FailErr(w, err, "failed to load wash events", middleware.GetRequestID(r.Context()))
		return
	}
	employees, err := h.Svc.Employees(r.Context())
	if err != nil {
		api.FailErr(w, err, "failed to load employees", middleware.GetRequestID(r.Context()))
		return
	}
	schemeDocs, err := h.Svc.Schemes(r.Context())
	if err != nil {
		api.FailErr(w, err, "failed to load schemes", middleware.GetRequestID(r.Context()))
		return
	}

	events = filterWindow(events, from, to)
	reports := salary.ComputeReport(events, employees, salary.DecodeAll(schemeDocs))
	api.Success(w, reports, middleware.GetRequestID(r.Context()))
}

func parseDateParam(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, true
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, true
	}
	return time.Time{}, false
}

func filterWindow(events []records.WashEvent, from, to time.Time) []records.WashEvent {
	if from.IsZero() && to.IsZero() {
		return events
	}
	filtered := make([]records.WashEvent, 0, len(events))
	for _, event := range events {
		if !from.IsZero() && event.Timestamp.Before(from) {
			continue
		}
		if !to.IsZero() && event.Timestamp.After(to.Add(24*time.Hour-time.Nanosecond)) {
			continue
		}
		filtered = append(filtered, event)
	}
	return filtered
}
