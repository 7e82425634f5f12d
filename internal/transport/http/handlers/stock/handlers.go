package stockhandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"washadmin/internal/domain/records"
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
	r.Get("/inventory", h.handleGet)
}

// handleGet returns the running chemical stock. A negative value is real
// data, it means recorded consumption overran recorded purchases.
func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	grams, err := h.Svc.Stock(r.Context())
	if err != nil {
		api.FailErr(w, err, "failed to read stock", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, records.Inventory{ChemicalStockGrams: grams}, middleware.GetRequestID(r.Context()))
}
