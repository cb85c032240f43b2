package slots

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ddlogi/quote-platform/pkg/logging"
)

// Handler exposes the gate over HTTP. Reserve and Cancel routes must be
// mounted behind the admin middleware; the confirmed fetch is public so the
// booking widget can disable taken slots.
type Handler struct {
	service *Service
	logger  *logging.Logger
}

// NewHandler creates a slots handler.
func NewHandler(service *Service, logger *logging.Logger) *Handler {
	if service == nil {
		panic("slots: service cannot be nil")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{service: service, logger: logger}
}

// ConfirmedResponse lists the taken slots for one date.
type ConfirmedResponse struct {
	Date      string   `json:"date"`
	Confirmed []SlotID `json:"confirmed"`
}

// GetConfirmed handles GET /api/slots/{date}.
func (h *Handler) GetConfirmed(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")
	if !ValidDate(date) {
		http.Error(w, "invalid date, want YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	confirmed := h.service.FetchConfirmed(r.Context(), date)

	resp := ConfirmedResponse{Date: date, Confirmed: []SlotID{}}
	for _, opt := range Catalog {
		if confirmed[opt.Value] {
			resp.Confirmed = append(resp.Confirmed, opt.Value)
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetCatalog handles GET /api/slots/catalog.
func (h *Handler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Catalog)
}

// ReserveRequest is the admin reservation payload.
type ReserveRequest struct {
	Date string `json:"date"`
	Slot SlotID `json:"time_slot"`
	Memo string `json:"memo"`
}

// Reserve handles POST /api/admin/slots.
func (h *Handler) Reserve(w http.ResponseWriter, r *http.Request) {
	var req ReserveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	res, err := h.service.Reserve(r.Context(), req.Date, req.Slot, req.Memo)
	switch {
	case errors.Is(err, ErrInvalidDate), errors.Is(err, ErrInvalidSlot):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case errors.Is(err, ErrSlotConflict):
		// 409 tells the panel to re-fetch and force re-selection.
		http.Error(w, "slot already confirmed", http.StatusConflict)
		return
	case err != nil:
		h.logger.Error("slot reserve failed", "error", err)
		http.Error(w, "reservation failed, try again", http.StatusServiceUnavailable)
		return
	}

	writeJSON(w, http.StatusCreated, res)
}

// Cancel handles DELETE /api/admin/slots/{id}.
func (h *Handler) Cancel(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	err := h.service.Cancel(r.Context(), id)
	switch {
	case errors.Is(err, ErrNotFound):
		http.Error(w, "reservation not found", http.StatusNotFound)
		return
	case err != nil:
		h.logger.Error("slot cancel failed", "id", id, "error", err)
		http.Error(w, "cancel failed, try again", http.StatusServiceUnavailable)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListConfirmed handles GET /api/admin/slots?from=YYYY-MM-DD.
func (h *Handler) ListConfirmed(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")

	rows, err := h.service.ListConfirmed(r.Context(), from)
	switch {
	case errors.Is(err, ErrInvalidDate):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case err != nil:
		h.logger.Error("slot list failed", "error", err)
		http.Error(w, "list failed, try again", http.StatusServiceUnavailable)
		return
	}

	if rows == nil {
		rows = []Reservation{}
	}
	writeJSON(w, http.StatusOK, rows)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
