package distance

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ddlogi/quote-platform/pkg/logging"
)

// Handler exposes the resolver over HTTP for the booking widget.
type Handler struct {
	resolver *Resolver
	logger   *logging.Logger
}

// NewHandler creates a distance handler.
func NewHandler(resolver *Resolver, logger *logging.Logger) *Handler {
	if resolver == nil {
		panic("distance: resolver cannot be nil")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{resolver: resolver, logger: logger}
}

// ResolveRequest carries the trip addresses.
type ResolveRequest struct {
	Origin      string `json:"origin"`
	Waypoint    string `json:"waypoint,omitempty"`
	Destination string `json:"destination"`
}

// Resolve handles POST /api/distance.
func (h *Handler) Resolve(w http.ResponseWriter, r *http.Request) {
	var req ResolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Origin == "" || req.Destination == "" {
		http.Error(w, "origin and destination required", http.StatusBadRequest)
		return
	}

	result, err := h.resolver.Resolve(r.Context(), req.Origin, req.Waypoint, req.Destination)
	switch {
	case errors.Is(err, ErrAddressNotFound):
		// The widget shows a retry prompt; it must not fall back to 0km.
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	case err != nil:
		h.logger.Error("distance resolve failed", "error", err)
		http.Error(w, "distance unavailable, try again", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
