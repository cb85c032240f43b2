// Package quotes exposes the pricing engines over HTTP.
package quotes

import (
	"encoding/json"
	"net/http"

	"go.opentelemetry.io/otel"

	"github.com/ddlogi/quote-platform/internal/cleaning"
	"github.com/ddlogi/quote-platform/internal/observability/metrics"
	"github.com/ddlogi/quote-platform/internal/pricing"
	"github.com/ddlogi/quote-platform/pkg/logging"
)

var tracer = otel.Tracer("ddlogi.internal.quotes")

// Handler computes quotes on demand. The engines are pure, so the handler
// carries only configuration.
type Handler struct {
	pricingCfg  pricing.Config
	cleaningCfg cleaning.Config
	logger      *logging.Logger
	metrics     *metrics.QuoteMetrics
}

// NewHandler creates a quotes handler.
func NewHandler(pricingCfg pricing.Config, cleaningCfg cleaning.Config, logger *logging.Logger, m *metrics.QuoteMetrics) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{pricingCfg: pricingCfg, cleaningCfg: cleaningCfg, logger: logger, metrics: m}
}

// ComputeMove handles POST /api/quotes/move. An incomplete request is not an
// error: the widget renders a placeholder price until a vehicle is picked.
func (h *Handler) ComputeMove(w http.ResponseWriter, r *http.Request) {
	_, span := tracer.Start(r.Context(), "quotes.compute_move")
	defer span.End()

	var req pricing.QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.metrics.ObserveCompute("move", "bad_request")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	quote := pricing.Compute(req, h.pricingCfg)
	if quote.Incomplete {
		h.metrics.ObserveCompute("move", "incomplete")
	} else {
		h.metrics.ObserveCompute("move", "ok")
	}
	writeJSON(w, quote)
}

// ComputeClean handles POST /api/quotes/clean.
func (h *Handler) ComputeClean(w http.ResponseWriter, r *http.Request) {
	_, span := tracer.Start(r.Context(), "quotes.compute_clean")
	defer span.End()

	var req cleaning.QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.metrics.ObserveCompute("clean", "bad_request")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	quote := cleaning.Compute(req, h.cleaningCfg)
	h.metrics.ObserveCompute("clean", "ok")
	writeJSON(w, quote)
}

// CatalogResponse bundles the pure pricing data the widget renders from.
type CatalogResponse struct {
	Vehicles         map[pricing.VehicleClass]pricing.VehicleFare   `json:"vehicles"`
	FurnitureKeys    []string                                       `json:"furniture_keys"`
	Furniture        map[string]pricing.Item                        `json:"furniture"`
	LoadBandsGeneral map[pricing.LoadBand]pricing.LoadBandEntry     `json:"load_bands_general"`
	LoadBandsHalf    map[pricing.LoadBand]pricing.LoadBandEntry     `json:"load_bands_half"`
	CleaningBasic    map[string]cleaning.Option                     `json:"cleaning_basic"`
	CleaningAppl     map[string]cleaning.Option                     `json:"cleaning_appliance"`
}

// GetCatalog handles GET /api/catalog.
func (h *Handler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, CatalogResponse{
		Vehicles:         pricing.VehicleFareTable,
		FurnitureKeys:    pricing.CatalogKeys(),
		Furniture:        pricing.FurniturePriceTable,
		LoadBandsGeneral: pricing.LoadBandGeneralTable,
		LoadBandsHalf:    pricing.LoadBandHalfTable,
		CleaningBasic:    cleaning.BasicOptionTable,
		CleaningAppl:     cleaning.ApplianceOptionTable,
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
