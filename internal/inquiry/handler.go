package inquiry

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/ddlogi/quote-platform/internal/cleaning"
	"github.com/ddlogi/quote-platform/internal/pricing"
	"github.com/ddlogi/quote-platform/pkg/logging"
)

// Recorder persists submitted inquiries. A nil Recorder disables logging,
// which the memory-only development setup uses.
type Recorder interface {
	Log(ctx context.Context, service Service, total int64, message string) (*Record, error)
}

// Handler builds inquiry messages over HTTP. Totals are always recomputed
// server-side from the embedded request; a client-supplied total is ignored.
type Handler struct {
	pricingCfg  pricing.Config
	cleaningCfg cleaning.Config
	smsNumber   string
	recorder    Recorder
	logger      *logging.Logger
}

// NewHandler creates an inquiry handler.
func NewHandler(pricingCfg pricing.Config, cleaningCfg cleaning.Config, smsNumber string, recorder Recorder, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		pricingCfg:  pricingCfg,
		cleaningCfg: cleaningCfg,
		smsNumber:   smsNumber,
		recorder:    recorder,
		logger:      logger,
	}
}

// Response carries the rendered message and its payment split.
type Response struct {
	Message string `json:"message"`
	SMSLink string `json:"sms_link,omitempty"`
	Total   int64  `json:"total"`
	Deposit int64  `json:"deposit"`
	Balance int64  `json:"balance"`
}

// BuildMove handles POST /api/inquiries/move.
func (h *Handler) BuildMove(w http.ResponseWriter, r *http.Request) {
	var details MoveDetails
	if err := json.NewDecoder(r.Body).Decode(&details); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	quote := pricing.Compute(details.Request, h.pricingCfg)
	if quote.Incomplete {
		http.Error(w, "vehicle class required", http.StatusUnprocessableEntity)
		return
	}
	details.Total = quote.Total

	message := BuildMoveMessage(details)
	h.record(r.Context(), ServiceMove, quote.Total, message)
	h.respond(w, message, quote.Total)
}

// BuildClean handles POST /api/inquiries/clean.
func (h *Handler) BuildClean(w http.ResponseWriter, r *http.Request) {
	var details CleanDetails
	if err := json.NewDecoder(r.Body).Decode(&details); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	quote := cleaning.Compute(details.Request, h.cleaningCfg)
	details.Total = quote.Total

	message := BuildCleanMessage(details)
	h.record(r.Context(), ServiceClean, quote.Total, message)
	h.respond(w, message, quote.Total)
}

func (h *Handler) record(ctx context.Context, service Service, total int64, message string) {
	if h.recorder == nil {
		return
	}
	if _, err := h.recorder.Log(ctx, service, total, message); err != nil {
		// Logging failures never block the customer's inquiry.
		h.logger.Error("inquiry log failed", "service", service, "error", err)
	}
}

func (h *Handler) respond(w http.ResponseWriter, message string, total int64) {
	deposit, balance := DepositSplit(total)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(Response{
		Message: message,
		SMSLink: SMSLink(h.smsNumber, message),
		Total:   total,
		Deposit: deposit,
		Balance: balance,
	})
}
