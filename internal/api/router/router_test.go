package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ddlogi/quote-platform/internal/cleaning"
	httpmiddleware "github.com/ddlogi/quote-platform/internal/http/middleware"
	"github.com/ddlogi/quote-platform/internal/inquiry"
	"github.com/ddlogi/quote-platform/internal/pricing"
	"github.com/ddlogi/quote-platform/internal/quotes"
	"github.com/ddlogi/quote-platform/internal/slots"
	"github.com/ddlogi/quote-platform/pkg/logging"
)

const testAdminSecret = "router-test-secret"

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	logger := logging.Default()
	service := slots.NewService(slots.NewMemoryStore(), logger, nil)

	cfg := &Config{
		Logger:         logger,
		QuotesHandler:  quotes.NewHandler(pricing.DefaultConfig(), cleaning.DefaultConfig(), logger, nil),
		SlotsHandler:   slots.NewHandler(service, logger),
		InquiryHandler: inquiry.NewHandler(pricing.DefaultConfig(), cleaning.DefaultConfig(), "01040941666", nil, logger),
		AdminJWTSecret: testAdminSecret,
		AdminEmails:    []string{"admin@ddlogi.kr"},
	}

	return New(cfg)
}

func adminToken(t *testing.T, email string) string {
	t.Helper()
	claims := httpmiddleware.AdminClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testAdminSecret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func TestRouterHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}

	var resp map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode health response: %v", err)
	}

	if resp["status"] != "ok" {
		t.Errorf("expected status 'ok', got %q", resp["status"])
	}
}

func TestRouterMoveQuoteEndpoint(t *testing.T) {
	router := newTestRouter(t)

	payload := pricing.QuoteRequest{
		VehicleClass: pricing.VehicleTruck,
		DistanceKm:   10,
		MoveType:     pricing.MoveGeneral,
		LoadBand:     pricing.LoadBand1,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("failed to marshal payload: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/quotes/move", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rr.Code, rr.Body.String())
	}

	var quote pricing.Quote
	if err := json.NewDecoder(rr.Body).Decode(&quote); err != nil {
		t.Fatalf("failed to decode quote: %v", err)
	}
	if quote.Total != 71725 {
		t.Errorf("expected total 71725, got %d", quote.Total)
	}
}

func TestRouterSlotCatalogEndpoint(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/slots/catalog", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}

	var catalog []slots.SlotOption
	if err := json.NewDecoder(rr.Body).Decode(&catalog); err != nil {
		t.Fatalf("failed to decode catalog: %v", err)
	}
	if len(catalog) != len(slots.Catalog) {
		t.Errorf("expected %d slot options, got %d", len(slots.Catalog), len(catalog))
	}
}

func TestRouterAdminRoutesRequireToken(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/slots/", nil)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, rr.Code)
	}
}

func TestRouterAdminReserveAndFetchConfirmed(t *testing.T) {
	router := newTestRouter(t)
	token := adminToken(t, "admin@ddlogi.kr")

	body, _ := json.Marshal(slots.ReserveRequest{Date: "2026-09-01", Slot: "9", Memo: "504호"})
	req := httptest.NewRequest(http.MethodPost, "/api/admin/slots/", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d: %s", http.StatusCreated, rr.Code, rr.Body.String())
	}

	// Public calendar fetch sees the confirmed slot without auth.
	req = httptest.NewRequest(http.MethodGet, "/api/slots/2026-09-01", nil)
	rr = httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}

	var resp slots.ConfirmedResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode confirmed response: %v", err)
	}
	if len(resp.Confirmed) != 1 || resp.Confirmed[0] != "9" {
		t.Errorf("expected confirmed slot 9, got %v", resp.Confirmed)
	}
}

func TestRouterAdminRejectsNonAllowListedEmail(t *testing.T) {
	router := newTestRouter(t)
	token := adminToken(t, "stranger@example.com")

	req := httptest.NewRequest(http.MethodGet, "/api/admin/slots/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected status %d, got %d", http.StatusForbidden, rr.Code)
	}
}
