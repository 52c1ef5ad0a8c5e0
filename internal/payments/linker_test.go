package payments

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGetPaymentLink(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v1/payment-links" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}

		var req LinkRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		if req.BookingID != "booking-1" || req.Amount != 120.50 {
			t.Errorf("unexpected request payload %+v", req)
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(PaymentLink{URL: "https://pay.example/abc", Reference: "ref-1"})
	}))
	defer server.Close()

	linker := NewHTTPLinker(server.URL)

	link, err := linker.GetPaymentLink(context.Background(), LinkRequest{
		BookingID: "booking-1",
		AccountID: "acct-1",
		Amount:    120.50,
		Currency:  "ILS",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if link.URL != "https://pay.example/abc" {
		t.Errorf("unexpected link %s", link.URL)
	}
}

func TestGetPaymentLink_ProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "insufficient configuration", http.StatusBadGateway)
	}))
	defer server.Close()

	linker := NewHTTPLinker(server.URL)

	if _, err := linker.GetPaymentLink(context.Background(), LinkRequest{BookingID: "booking-1"}); err == nil {
		t.Error("expected an error for a provider failure")
	}
}

func TestGetPaymentLink_EmptyURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(PaymentLink{})
	}))
	defer server.Close()

	linker := NewHTTPLinker(server.URL)

	if _, err := linker.GetPaymentLink(context.Background(), LinkRequest{BookingID: "booking-1"}); err == nil {
		t.Error("expected an error for an empty link")
	}
}
