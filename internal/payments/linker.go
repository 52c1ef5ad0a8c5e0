// Package payments talks to the external payment collaborator. Only the
// payment-link handshake lives here; the gateway protocol itself is the
// provider's problem.
package payments

import (
	"context"
	"fmt"
	"net/http"

	"barkeep/pkg/client"
)

// LinkRequest asks the provider for a hosted payment page for one booking.
type LinkRequest struct {
	BookingID   string  `json:"booking_id"`
	AccountID   string  `json:"account_id"`
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
	Destination string  `json:"destination,omitempty"`
}

type PaymentLink struct {
	URL       string `json:"url"`
	Reference string `json:"reference,omitempty"`
}

// Linker is the slice of the payment provider the booking flow needs.
type Linker interface {
	GetPaymentLink(ctx context.Context, req LinkRequest) (*PaymentLink, error)
}

type httpLinker struct {
	client *client.HttpClient
}

func NewHTTPLinker(baseURL string) Linker {
	return &httpLinker{
		client: client.NewHttpClient(baseURL),
	}
}

func (l *httpLinker) GetPaymentLink(ctx context.Context, req LinkRequest) (*PaymentLink, error) {
	resp, err := l.client.POST(ctx, "/v1/payment-links", req)
	if err != nil {
		return nil, fmt.Errorf("payment provider unreachable: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("payment provider rejected link request: %s", resp.ToString())
	}

	var link PaymentLink
	if err := resp.DecodeJSON(&link); err != nil {
		return nil, fmt.Errorf("failed to decode payment link: %w", err)
	}
	if link.URL == "" {
		return nil, fmt.Errorf("payment provider returned an empty link")
	}

	return &link, nil
}
