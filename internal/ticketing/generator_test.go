package ticketing

import (
	"context"
	"strings"
	"testing"
	"time"

	"barkeep/pkg/model"
)

type mockImageStore struct {
	saved map[string][]byte
}

func newMockImageStore() *mockImageStore {
	return &mockImageStore{saved: make(map[string][]byte)}
}

func (m *mockImageStore) Save(ctx context.Context, name string, data []byte) (string, error) {
	m.saved[name] = data
	return "http://tickets.local/" + name, nil
}

func testBooking() *model.Booking {
	return &model.Booking{
		ID:           "booking-1",
		AccountID:    "acct-1",
		BarID:        "bar-1",
		BookingDate:  "2026-09-14",
		BookingClock: "20:00",
		Tables:       []model.BookingTable{{TableID: "table-1", BasePrice: 50}},
	}
}

func TestPayloadVerifyRoundTrip(t *testing.T) {
	gen := NewGenerator("test-secret", newMockImageStore())

	payload := gen.Payload(testBooking())

	bookingID, err := gen.Verify(payload)
	if err != nil {
		t.Fatalf("expected payload to verify, got %v", err)
	}
	if bookingID != "booking-1" {
		t.Errorf("expected booking-1, got %s", bookingID)
	}
}

func TestVerifyRejectsTampering(t *testing.T) {
	gen := NewGenerator("test-secret", newMockImageStore())

	payload := gen.Payload(testBooking())
	tampered := strings.Replace(payload, "booking-1", "booking-2", 1)

	if _, err := gen.Verify(tampered); err == nil {
		t.Error("expected tampered payload to be rejected")
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	gen := NewGenerator("test-secret", newMockImageStore())
	other := NewGenerator("other-secret", newMockImageStore())

	payload := gen.Payload(testBooking())

	if _, err := other.Verify(payload); err == nil {
		t.Error("expected payload signed with another secret to be rejected")
	}
}

func TestIssueStoresArtifactsAndReturnsURL(t *testing.T) {
	store := newMockImageStore()
	gen := NewGenerator("test-secret", store)
	gen.now = func() time.Time { return time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC) }

	url, err := gen.Issue(context.Background(), testBooking())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if url != "http://tickets.local/ticket-booking-1.pdf" {
		t.Errorf("unexpected ticket URL %s", url)
	}

	if len(store.saved["ticket-booking-1.png"]) == 0 {
		t.Error("expected QR PNG to be stored")
	}
	if pdf := store.saved["ticket-booking-1.pdf"]; len(pdf) == 0 || string(pdf[:5]) != "%PDF-" {
		t.Error("expected a PDF artifact to be stored")
	}
}
