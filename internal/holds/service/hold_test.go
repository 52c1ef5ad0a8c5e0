package service

import (
	"context"
	"testing"
	"time"

	"barkeep/internal/holds/broadcast"
	"barkeep/internal/holds/store"
	"barkeep/internal/holds/validator"
	"barkeep/pkg/config"
	apperrors "barkeep/pkg/errors"
	"barkeep/pkg/logger"
	"barkeep/pkg/model"
	"barkeep/pkg/sealer"
)

const testSealKey = "lfQVRuulcL2iOhOJ2r8BYTweoSKwVAJnIF9U+AL+M60="

type mockCatalog struct {
	getTablesFunc func(ctx context.Context, barID string) ([]*model.Table, error)
	calls         int
}

func (m *mockCatalog) GetTables(ctx context.Context, barID string) ([]*model.Table, error) {
	m.calls++
	if m.getTablesFunc != nil {
		return m.getTablesFunc(ctx, barID)
	}
	return []*model.Table{}, nil
}

type mockResolver struct {
	resolveFunc func(ctx context.Context, barID, date, clock string) error
}

func (m *mockResolver) ResolveWindow(ctx context.Context, barID, date, clock string) error {
	if m.resolveFunc != nil {
		return m.resolveFunc(ctx, barID, date, clock)
	}
	return nil
}

type mockHub struct {
	notices chan broadcast.Notice
}

func newMockHub() *mockHub {
	return &mockHub{notices: make(chan broadcast.Notice, 10)}
}

func (m *mockHub) NotifyHold(notice broadcast.Notice) {
	m.notices <- notice
}

func newTestConfig() *config.Config {
	return &config.Config{
		HoldTTL: 5 * time.Minute,
		Log: logger.New(logger.Config{
			Level:   logger.ERROR,
			Format:  logger.JSON,
			Service: "test",
		}),
	}
}

func newTestService(t *testing.T, catalog *mockCatalog, resolver *mockResolver, hub *mockHub) HoldService {
	t.Helper()

	slotSealer, err := sealer.New(testSealKey)
	if err != nil {
		t.Fatalf("failed to build sealer: %v", err)
	}

	cfg := newTestConfig()

	return NewHoldService(
		store.NewMemoryHoldStore(),
		catalog,
		resolver,
		hub,
		slotSealer,
		nil,
		validator.NewHoldValidator(cfg.Log),
		cfg,
	)
}

func barWithTable() *mockCatalog {
	return &mockCatalog{
		getTablesFunc: func(ctx context.Context, barID string) ([]*model.Table, error) {
			return []*model.Table{
				{ID: "table-1", BarID: barID, Label: "T1", TableType: "booth", Capacity: 4, BasePrice: 50},
				{ID: "table-2", BarID: barID, Label: "T2", TableType: "bar", Capacity: 2, BasePrice: 20},
			}, nil
		},
	}
}

func holdRequest() *model.HoldRequest {
	// 2026-09-14 is a Monday
	return &model.HoldRequest{
		BarID:   "bar-1",
		TableID: "table-1",
		Date:    "2026-09-14",
		Clock:   "14:00",
	}
}

func TestHoldTable_Success(t *testing.T) {
	hub := newMockHub()
	svc := newTestService(t, barWithTable(), &mockResolver{}, hub)

	result, err := svc.HoldTable(context.Background(), "acct-A", holdRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsHeld {
		t.Error("expected IsHeld true")
	}
	if result.AccountID != "acct-A" {
		t.Errorf("expected holder acct-A, got %s", result.AccountID)
	}
	if !result.HoldExpiry.After(time.Now()) {
		t.Errorf("expected expiry in the future, got %v", result.HoldExpiry)
	}
	if result.SlotToken == "" {
		t.Error("expected a slot token")
	}

	select {
	case notice := <-hub.notices:
		if notice.Event != "hold.placed" || notice.TableID != "table-1" {
			t.Errorf("unexpected notice %+v", notice)
		}
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for broadcast notice")
	}
}

func TestHoldTable_SlotTokenRoundTrips(t *testing.T) {
	svc := newTestService(t, barWithTable(), &mockResolver{}, newMockHub())

	result, err := svc.HoldTable(context.Background(), "acct-A", holdRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	slotSealer, err := sealer.New(testSealKey)
	if err != nil {
		t.Fatalf("failed to build sealer: %v", err)
	}
	slot, err := slotSealer.OpenSlot(result.SlotToken)
	if err != nil {
		t.Fatalf("expected token to open, got %v", err)
	}
	if slot.BarID != "bar-1" || slot.TableID != "table-1" || slot.Date != "2026-09-14" || slot.Clock != "14:00" {
		t.Errorf("unexpected slot %+v", slot)
	}
}

func TestHoldTable_ConflictForSecondAccount(t *testing.T) {
	svc := newTestService(t, barWithTable(), &mockResolver{}, newMockHub())

	if _, err := svc.HoldTable(context.Background(), "acct-A", holdRequest()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := svc.HoldTable(context.Background(), "acct-B", holdRequest())
	appErr := apperrors.AsAppError(err)
	if appErr == nil || appErr.Code != apperrors.CodeConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
	// The conflict names the table so the UI can say which one.
	if appErr.Message != "Table T1 is already held for this slot" {
		t.Errorf("unexpected message %q", appErr.Message)
	}
}

func TestHoldTable_SameAccountRefreshSucceeds(t *testing.T) {
	svc := newTestService(t, barWithTable(), &mockResolver{}, newMockHub())

	first, err := svc.HoldTable(context.Background(), "acct-A", holdRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second, err := svc.HoldTable(context.Background(), "acct-A", holdRequest())
	if err != nil {
		t.Fatalf("expected refresh to succeed, got %v", err)
	}
	if second.HoldExpiry.Before(first.HoldExpiry) {
		t.Errorf("expected refreshed expiry %v not before %v", second.HoldExpiry, first.HoldExpiry)
	}
}

func TestHoldTable_UnknownTable(t *testing.T) {
	svc := newTestService(t, barWithTable(), &mockResolver{}, newMockHub())

	req := holdRequest()
	req.TableID = "table-99"

	_, err := svc.HoldTable(context.Background(), "acct-A", req)
	appErr := apperrors.AsAppError(err)
	if appErr == nil || appErr.Code != apperrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestHoldTable_OutsideWindow(t *testing.T) {
	resolver := &mockResolver{
		resolveFunc: func(ctx context.Context, barID, date, clock string) error {
			return apperrors.Validation("Requested clock is outside the bar's operating window", nil)
		},
	}
	svc := newTestService(t, barWithTable(), resolver, newMockHub())

	_, err := svc.HoldTable(context.Background(), "acct-A", holdRequest())
	appErr := apperrors.AsAppError(err)
	if appErr == nil || appErr.Code != apperrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestHoldTable_InvalidRequest(t *testing.T) {
	catalog := barWithTable()
	svc := newTestService(t, catalog, &mockResolver{}, newMockHub())

	req := holdRequest()
	req.Date = "14-09-2026"

	_, err := svc.HoldTable(context.Background(), "acct-A", req)
	appErr := apperrors.AsAppError(err)
	if appErr == nil || appErr.Code != apperrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if catalog.calls != 0 {
		t.Errorf("expected no catalog lookup for invalid input, got %d", catalog.calls)
	}
}

func TestHoldTable_MissingIdentity(t *testing.T) {
	svc := newTestService(t, barWithTable(), &mockResolver{}, newMockHub())

	_, err := svc.HoldTable(context.Background(), "", holdRequest())
	appErr := apperrors.AsAppError(err)
	if appErr == nil || appErr.Code != apperrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestHoldTableList_MarksHeldTables(t *testing.T) {
	svc := newTestService(t, barWithTable(), &mockResolver{}, newMockHub())

	if _, err := svc.HoldTable(context.Background(), "acct-A", holdRequest()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	statuses, err := svc.HoldTableList(context.Background(), "bar-1", "2026-09-14", "14:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(statuses) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(statuses))
	}

	held := 0
	for _, status := range statuses {
		if status.IsHeld {
			held++
			if status.TableID != "table-1" {
				t.Errorf("expected table-1 to be the held one, got %s", status.TableID)
			}
			if status.SlotToken != "" {
				t.Error("held slot should not carry a token")
			}
		} else if status.SlotToken == "" {
			t.Errorf("free slot %s should carry a token", status.TableID)
		}
	}
	if held != 1 {
		t.Errorf("expected exactly 1 held entry, got %d", held)
	}
}

func TestHoldTableList_EmptyBar(t *testing.T) {
	svc := newTestService(t, &mockCatalog{}, &mockResolver{}, newMockHub())

	statuses, err := svc.HoldTableList(context.Background(), "bar-9", "2026-09-14", "14:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(statuses) != 0 {
		t.Errorf("expected empty list, got %d entries", len(statuses))
	}
}

func TestReleaseSlots_FreesHeldSlot(t *testing.T) {
	svc := newTestService(t, barWithTable(), &mockResolver{}, newMockHub())

	if _, err := svc.HoldTable(context.Background(), "acct-A", holdRequest()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	svc.ReleaseSlots(context.Background(), "acct-A", "bar-1", []string{"table-1"}, "2026-09-14", "14:00")

	// Another account can hold the slot right away.
	if _, err := svc.HoldTable(context.Background(), "acct-B", holdRequest()); err != nil {
		t.Fatalf("expected slot to be free after release, got %v", err)
	}
}
