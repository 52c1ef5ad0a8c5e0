package service

import (
	"context"
	"testing"
	"time"

	bookingserrors "barkeep/internal/bookings/errors"
	"barkeep/internal/bookings/validator"
	"barkeep/internal/payments"
	"barkeep/pkg/config"
	mongotx "barkeep/pkg/db/mongo"
	apperrors "barkeep/pkg/errors"
	"barkeep/pkg/kafka"
	"barkeep/pkg/logger"
	"barkeep/pkg/model"
)

type mockBookingRepository struct {
	createFunc       func(ctx context.Context, booking *model.Booking) error
	findByIDFunc     func(ctx context.Context, id string) (*model.Booking, error)
	updateStatusFunc func(ctx context.Context, id string, status model.BookingStatus, additionalFee, totalPrice float64) error

	createCalls  int
	findCalls    int
	updateCalls  int
	ticketURLSet string
}

func (m *mockBookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	m.createCalls++
	if m.createFunc != nil {
		return m.createFunc(ctx, booking)
	}
	booking.ID = "booking-1"
	return nil
}

func (m *mockBookingRepository) FindByID(ctx context.Context, id string) (*model.Booking, error) {
	m.findCalls++
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, bookingserrors.ErrNotFound
}

func (m *mockBookingRepository) FindByAccount(ctx context.Context, accountID string, limit int, offset int64) ([]*model.Booking, error) {
	return []*model.Booking{}, nil
}

func (m *mockBookingRepository) FindByBarAndDate(ctx context.Context, barID, date string, statuses []model.BookingStatus) ([]*model.Booking, error) {
	return []*model.Booking{}, nil
}

func (m *mockBookingRepository) UpdateStatus(ctx context.Context, id string, status model.BookingStatus, additionalFee, totalPrice float64) error {
	m.updateCalls++
	if m.updateStatusFunc != nil {
		return m.updateStatusFunc(ctx, id, status, additionalFee, totalPrice)
	}
	return nil
}

func (m *mockBookingRepository) SetTicketURL(ctx context.Context, id, url string) error {
	m.ticketURLSet = url
	return nil
}

func (m *mockBookingRepository) CountByAccount(ctx context.Context, accountID string) (int64, error) {
	return 0, nil
}

func (m *mockBookingRepository) ExecuteTransaction(ctx context.Context, fn mongotx.TransactionFunc) error {
	return fn(nil)
}

type mockAccountDirectory struct {
	getByIDFunc func(ctx context.Context, id string) (*model.Account, error)
	calls       int
}

func (m *mockAccountDirectory) GetByID(ctx context.Context, id string) (*model.Account, error) {
	m.calls++
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, apperrors.NotFoundWithID("Account", id)
}

type mockBarCatalog struct {
	findBarFunc          func(ctx context.Context, id string) (*model.Bar, error)
	findTablesByIDsFunc  func(ctx context.Context, barID string, ids []string) ([]*model.Table, error)
	findDrinksByIDsFunc  func(ctx context.Context, barID string, ids []string) ([]*model.Drink, error)
	setTableOccupiedFunc func(ctx context.Context, tableID string) error

	barCalls      int
	tableCalls    int
	drinkCalls    int
	occupiedCalls int
}

func (m *mockBarCatalog) FindBar(ctx context.Context, id string) (*model.Bar, error) {
	m.barCalls++
	if m.findBarFunc != nil {
		return m.findBarFunc(ctx, id)
	}
	return nil, apperrors.NotFoundWithID("Bar", id)
}

func (m *mockBarCatalog) FindTablesByIDs(ctx context.Context, barID string, ids []string) ([]*model.Table, error) {
	m.tableCalls++
	if m.findTablesByIDsFunc != nil {
		return m.findTablesByIDsFunc(ctx, barID, ids)
	}
	return []*model.Table{}, nil
}

func (m *mockBarCatalog) FindDrinksByIDs(ctx context.Context, barID string, ids []string) ([]*model.Drink, error) {
	m.drinkCalls++
	if m.findDrinksByIDsFunc != nil {
		return m.findDrinksByIDsFunc(ctx, barID, ids)
	}
	return []*model.Drink{}, nil
}

func (m *mockBarCatalog) SetTableOccupied(ctx context.Context, tableID string) error {
	m.occupiedCalls++
	if m.setTableOccupiedFunc != nil {
		return m.setTableOccupiedFunc(ctx, tableID)
	}
	return nil
}

type mockWindowResolver struct {
	resolveFunc func(ctx context.Context, barID, date, clock string) error
	calls       int
}

func (m *mockWindowResolver) ResolveWindow(ctx context.Context, barID, date, clock string) error {
	m.calls++
	if m.resolveFunc != nil {
		return m.resolveFunc(ctx, barID, date, clock)
	}
	return nil
}

type mockTicketIssuer struct {
	issueFunc func(ctx context.Context, booking *model.Booking) (string, error)
	calls     int
}

func (m *mockTicketIssuer) Issue(ctx context.Context, booking *model.Booking) (string, error) {
	m.calls++
	if m.issueFunc != nil {
		return m.issueFunc(ctx, booking)
	}
	return "http://tickets.local/ticket-" + booking.ID + ".pdf", nil
}

type mockPaymentLinker struct {
	linkFunc func(ctx context.Context, req payments.LinkRequest) (*payments.PaymentLink, error)
	calls    int
}

func (m *mockPaymentLinker) GetPaymentLink(ctx context.Context, req payments.LinkRequest) (*payments.PaymentLink, error) {
	m.calls++
	if m.linkFunc != nil {
		return m.linkFunc(ctx, req)
	}
	return &payments.PaymentLink{URL: "https://pay.example/" + req.BookingID}, nil
}

type recordingPublisher struct {
	published []kafka.Message
}

func (p *recordingPublisher) Publish(ctx context.Context, msg kafka.Message) error {
	p.published = append(p.published, msg)
	return nil
}

type testDeps struct {
	repo      *mockBookingRepository
	accounts  *mockAccountDirectory
	catalog   *mockBarCatalog
	windows   *mockWindowResolver
	tickets   *mockTicketIssuer
	payLinker *mockPaymentLinker
	publisher *recordingPublisher
}

func newTestConfig() *config.Config {
	return &config.Config{
		CancelCutoff: 2 * time.Hour,
		Log: logger.New(logger.Config{
			Level:   logger.ERROR,
			Format:  logger.JSON,
			Service: "test",
		}),
	}
}

func newTestService(deps *testDeps) *bookingService {
	cfg := newTestConfig()
	return &bookingService{
		repo:      deps.repo,
		accounts:  deps.accounts,
		catalog:   deps.catalog,
		windows:   deps.windows,
		tickets:   deps.tickets,
		payLinker: deps.payLinker,
		publisher: deps.publisher,
		validator: validator.NewBookingValidator(cfg.Log),
		cfg:       cfg,
		now:       time.Now,
	}
}

func happyDeps() *testDeps {
	return &testDeps{
		repo: &mockBookingRepository{},
		accounts: &mockAccountDirectory{
			getByIDFunc: func(ctx context.Context, id string) (*model.Account, error) {
				return &model.Account{ID: id, Name: "Dana", Role: model.RoleCustomer}, nil
			},
		},
		catalog: &mockBarCatalog{
			findBarFunc: func(ctx context.Context, id string) (*model.Bar, error) {
				return &model.Bar{ID: id, Name: "The Local", DiscountPercent: 10}, nil
			},
			findTablesByIDsFunc: func(ctx context.Context, barID string, ids []string) ([]*model.Table, error) {
				tables := make([]*model.Table, 0, len(ids))
				for _, id := range ids {
					tables = append(tables, &model.Table{ID: id, BarID: barID, Label: "T-" + id, BasePrice: 50})
				}
				return tables, nil
			},
			findDrinksByIDsFunc: func(ctx context.Context, barID string, ids []string) ([]*model.Drink, error) {
				drinks := make([]*model.Drink, 0, len(ids))
				for _, id := range ids {
					drinks = append(drinks, &model.Drink{ID: id, BarID: barID, Name: "Stout", UnitPrice: 10, InStock: true})
				}
				return drinks, nil
			},
		},
		windows:   &mockWindowResolver{},
		tickets:   &mockTicketIssuer{},
		payLinker: &mockPaymentLinker{},
		publisher: &recordingPublisher{},
	}
}

func bookingRequest() *model.BookingRequest {
	return &model.BookingRequest{
		BarID:        "bar-1",
		BookingDate:  "2026-09-14",
		BookingClock: "20:00",
		TableIDs:     []string{"t1", "t2"},
	}
}

func TestCreate_TableOnly(t *testing.T) {
	deps := happyDeps()
	svc := newTestService(deps)

	confirmation, err := svc.Create(context.Background(), "acct-1", bookingRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	booking := confirmation.Booking
	if booking.Status != model.BookingPending {
		t.Errorf("expected pending status, got %v", booking.Status)
	}
	if booking.TotalPrice != 100 {
		t.Errorf("expected total 100, got %v", booking.TotalPrice)
	}
	if confirmation.PaymentURL != "" {
		t.Error("expected no payment URL for a table-only booking")
	}
	if booking.TicketURL != "http://tickets.local/ticket-booking-1.pdf" {
		t.Errorf("unexpected ticket URL %s", booking.TicketURL)
	}
	if deps.repo.ticketURLSet != booking.TicketURL {
		t.Error("expected ticket URL to be persisted")
	}
	if deps.payLinker.calls != 0 {
		t.Error("expected no payment link request")
	}

	if len(deps.publisher.published) != 1 {
		t.Fatalf("expected 1 event, got %d", len(deps.publisher.published))
	}
	if got := deps.publisher.published[0].GetEventType(); got != kafka.EventBookingCreated {
		t.Errorf("expected booking.created event, got %s", got)
	}
}

func TestCreate_WithDrinksAndPayment(t *testing.T) {
	deps := happyDeps()
	svc := newTestService(deps)

	req := bookingRequest()
	req.Drinks = []model.DrinkRequest{{DrinkID: "d1", Quantity: 2}}
	req.PaymentDestination = "dana@upay"

	confirmation, err := svc.Create(context.Background(), "acct-1", req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 2 tables x 50 + 2 x 10 drinks with 10% discount = 118.
	if got := confirmation.Booking.TotalPrice; got != 118 {
		t.Errorf("expected total 118, got %v", got)
	}
	if confirmation.PaymentURL != "https://pay.example/booking-1" {
		t.Errorf("unexpected payment URL %s", confirmation.PaymentURL)
	}
	if deps.payLinker.calls != 1 {
		t.Errorf("expected 1 payment link request, got %d", deps.payLinker.calls)
	}
}

func TestCreate_DrinkIDCasePreserved(t *testing.T) {
	deps := happyDeps()
	svc := newTestService(deps)

	req := bookingRequest()
	req.Drinks = []model.DrinkRequest{{DrinkID: " 689f1c2ab1e4d30012345678 ", Quantity: 1}}

	confirmation, err := svc.Create(context.Background(), "acct-1", req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	drinks := confirmation.Booking.Drinks
	if len(drinks) != 1 {
		t.Fatalf("expected 1 drink line, got %d", len(drinks))
	}
	if drinks[0].DrinkID != "689f1c2ab1e4d30012345678" {
		t.Errorf("expected hex ID preserved as-is, got %q", drinks[0].DrinkID)
	}
}

func TestCreate_EmptyTableListFailsFirst(t *testing.T) {
	deps := happyDeps()
	svc := newTestService(deps)

	req := bookingRequest()
	req.TableIDs = []string{"  ", ""}

	_, err := svc.Create(context.Background(), "acct-1", req)
	appErr := apperrors.AsAppError(err)
	if appErr == nil || appErr.Code != apperrors.CodeInvalidInput {
		t.Fatalf("expected invalid input, got %v", err)
	}
	if appErr.Message != "Booking request does not have table field" {
		t.Errorf("unexpected message %q", appErr.Message)
	}
	if deps.accounts.calls != 0 {
		t.Error("expected no account lookup for an empty table list")
	}
}

func TestCreate_ValidationOrder(t *testing.T) {
	t.Run("unknown account stops before bar", func(t *testing.T) {
		deps := happyDeps()
		deps.accounts.getByIDFunc = nil
		svc := newTestService(deps)

		_, err := svc.Create(context.Background(), "acct-x", bookingRequest())
		appErr := apperrors.AsAppError(err)
		if appErr == nil || appErr.Code != apperrors.CodeNotFound {
			t.Fatalf("expected not found, got %v", err)
		}
		if deps.catalog.barCalls != 0 {
			t.Error("expected no bar lookup after account failure")
		}
	})

	t.Run("unknown bar stops before window", func(t *testing.T) {
		deps := happyDeps()
		deps.catalog.findBarFunc = nil
		svc := newTestService(deps)

		_, err := svc.Create(context.Background(), "acct-1", bookingRequest())
		appErr := apperrors.AsAppError(err)
		if appErr == nil || appErr.Code != apperrors.CodeNotFound {
			t.Fatalf("expected not found, got %v", err)
		}
		if deps.windows.calls != 0 {
			t.Error("expected no window resolve after bar failure")
		}
	})

	t.Run("closed window stops before tables", func(t *testing.T) {
		deps := happyDeps()
		deps.windows.resolveFunc = func(ctx context.Context, barID, date, clock string) error {
			return apperrors.Validation("Requested clock is outside the bar's operating window", nil)
		}
		svc := newTestService(deps)

		_, err := svc.Create(context.Background(), "acct-1", bookingRequest())
		appErr := apperrors.AsAppError(err)
		if appErr == nil || appErr.Code != apperrors.CodeValidation {
			t.Fatalf("expected validation error, got %v", err)
		}
		if deps.catalog.tableCalls != 0 {
			t.Error("expected no table lookup after window failure")
		}
	})

	t.Run("unknown tables stop before drinks and persist", func(t *testing.T) {
		deps := happyDeps()
		deps.catalog.findTablesByIDsFunc = func(ctx context.Context, barID string, ids []string) ([]*model.Table, error) {
			return []*model.Table{{ID: "t1", BarID: barID, BasePrice: 50}}, nil
		}
		svc := newTestService(deps)

		req := bookingRequest()
		req.Drinks = []model.DrinkRequest{{DrinkID: "d1", Quantity: 1}}

		_, err := svc.Create(context.Background(), "acct-1", req)
		appErr := apperrors.AsAppError(err)
		if appErr == nil || appErr.Message != "Some TableIds do not exist." {
			t.Fatalf("expected table resolution failure, got %v", err)
		}
		if deps.catalog.drinkCalls != 0 {
			t.Error("expected no drink lookup after table failure")
		}
		if deps.repo.createCalls != 0 {
			t.Error("expected no persist after table failure")
		}
	})

	t.Run("unknown drinks stop before persist", func(t *testing.T) {
		deps := happyDeps()
		deps.catalog.findDrinksByIDsFunc = func(ctx context.Context, barID string, ids []string) ([]*model.Drink, error) {
			return []*model.Drink{}, nil
		}
		svc := newTestService(deps)

		req := bookingRequest()
		req.Drinks = []model.DrinkRequest{{DrinkID: "d1", Quantity: 1}}

		_, err := svc.Create(context.Background(), "acct-1", req)
		appErr := apperrors.AsAppError(err)
		if appErr == nil || appErr.Message != "Some DrinkIds do not exist." {
			t.Fatalf("expected drink resolution failure, got %v", err)
		}
		if deps.repo.createCalls != 0 {
			t.Error("expected no persist after drink failure")
		}
	})
}

func TestCreate_OutOfStockDrink(t *testing.T) {
	deps := happyDeps()
	deps.catalog.findDrinksByIDsFunc = func(ctx context.Context, barID string, ids []string) ([]*model.Drink, error) {
		return []*model.Drink{{ID: "d1", BarID: barID, Name: "Stout", UnitPrice: 10, InStock: false}}, nil
	}
	svc := newTestService(deps)

	req := bookingRequest()
	req.Drinks = []model.DrinkRequest{{DrinkID: "d1", Quantity: 1}}

	_, err := svc.Create(context.Background(), "acct-1", req)
	appErr := apperrors.AsAppError(err)
	if appErr == nil || appErr.Code != apperrors.CodeInvalidInput {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestCreate_TicketFailurePropagates(t *testing.T) {
	deps := happyDeps()
	deps.tickets.issueFunc = func(ctx context.Context, booking *model.Booking) (string, error) {
		return "", apperrors.Internal("image store unavailable", nil)
	}
	svc := newTestService(deps)

	_, err := svc.Create(context.Background(), "acct-1", bookingRequest())
	appErr := apperrors.AsAppError(err)
	if appErr == nil || appErr.Code != apperrors.CodeInternal {
		t.Fatalf("expected internal error, got %v", err)
	}
	// The booking is already committed by the time the ticket fails.
	if deps.repo.createCalls != 1 {
		t.Errorf("expected 1 persist, got %d", deps.repo.createCalls)
	}
}

func pendingBooking() *model.Booking {
	return &model.Booking{
		ID:           "booking-1",
		AccountID:    "acct-1",
		BarID:        "bar-1",
		BookingDate:  "2026-09-14",
		BookingClock: "20:00",
		Status:       model.BookingPending,
		TotalPrice:   100,
		Tables: []model.BookingTable{
			{TableID: "t1", BasePrice: 50},
			{TableID: "t2", BasePrice: 50},
		},
	}
}

func withBooking(deps *testDeps, booking *model.Booking) {
	deps.repo.findByIDFunc = func(ctx context.Context, id string) (*model.Booking, error) {
		if id == booking.ID {
			return booking, nil
		}
		return nil, bookingserrors.ErrNotFound
	}
}

func staffAccount(deps *testDeps, barID string) {
	deps.accounts.getByIDFunc = func(ctx context.Context, id string) (*model.Account, error) {
		return &model.Account{ID: id, Role: model.RoleStaff, BarID: barID}, nil
	}
}

func atClock(t *testing.T, clock string) func() time.Time {
	t.Helper()
	now, err := model.CombineDateClock("2026-09-14", clock)
	if err != nil {
		t.Fatalf("bad test clock %s: %v", clock, err)
	}
	return func() time.Time { return now }
}

func TestUpdateStatus_NegativeFeeFailsBeforeRead(t *testing.T) {
	deps := happyDeps()
	svc := newTestService(deps)

	_, err := svc.UpdateStatus(context.Background(), "staff-1", "booking-1", &model.StatusUpdate{
		Status:        model.BookingConfirmed,
		AdditionalFee: -5,
	})
	appErr := apperrors.AsAppError(err)
	if appErr == nil || appErr.Code != apperrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if deps.repo.findCalls != 0 {
		t.Error("expected no booking read for a negative fee")
	}
}

func TestUpdateStatus_CancelledBookingIsImmutable(t *testing.T) {
	deps := happyDeps()
	booking := pendingBooking()
	booking.Status = model.BookingCancelled
	withBooking(deps, booking)
	staffAccount(deps, "bar-1")
	svc := newTestService(deps)

	_, err := svc.UpdateStatus(context.Background(), "staff-1", "booking-1", &model.StatusUpdate{
		Status: model.BookingConfirmed,
	})
	appErr := apperrors.AsAppError(err)
	if appErr == nil || appErr.Code != apperrors.CodeInvalidInput {
		t.Fatalf("expected invalid input, got %v", err)
	}
	if deps.repo.updateCalls != 0 {
		t.Error("expected no mutation on a cancelled booking")
	}
}

func TestUpdateStatus_ForeignStaffRejected(t *testing.T) {
	deps := happyDeps()
	withBooking(deps, pendingBooking())
	staffAccount(deps, "bar-2")
	svc := newTestService(deps)

	_, err := svc.UpdateStatus(context.Background(), "staff-1", "booking-1", &model.StatusUpdate{
		Status: model.BookingConfirmed,
	})
	appErr := apperrors.AsAppError(err)
	if appErr == nil || appErr.Code != apperrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestUpdateStatus_ForwardOnly(t *testing.T) {
	deps := happyDeps()
	withBooking(deps, pendingBooking())
	staffAccount(deps, "bar-1")
	svc := newTestService(deps)

	// Pending cannot jump straight to completed.
	_, err := svc.UpdateStatus(context.Background(), "staff-1", "booking-1", &model.StatusUpdate{
		Status: model.BookingCompleted,
	})
	appErr := apperrors.AsAppError(err)
	if appErr == nil || appErr.Code != apperrors.CodeInvalidInput {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestUpdateStatus_ConfirmSeatsTables(t *testing.T) {
	deps := happyDeps()
	withBooking(deps, pendingBooking())
	staffAccount(deps, "bar-1")
	svc := newTestService(deps)

	updated, err := svc.UpdateStatus(context.Background(), "staff-1", "booking-1", &model.StatusUpdate{
		Status:        model.BookingConfirmed,
		AdditionalFee: 15,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !updated {
		t.Error("expected updated true")
	}
	if deps.catalog.occupiedCalls != 2 {
		t.Errorf("expected 2 tables seated, got %d", deps.catalog.occupiedCalls)
	}
	if len(deps.publisher.published) != 1 || deps.publisher.published[0].GetEventType() != kafka.EventBookingConfirmed {
		t.Error("expected a booking.confirmed event")
	}
}

func TestUpdateStatus_CancelPastCutoffIsSoftRefusal(t *testing.T) {
	deps := happyDeps()
	withBooking(deps, pendingBooking())
	staffAccount(deps, "bar-1")
	svc := newTestService(deps)
	svc.now = atClock(t, "19:00")

	updated, err := svc.UpdateStatus(context.Background(), "staff-1", "booking-1", &model.StatusUpdate{
		Status: model.BookingCancelled,
	})
	if err != nil {
		t.Fatalf("expected soft refusal, got error %v", err)
	}
	if updated {
		t.Error("expected updated false past the cutoff")
	}
	if deps.repo.updateCalls != 0 {
		t.Error("expected no mutation past the cutoff")
	}
}

func TestCancel_HappyPath(t *testing.T) {
	deps := happyDeps()
	withBooking(deps, pendingBooking())
	svc := newTestService(deps)
	svc.now = atClock(t, "10:00")

	cancelled, err := svc.Cancel(context.Background(), "acct-1", "booking-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cancelled {
		t.Error("expected cancelled true")
	}
	if deps.repo.updateCalls != 1 {
		t.Errorf("expected 1 status update, got %d", deps.repo.updateCalls)
	}
	if len(deps.publisher.published) != 1 || deps.publisher.published[0].GetEventType() != kafka.EventBookingCancelled {
		t.Error("expected a booking.cancelled event")
	}
}

func TestCancel_PastCutoff(t *testing.T) {
	deps := happyDeps()
	withBooking(deps, pendingBooking())
	svc := newTestService(deps)
	svc.now = atClock(t, "18:30")

	cancelled, err := svc.Cancel(context.Background(), "acct-1", "booking-1")
	if err != nil {
		t.Fatalf("expected soft refusal, got error %v", err)
	}
	if cancelled {
		t.Error("expected cancelled false past the cutoff")
	}
	if deps.repo.updateCalls != 0 {
		t.Error("expected no mutation past the cutoff")
	}
}

func TestCancel_MissingOrCancelled(t *testing.T) {
	t.Run("missing booking", func(t *testing.T) {
		deps := happyDeps()
		svc := newTestService(deps)

		_, err := svc.Cancel(context.Background(), "acct-1", "booking-9")
		appErr := apperrors.AsAppError(err)
		if appErr == nil || appErr.Code != apperrors.CodeNotFound {
			t.Fatalf("expected not found, got %v", err)
		}
	})

	t.Run("already cancelled", func(t *testing.T) {
		deps := happyDeps()
		booking := pendingBooking()
		booking.Status = model.BookingCancelled
		withBooking(deps, booking)
		svc := newTestService(deps)

		_, err := svc.Cancel(context.Background(), "acct-1", "booking-1")
		appErr := apperrors.AsAppError(err)
		if appErr == nil || appErr.Code != apperrors.CodeNotFound {
			t.Fatalf("expected not found, got %v", err)
		}
	})
}

func TestCancel_ForeignBooking(t *testing.T) {
	deps := happyDeps()
	withBooking(deps, pendingBooking())
	svc := newTestService(deps)
	svc.now = atClock(t, "10:00")

	_, err := svc.Cancel(context.Background(), "acct-2", "booking-1")
	appErr := apperrors.AsAppError(err)
	if appErr == nil || appErr.Code != apperrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized, got %v", err)
	}
	if deps.repo.updateCalls != 0 {
		t.Error("expected no mutation for a foreign booking")
	}
}
