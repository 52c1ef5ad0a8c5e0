package service

import (
	"context"
	"errors"
	"sync"
	"time"

	bookingserrors "barkeep/internal/bookings/errors"
	"barkeep/internal/bookings/repository"
	"barkeep/internal/bookings/validator"
	"barkeep/internal/payments"
	"barkeep/internal/ticketing"
	"barkeep/pkg/config"
	apperrors "barkeep/pkg/errors"
	"barkeep/pkg/kafka"
	"barkeep/pkg/model"
	"barkeep/pkg/sanitizer"

	"go.mongodb.org/mongo-driver/mongo"
)

const paymentCurrency = "ILS"

// AccountDirectory resolves caller identities. Errors come back as
// AppErrors ready to surface.
type AccountDirectory interface {
	GetByID(ctx context.Context, id string) (*model.Account, error)
}

// BarCatalog is the slice of the bars domain the lifecycle needs.
type BarCatalog interface {
	FindBar(ctx context.Context, id string) (*model.Bar, error)
	FindTablesByIDs(ctx context.Context, barID string, ids []string) ([]*model.Table, error)
	FindDrinksByIDs(ctx context.Context, barID string, ids []string) ([]*model.Drink, error)
	SetTableOccupied(ctx context.Context, tableID string) error
}

// WindowResolver answers whether the bar is open for the requested slot.
// A nil error means an operating window covers it.
type WindowResolver interface {
	ResolveWindow(ctx context.Context, barID, date, clock string) error
}

type BookingService interface {
	Create(ctx context.Context, callerID string, req *model.BookingRequest) (*model.BookingConfirmation, error)
	GetByID(ctx context.Context, id string) (*model.Booking, error)
	GetByAccount(ctx context.Context, accountID string, limit int, offset int64) ([]*model.Booking, int64, error)
	GetByBarAndDate(ctx context.Context, barID, date string) ([]*model.Booking, error)
	UpdateStatus(ctx context.Context, callerID, bookingID string, update *model.StatusUpdate) (bool, error)
	Cancel(ctx context.Context, callerID, bookingID string) (bool, error)
}

type bookingService struct {
	repo      repository.BookingRepository
	accounts  AccountDirectory
	catalog   BarCatalog
	windows   WindowResolver
	tickets   ticketing.Issuer
	payLinker payments.Linker
	publisher kafka.EventPublisher
	validator *validator.BookingValidator
	cfg       *config.Config
	now       func() time.Time
}

func NewBookingService(
	repo repository.BookingRepository,
	accounts AccountDirectory,
	catalog BarCatalog,
	windows WindowResolver,
	tickets ticketing.Issuer,
	payLinker payments.Linker,
	publisher kafka.EventPublisher,
	bookingValidator *validator.BookingValidator,
	cfg *config.Config,
) BookingService {
	return &bookingService{
		repo:      repo,
		accounts:  accounts,
		catalog:   catalog,
		windows:   windows,
		tickets:   tickets,
		payLinker: payLinker,
		publisher: publisher,
		validator: bookingValidator,
		cfg:       cfg,
		now:       time.Now,
	}
}

// Create runs the full booking pipeline. The validation order is part of
// the contract: account, bar, window, tables, drinks, then the
// transactional persist; each step short-circuits with its own error
// kind so callers can tell what went wrong.
func (s *bookingService) Create(ctx context.Context, callerID string, req *model.BookingRequest) (*model.BookingConfirmation, error) {
	if callerID == "" {
		return nil, apperrors.Unauthorized("Missing account identity")
	}

	req.BookingDate = sanitizer.NormalizeDate(req.BookingDate)
	req.BookingClock = sanitizer.NormalizeClock(req.BookingClock)
	req.TableIDs = sanitizer.NormalizeTableIDs(req.TableIDs)

	if err := s.validator.ValidateRequest(req); err != nil {
		s.cfg.Log.Warn("Booking request validation failed", "error", err)
		return nil, apperrors.Validation("Invalid booking request", map[string]any{"error": err.Error()})
	}
	if len(req.TableIDs) == 0 {
		return nil, apperrors.InvalidInput("Booking request does not have table field")
	}

	account, err := s.accounts.GetByID(ctx, callerID)
	if err != nil {
		return nil, err
	}

	bar, err := s.catalog.FindBar(ctx, req.BarID)
	if err != nil {
		return nil, err
	}

	if err := s.windows.ResolveWindow(ctx, req.BarID, req.BookingDate, req.BookingClock); err != nil {
		return nil, err
	}

	tableLines, err := s.resolveTables(ctx, req)
	if err != nil {
		return nil, err
	}

	drinkLines, err := s.resolveDrinks(ctx, req)
	if err != nil {
		return nil, err
	}

	booking := &model.Booking{
		AccountID:    account.ID,
		BarID:        bar.ID,
		BookingDate:  req.BookingDate,
		BookingClock: req.BookingClock,
		Status:       model.BookingPending,
		Tables:       tableLines,
		Drinks:       drinkLines,
		TotalPrice:   TotalPrice(tableLines, drinkLines, bar.DiscountPercent, 0),
	}

	err = s.repo.ExecuteTransaction(ctx, func(sessCtx mongo.SessionContext) error {
		if err := s.repo.Create(sessCtx, booking); err != nil {
			return apperrors.Internal("Failed to create booking", err)
		}
		return nil
	})
	if err != nil {
		s.cfg.Log.Error("Failed to create booking", "error", err)
		return nil, err
	}

	// Collaborator failures from here on propagate unchanged; the
	// booking itself is already committed.
	ticketURL, err := s.tickets.Issue(ctx, booking)
	if err != nil {
		s.cfg.Log.Error("Failed to issue ticket", "booking_id", booking.ID, "error", err)
		return nil, err
	}
	booking.TicketURL = ticketURL
	if err := s.repo.SetTicketURL(ctx, booking.ID, ticketURL); err != nil {
		s.cfg.Log.Error("Failed to store ticket URL", "booking_id", booking.ID, "error", err)
		return nil, apperrors.Internal("Failed to store ticket URL", err)
	}

	confirmation := &model.BookingConfirmation{Booking: booking}

	if len(drinkLines) > 0 && req.PaymentDestination != "" {
		link, err := s.payLinker.GetPaymentLink(ctx, payments.LinkRequest{
			BookingID:   booking.ID,
			AccountID:   account.ID,
			Amount:      booking.TotalPrice,
			Currency:    paymentCurrency,
			Destination: req.PaymentDestination,
		})
		if err != nil {
			s.cfg.Log.Error("Failed to obtain payment link", "booking_id", booking.ID, "error", err)
			return nil, err
		}
		confirmation.PaymentURL = link.URL
	}

	s.publishEvent(kafka.EventBookingCreated, booking)

	s.cfg.Log.Info("Booking created",
		"id", booking.ID,
		"bar_id", booking.BarID,
		"booking_date", booking.BookingDate,
		"booking_clock", booking.BookingClock,
		"tables", len(booking.Tables),
		"total_price", booking.TotalPrice,
	)
	return confirmation, nil
}

func (s *bookingService) resolveTables(ctx context.Context, req *model.BookingRequest) ([]model.BookingTable, error) {
	tables, err := s.catalog.FindTablesByIDs(ctx, req.BarID, req.TableIDs)
	if err != nil {
		return nil, err
	}
	if len(tables) != len(req.TableIDs) {
		return nil, apperrors.InvalidInput("Some TableIds do not exist.")
	}

	lines := make([]model.BookingTable, 0, len(tables))
	for _, table := range tables {
		lines = append(lines, model.BookingTable{
			TableID:   table.ID,
			BasePrice: table.BasePrice,
		})
	}
	return lines, nil
}

func (s *bookingService) resolveDrinks(ctx context.Context, req *model.BookingRequest) ([]model.BookingDrink, error) {
	if len(req.Drinks) == 0 {
		return nil, nil
	}

	ids := make([]string, 0, len(req.Drinks))
	for _, line := range req.Drinks {
		ids = append(ids, line.DrinkID)
	}
	ids = sanitizer.NormalizeDrinkIDs(ids)

	drinks, err := s.catalog.FindDrinksByIDs(ctx, req.BarID, ids)
	if err != nil {
		return nil, err
	}
	if len(drinks) != len(ids) {
		return nil, apperrors.InvalidInput("Some DrinkIds do not exist.")
	}

	byID := make(map[string]*model.Drink, len(drinks))
	for _, drink := range drinks {
		byID[drink.ID] = drink
	}

	lines := make([]model.BookingDrink, 0, len(req.Drinks))
	for _, line := range req.Drinks {
		drink := byID[sanitizer.NormalizeID(line.DrinkID)]
		if drink == nil {
			return nil, apperrors.InvalidInput("Some DrinkIds do not exist.")
		}
		if !drink.InStock {
			return nil, apperrors.InvalidInput("Drink " + drink.Name + " is out of stock")
		}
		lines = append(lines, model.BookingDrink{
			DrinkID:   drink.ID,
			Quantity:  line.Quantity,
			UnitPrice: drink.UnitPrice,
		})
	}
	return lines, nil
}

func (s *bookingService) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Booking ID cannot be empty")
	}

	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Booking", id)
		}
		if errors.Is(err, bookingserrors.ErrInvalidID) {
			return nil, apperrors.InvalidInput("Invalid booking ID format")
		}
		return nil, apperrors.Internal("Failed to retrieve booking", err)
	}

	return booking, nil
}

func (s *bookingService) GetByAccount(ctx context.Context, accountID string, limit int, offset int64) ([]*model.Booking, int64, error) {
	if accountID == "" {
		return nil, 0, apperrors.InvalidInput("Account ID cannot be empty")
	}

	var count int64
	var bookings []*model.Booking
	var errCount, errFind error
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		count, errCount = s.repo.CountByAccount(ctx, accountID)
	}()
	go func() {
		defer wg.Done()
		bookings, errFind = s.repo.FindByAccount(ctx, accountID, limit, offset)
	}()
	wg.Wait()

	if errCount != nil {
		return nil, 0, apperrors.Internal("Failed to count bookings", errCount)
	}
	if errFind != nil {
		return nil, 0, apperrors.Internal("Failed to retrieve bookings", errFind)
	}

	return bookings, count, nil
}

func (s *bookingService) GetByBarAndDate(ctx context.Context, barID, date string) ([]*model.Booking, error) {
	if barID == "" {
		return nil, apperrors.InvalidInput("Bar ID cannot be empty")
	}
	date = sanitizer.NormalizeDate(date)
	if _, err := model.ParseDate(date); err != nil {
		return nil, apperrors.InvalidInput("Date must be a YYYY-MM-DD calendar date")
	}

	bookings, err := s.repo.FindByBarAndDate(ctx, barID, date, nil)
	if err != nil {
		return nil, apperrors.Internal("Failed to retrieve bookings", err)
	}
	return bookings, nil
}

// UpdateStatus is the staff transition path. The boolean result is only
// meaningful for Pending -> Cancelled: (false, nil) means the cutoff has
// passed and nothing was changed. Every other refusal is a typed error.
func (s *bookingService) UpdateStatus(ctx context.Context, callerID, bookingID string, update *model.StatusUpdate) (bool, error) {
	// Fee check runs before any read or mutation.
	if err := s.validator.ValidateStatusUpdate(update); err != nil {
		return false, apperrors.Validation("Invalid status update", map[string]any{"error": err.Error()})
	}

	booking, err := s.GetByID(ctx, bookingID)
	if err != nil {
		return false, err
	}

	if booking.Status == model.BookingCancelled {
		return false, apperrors.InvalidInput("Cancelled bookings cannot be modified")
	}

	account, err := s.accounts.GetByID(ctx, callerID)
	if err != nil {
		return false, err
	}
	if account.Role != model.RoleAdmin && account.BarID != booking.BarID {
		return false, apperrors.Unauthorized("Caller is not staff of the booking's bar")
	}

	if !booking.Status.CanTransitionTo(update.Status) {
		return false, apperrors.InvalidInput(
			"Cannot transition booking from " + booking.Status.String() + " to " + update.Status.String())
	}

	if update.Status == model.BookingCancelled && !CanCancel(booking, s.now(), s.cfg.CancelCutoff) {
		return false, nil
	}

	totalPrice := booking.TotalPrice - booking.AdditionalFee + update.AdditionalFee

	err = s.repo.ExecuteTransaction(ctx, func(sessCtx mongo.SessionContext) error {
		if err := s.repo.UpdateStatus(sessCtx, booking.ID, update.Status, update.AdditionalFee, totalPrice); err != nil {
			return apperrors.Internal("Failed to update booking status", err)
		}

		// A confirmed booking seats its tables.
		if update.Status == model.BookingConfirmed {
			for _, line := range booking.Tables {
				if err := s.catalog.SetTableOccupied(sessCtx, line.TableID); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		s.cfg.Log.Error("Failed to update booking status", "booking_id", booking.ID, "error", err)
		return false, err
	}

	booking.Status = update.Status
	booking.AdditionalFee = update.AdditionalFee
	booking.TotalPrice = totalPrice
	s.publishEvent(statusEventType(update.Status), booking)

	s.cfg.Log.Info("Booking status updated",
		"booking_id", booking.ID,
		"status", update.Status.String(),
		"additional_fee", update.AdditionalFee,
	)
	return true, nil
}

// Cancel is the customer path. A missing or already-cancelled booking is
// "nothing actionable" (NotFound); a cutoff breach is the soft (false,
// nil) refusal with no mutation.
func (s *bookingService) Cancel(ctx context.Context, callerID, bookingID string) (bool, error) {
	booking, err := s.GetByID(ctx, bookingID)
	if err != nil {
		return false, err
	}

	if booking.Status == model.BookingCancelled {
		return false, apperrors.NotFoundWithID("Booking", bookingID)
	}
	if booking.AccountID != callerID {
		return false, apperrors.Unauthorized("Booking belongs to another account")
	}

	if !CanCancel(booking, s.now(), s.cfg.CancelCutoff) {
		return false, nil
	}

	err = s.repo.ExecuteTransaction(ctx, func(sessCtx mongo.SessionContext) error {
		if err := s.repo.UpdateStatus(sessCtx, booking.ID, model.BookingCancelled, booking.AdditionalFee, booking.TotalPrice); err != nil {
			return apperrors.Internal("Failed to cancel booking", err)
		}
		return nil
	})
	if err != nil {
		s.cfg.Log.Error("Failed to cancel booking", "booking_id", booking.ID, "error", err)
		return false, err
	}

	booking.Status = model.BookingCancelled
	s.publishEvent(kafka.EventBookingCancelled, booking)

	s.cfg.Log.Info("Booking cancelled", "booking_id", booking.ID, "account_id", callerID)
	return true, nil
}

func statusEventType(status model.BookingStatus) string {
	switch status {
	case model.BookingConfirmed:
		return kafka.EventBookingConfirmed
	case model.BookingCompleted:
		return kafka.EventBookingCompleted
	default:
		return kafka.EventBookingCancelled
	}
}

// publishEvent is best effort: the booking is committed, listeners just
// catch up later if the broker is down.
func (s *bookingService) publishEvent(eventType string, booking *model.Booking) {
	if s.publisher == nil {
		return
	}

	tableIDs := make([]string, 0, len(booking.Tables))
	for _, line := range booking.Tables {
		tableIDs = append(tableIDs, line.TableID)
	}

	event := kafka.BookingEvent{
		BookingID:    booking.ID,
		AccountID:    booking.AccountID,
		BarID:        booking.BarID,
		BookingDate:  booking.BookingDate,
		BookingClock: booking.BookingClock,
		TableIDs:     tableIDs,
		Status:       booking.Status.String(),
		OccurredAt:   time.Now(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := kafka.PublishBookingEvent(ctx, s.publisher, eventType, event); err != nil {
		s.cfg.Log.Warn("Failed to publish booking event",
			"event_type", eventType,
			"booking_id", booking.ID,
			"error", err,
		)
	}
}
