package service

import (
	"context"
	"errors"
	"time"

	"barkeep/internal/holds/broadcast"
	holdserrors "barkeep/internal/holds/errors"
	"barkeep/internal/holds/store"
	"barkeep/internal/holds/validator"
	"barkeep/pkg/config"
	apperrors "barkeep/pkg/errors"
	"barkeep/pkg/kafka"
	"barkeep/pkg/model"
	"barkeep/pkg/sanitizer"
	"barkeep/pkg/sealer"
)

// TableCatalog is the slice of the bars service the hold manager needs.
type TableCatalog interface {
	GetTables(ctx context.Context, barID string) ([]*model.Table, error)
}

// WindowResolver answers whether a bar is open for a given slot. A nil
// error means the slot falls inside an operating window.
type WindowResolver interface {
	ResolveWindow(ctx context.Context, barID, date, clock string) error
}

// Broadcaster is the realtime collaborator. Notifications are fire and
// forget; its failures never surface to hold callers.
type Broadcaster interface {
	NotifyHold(notice broadcast.Notice)
}

type HoldService interface {
	HoldTable(ctx context.Context, accountID string, req *model.HoldRequest) (*model.HoldResult, error)
	HoldTableList(ctx context.Context, barID, date, clock string) ([]model.TableSlotStatus, error)
	ReleaseSlots(ctx context.Context, accountID, barID string, tableIDs []string, date, clock string)
}

type holdService struct {
	holds     store.HoldStore
	catalog   TableCatalog
	windows   WindowResolver
	hub       Broadcaster
	sealer    *sealer.Sealer
	publisher kafka.EventPublisher
	validator *validator.HoldValidator
	cfg       *config.Config
}

func NewHoldService(
	holds store.HoldStore,
	catalog TableCatalog,
	windows WindowResolver,
	hub Broadcaster,
	slotSealer *sealer.Sealer,
	publisher kafka.EventPublisher,
	holdValidator *validator.HoldValidator,
	cfg *config.Config,
) HoldService {
	return &holdService{
		holds:     holds,
		catalog:   catalog,
		windows:   windows,
		hub:       hub,
		sealer:    slotSealer,
		publisher: publisher,
		validator: holdValidator,
		cfg:       cfg,
	}
}

func (s *holdService) HoldTable(ctx context.Context, accountID string, req *model.HoldRequest) (*model.HoldResult, error) {
	if accountID == "" {
		return nil, apperrors.Unauthorized("Missing account identity")
	}

	req.Date = sanitizer.NormalizeDate(req.Date)
	req.Clock = sanitizer.NormalizeClock(req.Clock)

	if err := s.validator.Validate(req); err != nil {
		s.cfg.Log.Warn("Hold request validation failed", "error", err)
		return nil, apperrors.Validation("Invalid hold request", map[string]any{"error": err.Error()})
	}

	table, err := s.findTable(ctx, req.BarID, req.TableID)
	if err != nil {
		if errors.Is(err, holdserrors.ErrTableNotInBar) {
			return nil, apperrors.NotFoundWithID("Table", req.TableID)
		}
		return nil, err
	}

	if err := s.windows.ResolveWindow(ctx, req.BarID, req.Date, req.Clock); err != nil {
		return nil, err
	}

	slot := store.Slot{
		BarID:   req.BarID,
		TableID: req.TableID,
		Date:    req.Date,
		Clock:   req.Clock,
	}

	hold, err := s.holds.Acquire(ctx, slot, accountID, s.cfg.HoldTTL)
	if err != nil {
		if errors.Is(err, holdserrors.ErrSlotHeld) {
			s.cfg.Log.Info("Hold conflict",
				"bar_id", req.BarID,
				"table_id", req.TableID,
				"date", req.Date,
				"clock", req.Clock,
			)
			return nil, apperrors.Conflict("Table " + table.Label + " is already held for this slot")
		}
		return nil, apperrors.Internal("Failed to place hold", err)
	}

	token, err := s.sealer.SealSlot(sealer.Slot{
		BarID:   req.BarID,
		TableID: req.TableID,
		Date:    req.Date,
		Clock:   req.Clock,
	})
	if err != nil {
		return nil, apperrors.Internal("Failed to seal slot token", err)
	}

	s.notify(kafka.EventHoldPlaced, slot, accountID, hold.HeldUntil)

	s.cfg.Log.Info("Table held",
		"bar_id", req.BarID,
		"table_id", req.TableID,
		"date", req.Date,
		"clock", req.Clock,
		"held_until", hold.HeldUntil,
	)

	return &model.HoldResult{
		TableID:    req.TableID,
		AccountID:  accountID,
		IsHeld:     true,
		HoldExpiry: hold.HeldUntil,
		SlotToken:  token,
	}, nil
}

func (s *holdService) HoldTableList(ctx context.Context, barID, date, clock string) ([]model.TableSlotStatus, error) {
	date = sanitizer.NormalizeDate(date)
	clock = sanitizer.NormalizeClock(clock)

	if barID == "" {
		return nil, apperrors.InvalidInput("Bar ID cannot be empty")
	}
	if _, err := model.ParseDate(date); err != nil {
		return nil, apperrors.InvalidInput("Date must be a YYYY-MM-DD calendar date")
	}
	if _, err := model.ParseClock(clock); err != nil {
		return nil, apperrors.InvalidInput("Clock must be a HH:MM time of day")
	}

	tables, err := s.catalog.GetTables(ctx, barID)
	if err != nil {
		return nil, err
	}

	statuses := make([]model.TableSlotStatus, 0, len(tables))
	for _, table := range tables {
		slot := store.Slot{
			BarID:   barID,
			TableID: table.ID,
			Date:    date,
			Clock:   clock,
		}

		status := model.TableSlotStatus{
			TableID:   table.ID,
			Label:     table.Label,
			TableType: table.TableType,
			Capacity:  table.Capacity,
			BasePrice: table.BasePrice,
		}

		hold, err := s.holds.Get(ctx, slot)
		if err != nil {
			return nil, apperrors.Internal("Failed to read hold state", err)
		}
		if hold != nil {
			status.IsHeld = true
			status.HeldUntil = hold.HeldUntil
		} else if token, err := s.sealer.SealSlot(sealer.Slot(slot)); err == nil {
			// Free slots carry a token the caller can hold with.
			status.SlotToken = token
		}

		statuses = append(statuses, status)
	}

	return statuses, nil
}

// ReleaseSlots drops the account's holds for the given tables. Used when
// a booking lands so the held slots free up immediately instead of
// waiting out the TTL. Errors are logged, never returned: release is
// cleanup, not a correctness step.
func (s *holdService) ReleaseSlots(ctx context.Context, accountID, barID string, tableIDs []string, date, clock string) {
	for _, tableID := range tableIDs {
		slot := store.Slot{
			BarID:   barID,
			TableID: tableID,
			Date:    date,
			Clock:   clock,
		}

		if err := s.holds.Release(ctx, slot, accountID); err != nil {
			s.cfg.Log.Warn("Failed to release hold",
				"bar_id", barID,
				"table_id", tableID,
				"error", err,
			)
			continue
		}

		s.notify(kafka.EventHoldReleased, slot, accountID, time.Time{})
	}
}

func (s *holdService) findTable(ctx context.Context, barID, tableID string) (*model.Table, error) {
	tables, err := s.catalog.GetTables(ctx, barID)
	if err != nil {
		return nil, err
	}

	for _, table := range tables {
		if table.ID == tableID {
			return table, nil
		}
	}
	return nil, holdserrors.ErrTableNotInBar
}

// notify fans a hold event out to websocket subscribers and kafka.
// Both paths are best effort.
func (s *holdService) notify(eventType string, slot store.Slot, accountID string, heldUntil time.Time) {
	go s.hub.NotifyHold(broadcast.Notice{
		Event:     eventType,
		BarID:     slot.BarID,
		TableID:   slot.TableID,
		Date:      slot.Date,
		Clock:     slot.Clock,
		HeldUntil: heldUntil,
	})

	if s.publisher == nil {
		return
	}

	event := kafka.HoldEvent{
		BarID:      slot.BarID,
		TableID:    slot.TableID,
		AccountID:  accountID,
		Date:       slot.Date,
		Clock:      slot.Clock,
		HeldUntil:  heldUntil,
		OccurredAt: time.Now(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := kafka.PublishHoldEvent(ctx, s.publisher, eventType, event); err != nil {
		s.cfg.Log.Warn("Failed to publish hold event",
			"event_type", eventType,
			"table_id", slot.TableID,
			"error", err,
		)
	}
}
