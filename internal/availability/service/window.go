package service

import (
	"context"
	"errors"

	availerrors "barkeep/internal/availability/errors"
	"barkeep/internal/availability/repository"
	"barkeep/internal/availability/validator"
	"barkeep/pkg/config"
	apperrors "barkeep/pkg/errors"
	"barkeep/pkg/model"
	"barkeep/pkg/sanitizer"
)

type WindowService interface {
	Create(ctx context.Context, window *model.OperatingWindow) error
	GetByID(ctx context.Context, id string) (*model.OperatingWindow, error)
	GetByBar(ctx context.Context, barID string) ([]*model.OperatingWindow, error)
	Delete(ctx context.Context, id string) error
	ResolveWindow(ctx context.Context, barID, date, clock string) (*model.OperatingWindow, error)
}

type windowService struct {
	repo      repository.WindowRepository
	validator *validator.WindowValidator
	cfg       *config.Config
}

func NewWindowService(
	repo repository.WindowRepository,
	validator *validator.WindowValidator,
	cfg *config.Config,
) WindowService {
	return &windowService{
		repo:      repo,
		validator: validator,
		cfg:       cfg,
	}
}

func (s *windowService) Create(ctx context.Context, window *model.OperatingWindow) error {
	window.StartClock = sanitizer.NormalizeClock(window.StartClock)
	window.EndClock = sanitizer.NormalizeClock(window.EndClock)
	window.Date = sanitizer.NormalizeDate(window.Date)

	if err := s.validator.Validate(window); err != nil {
		s.cfg.Log.Warn("Operating window validation failed", "error", err)
		return apperrors.Validation("Invalid operating window", map[string]any{"error": err.Error()})
	}

	if err := s.repo.Create(ctx, window); err != nil {
		s.cfg.Log.Error("Failed to create operating window", "bar_id", window.BarID, "error", err)
		return apperrors.Internal("Failed to create operating window", err)
	}

	s.cfg.Log.Info("Operating window created",
		"id", window.ID,
		"bar_id", window.BarID,
		"day_of_week", window.DayOfWeek,
		"date", window.Date,
	)
	return nil
}

func (s *windowService) GetByID(ctx context.Context, id string) (*model.OperatingWindow, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Operating window ID cannot be empty")
	}

	window, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, availerrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Operating window", id)
		}
		if errors.Is(err, availerrors.ErrInvalidID) {
			return nil, apperrors.InvalidInput("Invalid operating window ID format")
		}
		return nil, apperrors.Internal("Failed to retrieve operating window", err)
	}

	return window, nil
}

func (s *windowService) GetByBar(ctx context.Context, barID string) ([]*model.OperatingWindow, error) {
	if barID == "" {
		return nil, apperrors.InvalidInput("Bar ID cannot be empty")
	}

	windows, err := s.repo.FindByBar(ctx, barID)
	if err != nil {
		s.cfg.Log.Error("Failed to list operating windows", "bar_id", barID, "error", err)
		return nil, apperrors.Internal("Failed to retrieve operating windows", err)
	}

	return windows, nil
}

func (s *windowService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.InvalidInput("Operating window ID cannot be empty")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, availerrors.ErrNotFound) {
			return apperrors.NotFoundWithID("Operating window", id)
		}
		if errors.Is(err, availerrors.ErrInvalidID) {
			return apperrors.InvalidInput("Invalid operating window ID format")
		}
		return apperrors.Internal("Failed to delete operating window", err)
	}

	s.cfg.Log.Info("Operating window deleted", "id", id)
	return nil
}

// ResolveWindow picks the window governing a bar at date+clock. A window
// pinned to the exact date overrides any weekday recurrence. Returns
// ErrNoWindow when nothing is configured for the date and
// ErrOutsideWindow when the clock misses every applicable interval.
func (s *windowService) ResolveWindow(ctx context.Context, barID, date, clock string) (*model.OperatingWindow, error) {
	day, err := model.ParseDate(date)
	if err != nil {
		return nil, apperrors.InvalidInput("Invalid booking date format, must be YYYY-MM-DD")
	}
	if _, err := model.ParseClock(clock); err != nil {
		return nil, apperrors.InvalidInput("Invalid clock format, must be HH:MM")
	}

	windows, err := s.repo.FindByBar(ctx, barID)
	if err != nil {
		return nil, apperrors.Internal("Failed to retrieve operating windows", err)
	}

	var applicable []*model.OperatingWindow
	hasDateOverride := false
	for _, w := range windows {
		if !w.AppliesTo(day) {
			continue
		}
		if w.Date != "" && !hasDateOverride {
			hasDateOverride = true
			applicable = applicable[:0]
		}
		if w.Date != "" || !hasDateOverride {
			applicable = append(applicable, w)
		}
	}

	if len(applicable) == 0 {
		return nil, availerrors.ErrNoWindow
	}

	for _, w := range applicable {
		if w.Covers(clock) {
			return w, nil
		}
	}

	return nil, availerrors.ErrOutsideWindow
}
