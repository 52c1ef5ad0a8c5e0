package service

import (
	"context"
	"errors"

	availerrors "barkeep/internal/availability/errors"
	apperrors "barkeep/pkg/errors"
)

// Gate answers the yes/no question other services ask: is the bar open
// for this slot. A missing window means the resource does not exist for
// that date; a clock outside a configured window is bad input.
type Gate struct {
	Windows WindowService
}

func (g Gate) ResolveWindow(ctx context.Context, barID, date, clock string) error {
	_, err := g.Windows.ResolveWindow(ctx, barID, date, clock)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, availerrors.ErrNoWindow):
		return apperrors.NotFound("Operating window for the requested date")
	case errors.Is(err, availerrors.ErrOutsideWindow):
		return apperrors.Validation("Requested time falls outside the bar's operating hours", nil)
	default:
		return err
	}
}
