package model

import (
	"fmt"
	"time"
)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

// OperatingWindow is a bar's configured open interval, either recurring on a
// weekday or pinned to a fixed date. Exactly one of DayOfWeek/Date is set.
type OperatingWindow struct {
	ID         string    `json:"id,omitempty" bson:"_id,omitempty"`
	BarID      string    `json:"bar_id" bson:"bar_id" validate:"required"`
	DayOfWeek  string    `json:"day_of_week,omitempty" bson:"day_of_week,omitempty" validate:"omitempty,oneof=Sunday Monday Tuesday Wednesday Thursday Friday Saturday"`
	Date       string    `json:"date,omitempty" bson:"date,omitempty" validate:"omitempty,booking_date"`
	StartClock string    `json:"start_clock" bson:"start_clock" validate:"required,clock"`
	EndClock   string    `json:"end_clock" bson:"end_clock" validate:"required,clock"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
}

// AppliesTo reports whether the window is configured for the given date,
// without considering the clock.
func (w *OperatingWindow) AppliesTo(date time.Time) bool {
	if w.Date != "" {
		return w.Date == date.Format(DateLayout)
	}
	return w.DayOfWeek == date.Weekday().String()
}

// Covers reports whether clock falls inside [StartClock, EndClock). HH:MM
// strings compare correctly byte-wise.
func (w *OperatingWindow) Covers(clock string) bool {
	return clock >= w.StartClock && clock < w.EndClock
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(date string) (time.Time, error) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
	}
	return t, nil
}

// ParseClock parses a HH:MM wall clock.
func ParseClock(clock string) (time.Duration, error) {
	t, err := time.Parse(ClockLayout, clock)
	if err != nil {
		return 0, fmt.Errorf("invalid clock %q: %w", clock, err)
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}

// CombineDateClock builds the absolute UTC instant for a date + clock pair.
func CombineDateClock(date, clock string) (time.Time, error) {
	d, err := ParseDate(date)
	if err != nil {
		return time.Time{}, err
	}
	offset, err := ParseClock(clock)
	if err != nil {
		return time.Time{}, err
	}
	return d.Add(offset), nil
}
