package validator

import (
	"testing"

	"barkeep/pkg/logger"
	"barkeep/pkg/model"
)

func newTestValidator() *WindowValidator {
	log := logger.New(logger.Config{
		Level:   logger.ERROR,
		Format:  logger.JSON,
		Service: "test",
	})
	return NewWindowValidator(log)
}

func TestValidate_ValidWindows(t *testing.T) {
	v := newTestValidator()

	tests := []struct {
		name   string
		window model.OperatingWindow
	}{
		{
			name:   "weekday recurrence",
			window: model.OperatingWindow{BarID: "bar-1", DayOfWeek: "Friday", StartClock: "18:00", EndClock: "23:00"},
		},
		{
			name:   "date pinned",
			window: model.OperatingWindow{BarID: "bar-1", Date: "2026-12-31", StartClock: "12:00", EndClock: "23:30"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := v.Validate(&tt.window); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidate_InvalidWindows(t *testing.T) {
	v := newTestValidator()

	tests := []struct {
		name   string
		window model.OperatingWindow
	}{
		{
			name:   "neither anchor set",
			window: model.OperatingWindow{BarID: "bar-1", StartClock: "18:00", EndClock: "23:00"},
		},
		{
			name:   "both anchors set",
			window: model.OperatingWindow{BarID: "bar-1", DayOfWeek: "Friday", Date: "2026-12-31", StartClock: "18:00", EndClock: "23:00"},
		},
		{
			name:   "end before start",
			window: model.OperatingWindow{BarID: "bar-1", DayOfWeek: "Friday", StartClock: "23:00", EndClock: "18:00"},
		},
		{
			name:   "zero length",
			window: model.OperatingWindow{BarID: "bar-1", DayOfWeek: "Friday", StartClock: "18:00", EndClock: "18:00"},
		},
		{
			name:   "bad clock format",
			window: model.OperatingWindow{BarID: "bar-1", DayOfWeek: "Friday", StartClock: "6pm", EndClock: "23:00"},
		},
		{
			name:   "bad weekday",
			window: model.OperatingWindow{BarID: "bar-1", DayOfWeek: "Funday", StartClock: "18:00", EndClock: "23:00"},
		},
		{
			name:   "missing bar",
			window: model.OperatingWindow{DayOfWeek: "Friday", StartClock: "18:00", EndClock: "23:00"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := v.Validate(&tt.window); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}
