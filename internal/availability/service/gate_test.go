package service

import (
	"context"
	"errors"
	"testing"

	availerrors "barkeep/internal/availability/errors"
	apperrors "barkeep/pkg/errors"
	"barkeep/pkg/model"
)

type stubWindowService struct {
	resolveErr error
}

func (s *stubWindowService) Create(ctx context.Context, window *model.OperatingWindow) error {
	return nil
}

func (s *stubWindowService) GetByID(ctx context.Context, id string) (*model.OperatingWindow, error) {
	return nil, availerrors.ErrNotFound
}

func (s *stubWindowService) GetByBar(ctx context.Context, barID string) ([]*model.OperatingWindow, error) {
	return nil, nil
}

func (s *stubWindowService) Delete(ctx context.Context, id string) error {
	return nil
}

func (s *stubWindowService) ResolveWindow(ctx context.Context, barID, date, clock string) (*model.OperatingWindow, error) {
	if s.resolveErr != nil {
		return nil, s.resolveErr
	}
	return &model.OperatingWindow{BarID: barID, StartClock: "18:00", EndClock: "23:00"}, nil
}

func TestGateResolveWindow(t *testing.T) {
	tests := []struct {
		name       string
		resolveErr error
		wantCode   string
	}{
		{name: "open slot", resolveErr: nil, wantCode: ""},
		{name: "no window is not found", resolveErr: availerrors.ErrNoWindow, wantCode: apperrors.CodeNotFound},
		{name: "outside window is invalid", resolveErr: availerrors.ErrOutsideWindow, wantCode: apperrors.CodeValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gate := Gate{Windows: &stubWindowService{resolveErr: tt.resolveErr}}

			err := gate.ResolveWindow(context.Background(), "bar-1", "2026-09-14", "20:00")
			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}

			appErr := apperrors.AsAppError(err)
			if appErr == nil {
				t.Fatalf("expected AppError, got %v", err)
			}
			if appErr.Code != tt.wantCode {
				t.Errorf("expected code %s, got %s", tt.wantCode, appErr.Code)
			}
		})
	}
}

func TestGateResolveWindowPassthrough(t *testing.T) {
	boom := errors.New("mongo down")
	gate := Gate{Windows: &stubWindowService{resolveErr: boom}}

	err := gate.ResolveWindow(context.Background(), "bar-1", "2026-09-14", "20:00")
	if !errors.Is(err, boom) {
		t.Errorf("expected underlying error to pass through, got %v", err)
	}
}
