package service

import (
	"context"
	"testing"

	barserrors "barkeep/internal/bars/errors"
	"barkeep/internal/bars/validator"
	"barkeep/pkg/config"
	apperrors "barkeep/pkg/errors"
	"barkeep/pkg/logger"
	"barkeep/pkg/model"
)

type mockBarRepository struct {
	findByIDFunc func(ctx context.Context, id string) (*model.Bar, error)
}

func (m *mockBarRepository) Create(ctx context.Context, bar *model.Bar) error { return nil }
func (m *mockBarRepository) FindByID(ctx context.Context, id string) (*model.Bar, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return &model.Bar{ID: id}, nil
}
func (m *mockBarRepository) FindAll(ctx context.Context, limit int, offset int64) ([]*model.Bar, error) {
	return nil, nil
}
func (m *mockBarRepository) Count(ctx context.Context) (int64, error)                  { return 0, nil }
func (m *mockBarRepository) Update(ctx context.Context, id string, bar *model.Bar) error { return nil }
func (m *mockBarRepository) Delete(ctx context.Context, id string) error               { return nil }

type mockTableRepository struct {
	createFunc    func(ctx context.Context, table *model.Table) error
	findByIDsFunc func(ctx context.Context, barID string, ids []string) ([]*model.Table, error)
}

func (m *mockTableRepository) Create(ctx context.Context, table *model.Table) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, table)
	}
	return nil
}
func (m *mockTableRepository) FindByID(ctx context.Context, id string) (*model.Table, error) {
	return nil, barserrors.ErrTableNotFound
}
func (m *mockTableRepository) FindByBar(ctx context.Context, barID string) ([]*model.Table, error) {
	return nil, nil
}
func (m *mockTableRepository) FindByIDs(ctx context.Context, barID string, ids []string) ([]*model.Table, error) {
	if m.findByIDsFunc != nil {
		return m.findByIDsFunc(ctx, barID, ids)
	}
	return nil, nil
}
func (m *mockTableRepository) UpdateStatus(ctx context.Context, id string, status model.TableStatus) error {
	return nil
}
func (m *mockTableRepository) Delete(ctx context.Context, id string) error { return nil }

func newCatalogForTest(bars *mockBarRepository, tables *mockTableRepository) *catalogService {
	log := logger.New(logger.Config{Level: logger.ERROR, Format: logger.JSON, Service: "test"})
	return &catalogService{
		bars:      bars,
		tables:    tables,
		validator: validator.NewBarValidator(log),
		cfg:       &config.Config{Log: log},
	}
}

func TestCreateTable_NormalizesLabel(t *testing.T) {
	var created *model.Table
	tables := &mockTableRepository{
		createFunc: func(ctx context.Context, table *model.Table) error {
			created = table
			return nil
		},
	}
	svc := newCatalogForTest(&mockBarRepository{}, tables)

	table := &model.Table{BarID: "bar-1", Label: " t5 ", TableType: "booth", Capacity: 4, BasePrice: 100}
	if err := svc.CreateTable(context.Background(), table); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Label != "T5" {
		t.Errorf("expected normalized label T5, got %q", created.Label)
	}
}

func TestCreateTable_UnknownBar(t *testing.T) {
	bars := &mockBarRepository{
		findByIDFunc: func(ctx context.Context, id string) (*model.Bar, error) {
			return nil, barserrors.ErrBarNotFound
		},
	}
	svc := newCatalogForTest(bars, &mockTableRepository{})

	err := svc.CreateTable(context.Background(), &model.Table{
		BarID: "missing", Label: "T1", TableType: "booth", Capacity: 2,
	})
	appErr := apperrors.AsAppError(err)
	if appErr.Code != apperrors.CodeNotFound {
		t.Errorf("expected NOT_FOUND, got %s", appErr.Code)
	}
}

func TestCreateTable_DuplicateLabelConflict(t *testing.T) {
	tables := &mockTableRepository{
		createFunc: func(ctx context.Context, table *model.Table) error {
			return barserrors.ErrDuplicateLabel
		},
	}
	svc := newCatalogForTest(&mockBarRepository{}, tables)

	err := svc.CreateTable(context.Background(), &model.Table{
		BarID: "bar-1", Label: "T1", TableType: "booth", Capacity: 2,
	})
	appErr := apperrors.AsAppError(err)
	if appErr.Code != apperrors.CodeConflict {
		t.Errorf("expected CONFLICT, got %s", appErr.Code)
	}
}

func TestCreateTable_InvalidCapacity(t *testing.T) {
	svc := newCatalogForTest(&mockBarRepository{}, &mockTableRepository{})

	err := svc.CreateTable(context.Background(), &model.Table{
		BarID: "bar-1", Label: "T1", TableType: "booth", Capacity: 0,
	})
	appErr := apperrors.AsAppError(err)
	if appErr.Code != apperrors.CodeValidation {
		t.Errorf("expected VALIDATION_ERROR, got %s", appErr.Code)
	}
}
