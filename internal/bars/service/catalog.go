package service

import (
	"context"
	"errors"

	barserrors "barkeep/internal/bars/errors"
	"barkeep/internal/bars/repository"
	"barkeep/internal/bars/validator"
	"barkeep/pkg/config"
	apperrors "barkeep/pkg/errors"
	"barkeep/pkg/model"
	"barkeep/pkg/sanitizer"
)

// CatalogService manages the per-bar inventory of tables and drinks
// that bookings and holds are validated against.
type CatalogService interface {
	CreateTable(ctx context.Context, table *model.Table) error
	GetTables(ctx context.Context, barID string) ([]*model.Table, error)
	GetTablesByIDs(ctx context.Context, barID string, ids []string) ([]*model.Table, error)
	SetTableStatus(ctx context.Context, id string, status model.TableStatus) error
	DeleteTable(ctx context.Context, id string) error

	CreateDrink(ctx context.Context, drink *model.Drink) error
	GetDrinks(ctx context.Context, barID string) ([]*model.Drink, error)
	GetDrinksByIDs(ctx context.Context, barID string, ids []string) ([]*model.Drink, error)
	DeleteDrink(ctx context.Context, id string) error
}

type catalogService struct {
	bars      repository.BarRepository
	tables    repository.TableRepository
	drinks    repository.DrinkRepository
	validator *validator.BarValidator
	cfg       *config.Config
}

func NewCatalogService(
	bars repository.BarRepository,
	tables repository.TableRepository,
	drinks repository.DrinkRepository,
	validator *validator.BarValidator,
	cfg *config.Config,
) CatalogService {
	return &catalogService{
		bars:      bars,
		tables:    tables,
		drinks:    drinks,
		validator: validator,
		cfg:       cfg,
	}
}

func (s *catalogService) CreateTable(ctx context.Context, table *model.Table) error {
	table.Label = sanitizer.NormalizeLabel(table.Label)
	table.TableType = sanitizer.NormalizeName(table.TableType)

	if err := s.validator.ValidateTable(table); err != nil {
		s.cfg.Log.Warn("Table validation failed", "error", err)
		return apperrors.Validation("Invalid table", map[string]any{"error": err.Error()})
	}

	if _, err := s.bars.FindByID(ctx, table.BarID); err != nil {
		if errors.Is(err, barserrors.ErrBarNotFound) || errors.Is(err, barserrors.ErrInvalidID) {
			return apperrors.NotFoundWithID("Bar", table.BarID)
		}
		return apperrors.Internal("Failed to verify bar", err)
	}

	if err := s.tables.Create(ctx, table); err != nil {
		if errors.Is(err, barserrors.ErrDuplicateLabel) {
			return apperrors.Conflict("A table with this label already exists in the bar")
		}
		s.cfg.Log.Error("Failed to create table", "bar_id", table.BarID, "error", err)
		return apperrors.Internal("Failed to create table", err)
	}

	s.cfg.Log.Info("Table created", "id", table.ID, "bar_id", table.BarID, "label", table.Label)
	return nil
}

func (s *catalogService) GetTables(ctx context.Context, barID string) ([]*model.Table, error) {
	if barID == "" {
		return nil, apperrors.InvalidInput("Bar ID cannot be empty")
	}

	tables, err := s.tables.FindByBar(ctx, barID)
	if err != nil {
		s.cfg.Log.Error("Failed to list tables", "bar_id", barID, "error", err)
		return nil, apperrors.Internal("Failed to retrieve tables", err)
	}

	return tables, nil
}

func (s *catalogService) GetTablesByIDs(ctx context.Context, barID string, ids []string) ([]*model.Table, error) {
	if barID == "" || len(ids) == 0 {
		return nil, apperrors.InvalidInput("Bar ID and table IDs are required")
	}

	tables, err := s.tables.FindByIDs(ctx, barID, ids)
	if err != nil {
		return nil, apperrors.Internal("Failed to retrieve tables", err)
	}

	return tables, nil
}

func (s *catalogService) SetTableStatus(ctx context.Context, id string, status model.TableStatus) error {
	if id == "" {
		return apperrors.InvalidInput("Table ID cannot be empty")
	}

	switch status {
	case model.TableAvailable, model.TableOccupied, model.TableReserved:
	default:
		return apperrors.InvalidInput("Table status must be available, occupied or reserved")
	}

	if err := s.tables.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, barserrors.ErrTableNotFound) {
			return apperrors.NotFoundWithID("Table", id)
		}
		if errors.Is(err, barserrors.ErrInvalidID) {
			return apperrors.InvalidInput("Invalid table ID format")
		}
		return apperrors.Internal("Failed to update table status", err)
	}

	s.cfg.Log.Info("Table status updated", "id", id, "status", status)
	return nil
}

func (s *catalogService) DeleteTable(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.InvalidInput("Table ID cannot be empty")
	}

	if err := s.tables.Delete(ctx, id); err != nil {
		if errors.Is(err, barserrors.ErrTableNotFound) {
			return apperrors.NotFoundWithID("Table", id)
		}
		if errors.Is(err, barserrors.ErrInvalidID) {
			return apperrors.InvalidInput("Invalid table ID format")
		}
		return apperrors.Internal("Failed to delete table", err)
	}

	s.cfg.Log.Info("Table deleted", "id", id)
	return nil
}

func (s *catalogService) CreateDrink(ctx context.Context, drink *model.Drink) error {
	drink.Name = sanitizer.NormalizeName(drink.Name)

	if err := s.validator.ValidateDrink(drink); err != nil {
		s.cfg.Log.Warn("Drink validation failed", "error", err)
		return apperrors.Validation("Invalid drink", map[string]any{"error": err.Error()})
	}

	if _, err := s.bars.FindByID(ctx, drink.BarID); err != nil {
		if errors.Is(err, barserrors.ErrBarNotFound) || errors.Is(err, barserrors.ErrInvalidID) {
			return apperrors.NotFoundWithID("Bar", drink.BarID)
		}
		return apperrors.Internal("Failed to verify bar", err)
	}

	if err := s.drinks.Create(ctx, drink); err != nil {
		s.cfg.Log.Error("Failed to create drink", "bar_id", drink.BarID, "error", err)
		return apperrors.Internal("Failed to create drink", err)
	}

	s.cfg.Log.Info("Drink created", "id", drink.ID, "bar_id", drink.BarID, "name", drink.Name)
	return nil
}

func (s *catalogService) GetDrinks(ctx context.Context, barID string) ([]*model.Drink, error) {
	if barID == "" {
		return nil, apperrors.InvalidInput("Bar ID cannot be empty")
	}

	drinks, err := s.drinks.FindByBar(ctx, barID)
	if err != nil {
		s.cfg.Log.Error("Failed to list drinks", "bar_id", barID, "error", err)
		return nil, apperrors.Internal("Failed to retrieve drinks", err)
	}

	return drinks, nil
}

func (s *catalogService) GetDrinksByIDs(ctx context.Context, barID string, ids []string) ([]*model.Drink, error) {
	if barID == "" || len(ids) == 0 {
		return nil, apperrors.InvalidInput("Bar ID and drink IDs are required")
	}

	drinks, err := s.drinks.FindByIDs(ctx, barID, ids)
	if err != nil {
		return nil, apperrors.Internal("Failed to retrieve drinks", err)
	}

	return drinks, nil
}

func (s *catalogService) DeleteDrink(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.InvalidInput("Drink ID cannot be empty")
	}

	if err := s.drinks.Delete(ctx, id); err != nil {
		if errors.Is(err, barserrors.ErrDrinkNotFound) {
			return apperrors.NotFoundWithID("Drink", id)
		}
		if errors.Is(err, barserrors.ErrInvalidID) {
			return apperrors.InvalidInput("Invalid drink ID format")
		}
		return apperrors.Internal("Failed to delete drink", err)
	}

	s.cfg.Log.Info("Drink deleted", "id", id)
	return nil
}
