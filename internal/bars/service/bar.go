package service

import (
	"context"
	"errors"
	"sync"

	barserrors "barkeep/internal/bars/errors"
	"barkeep/internal/bars/repository"
	"barkeep/internal/bars/validator"
	"barkeep/pkg/config"
	apperrors "barkeep/pkg/errors"
	"barkeep/pkg/model"
	"barkeep/pkg/sanitizer"
)

type BarService interface {
	Create(ctx context.Context, bar *model.Bar) error
	GetByID(ctx context.Context, id string) (*model.Bar, error)
	GetAll(ctx context.Context, limit int, offset int64) ([]*model.Bar, int64, error)
	Update(ctx context.Context, id string, updates *model.BarUpdate) error
	Delete(ctx context.Context, id string) error
}

type barService struct {
	repo      repository.BarRepository
	validator *validator.BarValidator
	cfg       *config.Config
}

func NewBarService(
	repo repository.BarRepository,
	validator *validator.BarValidator,
	cfg *config.Config,
) BarService {
	return &barService{
		repo:      repo,
		validator: validator,
		cfg:       cfg,
	}
}

func (s *barService) Create(ctx context.Context, bar *model.Bar) error {
	s.sanitize(bar)

	if err := s.validator.ValidateBar(bar); err != nil {
		s.cfg.Log.Warn("Bar validation failed", "error", err)
		return apperrors.Validation("Invalid bar", map[string]any{"error": err.Error()})
	}

	if err := s.repo.Create(ctx, bar); err != nil {
		s.cfg.Log.Error("Failed to create bar", "name", bar.Name, "error", err)
		return apperrors.Internal("Failed to create bar", err)
	}

	s.cfg.Log.Info("Bar created", "id", bar.ID, "name", bar.Name, "city", bar.City)
	return nil
}

func (s *barService) GetByID(ctx context.Context, id string) (*model.Bar, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Bar ID cannot be empty")
	}

	bar, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, barserrors.ErrBarNotFound) {
			return nil, apperrors.NotFoundWithID("Bar", id)
		}
		if errors.Is(err, barserrors.ErrInvalidID) {
			return nil, apperrors.InvalidInput("Invalid bar ID format")
		}
		return nil, apperrors.Internal("Failed to retrieve bar", err)
	}

	return bar, nil
}

func (s *barService) GetAll(ctx context.Context, limit int, offset int64) ([]*model.Bar, int64, error) {
	var count int64
	var bars []*model.Bar
	var errCount, errFind error
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		count, errCount = s.repo.Count(ctx)
		if errCount != nil {
			s.cfg.Log.Error("Failed to count bars", "error", errCount)
			errCount = apperrors.Internal("Failed to count bars", errCount)
		}
	}()

	go func() {
		defer wg.Done()
		bars, errFind = s.repo.FindAll(ctx, limit, offset)
		if errFind != nil {
			s.cfg.Log.Error("Failed to list bars", "error", errFind)
			errFind = apperrors.Internal("Failed to retrieve bars", errFind)
		}
	}()

	wg.Wait()
	if errCount != nil {
		return nil, 0, errCount
	}
	if errFind != nil {
		return nil, 0, errFind
	}

	return bars, count, nil
}

func (s *barService) Update(ctx context.Context, id string, updates *model.BarUpdate) error {
	if id == "" {
		return apperrors.InvalidInput("Bar ID cannot be empty")
	}

	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.validator.ValidateBarUpdate(updates); err != nil {
		s.cfg.Log.Warn("Bar update validation failed", "id", id, "error", err)
		return apperrors.Validation("Invalid update input", map[string]any{"error": err.Error()})
	}

	merged := s.mergeBarUpdates(existing, updates)
	s.sanitize(merged)

	if err := s.validator.ValidateBar(merged); err != nil {
		return apperrors.Validation("Invalid bar after update", map[string]any{"error": err.Error()})
	}

	if err := s.repo.Update(ctx, id, merged); err != nil {
		if errors.Is(err, barserrors.ErrBarNotFound) {
			return apperrors.NotFoundWithID("Bar", id)
		}
		s.cfg.Log.Error("Failed to update bar", "id", id, "error", err)
		return apperrors.Internal("Failed to update bar", err)
	}

	s.cfg.Log.Info("Bar updated", "id", id)
	return nil
}

func (s *barService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.InvalidInput("Bar ID cannot be empty")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, barserrors.ErrBarNotFound) {
			return apperrors.NotFoundWithID("Bar", id)
		}
		if errors.Is(err, barserrors.ErrInvalidID) {
			return apperrors.InvalidInput("Invalid bar ID format")
		}
		return apperrors.Internal("Failed to delete bar", err)
	}

	s.cfg.Log.Info("Bar deleted", "id", id)
	return nil
}

func (s *barService) sanitize(b *model.Bar) {
	b.Name = sanitizer.NormalizeName(b.Name)
	b.Address = sanitizer.NormalizeAddress(b.Address)
	b.City = sanitizer.NormalizeCity(b.City)
	b.ContactPhone = sanitizer.NormalizePhone(b.ContactPhone)
	if b.DiscountPercent < sanitizer.MinDiscountPercent || b.DiscountPercent > sanitizer.MaxDiscountPercent {
		b.DiscountPercent = float64(sanitizer.NormalizeDiscountPercent(int64(b.DiscountPercent)))
	}
}

func (s *barService) mergeBarUpdates(existing *model.Bar, updates *model.BarUpdate) *model.Bar {
	merged := *existing

	if updates.Name != "" {
		merged.Name = updates.Name
	}
	if updates.Address != "" {
		merged.Address = updates.Address
	}
	if updates.City != "" {
		merged.City = updates.City
	}
	if updates.ContactPhone != "" {
		merged.ContactPhone = updates.ContactPhone
	}
	if updates.DiscountPercent != nil {
		merged.DiscountPercent = *updates.DiscountPercent
	}

	return &merged
}
