package service

import (
	"context"
	"errors"

	"barkeep/internal/accounts/repository"
	"barkeep/pkg/config"
	apperrors "barkeep/pkg/errors"
	"barkeep/pkg/model"
	"barkeep/pkg/sanitizer"
)

type AccountService interface {
	Create(ctx context.Context, account *model.Account) error
	GetByID(ctx context.Context, id string) (*model.Account, error)
	GetByPhone(ctx context.Context, phone string) (*model.Account, error)
}

type accountService struct {
	repo repository.AccountRepository
	cfg  *config.Config
}

func NewAccountService(repo repository.AccountRepository, cfg *config.Config) AccountService {
	return &accountService{
		repo: repo,
		cfg:  cfg,
	}
}

func (s *accountService) Create(ctx context.Context, account *model.Account) error {
	account.Name = sanitizer.NormalizeName(account.Name)
	account.Phone = sanitizer.NormalizePhone(account.Phone)

	if account.Name == "" {
		return apperrors.InvalidInput("Account name cannot be empty")
	}
	if account.Role == "" {
		account.Role = model.RoleCustomer
	}

	if err := s.repo.Create(ctx, account); err != nil {
		s.cfg.Log.Error("Failed to create account", "error", err)
		return apperrors.Internal("Failed to create account", err)
	}

	s.cfg.Log.Info("Account created", "id", account.ID, "role", account.Role)
	return nil
}

func (s *accountService) GetByID(ctx context.Context, id string) (*model.Account, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Account ID cannot be empty")
	}

	account, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Account", id)
		}
		if errors.Is(err, repository.ErrInvalidID) {
			return nil, apperrors.InvalidInput("Invalid account ID format")
		}
		return nil, apperrors.Internal("Failed to retrieve account", err)
	}

	return account, nil
}

func (s *accountService) GetByPhone(ctx context.Context, phone string) (*model.Account, error) {
	phone = sanitizer.NormalizePhone(phone)
	if phone == "" {
		return nil, apperrors.InvalidInput("Phone cannot be empty")
	}

	account, err := s.repo.FindByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("Account")
		}
		return nil, apperrors.Internal("Failed to retrieve account", err)
	}

	return account, nil
}
