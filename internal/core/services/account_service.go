package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/SscSPs/personal_os/internal/apperrors"
	"github.com/SscSPs/personal_os/internal/core/domain"
	portsrepo "github.com/SscSPs/personal_os/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/personal_os/internal/core/ports/services"
	"github.com/SscSPs/personal_os/internal/dto"
	"github.com/SscSPs/personal_os/internal/utils/mapping"
)

// assetService implements the AssetSvcFacade interface
type assetService struct {
	BaseService
	assetRepo portsrepo.AssetRepositoryFacade
	uow       portsrepo.UnitOfWork
}

// NewAssetService creates a new asset service with the provided options
func NewAssetService(repo portsrepo.AssetRepositoryFacade, uow portsrepo.UnitOfWork, opts ...ServiceOption) portssvc.AssetSvcFacade {
	return &assetService{
		BaseService: newBaseService(opts...),
		assetRepo:   repo,
		uow:         uow,
	}
}

var _ portssvc.AssetSvcFacade = (*assetService)(nil)

func (s *assetService) GetAssetByID(ctx context.Context, assetID int64) (*domain.Asset, error) {
	asset, err := s.assetRepo.FindAssetByID(ctx, assetID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find asset", slog.Int64("asset_id", assetID))
		}
		return nil, err
	}
	return asset, nil
}

func (s *assetService) ListAssets(ctx context.Context) ([]domain.Asset, error) {
	assets, err := s.assetRepo.ListAssets(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list assets")
		return nil, err
	}
	return assets, nil
}

func (s *assetService) GetPrimaryAsset(ctx context.Context) (*domain.Asset, error) {
	return s.assetRepo.FindPrimaryAsset(ctx)
}

func (s *assetService) CreateAsset(ctx context.Context, req dto.CreateAssetRequest) (*domain.Asset, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.Validationf("name is required")
	}
	if !domain.HasMoneyScale(req.Balance) {
		return nil, apperrors.Validationf("balance must have at most %d decimal places", domain.MoneyScale)
	}
	currency := strings.ToUpper(strings.TrimSpace(req.Currency))
	if currency == "" {
		currency = s.DefaultCurrency()
	}

	now := s.Now()
	var created *domain.Asset
	err := s.uow.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		saved, err := repos.AssetRepo.SaveAsset(ctx, domain.Asset{
			Name:         name,
			AssetType:    req.AssetType,
			AssetSubtype: req.AssetSubtype,
			Currency:     currency,
			Balance:      req.Balance,
			Notes:        req.Notes,
			Timestamps:   domain.Timestamps{CreatedAt: now},
		})
		if err != nil {
			return err
		}

		if req.IsPrimary {
			if err := setPrimaryAsset(ctx, repos, saved.ID, now); err != nil {
				return err
			}
			if saved, err = repos.AssetRepo.FindAssetByID(ctx, saved.ID); err != nil {
				return err
			}
		}

		created = saved
		return recordAudit(ctx, repos, domain.EntityAsset, saved.ID, domain.AuditCreated,
			nil, mapping.ToAssetSnapshot(*saved), now)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create asset", slog.String("name", name))
		return nil, err
	}

	s.LogInfo(ctx, "Asset created", slog.Int64("asset_id", created.ID), slog.Bool("is_primary", created.IsPrimary))
	return created, nil
}

func (s *assetService) UpdateAsset(ctx context.Context, assetID int64, req dto.UpdateAssetRequest) (*domain.Asset, error) {
	if req.Name.IsNull() || req.AssetType.IsNull() || req.Currency.IsNull() || req.Balance.IsNull() || req.IsPrimary.IsNull() {
		return nil, apperrors.Validationf("name, asset_type, currency, balance and is_primary cannot be null")
	}
	if req.Balance.Set && !domain.HasMoneyScale(*req.Balance.Value) {
		return nil, apperrors.Validationf("balance must have at most %d decimal places", domain.MoneyScale)
	}

	now := s.Now()
	var updated *domain.Asset
	err := s.uow.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		current, err := lockAsset(ctx, repos, assetID)
		if err != nil {
			return err
		}
		before := *current

		next := *current
		next.Name = strings.TrimSpace(*req.Name.Merge(&current.Name))
		next.AssetType = *req.AssetType.Merge(&current.AssetType)
		next.AssetSubtype = req.AssetSubtype.Merge(current.AssetSubtype)
		next.Currency = strings.ToUpper(*req.Currency.Merge(&current.Currency))
		next.Balance = *req.Balance.Merge(&current.Balance)
		next.Notes = req.Notes.Merge(current.Notes)
		if next.Name == "" {
			return apperrors.Validationf("name is required")
		}
		next.Touch(now)

		if err := repos.AssetRepo.UpdateAsset(ctx, next); err != nil {
			return err
		}

		if req.IsPrimary.Set {
			switch {
			case *req.IsPrimary.Value:
				err = setPrimaryAsset(ctx, repos, assetID, now)
			case current.IsPrimary:
				// Unflagging the primary leaves no primary until the next
				// transaction that needs a default account promotes one.
				err = repos.AssetRepo.ClearPrimaryAssets(ctx, now)
			}
			if err != nil {
				return err
			}
		}

		if updated, err = repos.AssetRepo.FindAssetByID(ctx, assetID); err != nil {
			return err
		}
		return recordAudit(ctx, repos, domain.EntityAsset, assetID, domain.AuditUpdated,
			mapping.ToAssetSnapshot(before), mapping.ToAssetSnapshot(*updated), now)
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to update asset", slog.Int64("asset_id", assetID))
		}
		return nil, err
	}
	return updated, nil
}

func (s *assetService) SetPrimaryAsset(ctx context.Context, assetID int64) (*domain.Asset, error) {
	now := s.Now()
	var primary *domain.Asset
	err := s.uow.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		current, err := repos.AssetRepo.FindAssetByID(ctx, assetID)
		if err != nil {
			return err
		}
		if current.IsPrimary {
			primary = current
			return nil
		}
		if err := setPrimaryAsset(ctx, repos, assetID, now); err != nil {
			return err
		}
		if primary, err = repos.AssetRepo.FindAssetByID(ctx, assetID); err != nil {
			return err
		}
		return recordAudit(ctx, repos, domain.EntityAsset, assetID, domain.AuditUpdated,
			mapping.ToAssetSnapshot(*current), mapping.ToAssetSnapshot(*primary), now)
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to set primary asset", slog.Int64("asset_id", assetID))
		}
		return nil, err
	}
	return primary, nil
}

func (s *assetService) EnsurePrimaryAsset(ctx context.Context) (*domain.Asset, error) {
	now := s.Now()
	var primary *domain.Asset
	err := s.uow.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		var err error
		primary, err = ensurePrimaryAsset(ctx, repos, now, s.DefaultCurrency())
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to ensure primary asset")
		return nil, err
	}
	return primary, nil
}

// liabilityService implements the LiabilitySvcFacade interface
type liabilityService struct {
	BaseService
	liabilityRepo portsrepo.LiabilityRepositoryFacade
	uow           portsrepo.UnitOfWork
}

// NewLiabilityService creates a new liability service with the provided options
func NewLiabilityService(repo portsrepo.LiabilityRepositoryFacade, uow portsrepo.UnitOfWork, opts ...ServiceOption) portssvc.LiabilitySvcFacade {
	return &liabilityService{
		BaseService:   newBaseService(opts...),
		liabilityRepo: repo,
		uow:           uow,
	}
}

var _ portssvc.LiabilitySvcFacade = (*liabilityService)(nil)

func (s *liabilityService) GetLiabilityByID(ctx context.Context, liabilityID int64) (*domain.Liability, error) {
	return s.liabilityRepo.FindLiabilityByID(ctx, liabilityID)
}

func (s *liabilityService) ListLiabilities(ctx context.Context) ([]domain.Liability, error) {
	items, err := s.liabilityRepo.ListLiabilities(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list liabilities")
		return nil, err
	}
	return items, nil
}

func (s *liabilityService) CreateLiability(ctx context.Context, req dto.CreateLiabilityRequest) (*domain.Liability, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.Validationf("name is required")
	}
	if !domain.HasMoneyScale(req.Balance) {
		return nil, apperrors.Validationf("balance must have at most %d decimal places", domain.MoneyScale)
	}

	now := s.Now()
	var created *domain.Liability
	err := s.uow.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		saved, err := repos.LiabilityRepo.SaveLiability(ctx, domain.Liability{
			Name:             name,
			LiabilityType:    req.LiabilityType,
			Balance:          req.Balance,
			CreditLimit:      req.CreditLimit,
			DueDay:           req.DueDay,
			MinimumPayment:   req.MinimumPayment,
			EMIAmount:        req.EMIAmount,
			InterestRate:     req.InterestRate,
			TenureMonthsLeft: req.TenureMonthsLeft,
			Notes:            req.Notes,
			Timestamps:       domain.Timestamps{CreatedAt: now},
		})
		if err != nil {
			return err
		}
		created = saved
		return recordAudit(ctx, repos, domain.EntityLiability, saved.ID, domain.AuditCreated,
			nil, mapping.ToLiabilitySnapshot(*saved), now)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create liability", slog.String("name", name))
		return nil, err
	}
	return created, nil
}

func (s *liabilityService) UpdateLiability(ctx context.Context, liabilityID int64, req dto.UpdateLiabilityRequest) (*domain.Liability, error) {
	if req.Name.IsNull() || req.LiabilityType.IsNull() || req.Balance.IsNull() {
		return nil, apperrors.Validationf("name, liability_type and balance cannot be null")
	}
	if req.Balance.Set && !domain.HasMoneyScale(*req.Balance.Value) {
		return nil, apperrors.Validationf("balance must have at most %d decimal places", domain.MoneyScale)
	}
	if req.DueDay.Value != nil && (*req.DueDay.Value < 1 || *req.DueDay.Value > 31) {
		return nil, apperrors.Validationf("due_day must be between 1 and 31")
	}

	now := s.Now()
	var updated *domain.Liability
	err := s.uow.WithinTx(ctx, func(ctx context.Context, repos portsrepo.RepositoryProvider) error {
		current, err := lockLiability(ctx, repos, liabilityID)
		if err != nil {
			return err
		}

		next := *current
		next.Name = strings.TrimSpace(*req.Name.Merge(&current.Name))
		next.LiabilityType = *req.LiabilityType.Merge(&current.LiabilityType)
		next.Balance = *req.Balance.Merge(&current.Balance)
		next.CreditLimit = req.CreditLimit.Merge(current.CreditLimit)
		next.DueDay = req.DueDay.Merge(current.DueDay)
		next.MinimumPayment = req.MinimumPayment.Merge(current.MinimumPayment)
		next.EMIAmount = req.EMIAmount.Merge(current.EMIAmount)
		next.InterestRate = req.InterestRate.Merge(current.InterestRate)
		next.TenureMonthsLeft = req.TenureMonthsLeft.Merge(current.TenureMonthsLeft)
		next.Notes = req.Notes.Merge(current.Notes)
		if next.Name == "" {
			return apperrors.Validationf("name is required")
		}
		next.Touch(now)

		if err := repos.LiabilityRepo.UpdateLiability(ctx, next); err != nil {
			return err
		}
		updated = &next
		return recordAudit(ctx, repos, domain.EntityLiability, liabilityID, domain.AuditUpdated,
			mapping.ToLiabilitySnapshot(*current), mapping.ToLiabilitySnapshot(next), now)
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to update liability", slog.Int64("liability_id", liabilityID))
		}
		return nil, err
	}
	return updated, nil
}
