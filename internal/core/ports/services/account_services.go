package services

import (
	"context"

	"github.com/SscSPs/personal_os/internal/core/domain"
	"github.com/SscSPs/personal_os/internal/dto"
)

// AssetReaderSvc defines read operations for asset data
type AssetReaderSvc interface {
	GetAssetByID(ctx context.Context, assetID int64) (*domain.Asset, error)
	ListAssets(ctx context.Context) ([]domain.Asset, error)
	// GetPrimaryAsset returns nil when no asset is primary.
	GetPrimaryAsset(ctx context.Context) (*domain.Asset, error)
}

// AssetWriterSvc defines write operations for asset data. Every write is audited.
type AssetWriterSvc interface {
	CreateAsset(ctx context.Context, req dto.CreateAssetRequest) (*domain.Asset, error)
	UpdateAsset(ctx context.Context, assetID int64, req dto.UpdateAssetRequest) (*domain.Asset, error)
	// SetPrimaryAsset makes assetID the single primary asset.
	SetPrimaryAsset(ctx context.Context, assetID int64) (*domain.Asset, error)
	// EnsurePrimaryAsset returns the primary asset, promoting or creating one when needed.
	EnsurePrimaryAsset(ctx context.Context) (*domain.Asset, error)
}

// AssetSvcFacade combines all asset-related service interfaces
type AssetSvcFacade interface {
	AssetReaderSvc
	AssetWriterSvc
}

// LiabilitySvcFacade manages liabilities. Every write is audited.
type LiabilitySvcFacade interface {
	GetLiabilityByID(ctx context.Context, liabilityID int64) (*domain.Liability, error)
	ListLiabilities(ctx context.Context) ([]domain.Liability, error)
	CreateLiability(ctx context.Context, req dto.CreateLiabilityRequest) (*domain.Liability, error)
	UpdateLiability(ctx context.Context, liabilityID int64, req dto.UpdateLiabilityRequest) (*domain.Liability, error)
}
