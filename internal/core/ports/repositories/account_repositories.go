package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/personal_os/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AssetReader defines read operations for asset data
type AssetReader interface {
	// FindAssetByID retrieves an asset by id, returning apperrors.ErrNotFound when absent.
	FindAssetByID(ctx context.Context, assetID int64) (*domain.Asset, error)

	// ListAssets returns all assets, primary first and then by name.
	ListAssets(ctx context.Context) ([]domain.Asset, error)

	// FindPrimaryAsset returns the primary asset, or nil when there is none.
	FindPrimaryAsset(ctx context.Context) (*domain.Asset, error)

	// FindLowestIDAsset returns the asset with the smallest id, or nil when there are no assets.
	FindLowestIDAsset(ctx context.Context) (*domain.Asset, error)
}

// AssetWriter defines write operations for asset data
type AssetWriter interface {
	// SaveAsset inserts a new asset and returns it with its assigned id.
	SaveAsset(ctx context.Context, asset domain.Asset) (*domain.Asset, error)

	// UpdateAsset overwrites the editable fields of an existing asset.
	UpdateAsset(ctx context.Context, asset domain.Asset) error

	// ClearPrimaryAssets unsets is_primary on every asset.
	ClearPrimaryAssets(ctx context.Context, now time.Time) error

	// MarkAssetPrimary sets is_primary on a single asset.
	MarkAssetPrimary(ctx context.Context, assetID int64, now time.Time) error
}

// AssetBalanceSupport defines the operations the ledger uses inside a unit of work.
type AssetBalanceSupport interface {
	// LockPrimarySelection serializes primary-asset changes for the rest of the unit of work.
	LockPrimarySelection(ctx context.Context) error

	// FindAssetsByIDsForUpdate loads and locks the given assets. Missing ids yield apperrors.ErrNotFound.
	FindAssetsByIDsForUpdate(ctx context.Context, assetIDs []int64) (map[int64]domain.Asset, error)

	// AdjustAssetBalances adds each delta to the matching asset balance.
	AdjustAssetBalances(ctx context.Context, changes map[int64]decimal.Decimal, now time.Time) error
}

// AssetRepositoryFacade combines all asset-related repository interfaces
type AssetRepositoryFacade interface {
	AssetReader
	AssetWriter
	AssetBalanceSupport
}

// LiabilityReader defines read operations for liability data
type LiabilityReader interface {
	FindLiabilityByID(ctx context.Context, liabilityID int64) (*domain.Liability, error)
	// ListLiabilities returns all liabilities ordered by name.
	ListLiabilities(ctx context.Context) ([]domain.Liability, error)
}

// LiabilityWriter defines write operations for liability data
type LiabilityWriter interface {
	SaveLiability(ctx context.Context, liability domain.Liability) (*domain.Liability, error)
	UpdateLiability(ctx context.Context, liability domain.Liability) error
}

// LiabilityBalanceSupport mirrors AssetBalanceSupport for liabilities.
type LiabilityBalanceSupport interface {
	FindLiabilitiesByIDsForUpdate(ctx context.Context, liabilityIDs []int64) (map[int64]domain.Liability, error)
	AdjustLiabilityBalances(ctx context.Context, changes map[int64]decimal.Decimal, now time.Time) error
}

// LiabilityRepositoryFacade combines all liability-related repository interfaces
type LiabilityRepositoryFacade interface {
	LiabilityReader
	LiabilityWriter
	LiabilityBalanceSupport
}
