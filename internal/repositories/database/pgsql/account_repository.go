package pgsql

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/SscSPs/personal_os/internal/apperrors"
	"github.com/SscSPs/personal_os/internal/core/domain"
	portsrepo "github.com/SscSPs/personal_os/internal/core/ports/repositories"
	"github.com/SscSPs/personal_os/internal/models"
	"github.com/SscSPs/personal_os/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const assetColumns = `id, name, asset_type, asset_subtype, currency, balance, is_primary, notes, created_at, updated_at`

// primarySelectionLockKey is the advisory lock key guarding primary-asset changes.
const primarySelectionLockKey int64 = 0x50524d41 // "PRMA"

type PgxAssetRepository struct {
	BaseRepository
}

func newPgxAssetRepository(base BaseRepository) portsrepo.AssetRepositoryFacade {
	return &PgxAssetRepository{BaseRepository: base}
}

var _ portsrepo.AssetRepositoryFacade = (*PgxAssetRepository)(nil)

func (r *PgxAssetRepository) FindAssetByID(ctx context.Context, assetID int64) (*domain.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM finance_assets WHERE id = $1`
	asset, err := r.findOne(ctx, query, assetID)
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, apperrors.NotFoundf("asset %d", assetID)
	}
	return asset, nil
}

func (r *PgxAssetRepository) ListAssets(ctx context.Context) ([]domain.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM finance_assets ORDER BY is_primary DESC, name ASC, id ASC`
	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query assets: %w", err)
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Asset])
	if err != nil {
		return nil, fmt.Errorf("failed to scan assets: %w", err)
	}
	return mapping.ToDomainAssetSlice(items), nil
}

func (r *PgxAssetRepository) FindPrimaryAsset(ctx context.Context) (*domain.Asset, error) {
	return r.findOne(ctx, `SELECT `+assetColumns+` FROM finance_assets WHERE is_primary LIMIT 1`)
}

func (r *PgxAssetRepository) FindLowestIDAsset(ctx context.Context) (*domain.Asset, error) {
	return r.findOne(ctx, `SELECT `+assetColumns+` FROM finance_assets ORDER BY id ASC LIMIT 1`)
}

// findOne returns nil, nil when the query yields no row.
func (r *PgxAssetRepository) findOne(ctx context.Context, query string, args ...any) (*domain.Asset, error) {
	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query asset: %w", err)
	}
	m, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Asset])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan asset: %w", err)
	}
	asset := mapping.ToDomainAsset(m)
	return &asset, nil
}

func (r *PgxAssetRepository) SaveAsset(ctx context.Context, asset domain.Asset) (*domain.Asset, error) {
	query := `
		INSERT INTO finance_assets (name, asset_type, asset_subtype, currency, balance, is_primary, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id;
	`
	err := r.DB.QueryRow(ctx, query,
		asset.Name,
		asset.AssetType,
		asset.AssetSubtype,
		asset.Currency,
		asset.Balance,
		asset.IsPrimary,
		asset.Notes,
		asset.CreatedAt,
	).Scan(&asset.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: a primary asset already exists", apperrors.ErrDuplicate)
		}
		return nil, fmt.Errorf("failed to save asset %q: %w", asset.Name, err)
	}
	return &asset, nil
}

// UpdateAsset writes every editable column except is_primary.
func (r *PgxAssetRepository) UpdateAsset(ctx context.Context, asset domain.Asset) error {
	query := `
		UPDATE finance_assets
		SET name = $2, asset_type = $3, asset_subtype = $4, currency = $5, balance = $6, notes = $7, updated_at = $8
		WHERE id = $1;
	`
	tag, err := r.DB.Exec(ctx, query,
		asset.ID,
		asset.Name,
		asset.AssetType,
		asset.AssetSubtype,
		asset.Currency,
		asset.Balance,
		asset.Notes,
		asset.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update asset %d: %w", asset.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFoundf("asset %d", asset.ID)
	}
	return nil
}

func (r *PgxAssetRepository) ClearPrimaryAssets(ctx context.Context, now time.Time) error {
	_, err := r.DB.Exec(ctx, `UPDATE finance_assets SET is_primary = FALSE, updated_at = $1 WHERE is_primary`, now)
	if err != nil {
		return fmt.Errorf("failed to clear primary assets: %w", err)
	}
	return nil
}

func (r *PgxAssetRepository) MarkAssetPrimary(ctx context.Context, assetID int64, now time.Time) error {
	tag, err := r.DB.Exec(ctx, `UPDATE finance_assets SET is_primary = TRUE, updated_at = $2 WHERE id = $1`, assetID, now)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: a primary asset already exists", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to mark asset %d primary: %w", assetID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFoundf("asset %d", assetID)
	}
	return nil
}

// LockPrimarySelection takes a transaction-scoped advisory lock; it must run inside a unit of work.
func (r *PgxAssetRepository) LockPrimarySelection(ctx context.Context) error {
	if _, err := r.DB.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, primarySelectionLockKey); err != nil {
		return fmt.Errorf("failed to lock primary selection: %w", err)
	}
	return nil
}

// FindAssetsByIDsForUpdate retrieves assets by id and locks the rows in id order.
// Must be called within a unit of work.
func (r *PgxAssetRepository) FindAssetsByIDsForUpdate(ctx context.Context, assetIDs []int64) (map[int64]domain.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM finance_assets WHERE id = ANY($1) ORDER BY id FOR UPDATE`
	return findForUpdate(ctx, r.DB, query, "asset", assetIDs, mapping.ToDomainAsset, func(a domain.Asset) int64 { return a.ID })
}

func (r *PgxAssetRepository) AdjustAssetBalances(ctx context.Context, changes map[int64]decimal.Decimal, now time.Time) error {
	query := `UPDATE finance_assets SET balance = balance + $2, updated_at = $3 WHERE id = $1`
	return adjustBalances(ctx, r.DB, query, "asset", changes, now)
}

// findForUpdate runs a locking query and checks every requested id was found.
func findForUpdate[M any, D any](ctx context.Context, db DBTX, query, label string, ids []int64, toDomain func(M) D, idOf func(D) int64) (map[int64]D, error) {
	if len(ids) == 0 {
		return map[int64]D{}, nil
	}

	rows, err := db.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s rows for update: %w", label, err)
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[M])
	if err != nil {
		return nil, fmt.Errorf("failed to scan locked %s rows: %w", label, err)
	}

	found := make(map[int64]D, len(items))
	for _, m := range items {
		d := toDomain(m)
		found[idOf(d)] = d
	}

	var missing []int64
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		slog.WarnContext(ctx, "Some rows requested for update lock were not found", "kind", label, "missing_ids", missing)
		return nil, apperrors.NotFoundf("%s %v", label, missing)
	}
	return found, nil
}

// adjustBalances queues one balance update per non-zero delta, in id order.
func adjustBalances(ctx context.Context, db DBTX, query, label string, changes map[int64]decimal.Decimal, now time.Time) error {
	ids := make([]int64, 0, len(changes))
	for id, delta := range changes {
		if !delta.IsZero() {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return nil
	}
	slices.Sort(ids)

	batch := &pgx.Batch{}
	for _, id := range ids {
		batch.Queue(query, id, changes[id], now)
	}

	br := db.SendBatch(ctx, batch)
	var batchErr error
	for _, id := range ids {
		tag, err := br.Exec()
		switch {
		case err != nil && batchErr == nil:
			batchErr = fmt.Errorf("failed to update balance for %s %d: %w", label, id, err)
		case err == nil && tag.RowsAffected() == 0 && batchErr == nil:
			batchErr = apperrors.NotFoundf("%s %d", label, id)
		}
	}
	if err := br.Close(); err != nil && batchErr == nil {
		batchErr = fmt.Errorf("failed to close balance update batch: %w", err)
	}
	return batchErr
}
