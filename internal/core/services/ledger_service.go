package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/personal_os/internal/apperrors"
	"github.com/SscSPs/personal_os/internal/core/domain"
	portsrepo "github.com/SscSPs/personal_os/internal/core/ports/repositories"
	"github.com/SscSPs/personal_os/internal/utils/accounting"
	"github.com/SscSPs/personal_os/internal/utils/mapping"
	"github.com/shopspring/decimal"
)

// The helpers in this file run inside a unit of work: repos must be the
// transaction-bound provider handed to WithinTx.

// ensurePrimaryAsset returns the primary asset. When none is flagged the asset
// with the lowest id is promoted; when no asset exists a zero-balance
// "Primary Account" is created.
func ensurePrimaryAsset(ctx context.Context, repos portsrepo.RepositoryProvider, now time.Time, currency string) (*domain.Asset, error) {
	if err := repos.AssetRepo.LockPrimarySelection(ctx); err != nil {
		return nil, err
	}

	primary, err := repos.AssetRepo.FindPrimaryAsset(ctx)
	if err != nil {
		return nil, err
	}
	if primary != nil {
		return primary, nil
	}

	lowest, err := repos.AssetRepo.FindLowestIDAsset(ctx)
	if err != nil {
		return nil, err
	}
	if lowest != nil {
		before := *lowest
		if err := markPrimary(ctx, repos, lowest.ID, now); err != nil {
			return nil, err
		}
		promoted, err := repos.AssetRepo.FindAssetByID(ctx, lowest.ID)
		if err != nil {
			return nil, err
		}
		if err := recordAudit(ctx, repos, domain.EntityAsset, promoted.ID, domain.AuditUpdated,
			mapping.ToAssetSnapshot(before), mapping.ToAssetSnapshot(*promoted), now); err != nil {
			return nil, err
		}
		return promoted, nil
	}

	created, err := repos.AssetRepo.SaveAsset(ctx, domain.Asset{
		Name:       domain.DefaultPrimaryAssetName,
		AssetType:  domain.DefaultPrimaryAssetType,
		Currency:   currency,
		Balance:    decimal.Zero,
		IsPrimary:  true,
		Timestamps: domain.Timestamps{CreatedAt: now},
	})
	if err != nil {
		return nil, err
	}
	if err := recordAudit(ctx, repos, domain.EntityAsset, created.ID, domain.AuditCreated,
		nil, mapping.ToAssetSnapshot(*created), now); err != nil {
		return nil, err
	}
	return created, nil
}

// setPrimaryAsset makes assetID the single primary asset.
func setPrimaryAsset(ctx context.Context, repos portsrepo.RepositoryProvider, assetID int64, now time.Time) error {
	if err := repos.AssetRepo.LockPrimarySelection(ctx); err != nil {
		return err
	}
	return markPrimary(ctx, repos, assetID, now)
}

// markPrimary assumes the primary selection lock is already held.
func markPrimary(ctx context.Context, repos portsrepo.RepositoryProvider, assetID int64, now time.Time) error {
	if err := repos.AssetRepo.ClearPrimaryAssets(ctx, now); err != nil {
		return err
	}
	return repos.AssetRepo.MarkAssetPrimary(ctx, assetID, now)
}

// resolveDefaultAccounts fills the account reference a transaction type needs
// from the primary asset when the caller left it empty.
func resolveDefaultAccounts(ctx context.Context, repos portsrepo.RepositoryProvider, txnType domain.TxnType, refs *domain.AccountRefs, now time.Time, currency string) error {
	needsTo := txnType == domain.TxnIncome && refs.ToAssetID == nil
	needsFrom := (txnType == domain.TxnExpense || txnType == domain.TxnLiabilityPayment) && refs.FromAssetID == nil
	if !needsTo && !needsFrom {
		return nil
	}

	primary, err := ensurePrimaryAsset(ctx, repos, now, currency)
	if err != nil {
		return err
	}
	id := primary.ID
	if needsTo {
		refs.ToAssetID = &id
	}
	if needsFrom {
		refs.FromAssetID = &id
	}
	return nil
}

// lockAsset loads an asset under the same row lock the balance updates take,
// so a field edit cannot overwrite a concurrently posted delta.
func lockAsset(ctx context.Context, repos portsrepo.RepositoryProvider, assetID int64) (*domain.Asset, error) {
	locked, err := repos.AssetRepo.FindAssetsByIDsForUpdate(ctx, []int64{assetID})
	if err != nil {
		return nil, err
	}
	asset := locked[assetID]
	return &asset, nil
}

func lockLiability(ctx context.Context, repos portsrepo.RepositoryProvider, liabilityID int64) (*domain.Liability, error) {
	locked, err := repos.LiabilityRepo.FindLiabilitiesByIDsForUpdate(ctx, []int64{liabilityID})
	if err != nil {
		return nil, err
	}
	liability := locked[liabilityID]
	return &liability, nil
}

// applyDeltas locks every account the deltas touch, in id order, and then
// adjusts their balances. A reference to a missing account fails the whole
// unit with ErrInvalidEffect.
func applyDeltas(ctx context.Context, repos portsrepo.RepositoryProvider, now time.Time, deltaSets ...[]accounting.BalanceDelta) error {
	assetIDs, liabilityIDs := accounting.TouchedAccounts(deltaSets...)

	if len(assetIDs) > 0 {
		if _, err := repos.AssetRepo.FindAssetsByIDsForUpdate(ctx, assetIDs); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return apperrors.InvalidEffectf("asset not found")
			}
			return err
		}
	}
	if len(liabilityIDs) > 0 {
		if _, err := repos.LiabilityRepo.FindLiabilitiesByIDsForUpdate(ctx, liabilityIDs); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return apperrors.InvalidEffectf("liability not found")
			}
			return err
		}
	}

	var all []accounting.BalanceDelta
	for _, set := range deltaSets {
		all = append(all, set...)
	}
	assetChanges, liabilityChanges := accounting.SplitByKind(all)

	if len(assetChanges) > 0 {
		if err := repos.AssetRepo.AdjustAssetBalances(ctx, assetChanges, now); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return apperrors.InvalidEffectf("asset not found")
			}
			return err
		}
	}
	if len(liabilityChanges) > 0 {
		if err := repos.LiabilityRepo.AdjustLiabilityBalances(ctx, liabilityChanges, now); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return apperrors.InvalidEffectf("liability not found")
			}
			return err
		}
	}
	return nil
}

// postTransaction resolves defaults, applies the balance effect, inserts the
// row and audits it. It is the single create path shared by manual entry
// and recurring occurrences.
func postTransaction(ctx context.Context, repos portsrepo.RepositoryProvider, txn domain.Transaction, now time.Time, currency string) (*domain.Transaction, error) {
	if err := resolveDefaultAccounts(ctx, repos, txn.TxnType, &txn.AccountRefs, now, currency); err != nil {
		return nil, err
	}

	deltas, err := accounting.ComputeEffect(txn.TxnType, txn.Amount, txn.AccountRefs, accounting.Apply)
	if err != nil {
		return nil, err
	}
	if err := applyDeltas(ctx, repos, now, deltas); err != nil {
		return nil, err
	}

	txn.CreatedAt = now
	txn.UpdatedAt = nil
	saved, err := repos.TransactionRepo.SaveTransaction(ctx, txn)
	if err != nil {
		return nil, err
	}

	if err := recordAudit(ctx, repos, domain.EntityTransaction, saved.ID, domain.AuditCreated,
		nil, mapping.ToTransactionSnapshot(*saved), now); err != nil {
		return nil, err
	}
	return saved, nil
}

// recordAudit appends one audit entry. A nil before or after is stored as SQL NULL.
func recordAudit(ctx context.Context, repos portsrepo.RepositoryProvider, entityType domain.EntityType, entityID int64, action domain.AuditAction, before, after any, now time.Time) error {
	beforeJSON, err := snapshotJSON(before)
	if err != nil {
		return err
	}
	afterJSON, err := snapshotJSON(after)
	if err != nil {
		return err
	}

	id := entityID
	return repos.AuditRepo.SaveAuditEntry(ctx, domain.AuditLogEntry{
		EntityType: entityType,
		EntityID:   &id,
		Action:     action,
		BeforeJSON: beforeJSON,
		AfterJSON:  afterJSON,
		CreatedAt:  now,
	})
}

func snapshotJSON(v any) (*string, error) {
	if v == nil {
		return nil, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: encode audit snapshot: %v", apperrors.ErrInternal, err)
	}
	s := string(b)
	return &s, nil
}
