package accounting

import (
	"fmt"
	"sort"

	"github.com/SscSPs/personal_os/internal/apperrors"
	"github.com/SscSPs/personal_os/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Direction multiplies every delta of an effect: Apply posts it, Reverse undoes it.
type Direction int

const (
	Apply   Direction = 1
	Reverse Direction = -1
)

// BalanceDelta is a signed change to one asset or liability balance.
type BalanceDelta struct {
	Kind      domain.AccountKind
	AccountID int64
	Delta     decimal.Decimal
}

// ComputeEffect translates a transaction shape into the balance deltas it causes.
//
//	income             to        += amount
//	expense            from      -= amount
//	transfer           from      -= amount, to += amount (from != to)
//	liability_payment  from      -= amount, liability -= amount
//
// Every delta is multiplied by dir, so ComputeEffect(..., Reverse) exactly undoes
// ComputeEffect(..., Apply). It performs no I/O: existence of the referenced
// accounts is checked by whoever applies the deltas.
func ComputeEffect(txnType domain.TxnType, amount decimal.Decimal, refs domain.AccountRefs, dir Direction) ([]BalanceDelta, error) {
	if dir != Apply && dir != Reverse {
		return nil, fmt.Errorf("unsupported effect direction %d", dir)
	}
	if !amount.IsPositive() {
		return nil, apperrors.InvalidEffectf("amount must be greater than zero")
	}
	if !domain.HasMoneyScale(amount) {
		return nil, apperrors.InvalidEffectf("amount must have at most %d decimal places", domain.MoneyScale)
	}
	signed := amount.Mul(decimal.NewFromInt(int64(dir)))

	switch txnType {
	case domain.TxnIncome:
		if refs.ToAssetID == nil {
			return nil, apperrors.InvalidEffectf("income requires to_asset_id")
		}
		return []BalanceDelta{
			{Kind: domain.KindAsset, AccountID: *refs.ToAssetID, Delta: signed},
		}, nil

	case domain.TxnExpense:
		if refs.FromAssetID == nil {
			return nil, apperrors.InvalidEffectf("expense requires from_asset_id")
		}
		return []BalanceDelta{
			{Kind: domain.KindAsset, AccountID: *refs.FromAssetID, Delta: signed.Neg()},
		}, nil

	case domain.TxnTransfer:
		if refs.FromAssetID == nil || refs.ToAssetID == nil {
			return nil, apperrors.InvalidEffectf("transfer requires from_asset_id and to_asset_id")
		}
		if *refs.FromAssetID == *refs.ToAssetID {
			return nil, apperrors.InvalidEffectf("transfer accounts must be different")
		}
		return []BalanceDelta{
			{Kind: domain.KindAsset, AccountID: *refs.FromAssetID, Delta: signed.Neg()},
			{Kind: domain.KindAsset, AccountID: *refs.ToAssetID, Delta: signed},
		}, nil

	case domain.TxnLiabilityPayment:
		if refs.LiabilityID == nil {
			return nil, apperrors.InvalidEffectf("liability_payment requires liability_id")
		}
		if refs.FromAssetID == nil {
			return nil, apperrors.InvalidEffectf("liability_payment requires from_asset_id")
		}
		return []BalanceDelta{
			{Kind: domain.KindAsset, AccountID: *refs.FromAssetID, Delta: signed.Neg()},
			{Kind: domain.KindLiability, AccountID: *refs.LiabilityID, Delta: signed.Neg()},
		}, nil
	}

	return nil, apperrors.InvalidEffectf("invalid txn_type %q", txnType)
}

// TouchedAccounts returns the distinct asset and liability ids referenced by
// the given deltas, each sorted ascending so callers lock rows in a stable order.
func TouchedAccounts(deltaSets ...[]BalanceDelta) (assetIDs []int64, liabilityIDs []int64) {
	seen := make(map[domain.AccountKind]map[int64]struct{}, 2)
	for _, set := range deltaSets {
		for _, d := range set {
			if seen[d.Kind] == nil {
				seen[d.Kind] = make(map[int64]struct{})
			}
			if _, ok := seen[d.Kind][d.AccountID]; ok {
				continue
			}
			seen[d.Kind][d.AccountID] = struct{}{}
			switch d.Kind {
			case domain.KindAsset:
				assetIDs = append(assetIDs, d.AccountID)
			case domain.KindLiability:
				liabilityIDs = append(liabilityIDs, d.AccountID)
			}
		}
	}
	sort.Slice(assetIDs, func(i, j int) bool { return assetIDs[i] < assetIDs[j] })
	sort.Slice(liabilityIDs, func(i, j int) bool { return liabilityIDs[i] < liabilityIDs[j] })
	return assetIDs, liabilityIDs
}

// SplitByKind sums deltas per account, separated into asset and liability changes.
func SplitByKind(deltas []BalanceDelta) (assetChanges map[int64]decimal.Decimal, liabilityChanges map[int64]decimal.Decimal) {
	assetChanges = make(map[int64]decimal.Decimal)
	liabilityChanges = make(map[int64]decimal.Decimal)
	for _, d := range deltas {
		switch d.Kind {
		case domain.KindAsset:
			assetChanges[d.AccountID] = assetChanges[d.AccountID].Add(d.Delta)
		case domain.KindLiability:
			liabilityChanges[d.AccountID] = liabilityChanges[d.AccountID].Add(d.Delta)
		}
	}
	return assetChanges, liabilityChanges
}
