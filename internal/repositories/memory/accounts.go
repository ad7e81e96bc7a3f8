package memory

import (
	"cmp"
	"context"
	"slices"
	"time"

	"github.com/SscSPs/personal_os/internal/apperrors"
	"github.com/SscSPs/personal_os/internal/core/domain"
	"github.com/shopspring/decimal"
)

type assetRepository struct{ x session }

func (r *assetRepository) FindAssetByID(_ context.Context, assetID int64) (*domain.Asset, error) {
	var (
		a  domain.Asset
		ok bool
	)
	r.x.read(func(st *state) { a, ok = st.assets[assetID] })
	if !ok {
		return nil, apperrors.NotFoundf("asset %d", assetID)
	}
	return &a, nil
}

func (r *assetRepository) ListAssets(_ context.Context) ([]domain.Asset, error) {
	var out []domain.Asset
	r.x.read(func(st *state) {
		out = make([]domain.Asset, 0, len(st.assets))
		for _, a := range st.assets {
			out = append(out, a)
		}
	})
	slices.SortFunc(out, func(a, b domain.Asset) int {
		if a.IsPrimary != b.IsPrimary {
			if a.IsPrimary {
				return -1
			}
			return 1
		}
		return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.ID, b.ID))
	})
	return out, nil
}

func (r *assetRepository) FindPrimaryAsset(_ context.Context) (*domain.Asset, error) {
	var found *domain.Asset
	r.x.read(func(st *state) {
		for _, a := range st.assets {
			if a.IsPrimary {
				found = &a
				return
			}
		}
	})
	return found, nil
}

func (r *assetRepository) FindLowestIDAsset(_ context.Context) (*domain.Asset, error) {
	var found *domain.Asset
	r.x.read(func(st *state) {
		for _, a := range st.assets {
			if found == nil || a.ID < found.ID {
				found = &a
			}
		}
	})
	return found, nil
}

func (r *assetRepository) SaveAsset(_ context.Context, asset domain.Asset) (*domain.Asset, error) {
	err := r.x.write(func(st *state) error {
		if asset.IsPrimary {
			for _, a := range st.assets {
				if a.IsPrimary {
					return apperrors.ErrDuplicate
				}
			}
		}
		asset.ID = st.nextID()
		st.assets[asset.ID] = asset
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &asset, nil
}

func (r *assetRepository) UpdateAsset(_ context.Context, asset domain.Asset) error {
	return r.x.write(func(st *state) error {
		cur, ok := st.assets[asset.ID]
		if !ok {
			return apperrors.NotFoundf("asset %d", asset.ID)
		}
		// the primary flag only moves through ClearPrimaryAssets/MarkAssetPrimary.
		asset.IsPrimary = cur.IsPrimary
		asset.CreatedAt = cur.CreatedAt
		st.assets[asset.ID] = asset
		return nil
	})
}

func (r *assetRepository) ClearPrimaryAssets(_ context.Context, now time.Time) error {
	return r.x.write(func(st *state) error {
		for id, a := range st.assets {
			if a.IsPrimary {
				a.IsPrimary = false
				a.Touch(now)
				st.assets[id] = a
			}
		}
		return nil
	})
}

func (r *assetRepository) MarkAssetPrimary(_ context.Context, assetID int64, now time.Time) error {
	return r.x.write(func(st *state) error {
		a, ok := st.assets[assetID]
		if !ok {
			return apperrors.NotFoundf("asset %d", assetID)
		}
		for id, other := range st.assets {
			if other.IsPrimary && id != assetID {
				return apperrors.ErrDuplicate
			}
		}
		a.IsPrimary = true
		a.Touch(now)
		st.assets[assetID] = a
		return nil
	})
}

// LockPrimarySelection is a no-op: units of work already hold the store's write lock.
func (r *assetRepository) LockPrimarySelection(_ context.Context) error {
	return nil
}

func (r *assetRepository) FindAssetsByIDsForUpdate(_ context.Context, assetIDs []int64) (map[int64]domain.Asset, error) {
	out := make(map[int64]domain.Asset, len(assetIDs))
	var missing []int64
	r.x.read(func(st *state) {
		for _, id := range assetIDs {
			a, ok := st.assets[id]
			if !ok {
				missing = append(missing, id)
				continue
			}
			out[id] = a
		}
	})
	if len(missing) > 0 {
		return nil, apperrors.NotFoundf("asset %v", missing)
	}
	return out, nil
}

func (r *assetRepository) AdjustAssetBalances(_ context.Context, changes map[int64]decimal.Decimal, now time.Time) error {
	return r.x.write(func(st *state) error {
		for id := range changes {
			if _, ok := st.assets[id]; !ok {
				return apperrors.NotFoundf("asset %d", id)
			}
		}
		for id, delta := range changes {
			if delta.IsZero() {
				continue
			}
			a := st.assets[id]
			a.Balance = a.Balance.Add(delta)
			a.Touch(now)
			st.assets[id] = a
		}
		return nil
	})
}

type liabilityRepository struct{ x session }

func (r *liabilityRepository) FindLiabilityByID(_ context.Context, liabilityID int64) (*domain.Liability, error) {
	var (
		l  domain.Liability
		ok bool
	)
	r.x.read(func(st *state) { l, ok = st.liabilities[liabilityID] })
	if !ok {
		return nil, apperrors.NotFoundf("liability %d", liabilityID)
	}
	return &l, nil
}

func (r *liabilityRepository) ListLiabilities(_ context.Context) ([]domain.Liability, error) {
	var out []domain.Liability
	r.x.read(func(st *state) {
		out = make([]domain.Liability, 0, len(st.liabilities))
		for _, l := range st.liabilities {
			out = append(out, l)
		}
	})
	slices.SortFunc(out, func(a, b domain.Liability) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.ID, b.ID))
	})
	return out, nil
}

func (r *liabilityRepository) SaveLiability(_ context.Context, liability domain.Liability) (*domain.Liability, error) {
	_ = r.x.write(func(st *state) error {
		liability.ID = st.nextID()
		st.liabilities[liability.ID] = liability
		return nil
	})
	return &liability, nil
}

func (r *liabilityRepository) UpdateLiability(_ context.Context, liability domain.Liability) error {
	return r.x.write(func(st *state) error {
		cur, ok := st.liabilities[liability.ID]
		if !ok {
			return apperrors.NotFoundf("liability %d", liability.ID)
		}
		liability.CreatedAt = cur.CreatedAt
		st.liabilities[liability.ID] = liability
		return nil
	})
}

func (r *liabilityRepository) FindLiabilitiesByIDsForUpdate(_ context.Context, liabilityIDs []int64) (map[int64]domain.Liability, error) {
	out := make(map[int64]domain.Liability, len(liabilityIDs))
	var missing []int64
	r.x.read(func(st *state) {
		for _, id := range liabilityIDs {
			l, ok := st.liabilities[id]
			if !ok {
				missing = append(missing, id)
				continue
			}
			out[id] = l
		}
	})
	if len(missing) > 0 {
		return nil, apperrors.NotFoundf("liability %v", missing)
	}
	return out, nil
}

func (r *liabilityRepository) AdjustLiabilityBalances(_ context.Context, changes map[int64]decimal.Decimal, now time.Time) error {
	return r.x.write(func(st *state) error {
		for id := range changes {
			if _, ok := st.liabilities[id]; !ok {
				return apperrors.NotFoundf("liability %d", id)
			}
		}
		for id, delta := range changes {
			if delta.IsZero() {
				continue
			}
			l := st.liabilities[id]
			l.Balance = l.Balance.Add(delta)
			l.Touch(now)
			st.liabilities[id] = l
		}
		return nil
	})
}
