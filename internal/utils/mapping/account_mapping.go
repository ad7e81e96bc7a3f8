package mapping

import (
	"github.com/SscSPs/personal_os/internal/core/domain"
	"github.com/SscSPs/personal_os/internal/models"
)

// ToDomainAsset converts a model Asset to a domain Asset
func ToDomainAsset(m models.Asset) domain.Asset {
	return domain.Asset{
		ID:           m.ID,
		Name:         m.Name,
		AssetType:    m.AssetType,
		AssetSubtype: m.AssetSubtype,
		Currency:     m.Currency,
		Balance:      m.Balance,
		IsPrimary:    m.IsPrimary,
		Notes:        m.Notes,
		Timestamps:   domain.Timestamps{CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt},
	}
}

// ToDomainAssetSlice converts a slice of model Assets to a slice of domain Assets
func ToDomainAssetSlice(ms []models.Asset) []domain.Asset {
	ds := make([]domain.Asset, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAsset(m)
	}
	return ds
}

// ToDomainLiability converts a model Liability to a domain Liability
func ToDomainLiability(m models.Liability) domain.Liability {
	return domain.Liability{
		ID:               m.ID,
		Name:             m.Name,
		LiabilityType:    m.LiabilityType,
		Balance:          m.Balance,
		CreditLimit:      m.CreditLimit,
		DueDay:           toIntPtr(m.DueDay),
		MinimumPayment:   m.MinimumPayment,
		EMIAmount:        m.EMIAmount,
		InterestRate:     m.InterestRate,
		TenureMonthsLeft: toIntPtr(m.TenureMonthsLeft),
		Notes:            m.Notes,
		Timestamps:       domain.Timestamps{CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt},
	}
}

// ToModelLiability converts a domain Liability to a model Liability
func ToModelLiability(d domain.Liability) models.Liability {
	return models.Liability{
		ID:               d.ID,
		Name:             d.Name,
		LiabilityType:    d.LiabilityType,
		Balance:          d.Balance,
		CreditLimit:      d.CreditLimit,
		DueDay:           toInt32Ptr(d.DueDay),
		MinimumPayment:   d.MinimumPayment,
		EMIAmount:        d.EMIAmount,
		InterestRate:     d.InterestRate,
		TenureMonthsLeft: toInt32Ptr(d.TenureMonthsLeft),
		Notes:            d.Notes,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
}

func ToDomainLiabilitySlice(ms []models.Liability) []domain.Liability {
	ds := make([]domain.Liability, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLiability(m)
	}
	return ds
}
