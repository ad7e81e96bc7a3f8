package mapping

import (
	"github.com/SscSPs/personal_os/internal/core/domain"
	"github.com/SscSPs/personal_os/internal/models"
)

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		ID:           m.ID,
		TxnType:      domain.TxnType(m.TxnType),
		Amount:       m.Amount,
		Category:     m.Category,
		PaymentMode:  m.PaymentMode,
		Description:  m.Description,
		TransactedAt: m.TransactedAt,
		AccountRefs: domain.AccountRefs{
			FromAssetID: m.FromAssetID,
			ToAssetID:   m.ToAssetID,
			LiabilityID: m.LiabilityID,
		},
		RecurringID: m.RecurringID,
		Timestamps:  domain.Timestamps{CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt},
	}
}

func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}

// ToDomainAuditLog converts a model AuditLog to a domain AuditLogEntry
func ToDomainAuditLog(m models.AuditLog) domain.AuditLogEntry {
	return domain.AuditLogEntry{
		ID:         m.ID,
		EntityType: domain.EntityType(m.EntityType),
		EntityID:   m.EntityID,
		Action:     domain.AuditAction(m.Action),
		BeforeJSON: m.BeforeJSON,
		AfterJSON:  m.AfterJSON,
		CreatedAt:  m.CreatedAt,
	}
}

func ToDomainAuditLogSlice(ms []models.AuditLog) []domain.AuditLogEntry {
	ds := make([]domain.AuditLogEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAuditLog(m)
	}
	return ds
}
