package repositories

import (
	"context"

	"github.com/SscSPs/personal_os/internal/core/domain"
)

// AuditWriter appends audit entries. Entries are never updated or deleted.
type AuditWriter interface {
	SaveAuditEntry(ctx context.Context, entry domain.AuditLogEntry) error
}

// AuditReader lists audit entries newest first (created_at desc, id desc).
type AuditReader interface {
	ListAuditEntries(ctx context.Context, filter domain.AuditFilter) ([]domain.AuditLogEntry, error)
}

type AuditRepositoryFacade interface {
	AuditWriter
	AuditReader
}
