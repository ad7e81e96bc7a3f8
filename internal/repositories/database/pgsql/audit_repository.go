package pgsql

import (
	"context"
	"fmt"
	"strings"

	"github.com/SscSPs/personal_os/internal/core/domain"
	portsrepo "github.com/SscSPs/personal_os/internal/core/ports/repositories"
	"github.com/SscSPs/personal_os/internal/models"
	"github.com/SscSPs/personal_os/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

type PgxAuditRepository struct {
	BaseRepository
}

func newPgxAuditRepository(base BaseRepository) portsrepo.AuditRepositoryFacade {
	return &PgxAuditRepository{BaseRepository: base}
}

var _ portsrepo.AuditRepositoryFacade = (*PgxAuditRepository)(nil)

func (r *PgxAuditRepository) SaveAuditEntry(ctx context.Context, entry domain.AuditLogEntry) error {
	query := `
		INSERT INTO finance_audit_logs (entity_type, entity_id, action, before_json, after_json, created_at)
		VALUES ($1, $2, $3, $4::jsonb, $5::jsonb, $6);
	`
	_, err := r.DB.Exec(ctx, query,
		string(entry.EntityType),
		entry.EntityID,
		string(entry.Action),
		entry.BeforeJSON,
		entry.AfterJSON,
		entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save audit entry for %s: %w", entry.EntityType, err)
	}
	return nil
}

func (r *PgxAuditRepository) ListAuditEntries(ctx context.Context, filter domain.AuditFilter) ([]domain.AuditLogEntry, error) {
	var (
		conds []string
		args  []any
	)
	if filter.EntityType != "" {
		args = append(args, string(filter.EntityType))
		conds = append(conds, fmt.Sprintf("entity_type = $%d", len(args)))
	}
	if filter.EntityID != nil {
		args = append(args, *filter.EntityID)
		conds = append(conds, fmt.Sprintf("entity_id = $%d", len(args)))
	}

	query := `SELECT id, entity_type, entity_id, action, before_json::text AS before_json, after_json::text AS after_json, created_at
		FROM finance_audit_logs`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	args = append(args, filter.Limit, filter.Offset)
	query += fmt.Sprintf(` ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d`, len(args)-1, len(args))

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit log: %w", err)
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.AuditLog])
	if err != nil {
		return nil, fmt.Errorf("failed to scan audit log: %w", err)
	}
	return mapping.ToDomainAuditLogSlice(items), nil
}
