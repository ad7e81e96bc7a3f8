package dto

import (
	"time"

	"github.com/SscSPs/personal_os/internal/core/domain"
)

// ListHistoryParams defines query parameters for the finance audit history.
// Limit and offset are clamped by the service rather than rejected.
type ListHistoryParams struct {
	EntityType string `form:"entity_type"`
	EntityID   *int64 `form:"entity_id"`
	Limit      int    `form:"limit,default=100"`
	Offset     int    `form:"offset,default=0"`
}

type AuditLogResponse struct {
	ID         int64              `json:"id"`
	EntityType domain.EntityType  `json:"entity_type"`
	EntityID   *int64             `json:"entity_id"`
	Action     domain.AuditAction `json:"action"`
	BeforeJSON *string            `json:"before_json"`
	AfterJSON  *string            `json:"after_json"`
	CreatedAt  time.Time          `json:"created_at"`
}

func ToAuditLogResponse(e *domain.AuditLogEntry) AuditLogResponse {
	return AuditLogResponse{
		ID:         e.ID,
		EntityType: e.EntityType,
		EntityID:   e.EntityID,
		Action:     e.Action,
		BeforeJSON: e.BeforeJSON,
		AfterJSON:  e.AfterJSON,
		CreatedAt:  e.CreatedAt,
	}
}

func ToListAuditLogResponse(items []domain.AuditLogEntry) []AuditLogResponse {
	res := make([]AuditLogResponse, len(items))
	for i := range items {
		res[i] = ToAuditLogResponse(&items[i])
	}
	return res
}
