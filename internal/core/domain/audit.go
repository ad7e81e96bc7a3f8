package domain

import "time"

// EntityType names the kind of finance record an audit entry describes.
type EntityType string

const (
	EntityAsset          EntityType = "asset"
	EntityLiability      EntityType = "liability"
	EntityTransaction    EntityType = "transaction"
	EntityRecurringRule  EntityType = "recurring_rule"
	EntityMonthlyBudget  EntityType = "monthly_budget"
	EntityCategoryBudget EntityType = "category_budget"
	EntityGoal           EntityType = "goal"
	EntityGoalAllocation EntityType = "goal_allocation"
)

// AuditAction is the mutation an audit entry records.
type AuditAction string

const (
	AuditCreated AuditAction = "created"
	AuditUpdated AuditAction = "updated"
	AuditDeleted AuditAction = "deleted"
)

// AuditLogEntry is an append-only record of one mutation. Snapshots are JSON documents.
type AuditLogEntry struct {
	ID         int64       `json:"id"`
	EntityType EntityType  `json:"entity_type"`
	EntityID   *int64      `json:"entity_id"`
	Action     AuditAction `json:"action"`
	BeforeJSON *string     `json:"before_json"`
	AfterJSON  *string     `json:"after_json"`
	CreatedAt  time.Time   `json:"created_at"`
}

// AuditFilter narrows history listings.
type AuditFilter struct {
	EntityType EntityType
	EntityID   *int64
	Limit      int
	Offset     int
}
