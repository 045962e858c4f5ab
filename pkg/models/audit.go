package models

import "time"

// EntityType identifies the kind of record an audit entry refers to.
type EntityType string

const (
	EntityCase      EntityType = "CASE"
	EntityAgreement EntityType = "AGREEMENT"
	EntityUser      EntityType = "USER"
	EntityWorkflow  EntityType = "WORKFLOW"
	EntityDocument  EntityType = "DOCUMENT"
)

// AuditEntry is one row of the append-only audit ledger. The ledger is
// the system of record for workflow activity; comments embedded in
// agreement records are a denormalized copy.
type AuditEntry struct {
	ID         string     `json:"id"`
	UserID     string     `json:"userId"`
	UserName   string     `json:"userName"`
	Action     string     `json:"action"`
	EntityType EntityType `json:"entityType"`
	EntityID   string     `json:"entityId"`
	Timestamp  time.Time  `json:"timestamp"`
	Details    string     `json:"details"`
}
