package domain

import "time"

// Audit actions recorded for inventory mutations.
const (
	AuditActionCreate = "create"
	AuditActionUpdate = "update"
	AuditActionDelete = "delete"
)

// AuditEntry records one admitted write operation on the inventory.
// Entries are written asynchronously and are best-effort: a lost entry
// never fails the request that produced it.
type AuditEntry struct {
	ActorID   string    `bson:"actor_id"`
	ActorRole string    `bson:"actor_role"`
	Action    string    `bson:"action"`
	LaptopID  string    `bson:"laptop_id"`
	Timestamp time.Time `bson:"timestamp"`
}
