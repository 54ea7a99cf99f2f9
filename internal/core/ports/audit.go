package ports

import (
	"context"
	"time"

	"github.com/techstore/inventory-api/internal/core/domain"
)

// AuditEntryInput is the DTO handed from the service layer to the recorder.
type AuditEntryInput struct {
	ActorID   string
	ActorRole string
	Action    string
	LaptopID  string
	Timestamp time.Time
}

// AuditRecorder accepts audit entries for asynchronous persistence.
// Record must not block the calling request beyond channel admission.
type AuditRecorder interface {
	Record(entry AuditEntryInput)
}

// AuditRepository persists audit entries.
type AuditRepository interface {
	Insert(ctx context.Context, entry *domain.AuditEntry) error
}
