package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/techstore/inventory-api/internal/core/domain"
)

const auditCollection = "audit_log"

// AuditRepository implements ports.AuditRepository using MongoDB.
// The audit_log collection is append-only.
type AuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{coll: db.Collection(auditCollection)}
}

func (r *AuditRepository) Insert(ctx context.Context, entry *domain.AuditEntry) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, entry)
	return err
}
