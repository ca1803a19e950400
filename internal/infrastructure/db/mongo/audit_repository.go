package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/orientavoc/orientation-platform/internal/core/ports"
)

const auditCollection = "auth_audit"

// AuditRepository persists authorization decisions for later review through
// the audit-log admin screen.
type AuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{coll: db.Collection(auditCollection)}
}

type mongoAuditEntry struct {
	ID        string `bson:"_id"`
	SessionID string `bson:"session_id,omitempty"`
	UserID    string `bson:"user_id,omitempty"`
	Guard     string `bson:"guard"`
	Route     string `bson:"route"`
	Granted   bool   `bson:"granted"`
	Reason    string `bson:"reason,omitempty"`
	At        int64  `bson:"at"`
}

func (r *AuditRepository) Insert(ctx context.Context, entry ports.AuditEntry) error {
	doc := mongoAuditEntry{
		ID:        entry.ID,
		SessionID: entry.SessionID,
		UserID:    entry.UserID,
		Guard:     entry.Guard,
		Route:     entry.Route,
		Granted:   entry.Granted,
		Reason:    entry.Reason,
		At:        entry.At.Unix(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}
	return nil
}
