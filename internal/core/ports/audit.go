package ports

import (
	"context"
	"time"
)

// AuditEntry records a single authorization decision.
type AuditEntry struct {
	ID        string
	SessionID string
	UserID    string
	Guard     string
	Route     string
	Granted   bool
	Reason    string
	At        time.Time
}

// AuditRepository persists authorization decisions.
type AuditRepository interface {
	Insert(ctx context.Context, entry AuditEntry) error
}

// AuditRecorder accepts decisions for asynchronous recording.
type AuditRecorder interface {
	Record(entry AuditEntry)
}
