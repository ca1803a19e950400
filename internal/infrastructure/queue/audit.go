package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/orientavoc/orientation-platform/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// AuditDispatcher records authorization decisions off the request path. It
// routes entries to a fixed set of workers using consistent hashing on the
// session id, so one session's decisions are persisted in order.
type AuditDispatcher struct {
	workers []chan ports.AuditEntry
	repo    ports.AuditRepository
	log     zerolog.Logger
}

// NewAuditDispatcher creates a dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewAuditDispatcher(numWorkers int, repo ports.AuditRepository, log zerolog.Logger) *AuditDispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &AuditDispatcher{
		workers: make([]chan ports.AuditEntry, numWorkers),
		repo:    repo,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.AuditEntry, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *AuditDispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Record enqueues an entry without blocking the guard that produced it; when
// the shard's buffer is full the entry is dropped and counted in the log.
func (d *AuditDispatcher) Record(entry ports.AuditEntry) {
	select {
	case d.workers[d.shardIndex(entry.SessionID)] <- entry:
	default:
		d.log.Warn().Str("guard", entry.Guard).Msg("audit buffer full, entry dropped")
	}
}

// shardIndex maps a session id deterministically to a worker index.
func (d *AuditDispatcher) shardIndex(sessionID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(sessionID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *AuditDispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.AuditEntry) {
	for {
		select {
		case <-ctx.Done():
			return
		case entry, ok := <-ch:
			if !ok {
				return
			}
			if err := d.repo.Insert(ctx, entry); err != nil {
				d.log.Error().Err(err).
					Str("guard", entry.Guard).
					Int("worker_id", id).
					Msg("audit entry persistence failed")
			}
		}
	}
}
