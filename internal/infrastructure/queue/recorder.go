package queue

import (
	"context"
	"hash/fnv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/clinicops/directory-admin/internal/api/metrics"
	"github.com/clinicops/directory-admin/internal/core/domain"
	"github.com/clinicops/directory-admin/internal/core/ports"
)

const (
	defaultWorkers = 2
	channelBuffer  = 256
)

// Recorder persists audit entries asynchronously through a fixed set of
// workers sharded by actor, preserving per-actor ordering. Writes are
// best-effort: a full buffer drops the entry rather than blocking a request.
type Recorder struct {
	workers []chan domain.AuditEntry
	repo    ports.AuditRepository
	log     zerolog.Logger
}

// NewRecorder creates a Recorder with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewRecorder(numWorkers int, repo ports.AuditRepository, log zerolog.Logger) *Recorder {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	r := &Recorder{
		workers: make([]chan domain.AuditEntry, numWorkers),
		repo:    repo,
		log:     log,
	}
	for i := range r.workers {
		r.workers[i] = make(chan domain.AuditEntry, channelBuffer)
	}
	return r
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (r *Recorder) Start(ctx context.Context) {
	for i, ch := range r.workers {
		go r.runWorker(ctx, i, ch)
	}
}

// Record enqueues an entry for persistence, filling in the ID and timestamp
// when absent. Never blocks the caller.
func (r *Recorder) Record(entry domain.AuditEntry) {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	select {
	case r.workers[r.shardIndex(entry.Actor)] <- entry:
	default:
		metrics.AuditDroppedTotal.Inc()
		r.log.Warn().Str("action", entry.Action).Msg("audit recorder buffer full, entry dropped")
	}
}

// shardIndex maps an actor deterministically to a worker index.
func (r *Recorder) shardIndex(actor string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(actor))
	return int(h.Sum32()) % len(r.workers)
}

func (r *Recorder) runWorker(ctx context.Context, id int, ch <-chan domain.AuditEntry) {
	for {
		select {
		case <-ctx.Done():
			return
		case entry, ok := <-ch:
			if !ok {
				return
			}
			if err := r.repo.Append(ctx, &entry); err != nil {
				r.log.Error().Err(err).
					Str("action", entry.Action).
					Int("worker_id", id).
					Msg("audit append failed")
			}
		}
	}
}
