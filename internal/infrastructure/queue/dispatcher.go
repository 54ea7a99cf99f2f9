package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/techstore/inventory-api/internal/api/metrics"
	"github.com/techstore/inventory-api/internal/core/domain"
	"github.com/techstore/inventory-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes audit entries to a fixed set of workers using consistent
// hashing on the laptop id, guaranteeing per-laptop entry ordering. It
// implements ports.AuditRecorder.
type Dispatcher struct {
	workers []chan ports.AuditEntryInput
	repo    ports.AuditRepository
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, repo ports.AuditRepository, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.AuditEntryInput, numWorkers),
		repo:    repo,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.AuditEntryInput, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Record sends an entry to the worker responsible for its laptop id.
// The call is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Record(entry ports.AuditEntryInput) {
	d.workers[d.shardIndex(entry.LaptopID)] <- entry
}

// shardIndex maps a laptop id deterministically to a worker index.
func (d *Dispatcher) shardIndex(laptopID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(laptopID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.AuditEntryInput) {
	for {
		select {
		case <-ctx.Done():
			return
		case entry, ok := <-ch:
			if !ok {
				return
			}
			err := d.repo.Insert(ctx, &domain.AuditEntry{
				ActorID:   entry.ActorID,
				ActorRole: entry.ActorRole,
				Action:    entry.Action,
				LaptopID:  entry.LaptopID,
				Timestamp: entry.Timestamp,
			})
			if err != nil {
				metrics.AuditErrorsTotal.Inc()
				d.log.Error().Err(err).
					Str("laptop_id", entry.LaptopID).
					Str("action", entry.Action).
					Int("worker_id", id).
					Msg("audit write failed")
				continue
			}
			metrics.AuditWritesTotal.WithLabelValues(entry.Action).Inc()
		}
	}
}
