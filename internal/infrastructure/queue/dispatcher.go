package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/jobhunter/platform/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// ViewDispatcher counts job views off the request path. Views for a job are
// routed to a fixed worker by hashing the job ID, so increments for the same
// job never race each other.
type ViewDispatcher struct {
	workers []chan string
	jobs    ports.JobRepository
	log     zerolog.Logger
}

// NewViewDispatcher creates a ViewDispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewViewDispatcher(numWorkers int, jobs ports.JobRepository, log zerolog.Logger) *ViewDispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &ViewDispatcher{
		workers: make([]chan string, numWorkers),
		jobs:    jobs,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan string, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *ViewDispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Record enqueues one view for jobID. When the responsible worker's buffer is
// full the view is dropped rather than stalling the read path.
func (d *ViewDispatcher) Record(jobID string) {
	select {
	case d.workers[d.shardIndex(jobID)] <- jobID:
	default:
		d.log.Warn().Str("job_id", jobID).Msg("view queue full, dropping view")
	}
}

// shardIndex maps a job ID deterministically to a worker index.
func (d *ViewDispatcher) shardIndex(jobID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(jobID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *ViewDispatcher) runWorker(ctx context.Context, id int, ch <-chan string) {
	for {
		select {
		case <-ctx.Done():
			return
		case jobID, ok := <-ch:
			if !ok {
				return
			}
			if err := d.jobs.IncrementViews(ctx, jobID); err != nil {
				d.log.Error().Err(err).
					Str("job_id", jobID).
					Int("worker_id", id).
					Msg("view count update failed")
			}
		}
	}
}
