package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/Mohamed-Rirash/appointment-app-sub001/internal/api/metrics"
	"github.com/Mohamed-Rirash/appointment-app-sub001/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
	deliverTimeout = 10 * time.Second
)

// DedupChecker abstracts the notification idempotency store (Redis).
type DedupChecker interface {
	Seen(ctx context.Context, appointmentID, kind string) (bool, error)
	Mark(ctx context.Context, appointmentID, kind string) error
}

// Dispatcher delivers notifications asynchronously on a fixed set of workers,
// sharded by appointment id so notifications for one appointment keep their
// order. Delivery failures are logged and never surface to the transition
// that scheduled them.
type Dispatcher struct {
	workers  []chan ports.Notification
	notifier ports.Notifier
	dedup    DedupChecker
	log      zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, notifier ports.Notifier, dedup DedupChecker, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers:  make([]chan ports.Notification, numWorkers),
		notifier: notifier,
		dedup:    dedup,
		log:      log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.Notification, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Schedule hands a notification to the worker responsible for its
// appointment. When the worker's buffer is full the notification is dropped
// with a warning rather than blocking the calling transition.
func (d *Dispatcher) Schedule(n ports.Notification) {
	idx := d.shardIndex(n.AppointmentID)
	select {
	case d.workers[idx] <- n:
		metrics.NotificationQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
	default:
		metrics.NotificationsTotal.WithLabelValues(n.Kind, "failed").Inc()
		d.log.Warn().
			Str("appointment_id", n.AppointmentID).
			Str("kind", n.Kind).
			Int("worker_id", idx).
			Msg("notification queue full, dropping")
	}
}

// shardIndex maps an appointment id deterministically to a worker index.
func (d *Dispatcher) shardIndex(appointmentID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(appointmentID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.Notification) {
	for {
		select {
		case <-ctx.Done():
			return
		case n, ok := <-ch:
			if !ok {
				return
			}
			d.deliver(ctx, id, n)
			metrics.NotificationQueueDepth.WithLabelValues(strconv.Itoa(id)).Set(float64(len(ch)))
		}
	}
}

func (d *Dispatcher) deliver(ctx context.Context, workerID int, n ports.Notification) {
	if n.Recipient == "" {
		d.log.Debug().Str("appointment_id", n.AppointmentID).Str("kind", n.Kind).Msg("no recipient, skipping notification")
		return
	}

	sendCtx, cancel := context.WithTimeout(ctx, deliverTimeout)
	defer cancel()

	seen, err := d.dedup.Seen(sendCtx, n.AppointmentID, n.Kind)
	if err != nil {
		d.log.Warn().Err(err).Str("appointment_id", n.AppointmentID).Msg("dedup check failed, sending anyway")
	} else if seen {
		metrics.NotificationsTotal.WithLabelValues(n.Kind, "deduplicated").Inc()
		d.log.Debug().Str("appointment_id", n.AppointmentID).Str("kind", n.Kind).Msg("duplicate notification skipped")
		return
	}

	if err := d.notifier.Notify(sendCtx, n); err != nil {
		metrics.NotificationsTotal.WithLabelValues(n.Kind, "failed").Inc()
		d.log.Error().Err(err).
			Str("appointment_id", n.AppointmentID).
			Str("kind", n.Kind).
			Int("worker_id", workerID).
			Msg("notification delivery failed")
		return
	}

	if err := d.dedup.Mark(sendCtx, n.AppointmentID, n.Kind); err != nil {
		d.log.Warn().Err(err).Str("appointment_id", n.AppointmentID).Msg("failed to set dedup key")
	}

	metrics.NotificationsTotal.WithLabelValues(n.Kind, "sent").Inc()
	d.log.Info().
		Str("appointment_id", n.AppointmentID).
		Str("kind", n.Kind).
		Msg("notification sent")
}
