package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/deepmindconcepts/coaching-platform/internal/api/metrics"
	"github.com/deepmindconcepts/coaching-platform/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 128
)

// Dispatcher routes outbound notifications to a fixed set of workers using
// consistent hashing on the recipient, guaranteeing per-recipient delivery
// ordering.
type Dispatcher struct {
	workers []chan ports.Notification
	service ports.NotificationService
	done    chan struct{}
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.NotificationService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.Notification, numWorkers),
		service: service,
		done:    make(chan struct{}),
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.Notification, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled,
// after which Enqueue drops instead of sending.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
	go func() {
		<-ctx.Done()
		close(d.done)
	}()
}

// Enqueue sends a notification to the worker responsible for its
// recipient. The call is non-blocking up to channelBuffer capacity. Once
// the dispatcher has stopped, notifications are dropped and counted: a
// producer on the shutdown path must never block on a queue no worker
// drains.
func (d *Dispatcher) Enqueue(n ports.Notification) {
	idx := d.shardIndex(n.Recipient)

	select {
	case <-d.done:
		d.drop(n)
		return
	default:
	}

	select {
	case d.workers[idx] <- n:
		metrics.NotificationsQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
	case <-d.done:
		d.drop(n)
	}
}

func (d *Dispatcher) drop(n ports.Notification) {
	metrics.NotificationsDeliveredTotal.WithLabelValues("dropped").Inc()
	d.log.Warn().
		Str("recipient", n.Recipient).
		Str("subject", n.Subject).
		Msg("dispatcher stopped, notification dropped")
}

// shardIndex maps a recipient deterministically to a worker index.
func (d *Dispatcher) shardIndex(recipient string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(recipient))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.Notification) {
	workerID := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case n, ok := <-ch:
			if !ok {
				return
			}
			metrics.NotificationsQueueDepth.WithLabelValues(workerID).Set(float64(len(ch)))
			if err := d.service.Deliver(ctx, n); err != nil {
				metrics.NotificationsDeliveredTotal.WithLabelValues("error").Inc()
				d.log.Error().Err(err).
					Str("recipient", n.Recipient).
					Int("worker_id", id).
					Msg("notification delivery failed")
				continue
			}
			metrics.NotificationsDeliveredTotal.WithLabelValues("ok").Inc()
		}
	}
}
