package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/deepmindconcepts/coaching-platform/internal/core/ports"
)

type recordingService struct {
	mu        sync.Mutex
	delivered []ports.Notification
	done      chan struct{}
	expect    int
}

func newRecordingService(expect int) *recordingService {
	return &recordingService{done: make(chan struct{}), expect: expect}
}

func (s *recordingService) Deliver(_ context.Context, n ports.Notification) error {
	s.mu.Lock()
	s.delivered = append(s.delivered, n)
	if len(s.delivered) == s.expect {
		close(s.done)
	}
	s.mu.Unlock()
	return nil
}

func TestDispatcher_DeliversAll(t *testing.T) {
	svc := newRecordingService(3)
	d := NewDispatcher(2, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.Enqueue(ports.Notification{Recipient: "a@example.com", Subject: "one"})
	d.Enqueue(ports.Notification{Recipient: "b@example.com", Subject: "two"})
	d.Enqueue(ports.Notification{Recipient: "a@example.com", Subject: "three"})

	select {
	case <-svc.done:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for deliveries")
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()
	if len(svc.delivered) != 3 {
		t.Fatalf("expected 3 deliveries, got %d", len(svc.delivered))
	}

	// Per-recipient ordering: a@example.com must see "one" before "three".
	var forA []string
	for _, n := range svc.delivered {
		if n.Recipient == "a@example.com" {
			forA = append(forA, n.Subject)
		}
	}
	if len(forA) != 2 || forA[0] != "one" || forA[1] != "three" {
		t.Fatalf("per-recipient ordering violated: %v", forA)
	}
}

func TestDispatcher_EnqueueAfterShutdownDoesNotBlock(t *testing.T) {
	svc := newRecordingService(0)
	d := NewDispatcher(1, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	d.Start(ctx)
	cancel()

	// Overfill the single worker's buffer: with the worker gone, every
	// send past capacity must take the drop path instead of blocking.
	finished := make(chan struct{})
	go func() {
		defer close(finished)
		for i := 0; i < 3*channelBuffer; i++ {
			d.Enqueue(ports.Notification{Recipient: "a@example.com", Subject: "late"})
		}
	}()

	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatalf("Enqueue blocked after shutdown")
	}
}

func TestDispatcher_ShardIsStable(t *testing.T) {
	d := NewDispatcher(4, newRecordingService(0), zerolog.Nop())

	first := d.shardIndex("someone@example.com")
	for i := 0; i < 10; i++ {
		if got := d.shardIndex("someone@example.com"); got != first {
			t.Fatalf("shard index changed: %d vs %d", first, got)
		}
	}
}
