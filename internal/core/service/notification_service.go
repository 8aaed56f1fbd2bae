package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/deepmindconcepts/coaching-platform/internal/core/ports"
)

// LogNotificationService records delivered notifications in memory and
// logs each one. There is no real mail transport; the record doubles as
// the admin-visible outbox.
type LogNotificationService struct {
	mu        sync.RWMutex
	delivered []ports.Notification
	logger    zerolog.Logger
}

func NewLogNotificationService(logger zerolog.Logger) *LogNotificationService {
	return &LogNotificationService{logger: logger}
}

func (s *LogNotificationService) Deliver(_ context.Context, n ports.Notification) error {
	s.mu.Lock()
	s.delivered = append(s.delivered, n)
	s.mu.Unlock()

	s.logger.Info().
		Str("recipient", n.Recipient).
		Str("subject", n.Subject).
		Msg("notification delivered")
	return nil
}

// Delivered returns a copy of everything delivered so far.
func (s *LogNotificationService) Delivered() []ports.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]ports.Notification, len(s.delivered))
	copy(out, s.delivered)
	return out
}
