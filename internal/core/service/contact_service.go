package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/deepmindconcepts/coaching-platform/internal/core/domain"
	"github.com/deepmindconcepts/coaching-platform/internal/core/ports"
)

// ContactService records contact form submissions and queues an
// acknowledgment back to the sender.
type ContactService struct {
	mu       sync.RWMutex
	messages map[string]*domain.ContactMessage

	notifier ports.NotificationQueue
	logger   zerolog.Logger
}

func NewContactService(notifier ports.NotificationQueue, logger zerolog.Logger) *ContactService {
	return &ContactService{messages: make(map[string]*domain.ContactMessage), notifier: notifier, logger: logger}
}

// Submit records one contact message.
func (s *ContactService) Submit(_ context.Context, name, email, subject, message string) (*domain.ContactMessage, error) {
	msg := &domain.ContactMessage{
		ID:         uuid.NewString(),
		Name:       name,
		Email:      email,
		Subject:    subject,
		Message:    message,
		ReceivedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	s.messages[msg.ID] = msg
	s.mu.Unlock()

	if s.notifier != nil {
		s.notifier.Enqueue(ports.Notification{
			Recipient: email,
			Subject:   "We received your message",
			Body:      "Thanks for reaching out, " + name + ". A coach will get back to you shortly.",
		})
	}

	s.logger.Info().Str("message_id", msg.ID).Str("subject", subject).Msg("contact message received")

	clone := *msg
	return &clone, nil
}

// ListAll returns every received message, newest first. Admin only at the
// API layer.
func (s *ContactService) ListAll(_ context.Context) ([]domain.ContactMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.ContactMessage, 0, len(s.messages))
	for _, m := range s.messages {
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ReceivedAt.After(out[j].ReceivedAt)
	})
	return out, nil
}
