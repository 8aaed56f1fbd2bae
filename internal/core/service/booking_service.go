package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/deepmindconcepts/coaching-platform/internal/api/metrics"
	"github.com/deepmindconcepts/coaching-platform/internal/core/domain"
	"github.com/deepmindconcepts/coaching-platform/internal/core/ports"
)

// BookingService manages coaching bookings in memory. The guard holds an
// atomically claimed marker per (service, date, slot) so a slot cannot be
// booked twice, even across restarts of the in-memory collection.
type BookingService struct {
	mu       sync.RWMutex
	bookings map[string]*domain.Booking

	catalog  ports.ContentRepository
	guard    ports.BookingGuard
	notifier ports.NotificationQueue
	logger   zerolog.Logger
}

func NewBookingService(catalog ports.ContentRepository, guard ports.BookingGuard, notifier ports.NotificationQueue, logger zerolog.Logger) *BookingService {
	return &BookingService{
		bookings: make(map[string]*domain.Booking),
		catalog:  catalog,
		guard:    guard,
		notifier: notifier,
		logger:   logger,
	}
}

// Create validates the requested service against the catalog, claims the
// slot, and records the booking as pending. The guard claim is atomic, so
// concurrent requests for the same slot yield exactly one booking. A
// confirmation notification is enqueued for asynchronous delivery.
func (s *BookingService) Create(ctx context.Context, input ports.CreateBookingInput) (*domain.Booking, error) {
	svc, err := s.catalog.FindService(ctx, input.ServiceID)
	if err != nil {
		return nil, err
	}

	// Claim before recording: a booking only exists once its slot is held.
	if err := s.guard.Claim(ctx, input.ServiceID, input.Date, input.TimeSlot); err != nil {
		if err == domain.ErrDuplicateBooking {
			return nil, err
		}
		return nil, fmt.Errorf("booking guard: %w", err)
	}

	now := time.Now().UTC()
	booking := &domain.Booking{
		ID:            uuid.NewString(),
		UserID:        input.UserID,
		ServiceID:     input.ServiceID,
		CoachID:       input.CoachID,
		Date:          input.Date,
		TimeSlot:      input.TimeSlot,
		Goals:         input.Goals,
		Challenges:    input.Challenges,
		ContactMethod: input.ContactMethod,
		Status:        domain.BookingPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	s.mu.Lock()
	s.bookings[booking.ID] = booking
	s.mu.Unlock()

	if s.notifier != nil && input.UserEmail != "" {
		s.notifier.Enqueue(ports.Notification{
			Recipient: input.UserEmail,
			Subject:   "Booking received: " + svc.Title,
			Body: fmt.Sprintf("Your %s session on %s at %s is pending confirmation.",
				svc.Title, input.Date, input.TimeSlot),
		})
	}

	metrics.BookingsCreatedTotal.WithLabelValues(svc.Title).Inc()
	s.logger.Info().
		Str("booking_id", booking.ID).
		Int("service_id", booking.ServiceID).
		Str("date", booking.Date).
		Msg("booking created")

	clone := *booking
	return &clone, nil
}

// ListForUser returns the user's bookings, newest first.
func (s *BookingService) ListForUser(_ context.Context, userID string) ([]domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Booking, 0)
	for _, b := range s.bookings {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	sortBookings(out)
	return out, nil
}

// ListAll returns every booking, newest first. Admin only at the API layer.
func (s *BookingService) ListAll(_ context.Context) ([]domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		out = append(out, *b)
	}
	sortBookings(out)
	return out, nil
}

// UpdateStatus applies a lifecycle transition. Unknown target statuses and
// transitions outside the state machine are rejected.
func (s *BookingService) UpdateStatus(_ context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	if !domain.ValidBookingStatus(status) {
		return nil, domain.ErrInvalidBookingTransition
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	booking, ok := s.bookings[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	if !booking.Status.CanTransitionTo(status) {
		return nil, domain.ErrInvalidBookingTransition
	}

	booking.Status = status
	booking.UpdatedAt = time.Now().UTC()

	clone := *booking
	return &clone, nil
}

func sortBookings(bookings []domain.Booking) {
	sort.Slice(bookings, func(i, j int) bool {
		return bookings[i].CreatedAt.After(bookings[j].CreatedAt)
	})
}
