package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/deepmindconcepts/coaching-platform/internal/core/domain"
)

// BookingGuard provides double-booking protection backed by Redis.
// Key format: booked:<service_id>:<date>:<time_slot>
type BookingGuard struct {
	client *redis.Client
}

// NewBookingGuard creates a BookingGuard wrapping the given Redis client.
func NewBookingGuard(client *redis.Client) *BookingGuard {
	return &BookingGuard{client: client}
}

// Claim reserves this exact slot via SETNX, so the existence check and the
// reservation are one atomic operation: concurrent claims of the same slot
// see exactly one success. Markers do not expire; cancelled bookings keep
// their slot until an operator clears it.
func (g *BookingGuard) Claim(ctx context.Context, serviceID int, date, timeSlot string) error {
	ok, err := g.client.SetNX(ctx, g.key(serviceID, date, timeSlot), "1", 0).Result()
	if err != nil {
		return fmt.Errorf("booking claim: %w", err)
	}
	if !ok {
		return domain.ErrDuplicateBooking
	}
	return nil
}

func (g *BookingGuard) key(serviceID int, date, timeSlot string) string {
	return fmt.Sprintf("booked:%d:%s:%s", serviceID, date, timeSlot)
}
