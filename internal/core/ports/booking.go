package ports

import (
	"context"

	"github.com/deepmindconcepts/coaching-platform/internal/core/domain"
)

// CreateBookingInput is the DTO passed from the transport layer to the
// booking service.
type CreateBookingInput struct {
	UserID        string
	UserEmail     string
	ServiceID     int
	CoachID       int
	Date          string
	TimeSlot      string
	Goals         string
	Challenges    string
	ContactMethod string
}

// BookingService owns the booking lifecycle.
type BookingService interface {
	Create(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
	ListForUser(ctx context.Context, userID string) ([]domain.Booking, error)
	ListAll(ctx context.Context) ([]domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error)
}

// BookingGuard prevents double-booking of the same service slot.
type BookingGuard interface {
	// Claim atomically reserves the slot. A slot that is already claimed
	// returns domain.ErrDuplicateBooking; concurrent claims of the same
	// slot must yield exactly one success.
	Claim(ctx context.Context, serviceID int, date, timeSlot string) error
}
