package domain

import (
	"errors"
	"time"
)

// BookingStatus represents the lifecycle state of a coaching booking.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

// validBookingTransitions defines the allowed state machine transitions.
var validBookingTransitions = map[BookingStatus][]BookingStatus{
	BookingPending:   {BookingConfirmed, BookingCancelled},
	BookingConfirmed: {BookingCancelled},
}

var ErrBookingNotFound = errors.New("booking not found")
var ErrDuplicateBooking = errors.New("slot already booked")
var ErrInvalidBookingTransition = errors.New("invalid booking status transition")

// CanTransitionTo reports whether a transition from the current status to
// next is valid.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range validBookingTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ValidBookingStatus reports whether status names a known lifecycle state.
func ValidBookingStatus(status BookingStatus) bool {
	switch status {
	case BookingPending, BookingConfirmed, BookingCancelled:
		return true
	}
	return false
}

// Booking is one reservation of a coaching service slot, including the
// intake fields collected by the booking form.
type Booking struct {
	ID            string        `json:"id"`
	UserID        string        `json:"user_id"`
	ServiceID     int           `json:"service_id"`
	CoachID       int           `json:"coach_id"`
	Date          string        `json:"date"`
	TimeSlot      string        `json:"time_slot"`
	Goals         string        `json:"goals,omitempty"`
	Challenges    string        `json:"challenges,omitempty"`
	ContactMethod string        `json:"contact_method,omitempty"`
	Status        BookingStatus `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}
