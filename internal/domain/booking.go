package domain

import (
	"time"

	"github.com/Ibrohimov-Abdullah/navbat-booking-service/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// legalTransitions describes the booking state machine:
// pending -> confirmed | cancelled, confirmed -> cancelled | completed.
// Cancelled and completed are terminal.
var legalTransitions = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCancelled, StatusCompleted},
	StatusCancelled: {},
	StatusCompleted: {},
}

// Booking represents a client's appointment with a barber
type Booking struct {
	ID           int64
	ClientID     int64
	BarberID     int64
	BarbershopID int64
	ServiceID    *int64 // optional, a booking may be made without picking a service
	BookingDate  time.Time
	BookingTime  types.TimeString
	Status       BookingStatus
	Notes        string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OccupiesSlot returns true if the booking still holds its (barber, date, time) cell.
// Only pending and confirmed bookings occupy a slot; cancelled and completed free it.
func (b *Booking) OccupiesSlot() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsTerminal returns true if no further status transitions are allowed
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusCancelled || b.Status == StatusCompleted
}

// CanTransitionTo reports whether moving to the given status is legal
func (b *Booking) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range legalTransitions[b.Status] {
		if allowed == next {
			return true
		}
	}
	return false
}

// StartsAt combines the booking date and time into a single timestamp
func (b *Booking) StartsAt() (time.Time, error) {
	return b.BookingTime.At(b.BookingDate)
}

// ParseBookingStatus validates a raw status string
func ParseBookingStatus(s string) (BookingStatus, bool) {
	switch BookingStatus(s) {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return BookingStatus(s), true
	}
	return "", false
}

// BarbershopBookingsFilter filters the owner-facing booking listing
type BarbershopBookingsFilter struct {
	BarbershopID int64
	Date         *time.Time // nil = all dates
}
