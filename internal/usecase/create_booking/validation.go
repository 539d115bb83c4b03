package create_booking

import (
	"fmt"
	"time"

	"github.com/Ibrohimov-Abdullah/navbat-booking-service/internal/domain"
	"github.com/Ibrohimov-Abdullah/navbat-booking-service/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ClientID <= 0 {
		return fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}

	if req.BarberID <= 0 {
		return fmt.Errorf("%w: barberID must be positive", ErrInvalidInput)
	}

	if req.BarbershopID <= 0 {
		return fmt.Errorf("%w: barbershopID must be positive", ErrInvalidInput)
	}

	if req.ServiceID != nil && *req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.Time.IsZero() {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}

	if err := req.Time.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
	}

	if len(req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes too long", ErrInvalidInput)
	}

	return nil
}

// validateDate проверяет, что дата не в прошлом
func validateDate(bookingDate, now time.Time) error {
	dateOnly := time.Date(bookingDate.Year(), bookingDate.Month(), bookingDate.Day(), 0, 0, 0, 0, bookingDate.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if dateOnly.Before(nowOnly) {
		return ErrInvalidDate
	}
	return nil
}

// validateSlotTime проверяет, что время лежит на 30-минутной границе
// внутри рабочего окна барбера
func validateSlotTime(t types.TimeString, schedule domain.WorkSchedule) error {
	minutes, err := t.Minutes()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
	}

	if minutes%domain.SlotDurationMinutes != 0 {
		return fmt.Errorf("%w: time must be on a %d-minute boundary", ErrInvalidTimeSlot, domain.SlotDurationMinutes)
	}

	if minutes < schedule.StartHour*60 || minutes >= schedule.EndHour*60 {
		return fmt.Errorf("%w: time is outside the work window", ErrInvalidTimeSlot)
	}

	return nil
}

// isSlotOccupied проверяет, занята ли ячейка времени активным бронированием
func isSlotOccupied(t types.TimeString, bookings []*domain.Booking) bool {
	for _, b := range bookings {
		if b.OccupiesSlot() && b.BookingTime == t {
			return true
		}
	}
	return false
}
