package get_client_bookings

import (
	"context"

	"github.com/Ibrohimov-Abdullah/navbat-booking-service/internal/service/bookings/models"
)

type BookingService interface {
	GetClientBookings(ctx context.Context, clientID int64) (*models.ClientBookingsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
