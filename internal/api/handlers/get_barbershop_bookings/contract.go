package get_barbershop_bookings

import (
	"context"

	"github.com/Ibrohimov-Abdullah/navbat-booking-service/internal/service/bookings/models"
)

type BookingService interface {
	GetBarbershopBookings(ctx context.Context, req *models.GetBarbershopBookingsRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
