package set_booking_status

import (
	"context"

	"github.com/Ibrohimov-Abdullah/navbat-booking-service/internal/service/bookings/models"
)

type BookingService interface {
	SetStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) error
	GetByID(ctx context.Context, id int64, actorID int64) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
