package commit_session

import (
	"context"

	createBooking "github.com/Ibrohimov-Abdullah/navbat-booking-service/internal/usecase/create_booking"
)

type SessionService interface {
	Commit(ctx context.Context, clientID int64) (*createBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
