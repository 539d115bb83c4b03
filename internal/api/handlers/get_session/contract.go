package get_session

import (
	sessionModels "github.com/Ibrohimov-Abdullah/navbat-booking-service/internal/service/sessions/models"
)

type SessionService interface {
	Get(clientID int64) (*sessionModels.SessionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
