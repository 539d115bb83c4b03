package update_session

import (
	sessionModels "github.com/Ibrohimov-Abdullah/navbat-booking-service/internal/service/sessions/models"
)

type SessionService interface {
	Update(clientID int64, req *sessionModels.UpdateRequest) (*sessionModels.SessionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
