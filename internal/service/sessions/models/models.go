package models

import (
	"time"

	"github.com/Ibrohimov-Abdullah/navbat-booking-service/internal/domain"
	"github.com/Ibrohimov-Abdullah/navbat-booking-service/pkg/types"
)

// Session незавершенный выбор клиента, накапливаемый по шагам диалога
// Чистый носитель данных: поля заполняются по мере прохождения мастера,
// последняя запись выигрывает. После коммита сессия удаляется из стора
type Session struct {
	ClientID     int64
	BarbershopID *int64
	BarberID     *int64
	ServiceID    *int64
	Date         *time.Time
	Time         *types.TimeString
	Notes        string

	StartedAt time.Time
	UpdatedAt time.Time
}

// IsComplete проверяет, что выбраны все обязательные поля
// Услуга и заметки опциональны
func (s *Session) IsComplete() bool {
	return s.BarbershopID != nil && s.BarberID != nil && s.Date != nil && s.Time != nil
}

// UpdateRequest частичное обновление сессии: nil-поля не трогаются
type UpdateRequest struct {
	BarbershopID *int64  `json:"barbershopId,omitempty"`
	BarberID     *int64  `json:"barberId,omitempty"`
	ServiceID    *int64  `json:"serviceId,omitempty"`
	Date         *string `json:"date,omitempty"` // "2006-01-02"
	Time         *string `json:"time,omitempty"` // "15:04"
	Notes        *string `json:"notes,omitempty"`
}

// SessionResponse ответ с текущим состоянием сессии
type SessionResponse struct {
	ClientID     int64   `json:"clientId"`
	BarbershopID *int64  `json:"barbershopId,omitempty"`
	BarberID     *int64  `json:"barberId,omitempty"`
	ServiceID    *int64  `json:"serviceId,omitempty"`
	Date         *string `json:"date,omitempty"`
	Time         *string `json:"time,omitempty"`
	Notes        string  `json:"notes,omitempty"`
	Complete     bool    `json:"complete"`
}

// FromSession конвертирует сессию в DTO
func FromSession(s *Session) *SessionResponse {
	if s == nil {
		return nil
	}

	resp := &SessionResponse{
		ClientID:     s.ClientID,
		BarbershopID: s.BarbershopID,
		BarberID:     s.BarberID,
		ServiceID:    s.ServiceID,
		Notes:        s.Notes,
		Complete:     s.IsComplete(),
	}

	if s.Date != nil {
		date := s.Date.Format(domain.DateFormat)
		resp.Date = &date
	}
	if s.Time != nil {
		t := s.Time.String()
		resp.Time = &t
	}

	return resp
}
