package sessions

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Ibrohimov-Abdullah/navbat-booking-service/internal/domain"
	"github.com/Ibrohimov-Abdullah/navbat-booking-service/internal/service/sessions/models"
	createBooking "github.com/Ibrohimov-Abdullah/navbat-booking-service/internal/usecase/create_booking"
	"github.com/Ibrohimov-Abdullah/navbat-booking-service/pkg/types"
)

// Service стор незавершенных сессий бронирования, ключ - ID клиента
//
// Сессии живут только в памяти процесса: брошенная сессия ничего не стоит
// и просто затирается или очищается. На клиента одновременно ожидается один
// диалог, поэтому конкурентные обновления одной сессии не защищаются ничем,
// кроме last-write-wins
type Service struct {
	mu       sync.RWMutex
	sessions map[int64]*models.Session

	createUC     CreateBookingUseCase
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает стор сессий
func NewService(createUC CreateBookingUseCase, logger Logger) *Service {
	return &Service{
		sessions:     make(map[int64]*models.Session),
		createUC:     createUC,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Get возвращает текущую сессию клиента
func (s *Service) Get(clientID int64) (*models.SessionResponse, error) {
	s.mu.RLock()
	session, ok := s.sessions[clientID]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrSessionNotFound
	}
	return models.FromSession(session), nil
}

// Update применяет частичное обновление выбора клиента
// Сессия создается на первом шаге взаимодействия; nil-поля запроса не трогаются
func (s *Service) Update(clientID int64, req *models.UpdateRequest) (*models.SessionResponse, error) {
	if clientID <= 0 {
		return nil, fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}

	var date *time.Time
	if req.Date != nil {
		parsed, err := time.Parse(domain.DateFormat, *req.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid date format: %v", ErrInvalidInput, err)
		}
		date = &parsed
	}

	var slotTime *types.TimeString
	if req.Time != nil {
		parsed, err := types.NewTimeStringFromString(*req.Time)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
		}
		slotTime = &parsed
	}

	now := s.timeProvider.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[clientID]
	if !ok {
		session = &models.Session{ClientID: clientID, StartedAt: now}
		s.sessions[clientID] = session
		s.logger.Info("Sessions: started session for client=%d", clientID)
	}

	if req.BarbershopID != nil {
		session.BarbershopID = req.BarbershopID
	}
	if req.BarberID != nil {
		session.BarberID = req.BarberID
	}
	if req.ServiceID != nil {
		session.ServiceID = req.ServiceID
	}
	if date != nil {
		session.Date = date
	}
	if slotTime != nil {
		session.Time = slotTime
	}
	if req.Notes != nil {
		session.Notes = *req.Notes
	}
	session.UpdatedAt = now

	return models.FromSession(session), nil
}

// Commit превращает завершенную сессию в бронирование
// Сессия очищается только при успехе: после конфликта слота клиент может
// выбрать другое время, не начиная выбор заново
func (s *Service) Commit(ctx context.Context, clientID int64) (*createBooking.Response, error) {
	s.mu.Lock()
	session, ok := s.sessions[clientID]
	s.mu.Unlock()

	if !ok {
		return nil, ErrSessionNotFound
	}

	if !session.IsComplete() {
		s.logger.Warn("Sessions: commit of incomplete session for client=%d", clientID)
		return nil, ErrSessionIncomplete
	}

	resp, err := s.createUC.Execute(ctx, &createBooking.Request{
		ClientID:     clientID,
		BarberID:     *session.BarberID,
		BarbershopID: *session.BarbershopID,
		ServiceID:    session.ServiceID,
		Date:         *session.Date,
		Time:         *session.Time,
		Notes:        session.Notes,
	})
	if err != nil {
		return nil, err
	}

	s.Clear(clientID)
	s.logger.Info("Sessions: committed session for client=%d as booking id=%d", clientID, resp.ID)

	return resp, nil
}

// Clear удаляет сессию клиента (явная отмена или успешный коммит)
func (s *Service) Clear(clientID int64) {
	s.mu.Lock()
	delete(s.sessions, clientID)
	s.mu.Unlock()
}
