package commit_session

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Ibrohimov-Abdullah/navbat-booking-service/internal/api/handlers"
	"github.com/Ibrohimov-Abdullah/navbat-booking-service/internal/api/middleware"
	"github.com/Ibrohimov-Abdullah/navbat-booking-service/internal/service/sessions"
	createBooking "github.com/Ibrohimov-Abdullah/navbat-booking-service/internal/usecase/create_booking"
)

const (
	msgInvalidClientID  = "некорректный ID клиента"
	msgMissingUserID    = "отсутствует ID пользователя"
	msgForbidden        = "доступ запрещен"
	msgSessionNotFound  = "сессия не найдена"
	msgIncomplete       = "выбор не завершен: нужны барбершоп, барбер, дата и время"
	msgSlotTaken        = "выбранный временной слот уже занят"
	msgCatalogNotFound  = "барбершоп, барбер или услуга не найдены"
	msgInvalidSelection = "некорректный выбор в сессии"
)

type Handler struct {
	service SessionService
	logger  Logger
}

func NewHandler(service SessionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/sessions/{clientId}/commit
// Успешный коммит создает бронирование и удаляет сессию. При занятом слоте
// сессия сохраняется, чтобы клиент выбрал другое время
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	clientIDStr := vars["clientId"]

	clientID, err := strconv.ParseInt(clientIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("POST /sessions/{id}/commit - Invalid client ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClientID)
		return
	}

	actorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /sessions/{id}/commit - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if actorID != clientID {
		h.logger.Warn("POST /sessions/{id}/commit - Access denied: client_id=%d, user_id=%d", clientID, actorID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	result, err := h.service.Commit(r.Context(), clientID)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/commit - Session not found: client_id=%d", clientID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, sessions.ErrSessionIncomplete):
			h.logger.Warn("POST /sessions/{id}/commit - Incomplete session: client_id=%d", clientID)
			handlers.RespondBadRequest(w, msgIncomplete)

		case errors.Is(err, createBooking.ErrSlotTaken):
			h.logger.Warn("POST /sessions/{id}/commit - Slot taken: client_id=%d", clientID)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, createBooking.ErrBarberNotFound),
			errors.Is(err, createBooking.ErrBarbershopNotFound),
			errors.Is(err, createBooking.ErrServiceNotFound):
			h.logger.Warn("POST /sessions/{id}/commit - Catalog entity not found: client_id=%d, error=%v",
				clientID, err)
			handlers.RespondNotFound(w, msgCatalogNotFound)

		case errors.Is(err, createBooking.ErrBarberInactive),
			errors.Is(err, createBooking.ErrBarberShopMismatch),
			errors.Is(err, createBooking.ErrInvalidDate),
			errors.Is(err, createBooking.ErrInvalidTimeSlot),
			errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /sessions/{id}/commit - Invalid selection: client_id=%d, error=%v",
				clientID, err)
			handlers.RespondBadRequest(w, msgInvalidSelection)

		default:
			h.logger.Error("POST /sessions/{id}/commit - Failed to commit session: client_id=%d, error=%v",
				clientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/{id}/commit - Booking created from session: booking_id=%d, client_id=%d",
		result.ID, clientID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
