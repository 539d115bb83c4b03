package clear_session

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Ibrohimov-Abdullah/navbat-booking-service/internal/api/handlers"
	"github.com/Ibrohimov-Abdullah/navbat-booking-service/internal/api/middleware"
)

const (
	msgInvalidClientID = "некорректный ID клиента"
	msgMissingUserID   = "отсутствует ID пользователя"
	msgForbidden       = "доступ запрещен"
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

// Handle DELETE /api/v1/sessions/{clientId}
// Идемпотентный сброс: отсутствие сессии не является ошибкой
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	clientIDStr := vars["clientId"]

	clientID, err := strconv.ParseInt(clientIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /sessions/{id} - Invalid client ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClientID)
		return
	}

	actorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /sessions/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if actorID != clientID {
		h.logger.Warn("DELETE /sessions/{id} - Access denied: client_id=%d, user_id=%d", clientID, actorID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	h.service.Clear(clientID)

	h.logger.Info("DELETE /sessions/{id} - Session cleared: client_id=%d", clientID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
