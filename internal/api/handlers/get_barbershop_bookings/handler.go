package get_barbershop_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Ibrohimov-Abdullah/navbat-booking-service/internal/api/handlers"
	"github.com/Ibrohimov-Abdullah/navbat-booking-service/internal/api/middleware"
	"github.com/Ibrohimov-Abdullah/navbat-booking-service/internal/service/bookings"
)

const (
	msgInvalidShopID   = "некорректный ID барбершопа"
	msgMissingUserID   = "отсутствует ID пользователя"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgShopNotFound    = "барбершоп не найден"
	msgForbidden       = "доступ запрещен"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/barbershops/{shopId}/bookings
// Query params: date (опционально, без даты - вся история)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	shopIDStr := vars["shopId"]

	shopID, err := strconv.ParseInt(shopIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /barbershops/{id}/bookings - Invalid barbershop ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidShopID)
		return
	}

	actorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /barbershops/{id}/bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	serviceReq, err := ToServiceRequest(shopID, actorID, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /barbershops/{id}/bookings - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Список доступен только владельцу барбершопа
	result, err := h.service.GetBarbershopBookings(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBarbershopNotFound):
			h.logger.Warn("GET /barbershops/{id}/bookings - Barbershop not found: shop_id=%d", shopID)
			handlers.RespondNotFound(w, msgShopNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /barbershops/{id}/bookings - Access denied: shop_id=%d, user_id=%d",
				shopID, actorID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /barbershops/{id}/bookings - Failed to get bookings: shop_id=%d, error=%v",
				shopID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /barbershops/{id}/bookings - Bookings retrieved: shop_id=%d, count=%d",
		shopID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
