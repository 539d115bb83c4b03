package create_booking

import (
	"errors"
	"net/http"

	"github.com/Ibrohimov-Abdullah/navbat-booking-service/internal/api/handlers"
	"github.com/Ibrohimov-Abdullah/navbat-booking-service/internal/api/middleware"
	createBooking "github.com/Ibrohimov-Abdullah/navbat-booking-service/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidDateOrTime   = "некорректные дата или время, ожидается YYYY-MM-DD и HH:MM"
	msgMissingUserID       = "отсутствует ID пользователя"
	msgSlotTaken           = "выбранный временной слот уже занят"
	msgBarberNotFound      = "барбер не найден"
	msgBarberInactive      = "барбер не принимает записи"
	msgBarbershopNotFound  = "барбершоп не найден"
	msgServiceNotFound     = "услуга не найдена"
	msgBarberShopMismatch  = "барбер не работает в этом барбершопе"
	msgInvalidBookingDate  = "некорректная дата бронирования"
	msgInvalidTimeSlot     = "время вне рабочего графика барбера"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(clientID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotTaken):
			h.logger.Warn("POST /bookings - Slot taken: client_id=%d, barber_id=%d, date=%s, time=%s",
				clientID, req.BarberID, req.BookingDate, req.BookingTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, createBooking.ErrBarberNotFound):
			h.logger.Warn("POST /bookings - Barber not found: barber_id=%d", req.BarberID)
			handlers.RespondNotFound(w, msgBarberNotFound)

		case errors.Is(err, createBooking.ErrBarberInactive):
			h.logger.Warn("POST /bookings - Barber inactive: barber_id=%d", req.BarberID)
			handlers.RespondBadRequest(w, msgBarberInactive)

		case errors.Is(err, createBooking.ErrBarbershopNotFound):
			h.logger.Warn("POST /bookings - Barbershop not found: barbershop_id=%d", req.BarbershopID)
			handlers.RespondNotFound(w, msgBarbershopNotFound)

		case errors.Is(err, createBooking.ErrServiceNotFound):
			h.logger.Warn("POST /bookings - Service not found: client_id=%d, barbershop_id=%d",
				clientID, req.BarbershopID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createBooking.ErrBarberShopMismatch):
			h.logger.Warn("POST /bookings - Barber/shop mismatch: barber_id=%d, barbershop_id=%d",
				req.BarberID, req.BarbershopID)
			handlers.RespondBadRequest(w, msgBarberShopMismatch)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid booking date: client_id=%d, date=%s", clientID, req.BookingDate)
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, createBooking.ErrInvalidTimeSlot):
			h.logger.Warn("POST /bookings - Invalid time slot: client_id=%d, time=%s", clientID, req.BookingTime)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: client_id=%d", clientID)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: client_id=%d, barber_id=%d, error=%v",
				clientID, req.BarberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, client_id=%d, barber_id=%d",
		result.ID, clientID, req.BarberID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
