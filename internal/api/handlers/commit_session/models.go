package commit_session

import (
	"time"

	"github.com/Ibrohimov-Abdullah/navbat-booking-service/internal/domain"
	createBooking "github.com/Ibrohimov-Abdullah/navbat-booking-service/internal/usecase/create_booking"
)

// BookingResponse HTTP response model для созданного бронирования
type BookingResponse struct {
	ID             int64  `json:"id"`
	ClientID       int64  `json:"clientId"`
	BarberID       int64  `json:"barberId"`
	BarbershopID   int64  `json:"barbershopId"`
	ServiceID      *int64 `json:"serviceId,omitempty"`
	BookingDate    string `json:"bookingDate"`
	BookingTime    string `json:"bookingTime"`
	Status         string `json:"status"`
	Notes          string `json:"notes,omitempty"`
	BarbershopName string `json:"barbershopName"`
	BarberName     string `json:"barberName"`
	ServiceName    string `json:"serviceName,omitempty"`
	ServicePrice   int64  `json:"servicePrice,omitempty"`
	CreatedAt      string `json:"createdAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:             resp.ID,
		ClientID:       resp.ClientID,
		BarberID:       resp.BarberID,
		BarbershopID:   resp.BarbershopID,
		ServiceID:      resp.ServiceID,
		BookingDate:    resp.Date.Format(domain.DateFormat),
		BookingTime:    resp.Time.String(),
		Status:         resp.Status,
		Notes:          resp.Notes,
		BarbershopName: resp.BarbershopName,
		BarberName:     resp.BarberName,
		ServiceName:    resp.ServiceName,
		ServicePrice:   resp.ServicePrice,
		CreatedAt:      resp.CreatedAt.Format(time.RFC3339),
	}
}
