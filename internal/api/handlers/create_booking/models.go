package create_booking

import (
	"time"

	"github.com/Ibrohimov-Abdullah/navbat-booking-service/internal/domain"
	createBooking "github.com/Ibrohimov-Abdullah/navbat-booking-service/internal/usecase/create_booking"
	"github.com/Ibrohimov-Abdullah/navbat-booking-service/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	BarberID     int64  `json:"barberId"`
	BarbershopID int64  `json:"barbershopId"`
	ServiceID    *int64 `json:"serviceId,omitempty"`
	BookingDate  string `json:"bookingDate"` // "2025-10-15"
	BookingTime  string `json:"bookingTime"` // "10:00"
	Notes        string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
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

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(clientID int64) (*createBooking.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	bookingTime, err := types.NewTimeStringFromString(r.BookingTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		ClientID:     clientID,
		BarberID:     r.BarberID,
		BarbershopID: r.BarbershopID,
		ServiceID:    r.ServiceID,
		Date:         bookingDate,
		Time:         bookingTime,
		Notes:        r.Notes,
	}, nil
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
