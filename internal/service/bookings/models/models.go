package models

import (
	"time"

	"github.com/Ibrohimov-Abdullah/navbat-booking-service/internal/domain"
)

// Request модели

// UpdateStatusRequest запрос на смену статуса бронирования
type UpdateStatusRequest struct {
	ActorID int64  `json:"actorId"`
	Status  string `json:"status"`
}

// GetBarbershopBookingsRequest запрос списка бронирований барбершопа
type GetBarbershopBookingsRequest struct {
	ActorID      int64      `json:"actorId"`
	BarbershopID int64      `json:"barbershopId"`
	Date         *time.Time `json:"date,omitempty"` // nil - вся история
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID           int64  `json:"id"`
	ClientID     int64  `json:"clientId"`
	BarberID     int64  `json:"barberId"`
	BarbershopID int64  `json:"barbershopId"`
	ServiceID    *int64 `json:"serviceId,omitempty"`
	BookingDate  string `json:"bookingDate"` // "2026-09-01"
	BookingTime  string `json:"bookingTime"` // "10:00"
	Status       string `json:"status"`
	Notes        string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// ClientBookingsResponse история бронирований клиента
// Разбиение на активные/прошедшие - чистое view-вычисление поверх списка,
// который репозиторий отдает по убыванию даты/времени
type ClientBookingsResponse struct {
	Active []BookingResponse `json:"active"` // pending/confirmed с датой >= сегодня
	Past   []BookingResponse `json:"past"`   // всё остальное
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:           b.ID,
		ClientID:     b.ClientID,
		BarberID:     b.BarberID,
		BarbershopID: b.BarbershopID,
		ServiceID:    b.ServiceID,
		BookingDate:  b.BookingDate.Format(domain.DateFormat),
		BookingTime:  b.BookingTime.String(),
		Status:       string(b.Status),
		Notes:        b.Notes,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// SplitActivePast разбивает бронирования клиента на активные и прошедшие
// Активное = pending/confirmed И дата >= сегодня. Порядок входа (desc)
// сохраняется в обеих частях
func SplitActivePast(bookings []*domain.Booking, now time.Time) *ClientBookingsResponse {
	resp := &ClientBookingsResponse{
		Active: make([]BookingResponse, 0),
		Past:   make([]BookingResponse, 0),
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	for _, b := range bookings {
		dto := FromDomainBooking(b)
		if dto == nil {
			continue
		}

		date := time.Date(b.BookingDate.Year(), b.BookingDate.Month(), b.BookingDate.Day(), 0, 0, 0, 0, today.Location())
		if b.OccupiesSlot() && !date.Before(today) {
			resp.Active = append(resp.Active, *dto)
		} else {
			resp.Past = append(resp.Past, *dto)
		}
	}

	return resp
}
