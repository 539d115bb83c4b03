package get_available_slots

import (
	"context"
	"time"

	"github.com/Ibrohimov-Abdullah/navbat-booking-service/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetActiveByBarberDate получает pending/confirmed бронирования барбера на дату
	GetActiveByBarberDate(ctx context.Context, barberID int64, date time.Time) ([]*domain.Booking, error)
}

// CatalogRepository интерфейс каталога для чтения расписания барбера
type CatalogRepository interface {
	GetBarber(ctx context.Context, id int64) (*domain.Barber, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
