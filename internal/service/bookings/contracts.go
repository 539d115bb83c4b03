package bookings

import (
	"context"
	"time"

	"github.com/Ibrohimov-Abdullah/navbat-booking-service/internal/domain"
	"github.com/Ibrohimov-Abdullah/navbat-booking-service/internal/integrations/notifyservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByClientID(ctx context.Context, clientID int64) ([]*domain.Booking, error)
	GetByBarbershopWithFilter(ctx context.Context, filter domain.BarbershopBookingsFilter) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, from, to domain.BookingStatus) error
}

// CatalogRepository интерфейс каталога
type CatalogRepository interface {
	GetBarber(ctx context.Context, id int64) (*domain.Barber, error)
	GetBarbershop(ctx context.Context, id int64) (*domain.Barbershop, error)
}

// Notifier интерфейс best-effort доставки уведомлений
type Notifier interface {
	NotifyBestEffort(ctx context.Context, recipientID int64, kind notifyservice.EventKind, payload notifyservice.Payload)
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
