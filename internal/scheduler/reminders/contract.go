package reminders

import (
	"context"
	"time"

	"github.com/Ibrohimov-Abdullah/navbat-booking-service/internal/domain"
	"github.com/Ibrohimov-Abdullah/navbat-booking-service/internal/integrations/notifyservice"
	"github.com/Ibrohimov-Abdullah/navbat-booking-service/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetConfirmedInWindow получает подтвержденные бронирования на дату
	// с временем в [from, to] включительно
	GetConfirmedInWindow(ctx context.Context, date time.Time, from, to types.TimeString) ([]*domain.Booking, error)
}

// CatalogRepository интерфейс каталога для имен в тексте напоминания
type CatalogRepository interface {
	GetBarber(ctx context.Context, id int64) (*domain.Barber, error)
	GetBarbershop(ctx context.Context, id int64) (*domain.Barbershop, error)
}

// Notifier интерфейс доставки уведомлений
// Планировщику нужна ошибка доставки, чтобы не помечать напоминание отправленным
type Notifier interface {
	Notify(ctx context.Context, recipientID int64, kind notifyservice.EventKind, payload notifyservice.Payload) error
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
