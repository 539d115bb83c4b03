package create_booking

import (
	"time"

	"github.com/Ibrohimov-Abdullah/navbat-booking-service/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	ClientID     int64            // ID клиента (идентичность из чат-платформы)
	BarberID     int64            // ID барбера
	BarbershopID int64            // ID барбершопа
	ServiceID    *int64           // ID услуги (опционально)
	Date         time.Time        // Дата бронирования (без времени)
	Time         types.TimeString // Время слота, например "10:00"
	Notes        string           // Заметки клиента (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID           int64            // ID созданного бронирования
	ClientID     int64            // ID клиента
	BarberID     int64            // ID барбера
	BarbershopID int64            // ID барбершопа
	ServiceID    *int64           // ID услуги
	Date         time.Time        // Дата бронирования
	Time         types.TimeString // Время слота
	Status       string           // Статус (всегда "pending" при создании)
	Notes        string           // Заметки

	// Денормализованные данные каталога для отображения
	BarbershopName string // Название барбершопа
	BarberName     string // Имя барбера
	ServiceName    string // Название услуги (пусто без услуги)
	ServicePrice   int64  // Цена услуги (0 без услуги)

	CreatedAt time.Time // Время создания
}
