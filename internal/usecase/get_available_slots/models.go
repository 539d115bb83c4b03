package get_available_slots

import (
	"time"

	"github.com/Ibrohimov-Abdullah/navbat-booking-service/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	BarberID int64     // ID барбера
	Date     time.Time // Дата, на которую запрашиваются слоты (без времени)
}

// Response модель ответа со списком свободных слотов
// Слоты отсортированы по возрастанию, всегда пересчитываются заново
type Response struct {
	BarberID int64              // ID барбера
	Date     time.Time          // Дата запроса
	Slots    []types.TimeString // Свободные слоты "HH:MM" по возрастанию
}
