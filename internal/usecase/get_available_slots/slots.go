package get_available_slots

import (
	"fmt"

	"github.com/Ibrohimov-Abdullah/navbat-booking-service/internal/domain"
	"github.com/Ibrohimov-Abdullah/navbat-booking-service/pkg/types"
)

// generateSlots генерирует все слоты рабочего окна барбера
// Слот на каждой 30-минутной границе в [StartHour, EndHour):
// окно 09-19 дает 09:00, 09:30, ..., 18:30 - ровно 20 слотов.
// При StartHour >= EndHour окно пустое
func generateSlots(schedule domain.WorkSchedule) []types.TimeString {
	slots := make([]types.TimeString, 0, schedule.SlotCount())

	for hour := schedule.StartHour; hour < schedule.EndHour; hour++ {
		for _, minute := range []int{0, 30} {
			slots = append(slots, types.TimeString(fmt.Sprintf("%02d:%02d", hour, minute)))
		}
	}

	return slots
}

// excludeBooked убирает из слотов времена, занятые активными бронированиями
// Отмененные и завершенные бронирования слот освобождают: исключение идет
// по статусу, а не по дате
func excludeBooked(slots []types.TimeString, bookings []*domain.Booking) []types.TimeString {
	booked := make(map[types.TimeString]struct{}, len(bookings))
	for _, b := range bookings {
		if b.OccupiesSlot() {
			booked[b.BookingTime] = struct{}{}
		}
	}

	available := make([]types.TimeString, 0, len(slots))
	for _, slot := range slots {
		if _, taken := booked[slot]; !taken {
			available = append(available, slot)
		}
	}

	return available
}
