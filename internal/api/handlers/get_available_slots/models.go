package get_available_slots

import (
	"github.com/Ibrohimov-Abdullah/navbat-booking-service/internal/domain"
	getSlots "github.com/Ibrohimov-Abdullah/navbat-booking-service/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	BarberID int64    `json:"barberId"`
	Date     string   `json:"date"`
	Slots    []string `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getSlots.Response) *AvailableSlotsResponse {
	slots := make([]string, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		slots = append(slots, slot.String())
	}

	return &AvailableSlotsResponse{
		BarberID: resp.BarberID,
		Date:     resp.Date.Format(domain.DateFormat),
		Slots:    slots,
	}
}
