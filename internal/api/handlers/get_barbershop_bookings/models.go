package get_barbershop_bookings

import (
	"time"

	"github.com/Ibrohimov-Abdullah/navbat-booking-service/internal/domain"
	"github.com/Ibrohimov-Abdullah/navbat-booking-service/internal/service/bookings/models"
)

// ToServiceRequest собирает запрос сервиса из path и query параметров
func ToServiceRequest(barbershopID, actorID int64, dateStr string) (*models.GetBarbershopBookingsRequest, error) {
	req := &models.GetBarbershopBookingsRequest{
		ActorID:      actorID,
		BarbershopID: barbershopID,
	}

	if dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			return nil, err
		}
		req.Date = &date
	}

	return req, nil
}
