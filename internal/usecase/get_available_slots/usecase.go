package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/Ibrohimov-Abdullah/navbat-booking-service/internal/domain"
	catalogRepo "github.com/Ibrohimov-Abdullah/navbat-booking-service/internal/infra/storage/catalog"
)

// UseCase use case получения свободных слотов барбера на дату
type UseCase struct {
	bookingRepo  BookingRepository
	catalogRepo  CatalogRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	catalogRepo CatalogRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		catalogRepo:  catalogRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения свободных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: barber=%d, date=%s",
		req.BarberID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата в прошлом не обслуживается
	if isDateInPast(req.Date, uc.timeProvider.Now()) {
		uc.logger.Warn("GetAvailableSlots: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	// 3. Получаем барбера и его расписание из каталога
	barber, err := uc.catalogRepo.GetBarber(ctx, req.BarberID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrBarberNotFound) {
			uc.logger.Warn("GetAvailableSlots: barber id=%d not found", req.BarberID)
			return nil, ErrBarberNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get barber id=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: failed to get barber: %v", ErrInternal, err)
	}

	if !barber.IsActive {
		uc.logger.Warn("GetAvailableSlots: barber id=%d is not active", req.BarberID)
		return nil, ErrBarberInactive
	}

	// 4. Парсим рабочее окно; мусорная строка расписания откатывается
	// на дефолтное окно 09:00-19:00 внутри ParseWorkSchedule
	schedule := domain.ParseWorkSchedule(barber.WorkSchedule)
	allSlots := generateSlots(schedule)

	// 5. Получаем активные бронирования барбера на дату
	bookings, err := uc.bookingRepo.GetActiveByBarberDate(ctx, req.BarberID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 6. Исключаем занятые слоты
	available := excludeBooked(allSlots, bookings)

	uc.logger.Info("GetAvailableSlots: %d of %d slots free for barber=%d, date=%s",
		len(available), len(allSlots), req.BarberID, req.Date.Format(domain.DateFormat))

	return &Response{
		BarberID: req.BarberID,
		Date:     req.Date,
		Slots:    available,
	}, nil
}
