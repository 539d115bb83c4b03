package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/Ibrohimov-Abdullah/navbat-booking-service/internal/domain"
	catalogRepo "github.com/Ibrohimov-Abdullah/navbat-booking-service/internal/infra/storage/catalog"
	bookingRepo "github.com/Ibrohimov-Abdullah/navbat-booking-service/internal/infra/storage/booking"
	"github.com/Ibrohimov-Abdullah/navbat-booking-service/internal/integrations/notifyservice"
)

// UseCase use case создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	catalogRepo  CatalogRepository
	notifier     Notifier
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	catalogRepo CatalogRepository,
	notifier Notifier,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		catalogRepo:  catalogRepo,
		notifier:     notifier,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
//
// Проверка занятости и вставка выполняются в одной сериализуемой транзакции
// с блокировкой строк (FOR UPDATE): проверка доступности и запись не могут
// разъехаться между двумя запросами. Частичный уникальный индекс в БД -
// страховка на случай гонки, его нарушение тоже маппится в ErrSlotTaken
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: client=%d, barber=%d, shop=%d, date=%s, time=%s",
		req.ClientID, req.BarberID, req.BarbershopID, req.Date.Format(domain.DateFormat), req.Time)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата не в прошлом
	if err := validateDate(req.Date, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 3. Получаем барбера и проверяем его принадлежность барбершопу
	barber, err := uc.catalogRepo.GetBarber(ctx, req.BarberID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrBarberNotFound) {
			uc.logger.Warn("CreateBooking: barber id=%d not found", req.BarberID)
			return nil, ErrBarberNotFound
		}
		uc.logger.Error("CreateBooking: failed to get barber id=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: failed to get barber: %v", ErrInternal, err)
	}

	if !barber.IsActive {
		uc.logger.Warn("CreateBooking: barber id=%d is not active", req.BarberID)
		return nil, ErrBarberInactive
	}

	if barber.BarbershopID != req.BarbershopID {
		uc.logger.Warn("CreateBooking: barber id=%d does not belong to shop id=%d", req.BarberID, req.BarbershopID)
		return nil, ErrBarberShopMismatch
	}

	// 4. Получаем барбершоп (нужен для уведомления владельцу)
	shop, err := uc.catalogRepo.GetBarbershop(ctx, req.BarbershopID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrBarbershopNotFound) {
			uc.logger.Warn("CreateBooking: barbershop id=%d not found", req.BarbershopID)
			return nil, ErrBarbershopNotFound
		}
		uc.logger.Error("CreateBooking: failed to get barbershop id=%d: %v", req.BarbershopID, err)
		return nil, fmt.Errorf("%w: failed to get barbershop: %v", ErrInternal, err)
	}

	// 5. Получаем услугу, если указана
	var service *domain.Service
	if req.ServiceID != nil {
		service, err = uc.catalogRepo.GetService(ctx, *req.ServiceID)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrServiceNotFound) {
				uc.logger.Warn("CreateBooking: service id=%d not found", *req.ServiceID)
				return nil, ErrServiceNotFound
			}
			uc.logger.Error("CreateBooking: failed to get service id=%d: %v", *req.ServiceID, err)
			return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
		}
	}

	// 6. Время должно лежать на границе слота внутри рабочего окна
	schedule := domain.ParseWorkSchedule(barber.WorkSchedule)
	if err := validateSlotTime(req.Time, schedule); err != nil {
		uc.logger.Warn("CreateBooking: slot time validation failed: %v", err)
		return nil, err
	}

	// 7. Проверка занятости + вставка атомарно, в сериализуемой транзакции
	var result *domain.Booking

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 7.1. Активные бронирования барбера на дату с блокировкой (FOR UPDATE)
		active, err := uc.bookingRepo.GetActiveByBarberDate(txCtx, req.BarberID, req.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get active bookings: %v", err)
			return fmt.Errorf("%w: failed to get active bookings: %v", ErrInternal, err)
		}

		// 7.2. Ячейка (барбер, дата, время) должна быть свободна
		if isSlotOccupied(req.Time, active) {
			uc.logger.Warn("CreateBooking: slot %s %s already taken for barber=%d",
				req.Date.Format(domain.DateFormat), req.Time, req.BarberID)
			return ErrSlotTaken
		}

		// 7.3. Создаем бронирование в статусе pending
		booking := &domain.Booking{
			ClientID:     req.ClientID,
			BarberID:     req.BarberID,
			BarbershopID: req.BarbershopID,
			ServiceID:    req.ServiceID,
			BookingDate:  req.Date,
			BookingTime:  req.Time,
			Status:       domain.StatusPending,
			Notes:        req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				return ErrSlotTaken
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	// 8. Best-effort уведомление владельцу барбершопа о новой заявке
	// Сбой доставки не влияет на результат операции
	uc.notifier.NotifyBestEffort(ctx, shop.OwnerID, notifyservice.EventBookingCreated, notifyservice.Payload{
		BookingID:      result.ID,
		BarbershopName: shop.Name,
		BarberName:     barber.FullName,
		Date:           result.BookingDate.Format(domain.DateFormat),
		Time:           result.BookingTime.String(),
	})

	resp := &Response{
		ID:             result.ID,
		ClientID:       result.ClientID,
		BarberID:       result.BarberID,
		BarbershopID:   result.BarbershopID,
		ServiceID:      result.ServiceID,
		Date:           result.BookingDate,
		Time:           result.BookingTime,
		Status:         string(result.Status),
		Notes:          result.Notes,
		BarbershopName: shop.Name,
		BarberName:     barber.FullName,
		CreatedAt:      result.CreatedAt,
	}
	if service != nil {
		resp.ServiceName = service.Name
		resp.ServicePrice = service.Price
	}

	return resp, nil
}
