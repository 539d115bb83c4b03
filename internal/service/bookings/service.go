package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/Ibrohimov-Abdullah/navbat-booking-service/internal/domain"
	bookingRepo "github.com/Ibrohimov-Abdullah/navbat-booking-service/internal/infra/storage/booking"
	catalogRepo "github.com/Ibrohimov-Abdullah/navbat-booking-service/internal/infra/storage/catalog"
	"github.com/Ibrohimov-Abdullah/navbat-booking-service/internal/integrations/notifyservice"
	"github.com/Ibrohimov-Abdullah/navbat-booking-service/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
// Владеет машиной состояний статусов и листингами
type Service struct {
	bookingRepo  BookingRepository
	catalogRepo  CatalogRepository
	notifier     Notifier
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	catalogRepo CatalogRepository,
	notifier Notifier,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		catalogRepo:  catalogRepo,
		notifier:     notifier,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID получает бронирование по ID
// Доступно клиенту-владельцу бронирования и владельцу барбершопа
func (s *Service) GetByID(ctx context.Context, id int64, actorID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for actor=%d", id, actorID)

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.checkActorAccess(ctx, booking, actorID); err != nil {
		s.logger.Warn("GetByID: access denied for actor=%d to booking id=%d", actorID, id)
		return nil, err
	}

	return models.FromDomainBooking(booking), nil
}

// GetClientBookings получает историю бронирований клиента
// Репозиторий отдает список по убыванию даты/времени; здесь поверх него
// выполняется view-разбиение на активные и прошедшие
func (s *Service) GetClientBookings(ctx context.Context, clientID int64) (*models.ClientBookingsResponse, error) {
	s.logger.Info("GetClientBookings: fetching bookings for client=%d", clientID)

	bookings, err := s.bookingRepo.GetByClientID(ctx, clientID)
	if err != nil {
		s.logger.Error("GetClientBookings: repository error for client=%d: %v", clientID, err)
		return nil, fmt.Errorf("%w: GetClientBookings - repository error: %v", ErrInternal, err)
	}

	resp := models.SplitActivePast(bookings, s.timeProvider.Now())

	s.logger.Info("GetClientBookings: client=%d has %d active, %d past bookings",
		clientID, len(resp.Active), len(resp.Past))
	return resp, nil
}

// GetBarbershopBookings получает бронирования барбершопа
// Доступно только владельцу барбершопа. При заданной дате - только эта дата,
// по возрастанию времени
func (s *Service) GetBarbershopBookings(ctx context.Context, req *models.GetBarbershopBookingsRequest) (*models.BookingListResponse, error) {
	logMsg := fmt.Sprintf("GetBarbershopBookings: shop=%d, actor=%d", req.BarbershopID, req.ActorID)
	if req.Date != nil {
		logMsg += fmt.Sprintf(", date=%s", req.Date.Format(domain.DateFormat))
	}
	s.logger.Info(logMsg)

	if err := s.checkOwnerAccess(ctx, req.BarbershopID, req.ActorID); err != nil {
		return nil, err
	}

	bookings, err := s.bookingRepo.GetByBarbershopWithFilter(ctx, domain.BarbershopBookingsFilter{
		BarbershopID: req.BarbershopID,
		Date:         req.Date,
	})
	if err != nil {
		s.logger.Error("GetBarbershopBookings: repository error for shop=%d: %v", req.BarbershopID, err)
		return nil, fmt.Errorf("%w: GetBarbershopBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetBarbershopBookings: fetched %d bookings for shop=%d", len(bookings), req.BarbershopID)
	return models.FromDomainBookingList(bookings), nil
}

// SetStatus меняет статус бронирования
//
// Переход валидируется машиной состояний domain.Booking: нелегальный переход
// отклоняется с ErrInvalidTransition. Клиент может только отменить своё
// бронирование; подтверждение, завершение и отмена чужих - владелец барбершопа.
// На переходе в confirmed/cancelled клиенту уходит best-effort уведомление
func (s *Service) SetStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("SetStatus: booking id=%d -> %s by actor=%d", bookingID, req.Status, req.ActorID)

	newStatus, ok := domain.ParseBookingStatus(req.Status)
	if ok && newStatus == domain.StatusPending {
		// Возврат в pending не предусмотрен машиной состояний
		ok = false
	}
	if !ok {
		s.logger.Warn("SetStatus: invalid status=%q for booking id=%d", req.Status, bookingID)
		return fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	booking, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return err
	}

	if err := s.checkTransitionAccess(ctx, booking, newStatus, req.ActorID); err != nil {
		s.logger.Warn("SetStatus: access denied for actor=%d on booking id=%d", req.ActorID, bookingID)
		return err
	}

	if !booking.CanTransitionTo(newStatus) {
		s.logger.Warn("SetStatus: illegal transition %s -> %s for booking id=%d",
			booking.Status, newStatus, bookingID)
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, newStatus)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, booking.Status, newStatus); err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrBookingNotFound):
			return ErrBookingNotFound
		case errors.Is(err, bookingRepo.ErrStaleStatus):
			// Статус сменился конкурентно - с точки зрения вызывающего
			// это тот же нелегальный переход
			s.logger.Warn("SetStatus: concurrent status change on booking id=%d", bookingID)
			return fmt.Errorf("%w: booking status changed concurrently", ErrInvalidTransition)
		default:
			s.logger.Error("SetStatus: repository error for booking id=%d: %v", bookingID, err)
			return fmt.Errorf("%w: SetStatus - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("SetStatus: booking id=%d is now %s", bookingID, newStatus)

	// Уведомление клиенту на подтверждении и отмене
	if newStatus == domain.StatusConfirmed || newStatus == domain.StatusCancelled {
		s.notifyClient(ctx, booking, newStatus)
	}

	return nil
}

// getBooking достает бронирование, маппя ошибки репозитория в ошибки сервиса
func (s *Service) getBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}
	return booking, nil
}

// notifyClient отправляет клиенту best-effort уведомление о смене статуса
// Имена берутся из каталога; если каталог недоступен, уведомление пропускается
func (s *Service) notifyClient(ctx context.Context, booking *domain.Booking, status domain.BookingStatus) {
	shop, err := s.catalogRepo.GetBarbershop(ctx, booking.BarbershopID)
	if err != nil {
		s.logger.Error("notifyClient: failed to get barbershop id=%d: %v", booking.BarbershopID, err)
		return
	}

	barber, err := s.catalogRepo.GetBarber(ctx, booking.BarberID)
	if err != nil {
		s.logger.Error("notifyClient: failed to get barber id=%d: %v", booking.BarberID, err)
		return
	}

	kind := notifyservice.EventBookingConfirmed
	if status == domain.StatusCancelled {
		kind = notifyservice.EventBookingCancelled
	}

	s.notifier.NotifyBestEffort(ctx, booking.ClientID, kind, notifyservice.Payload{
		BookingID:      booking.ID,
		BarbershopName: shop.Name,
		BarberName:     barber.FullName,
		Date:           booking.BookingDate.Format(domain.DateFormat),
		Time:           booking.BookingTime.String(),
	})
}

// checkActorAccess проверяет доступ на чтение бронирования
func (s *Service) checkActorAccess(ctx context.Context, booking *domain.Booking, actorID int64) error {
	if booking.ClientID == actorID {
		return nil
	}
	return s.checkOwnerAccess(ctx, booking.BarbershopID, actorID)
}

// checkTransitionAccess проверяет, кто может выполнить переход:
// отмену - клиент-владелец бронирования или владелец барбершопа,
// подтверждение и завершение - только владелец барбершопа
func (s *Service) checkTransitionAccess(ctx context.Context, booking *domain.Booking, newStatus domain.BookingStatus, actorID int64) error {
	if newStatus == domain.StatusCancelled && booking.ClientID == actorID {
		return nil
	}
	return s.checkOwnerAccess(ctx, booking.BarbershopID, actorID)
}

// checkOwnerAccess проверяет, что актор - владелец барбершопа
func (s *Service) checkOwnerAccess(ctx context.Context, barbershopID int64, actorID int64) error {
	shop, err := s.catalogRepo.GetBarbershop(ctx, barbershopID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrBarbershopNotFound) {
			s.logger.Warn("checkOwnerAccess: barbershop id=%d not found", barbershopID)
			return ErrBarbershopNotFound
		}
		s.logger.Error("checkOwnerAccess: failed to get barbershop id=%d: %v", barbershopID, err)
		return fmt.Errorf("%w: checkOwnerAccess - failed to get barbershop: %v", ErrInternal, err)
	}

	if shop.OwnerID != actorID {
		s.logger.Warn("checkOwnerAccess: actor=%d is not the owner of barbershop=%d", actorID, barbershopID)
		return ErrAccessDenied
	}

	return nil
}
