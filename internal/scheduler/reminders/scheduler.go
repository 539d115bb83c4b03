package reminders

import (
	"context"
	"fmt"
	"time"

	"github.com/Ibrohimov-Abdullah/navbat-booking-service/internal/domain"
	"github.com/Ibrohimov-Abdullah/navbat-booking-service/internal/integrations/notifyservice"
	"github.com/Ibrohimov-Abdullah/navbat-booking-service/pkg/metrics"
	"github.com/Ibrohimov-Abdullah/navbat-booking-service/pkg/types"
)

// Маркеры отправки старше этого горизонта вычищаются из памяти
const sentMarkerTTL = 2 * time.Hour

// sentKey ключ идемпотентности: одно напоминание на (бронирование, lead time)
type sentKey struct {
	bookingID   int64
	leadMinutes int
}

// Scheduler планировщик напоминаний о предстоящих бронированиях
//
// Stateless-поллинг: каждый sweep независимо пересчитывает, какие
// подтвержденные бронирования попадают в окно +/-1 минута вокруг now+60m и
// now+30m. Набор sent-маркеров в памяти делает доставку идемпотентной:
// медленный sweep или дрейф часов не приводят к повторной отправке
type Scheduler struct {
	bookingRepo  BookingRepository
	catalogRepo  CatalogRepository
	notifier     Notifier
	timeProvider TimeProvider
	metrics      *metrics.Metrics // nil - метрики отключены
	logger       Logger

	interval time.Duration
	sent     map[sentKey]time.Time
}

// New создает планировщик напоминаний
func New(
	bookingRepo BookingRepository,
	catalogRepo CatalogRepository,
	notifier Notifier,
	m *metrics.Metrics,
	interval time.Duration,
	logger Logger,
) *Scheduler {
	return &Scheduler{
		bookingRepo:  bookingRepo,
		catalogRepo:  catalogRepo,
		notifier:     notifier,
		timeProvider: &RealTimeProvider{},
		metrics:      m,
		logger:       logger,
		interval:     interval,
		sent:         make(map[sentKey]time.Time),
	}
}

// Run запускает цикл поллинга; блокирует до отмены контекста
func (s *Scheduler) Run(ctx context.Context) {
	s.logger.Info("Reminders: scheduler started, interval=%s", s.interval)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Reminders: scheduler stopped")
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

// Sweep выполняет один проход: оба lead time, прореживание маркеров
// Ошибка одного напоминания не прерывает проход
func (s *Scheduler) Sweep(ctx context.Context) {
	now := s.timeProvider.Now()

	failed := false
	for _, lead := range []int{domain.ReminderLeadLongMinutes, domain.ReminderLeadShortMinutes} {
		if err := s.sweepLead(ctx, now, lead); err != nil {
			s.logger.Error("Reminders: sweep for lead=%dm failed: %v", lead, err)
			failed = true
		}
	}

	s.pruneSent(now)

	if s.metrics != nil {
		result := "ok"
		if failed {
			result = "error"
		}
		s.metrics.ReminderSweepsTotal.WithLabelValues(result).Inc()
	}
}

// sweepLead обрабатывает одно окно напоминаний (now+lead +/- tolerance)
// Окно может пересекать полночь - тогда оно разбивается на две даты
func (s *Scheduler) sweepLead(ctx context.Context, now time.Time, leadMinutes int) error {
	target := now.Add(time.Duration(leadMinutes) * time.Minute)
	from := target.Add(-domain.ReminderToleranceMinutes * time.Minute)
	to := target.Add(domain.ReminderToleranceMinutes * time.Minute)

	bookings, err := s.collectWindow(ctx, from, to)
	if err != nil {
		return err
	}

	for _, booking := range bookings {
		key := sentKey{bookingID: booking.ID, leadMinutes: leadMinutes}
		if _, alreadySent := s.sent[key]; alreadySent {
			continue
		}

		if err := s.send(ctx, booking, leadMinutes); err != nil {
			// Доставка best-effort: логируем и идем дальше, маркер не ставим,
			// следующий sweep внутри окна попробует ещё раз
			s.logger.Error("Reminders: failed to deliver %dm reminder for booking id=%d: %v",
				leadMinutes, booking.ID, err)
			if s.metrics != nil {
				s.metrics.ReminderFailuresTotal.WithLabelValues(fmt.Sprintf("%d", leadMinutes)).Inc()
			}
			continue
		}

		s.sent[key] = now
		if s.metrics != nil {
			s.metrics.RemindersSentTotal.WithLabelValues(fmt.Sprintf("%d", leadMinutes)).Inc()
		}
		s.logger.Info("Reminders: sent %dm reminder for booking id=%d to client=%d",
			leadMinutes, booking.ID, booking.ClientID)
	}

	return nil
}

// collectWindow собирает подтвержденные бронирования с датой-временем в [from, to]
func (s *Scheduler) collectWindow(ctx context.Context, from, to time.Time) ([]*domain.Booking, error) {
	if sameDay(from, to) {
		return s.bookingRepo.GetConfirmedInWindow(ctx, dateOnly(from), types.NewTimeString(from), types.NewTimeString(to))
	}

	// Окно пересекает полночь: хвост первого дня и начало второго
	first, err := s.bookingRepo.GetConfirmedInWindow(ctx, dateOnly(from), types.NewTimeString(from), types.TimeString("23:59"))
	if err != nil {
		return nil, err
	}

	second, err := s.bookingRepo.GetConfirmedInWindow(ctx, dateOnly(to), types.TimeString("00:00"), types.NewTimeString(to))
	if err != nil {
		return nil, err
	}

	return append(first, second...), nil
}

// send доставляет одно напоминание клиенту
func (s *Scheduler) send(ctx context.Context, booking *domain.Booking, leadMinutes int) error {
	shop, err := s.catalogRepo.GetBarbershop(ctx, booking.BarbershopID)
	if err != nil {
		return fmt.Errorf("failed to get barbershop id=%d: %w", booking.BarbershopID, err)
	}

	barber, err := s.catalogRepo.GetBarber(ctx, booking.BarberID)
	if err != nil {
		return fmt.Errorf("failed to get barber id=%d: %w", booking.BarberID, err)
	}

	return s.notifier.Notify(ctx, booking.ClientID, notifyservice.EventBookingReminder, notifyservice.Payload{
		BookingID:      booking.ID,
		BarbershopName: shop.Name,
		BarberName:     barber.FullName,
		Date:           booking.BookingDate.Format(domain.DateFormat),
		Time:           booking.BookingTime.String(),
		LeadMinutes:    leadMinutes,
	})
}

// pruneSent вычищает устаревшие маркеры, чтобы набор не рос бесконечно
func (s *Scheduler) pruneSent(now time.Time) {
	for key, sentAt := range s.sent {
		if now.Sub(sentAt) > sentMarkerTTL {
			delete(s.sent, key)
		}
	}
}

func sameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
