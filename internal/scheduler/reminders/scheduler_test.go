package reminders

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ibrohimov-Abdullah/navbat-booking-service/internal/domain"
	"github.com/Ibrohimov-Abdullah/navbat-booking-service/internal/integrations/notifyservice"
	"github.com/Ibrohimov-Abdullah/navbat-booking-service/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) GetConfirmedInWindow(_ context.Context, date time.Time, from, to types.TimeString) ([]*domain.Booking, error) {
	var result []*domain.Booking
	for _, b := range f.bookings {
		if b.Status != domain.StatusConfirmed {
			continue
		}
		if !sameDay(b.BookingDate, date) {
			continue
		}
		if b.BookingTime.IsBefore(from) || b.BookingTime.IsAfter(to) {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

type fakeCatalogRepo struct{}

func (fakeCatalogRepo) GetBarber(_ context.Context, id int64) (*domain.Barber, error) {
	return &domain.Barber{ID: id, BarbershopID: 1, FullName: "Aziz", IsActive: true}, nil
}

func (fakeCatalogRepo) GetBarbershop(_ context.Context, id int64) (*domain.Barbershop, error) {
	return &domain.Barbershop{ID: id, OwnerID: 777, Name: "Navbat Cuts", IsActive: true}, nil
}

type recordingNotifier struct {
	failures   int
	recipients []int64
	payloads   []notifyservice.Payload
}

func (n *recordingNotifier) Notify(_ context.Context, recipientID int64, _ notifyservice.EventKind, payload notifyservice.Payload) error {
	if n.failures > 0 {
		n.failures--
		return errors.New("notify service unavailable")
	}
	n.recipients = append(n.recipients, recipientID)
	n.payloads = append(n.payloads, payload)
	return nil
}

func newTestScheduler(repo *fakeBookingRepo, notifier *recordingNotifier, now time.Time) *Scheduler {
	s := New(repo, fakeCatalogRepo{}, notifier, nil, time.Minute, nopLogger{})
	s.timeProvider = &fixedClock{now: now}
	return s
}

func confirmedBooking(id int64, date time.Time, at types.TimeString) *domain.Booking {
	return &domain.Booking{
		ID:           id,
		ClientID:     100,
		BarberID:     10,
		BarbershopID: 1,
		BookingDate:  date,
		BookingTime:  at,
		Status:       domain.StatusConfirmed,
	}
}

func TestSweepSendsHourReminder(t *testing.T) {
	now := time.Date(2026, 9, 14, 9, 0, 0, 0, time.UTC)
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		confirmedBooking(1, time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC), "10:00"),
	}}
	notifier := &recordingNotifier{}

	s := newTestScheduler(repo, notifier, now)
	s.Sweep(context.Background())

	require.Len(t, notifier.recipients, 1)
	assert.Equal(t, int64(100), notifier.recipients[0])
	assert.Equal(t, 60, notifier.payloads[0].LeadMinutes)
	assert.Equal(t, "Navbat Cuts", notifier.payloads[0].BarbershopName)
}

func TestSweepDoesNotResend(t *testing.T) {
	now := time.Date(2026, 9, 14, 9, 0, 0, 0, time.UTC)
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		confirmedBooking(1, time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC), "10:00"),
	}}
	notifier := &recordingNotifier{}

	s := newTestScheduler(repo, notifier, now)
	s.Sweep(context.Background())
	s.Sweep(context.Background())

	// Второй sweep внутри того же окна не дублирует напоминание
	assert.Len(t, notifier.recipients, 1)
}

func TestSweepSendsBothLeads(t *testing.T) {
	date := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		confirmedBooking(1, date, "10:00"),
	}}
	notifier := &recordingNotifier{}

	s := newTestScheduler(repo, notifier, time.Date(2026, 9, 14, 9, 0, 0, 0, time.UTC))
	s.Sweep(context.Background())

	s.timeProvider = &fixedClock{now: time.Date(2026, 9, 14, 9, 30, 0, 0, time.UTC)}
	s.Sweep(context.Background())

	require.Len(t, notifier.payloads, 2)
	assert.Equal(t, 60, notifier.payloads[0].LeadMinutes)
	assert.Equal(t, 30, notifier.payloads[1].LeadMinutes)
}

func TestSweepRetriesAfterDeliveryFailure(t *testing.T) {
	now := time.Date(2026, 9, 14, 9, 0, 0, 0, time.UTC)
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		confirmedBooking(1, time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC), "10:00"),
	}}
	notifier := &recordingNotifier{failures: 1}

	s := newTestScheduler(repo, notifier, now)
	s.Sweep(context.Background())

	// Сбой доставки не ставит маркер, повторный sweep в окне доносит
	assert.Empty(t, notifier.recipients)

	s.timeProvider = &fixedClock{now: now.Add(time.Minute)}
	s.Sweep(context.Background())
	assert.Len(t, notifier.recipients, 1)
}

func TestSweepFailedDeliveryOfOneDoesNotBlockOthers(t *testing.T) {
	now := time.Date(2026, 9, 14, 9, 0, 0, 0, time.UTC)
	date := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		confirmedBooking(1, date, "10:00"),
		confirmedBooking(2, date, "10:00"),
	}}
	notifier := &recordingNotifier{failures: 1}

	s := newTestScheduler(repo, notifier, now)
	s.Sweep(context.Background())

	// Первая доставка упала, вторая прошла
	assert.Len(t, notifier.recipients, 1)
}

func TestSweepIgnoresBookingsOutsideWindow(t *testing.T) {
	now := time.Date(2026, 9, 14, 9, 0, 0, 0, time.UTC)
	date := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		confirmedBooking(1, date, "10:05"),
		confirmedBooking(2, date, "12:00"),
	}}
	notifier := &recordingNotifier{}

	s := newTestScheduler(repo, notifier, now)
	s.Sweep(context.Background())

	assert.Empty(t, notifier.recipients)
}

func TestSweepWindowCrossesMidnight(t *testing.T) {
	// Окно 23:59-00:01 разбивается на хвост 14-го и начало 15-го
	now := time.Date(2026, 9, 14, 23, 0, 0, 0, time.UTC)
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		confirmedBooking(1, time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), "00:00"),
	}}
	notifier := &recordingNotifier{}

	s := newTestScheduler(repo, notifier, now)
	s.Sweep(context.Background())

	require.Len(t, notifier.payloads, 1)
	assert.Equal(t, 60, notifier.payloads[0].LeadMinutes)
}

func TestPruneSentDropsStaleMarkers(t *testing.T) {
	now := time.Date(2026, 9, 14, 9, 0, 0, 0, time.UTC)
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		confirmedBooking(1, time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC), "10:00"),
	}}
	notifier := &recordingNotifier{}

	s := newTestScheduler(repo, notifier, now)
	s.Sweep(context.Background())
	require.Len(t, s.sent, 1)

	s.timeProvider = &fixedClock{now: now.Add(sentMarkerTTL + time.Minute)}
	s.Sweep(context.Background())
	assert.Empty(t, s.sent)
}
