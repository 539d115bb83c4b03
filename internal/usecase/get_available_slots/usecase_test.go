package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ibrohimov-Abdullah/navbat-booking-service/internal/domain"
	catalogRepo "github.com/Ibrohimov-Abdullah/navbat-booking-service/internal/infra/storage/catalog"
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

type fakeCatalogRepo struct {
	barbers map[int64]*domain.Barber
}

func (f *fakeCatalogRepo) GetBarber(_ context.Context, id int64) (*domain.Barber, error) {
	barber, ok := f.barbers[id]
	if !ok {
		return nil, catalogRepo.ErrBarberNotFound
	}
	return barber, nil
}

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) GetActiveByBarberDate(_ context.Context, _ int64, _ time.Time) ([]*domain.Booking, error) {
	return f.bookings, nil
}

func newTestUseCase(barber *domain.Barber, bookings []*domain.Booking, now time.Time) *UseCase {
	catalog := &fakeCatalogRepo{barbers: map[int64]*domain.Barber{}}
	if barber != nil {
		catalog.barbers[barber.ID] = barber
	}

	uc := NewUseCase(&fakeBookingRepo{bookings: bookings}, catalog, nopLogger{})
	uc.timeProvider = &fixedClock{now: now}
	return uc
}

func TestExecuteFullDay(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	barber := &domain.Barber{ID: 1, BarbershopID: 1, WorkSchedule: "09:00-19:00", IsActive: true}

	uc := newTestUseCase(barber, nil, now)

	resp, err := uc.Execute(context.Background(), &Request{BarberID: 1, Date: now.AddDate(0, 0, 1)})
	require.NoError(t, err)

	// Окно 09-19 дает ровно 20 получасовых слотов
	require.Len(t, resp.Slots, 20)
	assert.Equal(t, types.TimeString("09:00"), resp.Slots[0])
	assert.Equal(t, types.TimeString("09:30"), resp.Slots[1])
	assert.Equal(t, types.TimeString("18:30"), resp.Slots[19])
}

func TestExecuteExcludesActiveBookings(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	date := now.AddDate(0, 0, 1)
	barber := &domain.Barber{ID: 1, BarbershopID: 1, WorkSchedule: "09:00-19:00", IsActive: true}

	bookings := []*domain.Booking{
		{BarberID: 1, BookingDate: date, BookingTime: "10:00", Status: domain.StatusPending},
		{BarberID: 1, BookingDate: date, BookingTime: "10:30", Status: domain.StatusConfirmed},
		{BarberID: 1, BookingDate: date, BookingTime: "11:00", Status: domain.StatusCancelled},
		{BarberID: 1, BookingDate: date, BookingTime: "11:30", Status: domain.StatusCompleted},
	}

	uc := newTestUseCase(barber, bookings, now)

	resp, err := uc.Execute(context.Background(), &Request{BarberID: 1, Date: date})
	require.NoError(t, err)

	// pending и confirmed держат слот, cancelled и completed освобождают
	assert.Len(t, resp.Slots, 18)
	assert.NotContains(t, resp.Slots, types.TimeString("10:00"))
	assert.NotContains(t, resp.Slots, types.TimeString("10:30"))
	assert.Contains(t, resp.Slots, types.TimeString("11:00"))
	assert.Contains(t, resp.Slots, types.TimeString("11:30"))
}

func TestExecuteMalformedScheduleFallsBack(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	barber := &domain.Barber{ID: 1, BarbershopID: 1, WorkSchedule: "garbage", IsActive: true}

	uc := newTestUseCase(barber, nil, now)

	resp, err := uc.Execute(context.Background(), &Request{BarberID: 1, Date: now.AddDate(0, 0, 1)})
	require.NoError(t, err)
	assert.Len(t, resp.Slots, 20)
}

func TestExecuteInvertedWindowGivesNoSlots(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	barber := &domain.Barber{ID: 1, BarbershopID: 1, WorkSchedule: "19:00-09:00", IsActive: true}

	uc := newTestUseCase(barber, nil, now)

	resp, err := uc.Execute(context.Background(), &Request{BarberID: 1, Date: now.AddDate(0, 0, 1)})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecuteBarberNotFound(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	uc := newTestUseCase(nil, nil, now)

	_, err := uc.Execute(context.Background(), &Request{BarberID: 42, Date: now})
	assert.ErrorIs(t, err, ErrBarberNotFound)
}

func TestExecuteBarberInactive(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	barber := &domain.Barber{ID: 1, BarbershopID: 1, WorkSchedule: "09:00-19:00", IsActive: false}

	uc := newTestUseCase(barber, nil, now)

	_, err := uc.Execute(context.Background(), &Request{BarberID: 1, Date: now})
	assert.ErrorIs(t, err, ErrBarberInactive)
}

func TestExecutePastDate(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	barber := &domain.Barber{ID: 1, BarbershopID: 1, WorkSchedule: "09:00-19:00", IsActive: true}

	uc := newTestUseCase(barber, nil, now)

	_, err := uc.Execute(context.Background(), &Request{BarberID: 1, Date: now.AddDate(0, 0, -1)})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecuteInvalidInput(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	uc := newTestUseCase(nil, nil, now)

	_, err := uc.Execute(context.Background(), &Request{BarberID: 0, Date: now})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{BarberID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
