package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ibrohimov-Abdullah/navbat-booking-service/internal/domain"
	bookingRepo "github.com/Ibrohimov-Abdullah/navbat-booking-service/internal/infra/storage/booking"
	catalogRepo "github.com/Ibrohimov-Abdullah/navbat-booking-service/internal/infra/storage/catalog"
	"github.com/Ibrohimov-Abdullah/navbat-booking-service/internal/integrations/notifyservice"
	"github.com/Ibrohimov-Abdullah/navbat-booking-service/internal/service/bookings/models"
	"github.com/Ibrohimov-Abdullah/navbat-booking-service/pkg/types"
)

const (
	clientID = int64(100)
	ownerID  = int64(777)
	otherID  = int64(999)
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
	bookings map[int64]*domain.Booking
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	booking, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *booking
	return &copied, nil
}

func (f *fakeBookingRepo) GetByClientID(_ context.Context, clientID int64) ([]*domain.Booking, error) {
	var result []*domain.Booking
	for _, b := range f.bookings {
		if b.ClientID == clientID {
			result = append(result, b)
		}
	}
	return result, nil
}

func (f *fakeBookingRepo) GetByBarbershopWithFilter(_ context.Context, filter domain.BarbershopBookingsFilter) ([]*domain.Booking, error) {
	var result []*domain.Booking
	for _, b := range f.bookings {
		if b.BarbershopID != filter.BarbershopID {
			continue
		}
		if filter.Date != nil && !b.BookingDate.Equal(*filter.Date) {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id int64, from, to domain.BookingStatus) error {
	booking, ok := f.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	if booking.Status != from {
		return bookingRepo.ErrStaleStatus
	}
	booking.Status = to
	return nil
}

type fakeCatalogRepo struct {
	shops map[int64]*domain.Barbershop
}

func (f *fakeCatalogRepo) GetBarber(_ context.Context, id int64) (*domain.Barber, error) {
	return &domain.Barber{ID: id, BarbershopID: 1, FullName: "Aziz", IsActive: true}, nil
}

func (f *fakeCatalogRepo) GetBarbershop(_ context.Context, id int64) (*domain.Barbershop, error) {
	shop, ok := f.shops[id]
	if !ok {
		return nil, catalogRepo.ErrBarbershopNotFound
	}
	return shop, nil
}

type recordingNotifier struct {
	recipients []int64
	kinds      []notifyservice.EventKind
}

func (n *recordingNotifier) NotifyBestEffort(_ context.Context, recipientID int64, kind notifyservice.EventKind, _ notifyservice.Payload) {
	n.recipients = append(n.recipients, recipientID)
	n.kinds = append(n.kinds, kind)
}

func newTestService(status domain.BookingStatus, notifier *recordingNotifier) (*Service, *fakeBookingRepo) {
	repo := &fakeBookingRepo{
		bookings: map[int64]*domain.Booking{
			1: {
				ID:           1,
				ClientID:     clientID,
				BarberID:     10,
				BarbershopID: 1,
				BookingDate:  time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
				BookingTime:  types.TimeString("10:00"),
				Status:       status,
			},
		},
	}
	catalog := &fakeCatalogRepo{
		shops: map[int64]*domain.Barbershop{
			1: {ID: 1, OwnerID: ownerID, Name: "Navbat Cuts", IsActive: true},
		},
	}
	return NewService(repo, catalog, notifier, nopLogger{}), repo
}

func TestSetStatusOwnerConfirms(t *testing.T) {
	notifier := &recordingNotifier{}
	svc, repo := newTestService(domain.StatusPending, notifier)

	err := svc.SetStatus(context.Background(), 1, &models.UpdateStatusRequest{ActorID: ownerID, Status: "confirmed"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, repo.bookings[1].Status)

	// Клиент получает уведомление о подтверждении
	require.Len(t, notifier.recipients, 1)
	assert.Equal(t, clientID, notifier.recipients[0])
	assert.Equal(t, notifyservice.EventBookingConfirmed, notifier.kinds[0])
}

func TestSetStatusClientCancelsOwnBooking(t *testing.T) {
	notifier := &recordingNotifier{}
	svc, repo := newTestService(domain.StatusConfirmed, notifier)

	err := svc.SetStatus(context.Background(), 1, &models.UpdateStatusRequest{ActorID: clientID, Status: "cancelled"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, repo.bookings[1].Status)

	require.Len(t, notifier.kinds, 1)
	assert.Equal(t, notifyservice.EventBookingCancelled, notifier.kinds[0])
}

func TestSetStatusClientCannotConfirm(t *testing.T) {
	svc, repo := newTestService(domain.StatusPending, &recordingNotifier{})

	err := svc.SetStatus(context.Background(), 1, &models.UpdateStatusRequest{ActorID: clientID, Status: "confirmed"})
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Equal(t, domain.StatusPending, repo.bookings[1].Status)
}

func TestSetStatusStrangerCannotCancel(t *testing.T) {
	svc, _ := newTestService(domain.StatusPending, &recordingNotifier{})

	err := svc.SetStatus(context.Background(), 1, &models.UpdateStatusRequest{ActorID: otherID, Status: "cancelled"})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestSetStatusIllegalTransitions(t *testing.T) {
	tests := []struct {
		name   string
		from   domain.BookingStatus
		status string
	}{
		{"pending to completed", domain.StatusPending, "completed"},
		{"cancelled to confirmed", domain.StatusCancelled, "confirmed"},
		{"completed to cancelled", domain.StatusCompleted, "cancelled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestService(tt.from, &recordingNotifier{})

			err := svc.SetStatus(context.Background(), 1, &models.UpdateStatusRequest{ActorID: ownerID, Status: tt.status})
			assert.ErrorIs(t, err, ErrInvalidTransition)
		})
	}
}

func TestSetStatusCompletedDoesNotNotify(t *testing.T) {
	notifier := &recordingNotifier{}
	svc, repo := newTestService(domain.StatusConfirmed, notifier)

	err := svc.SetStatus(context.Background(), 1, &models.UpdateStatusRequest{ActorID: ownerID, Status: "completed"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, repo.bookings[1].Status)
	assert.Empty(t, notifier.recipients)
}

func TestSetStatusRejectsInvalidStatus(t *testing.T) {
	svc, _ := newTestService(domain.StatusPending, &recordingNotifier{})

	for _, status := range []string{"", "done", "pending"} {
		err := svc.SetStatus(context.Background(), 1, &models.UpdateStatusRequest{ActorID: ownerID, Status: status})
		assert.ErrorIs(t, err, ErrInvalidInput, status)
	}
}

func TestSetStatusBookingNotFound(t *testing.T) {
	svc, _ := newTestService(domain.StatusPending, &recordingNotifier{})

	err := svc.SetStatus(context.Background(), 42, &models.UpdateStatusRequest{ActorID: ownerID, Status: "confirmed"})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetByIDAccess(t *testing.T) {
	svc, _ := newTestService(domain.StatusPending, &recordingNotifier{})

	_, err := svc.GetByID(context.Background(), 1, clientID)
	assert.NoError(t, err)

	_, err = svc.GetByID(context.Background(), 1, ownerID)
	assert.NoError(t, err)

	_, err = svc.GetByID(context.Background(), 1, otherID)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetBarbershopBookingsOwnerOnly(t *testing.T) {
	svc, _ := newTestService(domain.StatusPending, &recordingNotifier{})

	resp, err := svc.GetBarbershopBookings(context.Background(), &models.GetBarbershopBookingsRequest{
		ActorID:      ownerID,
		BarbershopID: 1,
	})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 1)

	_, err = svc.GetBarbershopBookings(context.Background(), &models.GetBarbershopBookingsRequest{
		ActorID:      otherID,
		BarbershopID: 1,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetClientBookingsSplitsActivePast(t *testing.T) {
	svc, repo := newTestService(domain.StatusPending, &recordingNotifier{})

	now := time.Date(2026, 9, 14, 12, 0, 0, 0, time.UTC)
	svc.timeProvider = &fixedClock{now: now}

	repo.bookings[2] = &domain.Booking{
		ID: 2, ClientID: clientID, BarberID: 10, BarbershopID: 1,
		BookingDate: now.AddDate(0, 0, -7), BookingTime: "10:00", Status: domain.StatusCompleted,
	}
	repo.bookings[3] = &domain.Booking{
		ID: 3, ClientID: clientID, BarberID: 10, BarbershopID: 1,
		BookingDate: now.AddDate(0, 0, 3), BookingTime: "15:00", Status: domain.StatusCancelled,
	}

	resp, err := svc.GetClientBookings(context.Background(), clientID)
	require.NoError(t, err)

	// Активное = держит слот И дата не прошла; отмененное будущее - уже история
	require.Len(t, resp.Active, 1)
	assert.Equal(t, int64(1), resp.Active[0].ID)
	assert.Len(t, resp.Past, 2)
}
