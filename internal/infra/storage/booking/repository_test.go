package booking

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ibrohimov-Abdullah/navbat-booking-service/internal/domain"
	"github.com/Ibrohimov-Abdullah/navbat-booking-service/pkg/dbmetrics"
	"github.com/Ibrohimov-Abdullah/navbat-booking-service/pkg/types"
)

func newMockDB(t *testing.T) (*Repository, sqlmock.Sqlmock, func() (dbmetrics.TxExecutor, error)) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	beginTx := func() (dbmetrics.TxExecutor, error) {
		return db.Begin()
	}

	return NewRepository(db), mock, beginTx
}

func bookingRows() *sqlmock.Rows {
	return sqlmock.NewRows(bookingColumns)
}

func addBookingRow(rows *sqlmock.Rows, id int64, status string, bookingTime string) *sqlmock.Rows {
	return rows.AddRow(
		id, int64(100), int64(10), int64(1), nil,
		time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC), bookingTime, status, "",
		time.Now(), time.Now(),
	)
}

func pendingBooking() *domain.Booking {
	return &domain.Booking{
		ClientID:     100,
		BarberID:     10,
		BarbershopID: 1,
		BookingDate:  time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
		BookingTime:  types.TimeString("10:00"),
		Status:       domain.StatusPending,
	}
}

func TestCreate(t *testing.T) {
	repo, mock, _ := newMockDB(t)

	mock.ExpectQuery("INSERT INTO bookings").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(int64(1), time.Now(), time.Now()))

	created, err := repo.Create(context.Background(), pendingBooking())
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUniqueViolationMapsToSlotTaken(t *testing.T) {
	repo, mock, _ := newMockDB(t)

	// Нарушение частичного уникального индекса bookings_slot_unique
	mock.ExpectQuery("INSERT INTO bookings").
		WillReturnError(&pq.Error{Code: pqUniqueViolation})

	_, err := repo.Create(context.Background(), pendingBooking())
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestGetByIDNotFound(t *testing.T) {
	repo, mock, _ := newMockDB(t)

	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id").
		WillReturnRows(bookingRows())

	_, err := repo.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetByClientIDOrdersDescending(t *testing.T) {
	repo, mock, _ := newMockDB(t)

	rows := bookingRows()
	addBookingRow(rows, 2, "confirmed", "15:00")
	addBookingRow(rows, 1, "completed", "10:00")

	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE client_id = (.+) ORDER BY booking_date DESC, booking_time DESC").
		WillReturnRows(rows)

	bookings, err := repo.GetByClientID(context.Background(), 100)
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, int64(2), bookings[0].ID)
	assert.Equal(t, types.TimeString("15:00"), bookings[0].BookingTime)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByBarbershopWithDateOrdersAscending(t *testing.T) {
	repo, mock, _ := newMockDB(t)

	date := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE (.+) ORDER BY booking_time ASC").
		WillReturnRows(addBookingRow(bookingRows(), 1, "pending", "10:00"))

	bookings, err := repo.GetByBarbershopWithFilter(context.Background(), domain.BarbershopBookingsFilter{
		BarbershopID: 1,
		Date:         &date,
	})
	require.NoError(t, err)
	assert.Len(t, bookings, 1)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetActiveByBarberDateWithoutTransaction(t *testing.T) {
	repo, mock, _ := newMockDB(t)

	// Вне транзакции запрос не должен блокировать строки
	mock.ExpectQuery(`SELECT (.+) FROM bookings WHERE (.+) ORDER BY booking_time ASC$`).
		WillReturnRows(addBookingRow(bookingRows(), 1, "pending", "10:00"))

	bookings, err := repo.GetActiveByBarberDate(context.Background(), 10, time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Len(t, bookings, 1)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetActiveByBarberDateLocksRowsInTransaction(t *testing.T) {
	repo, mock, beginTx := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE (.+) FOR UPDATE").
		WillReturnRows(addBookingRow(bookingRows(), 1, "pending", "10:00"))

	tx, err := beginTx()
	require.NoError(t, err)

	ctx := dbmetrics.WithTx(context.Background(), tx)
	bookings, err := repo.GetActiveByBarberDate(ctx, 10, time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Len(t, bookings, 1)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetConfirmedInWindow(t *testing.T) {
	repo, mock, _ := newMockDB(t)

	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE (.+) booking_time >= (.+) booking_time <= (.+)").
		WillReturnRows(addBookingRow(bookingRows(), 1, "confirmed", "10:00"))

	bookings, err := repo.GetConfirmedInWindow(context.Background(),
		time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC), "09:59", "10:01")
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, domain.StatusConfirmed, bookings[0].Status)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus(t *testing.T) {
	repo, mock, _ := newMockDB(t)

	mock.ExpectExec("UPDATE bookings SET").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateStatus(context.Background(), 1, domain.StatusPending, domain.StatusConfirmed)
	require.NoError(t, err)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatusStale(t *testing.T) {
	repo, mock, _ := newMockDB(t)

	// Guard по статусу не совпал, но бронирование существует
	mock.ExpectExec("UPDATE bookings SET").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id").
		WillReturnRows(addBookingRow(bookingRows(), 1, "cancelled", "10:00"))

	err := repo.UpdateStatus(context.Background(), 1, domain.StatusPending, domain.StatusConfirmed)
	assert.ErrorIs(t, err, ErrStaleStatus)
}

func TestUpdateStatusNotFound(t *testing.T) {
	repo, mock, _ := newMockDB(t)

	mock.ExpectExec("UPDATE bookings SET").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id").
		WillReturnRows(bookingRows())

	err := repo.UpdateStatus(context.Background(), 42, domain.StatusPending, domain.StatusConfirmed)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
