package sessions

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ibrohimov-Abdullah/navbat-booking-service/internal/service/sessions/models"
	createBooking "github.com/Ibrohimov-Abdullah/navbat-booking-service/internal/usecase/create_booking"
	"github.com/Ibrohimov-Abdullah/navbat-booking-service/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeCreateUseCase struct {
	executed []*createBooking.Request
	resp     *createBooking.Response
	err      error
}

func (f *fakeCreateUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.executed = append(f.executed, req)
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func completeSession(t *testing.T, svc *Service, clientID int64) {
	t.Helper()

	_, err := svc.Update(clientID, &models.UpdateRequest{BarbershopID: ptr.Ptr(int64(1))})
	require.NoError(t, err)
	_, err = svc.Update(clientID, &models.UpdateRequest{BarberID: ptr.Ptr(int64(10))})
	require.NoError(t, err)
	_, err = svc.Update(clientID, &models.UpdateRequest{
		Date: ptr.Ptr("2026-09-14"),
		Time: ptr.Ptr("10:00"),
	})
	require.NoError(t, err)
}

func TestUpdateAccumulatesSteps(t *testing.T) {
	svc := NewService(&fakeCreateUseCase{}, nopLogger{})

	resp, err := svc.Update(100, &models.UpdateRequest{BarbershopID: ptr.Ptr(int64(1))})
	require.NoError(t, err)
	assert.False(t, resp.Complete)

	resp, err = svc.Update(100, &models.UpdateRequest{BarberID: ptr.Ptr(int64(10))})
	require.NoError(t, err)
	// Предыдущий шаг не потерян
	require.NotNil(t, resp.BarbershopID)
	assert.Equal(t, int64(1), *resp.BarbershopID)
	assert.False(t, resp.Complete)

	resp, err = svc.Update(100, &models.UpdateRequest{Date: ptr.Ptr("2026-09-14"), Time: ptr.Ptr("10:00")})
	require.NoError(t, err)
	assert.True(t, resp.Complete)
}

func TestUpdateLastWriteWins(t *testing.T) {
	svc := NewService(&fakeCreateUseCase{}, nopLogger{})
	completeSession(t, svc, 100)

	resp, err := svc.Update(100, &models.UpdateRequest{Time: ptr.Ptr("15:30")})
	require.NoError(t, err)
	require.NotNil(t, resp.Time)
	assert.Equal(t, "15:30", *resp.Time)
	assert.True(t, resp.Complete)
}

func TestUpdateRejectsBrokenDateAndTime(t *testing.T) {
	svc := NewService(&fakeCreateUseCase{}, nopLogger{})

	_, err := svc.Update(100, &models.UpdateRequest{Date: ptr.Ptr("14.09.2026")})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Update(100, &models.UpdateRequest{Time: ptr.Ptr("half past ten")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetMissingSession(t *testing.T) {
	svc := NewService(&fakeCreateUseCase{}, nopLogger{})

	_, err := svc.Get(100)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestCommitIncompleteSession(t *testing.T) {
	uc := &fakeCreateUseCase{}
	svc := NewService(uc, nopLogger{})

	_, err := svc.Update(100, &models.UpdateRequest{BarbershopID: ptr.Ptr(int64(1))})
	require.NoError(t, err)

	_, err = svc.Commit(context.Background(), 100)
	assert.ErrorIs(t, err, ErrSessionIncomplete)
	assert.Empty(t, uc.executed)
}

func TestCommitMissingSession(t *testing.T) {
	svc := NewService(&fakeCreateUseCase{}, nopLogger{})

	_, err := svc.Commit(context.Background(), 100)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestCommitClearsSessionOnSuccess(t *testing.T) {
	uc := &fakeCreateUseCase{resp: &createBooking.Response{ID: 5, Status: "pending"}}
	svc := NewService(uc, nopLogger{})
	completeSession(t, svc, 100)

	resp, err := svc.Commit(context.Background(), 100)
	require.NoError(t, err)
	assert.Equal(t, int64(5), resp.ID)

	require.Len(t, uc.executed, 1)
	assert.Equal(t, int64(100), uc.executed[0].ClientID)
	assert.Equal(t, int64(10), uc.executed[0].BarberID)
	assert.Equal(t, time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC), uc.executed[0].Date)

	_, err = svc.Get(100)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestCommitKeepsSessionOnConflict(t *testing.T) {
	uc := &fakeCreateUseCase{err: createBooking.ErrSlotTaken}
	svc := NewService(uc, nopLogger{})
	completeSession(t, svc, 100)

	_, err := svc.Commit(context.Background(), 100)
	assert.ErrorIs(t, err, createBooking.ErrSlotTaken)

	// Сессия жива: клиент может выбрать другое время и закоммитить снова
	resp, err := svc.Get(100)
	require.NoError(t, err)
	assert.True(t, resp.Complete)
}

func TestClearIsIdempotent(t *testing.T) {
	svc := NewService(&fakeCreateUseCase{}, nopLogger{})
	completeSession(t, svc, 100)

	svc.Clear(100)
	svc.Clear(100)

	_, err := svc.Get(100)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
