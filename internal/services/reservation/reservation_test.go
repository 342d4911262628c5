package reservation

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nikaa770/noire-backend/internal/models"
	"github.com/nikaa770/noire-backend/internal/storage"
	"github.com/nikaa770/noire-backend/internal/stores"
)

type PublisherMock struct {
	mock.Mock
}

func (m *PublisherMock) PublishReservationCreated(res models.Reservation) error {
	args := m.Called(res)
	return args.Error(0)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func newTestService(events EventPublisher) *Service {
	mem := storage.NewMemory()
	log := newNoopLogger()
	return NewService(stores.NewReservationStore(mem, log), events, log)
}

func TestCreate_PrependOnly(t *testing.T) {
	svc := newTestService(nil)
	ctx := context.Background()

	r1, _, err := svc.Create(ctx, models.CreateReservationRequest{Name: "Ana", Guests: "2", Date: "2025-01-01", Time: "19:00"})
	require.NoError(t, err)
	r2, list, err := svc.Create(ctx, models.CreateReservationRequest{Name: "Nino", Guests: "4", Date: "2025-01-02", Time: "20:00"})
	require.NoError(t, err)

	require.Len(t, list, 2)
	assert.Equal(t, r2.Name, list[0].Name, "newest reservation goes to the head")
	assert.Equal(t, r1.Name, list[1].Name)
	assert.Equal(t, list, svc.List(ctx))
}

func TestCreate_KeepsEnteredValuesVerbatim(t *testing.T) {
	svc := newTestService(nil)

	res, _, err := svc.Create(context.Background(), models.CreateReservationRequest{
		Name: "Ana", Guests: "семеро", Date: "2025-01-01", Time: "19:00", Notes: "у окна",
	})
	require.NoError(t, err)

	// Guests не валидируется числом, заметки опциональны.
	assert.Equal(t, "семеро", res.Guests)
	assert.Equal(t, "у окна", res.Notes)
	assert.NotZero(t, res.ID)
}

func TestCreate_PublishesEvent(t *testing.T) {
	events := new(PublisherMock)
	events.On("PublishReservationCreated", mock.Anything).Return(nil).Once()

	svc := newTestService(events)

	_, _, err := svc.Create(context.Background(), models.CreateReservationRequest{
		Name: "Ana", Guests: "2", Date: "2025-01-01", Time: "19:00",
	})
	require.NoError(t, err)
	events.AssertExpectations(t)
}

func TestCreate_PublishFailureDoesNotFailCreate(t *testing.T) {
	events := new(PublisherMock)
	events.On("PublishReservationCreated", mock.Anything).Return(errors.New("broker down")).Once()

	svc := newTestService(events)
	ctx := context.Background()

	_, list, err := svc.Create(ctx, models.CreateReservationRequest{
		Name: "Ana", Guests: "2", Date: "2025-01-01", Time: "19:00",
	})
	require.NoError(t, err)
	assert.Len(t, list, 1, "reservation is saved even when the broker is down")
}

func TestList_EmptyByDefault(t *testing.T) {
	svc := newTestService(nil)

	list := svc.List(context.Background())
	require.NotNil(t, list)
	assert.Empty(t, list)
}
