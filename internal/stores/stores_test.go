package stores

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nikaa770/noire-backend/internal/models"
	"github.com/nikaa770/noire-backend/internal/storage"
)

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestUserStore_GetFallback(t *testing.T) {
	mem := storage.NewMemory()
	store := NewUserStore(mem, newNoopLogger())

	assert.Nil(t, store.Get(context.Background()), "missing user must read as nil")

	// Повреждённые данные маскируются, не чинятся.
	mem.SetRaw(UserKey, []byte("{broken"))
	assert.Nil(t, store.Get(context.Background()))
}

func TestUserStore_SetAndGet(t *testing.T) {
	mem := storage.NewMemory()
	store := NewUserStore(mem, newNoopLogger())
	ctx := context.Background()

	user := models.User{Name: "Ana", Username: "Ana", Email: "ana@x.com", Password: "p", Phone: "1"}
	require.NoError(t, store.Set(ctx, user))

	got := store.Get(ctx)
	require.NotNil(t, got)
	assert.Equal(t, user, *got)
}

func TestSessionStore_GetNeverNil(t *testing.T) {
	mem := storage.NewMemory()
	store := NewSessionStore(mem, newNoopLogger())
	ctx := context.Background()

	assert.Equal(t, models.EmptySession(), store.Get(ctx))

	mem.SetRaw(SessionKey, []byte("not-json"))
	assert.Equal(t, models.EmptySession(), store.Get(ctx))

	require.NoError(t, store.Set(ctx, models.Session{LoggedIn: true, Email: "ana@x.com"}))
	assert.Equal(t, models.Session{LoggedIn: true, Email: "ana@x.com"}, store.Get(ctx))
}

func TestReservationStore_GetFallbackEmptyList(t *testing.T) {
	mem := storage.NewMemory()
	store := NewReservationStore(mem, newNoopLogger())
	ctx := context.Background()

	list := store.Get(ctx)
	require.NotNil(t, list)
	assert.Empty(t, list)

	mem.SetRaw(ReservationsKey, []byte("[[["))
	list = store.Get(ctx)
	require.NotNil(t, list)
	assert.Empty(t, list)
}

func TestReservationStore_SetAndGetKeepsOrder(t *testing.T) {
	mem := storage.NewMemory()
	store := NewReservationStore(mem, newNoopLogger())
	ctx := context.Background()

	list := []models.Reservation{
		{ID: 2, Name: "Nino", Guests: "4", Date: "2025-01-02", Time: "20:00"},
		{ID: 1, Name: "Ana", Guests: "2", Date: "2025-01-01", Time: "19:00"},
	}
	require.NoError(t, store.Set(ctx, list))
	assert.Equal(t, list, store.Get(ctx))
}
