package view

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nikaa770/noire-backend/internal/lib/messages"
	"github.com/nikaa770/noire-backend/internal/models"
	"github.com/nikaa770/noire-backend/internal/services/account"
	"github.com/nikaa770/noire-backend/internal/storage"
	"github.com/nikaa770/noire-backend/internal/stores"
)

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func newTestService() (*Service, *account.Service) {
	mem := storage.NewMemory()
	log := newNoopLogger()
	accounts := account.NewService(stores.NewUserStore(mem, log), stores.NewSessionStore(mem, log), log)
	return NewService(accounts, log), accounts
}

func TestSnapshot_Guest(t *testing.T) {
	svc, _ := newTestService()

	state := svc.Snapshot(context.Background())
	assert.Equal(t, models.ViewState{
		Authenticated: false,
		ShowChip:      false,
		ShowGuest:     true,
		ShowLogout:    false,
	}, state)
}

func TestSnapshot_LoggedIn(t *testing.T) {
	svc, accounts := newTestService()
	ctx := context.Background()

	_, err := accounts.Register(ctx, models.RegisterRequest{
		Name: "Ana", Email: "ana@x.com", Password: "p", Phone: "1",
	})
	require.NoError(t, err)

	state := svc.Snapshot(ctx)
	assert.True(t, state.Authenticated)
	assert.True(t, state.ShowChip)
	assert.False(t, state.ShowGuest)
	assert.True(t, state.ShowLogout)
	assert.Equal(t, "Ana", state.Name)
}

func TestSnapshot_Idempotent(t *testing.T) {
	svc, accounts := newTestService()
	ctx := context.Background()

	_, err := accounts.Register(ctx, models.RegisterRequest{
		Name: "Ana", Email: "ana@x.com", Password: "p", Phone: "1",
	})
	require.NoError(t, err)

	first := svc.Snapshot(ctx)
	second := svc.Snapshot(ctx)
	assert.Equal(t, first, second, "snapshot without mutations must not drift")
}

func TestSnapshot_FollowsLogout(t *testing.T) {
	svc, accounts := newTestService()
	ctx := context.Background()

	_, err := accounts.Register(ctx, models.RegisterRequest{
		Name: "Ana", Email: "ana@x.com", Password: "p", Phone: "1",
	})
	require.NoError(t, err)
	require.NoError(t, accounts.Logout(ctx))

	state := svc.Snapshot(ctx)
	assert.False(t, state.Authenticated)
	assert.True(t, state.ShowGuest)
	assert.Empty(t, state.Name)
}

func TestRenderChip_HiddenAttributes(t *testing.T) {
	guest, err := RenderChip(models.ViewState{ShowGuest: true})
	require.NoError(t, err)
	assert.Contains(t, guest, `data-user-chip hidden`)
	assert.Contains(t, guest, `data-logout hidden`)
	assert.NotContains(t, guest, `data-auth-guest hidden`)

	loggedIn, err := RenderChip(models.ViewState{
		Authenticated: true, ShowChip: true, ShowLogout: true, Name: "Ana",
	})
	require.NoError(t, err)
	assert.NotContains(t, loggedIn, `data-user-chip hidden`)
	assert.Contains(t, loggedIn, `data-auth-guest hidden`)
	assert.Contains(t, loggedIn, `<span data-user-chip-name>Ana</span>`)
}

func TestRenderChip_Deterministic(t *testing.T) {
	state := models.ViewState{Authenticated: true, ShowChip: true, ShowLogout: true, Name: "Ana"}

	first, err := RenderChip(state)
	require.NoError(t, err)
	second, err := RenderChip(state)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRenderReservations_EmptyShowsPlaceholderOnly(t *testing.T) {
	html, err := RenderReservations(nil)
	require.NoError(t, err)

	assert.Contains(t, html, messages.ReservationsEmpty)
	assert.NotContains(t, html, "<li")

	// Пустой срез и nil дают одинаковый фрагмент.
	fromEmpty, err := RenderReservations([]models.Reservation{})
	require.NoError(t, err)
	assert.Equal(t, html, fromEmpty)
}

func TestRenderReservations_NewestFirst(t *testing.T) {
	list := []models.Reservation{
		{ID: 2, Name: "Nino", Guests: "4", Date: "2025-01-02", Time: "20:00", Notes: "фуршет"},
		{ID: 1, Name: "Ana", Guests: "2", Date: "2025-01-01", Time: "19:00"},
	}

	html, err := RenderReservations(list)
	require.NoError(t, err)

	assert.NotContains(t, html, messages.ReservationsEmpty)
	assert.Equal(t, 2, strings.Count(html, "<li"))
	assert.Less(t, strings.Index(html, "Nino"), strings.Index(html, "Ana"), "head of the list renders first")
	assert.Contains(t, html, `<span class="reservation-notes">фуршет</span>`)
}
