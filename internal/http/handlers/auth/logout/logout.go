// Package logout реализует HTTP-обработчик выхода из аккаунта.
// Сессия сбрасывается независимо от прежнего состояния; если запрос
// пришёл со страницы профиля, в ответ добавляется redirect на страницу
// входа.
package logout

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/nikaa770/noire-backend/internal/http/response"
	"github.com/nikaa770/noire-backend/internal/lib/messages"
	"github.com/nikaa770/noire-backend/internal/lib/sl"
	"github.com/nikaa770/noire-backend/internal/models"
)

// Service описывает интерфейс бизнес-логики выхода.
type Service interface {
	Logout(ctx context.Context) error
}

// View отдаёт свежее состояние представления после мутации.
type View interface {
	Snapshot(ctx context.Context) models.ViewState
}

// Handler обрабатывает HTTP-запросы выхода.
type Handler struct {
	log     *slog.Logger
	account Service
	view    View
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, account Service, view View) *Handler {
	return &Handler{log: log, account: account, view: view}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.logout"

	log := h.log.With(
		sl.Op(op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	if err := h.account.Logout(r.Context()); err != nil {
		log.Error("failed to logout", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to save"))
		return
	}

	data := map[string]any{
		"message":    messages.LoggedOut,
		"view_state": h.view.Snapshot(r.Context()),
	}
	// Со страницы профиля после выхода уводим на страницу входа.
	if strings.Contains(r.Referer(), "profile") {
		data["redirect"] = "/login.html"
	}

	log.Info("logged out")
	render.JSON(w, r, response.StatusOKWithData(data))
}
