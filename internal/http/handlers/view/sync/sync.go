// Package sync реализует HTTP-обработчик синхронизации представления:
// страница запрашивает его при загрузке и после мутаций, получая
// состояние и готовый фрагмент шапки. Повторный запрос без изменения
// состояния возвращает идентичный результат.
package sync

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/nikaa770/noire-backend/internal/http/response"
	"github.com/nikaa770/noire-backend/internal/lib/sl"
	"github.com/nikaa770/noire-backend/internal/models"
	"github.com/nikaa770/noire-backend/internal/services/view"
)

// View отдаёт текущее состояние представления.
type View interface {
	Snapshot(ctx context.Context) models.ViewState
}

// Handler обрабатывает HTTP-запросы состояния представления.
type Handler struct {
	log  *slog.Logger
	view View
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, v View) *Handler {
	return &Handler{log: log, view: v}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.view.sync"

	log := h.log.With(
		sl.Op(op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	state := h.view.Snapshot(r.Context())

	chipHTML, err := view.RenderChip(state)
	if err != nil {
		log.Error("failed to render chip fragment", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to render"))
		return
	}

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"view_state": state,
		"chip_html":  chipHTML,
	}))
}
