// Package list реализует HTTP-обработчик чтения списка бронирований.
package list

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

// Service описывает интерфейс бизнес-логики списка бронирований.
type Service interface {
	List(ctx context.Context) []models.Reservation
}

// Handler обрабатывает HTTP-запросы списка бронирований.
type Handler struct {
	log         *slog.Logger
	reservation Service
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, reservation Service) *Handler {
	return &Handler{log: log, reservation: reservation}
}

// ServeHTTP godoc
// @Summary Список бронирований
// @Description Возвращает все заявки, свежие сверху, и HTML-фрагмент списка; для пустого списка — плейсхолдер.
// @Tags reservations
// @Produce json
// @Success 200 {object} response.Response "list_count, reservations, list_html"
// @Router /reservations [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.reservation.list"

	log := h.log.With(
		sl.Op(op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	list := h.reservation.List(r.Context())

	listHTML, err := view.RenderReservations(list)
	if err != nil {
		log.Error("failed to render reservations", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to render"))
		return
	}

	log.Info("list reservations", slog.Int("count", len(list)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"list_count":   len(list),
		"reservations": list,
		"list_html":    listHTML,
	}))
}
