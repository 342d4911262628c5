// Package create реализует HTTP-обработчик формы бронирования столика.
// Новая заявка вставляется в голову списка; в ответ уходит сообщение,
// обновлённый список и его готовый HTML-фрагмент.
package create

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/nikaa770/noire-backend/internal/http/response"
	"github.com/nikaa770/noire-backend/internal/lib/messages"
	"github.com/nikaa770/noire-backend/internal/lib/sl"
	"github.com/nikaa770/noire-backend/internal/models"
	"github.com/nikaa770/noire-backend/internal/services/view"
)

// Service описывает интерфейс бизнес-логики бронирования.
type Service interface {
	Create(ctx context.Context, req models.CreateReservationRequest) (models.Reservation, []models.Reservation, error)
}

// Handler обрабатывает HTTP-запросы создания брони.
type Handler struct {
	log         *slog.Logger
	reservation Service
	validate    *validator.Validate
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, reservation Service) *Handler {
	return &Handler{
		log:         log,
		reservation: reservation,
		validate:    validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Создание брони столика
// @Description Добавляет заявку в голову списка бронирований и возвращает обновлённый список с HTML-фрагментом.
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body models.CreateReservationRequest true "Данные формы бронирования"
// @Success 200 {object} response.Response "Сообщение, список и фрагмент"
// @Failure 500 {object} response.ErrorResponse "Не удалось сохранить"
// @Router /reservations [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.reservation.create"

	log := h.log.With(
		sl.Op(op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.CreateReservationRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Guests = strings.TrimSpace(req.Guests)
	req.Date = strings.TrimSpace(req.Date)
	req.Time = strings.TrimSpace(req.Time)
	req.Notes = strings.TrimSpace(req.Notes)

	if err := h.validate.Struct(req); err != nil {
		log.Debug("required field is empty, skipping", sl.Err(err))
		render.JSON(w, r, response.OK())
		return
	}

	res, list, err := h.reservation.Create(r.Context(), req)
	if err != nil {
		log.Error("failed to create reservation", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to save"))
		return
	}

	listHTML, err := view.RenderReservations(list)
	if err != nil {
		log.Error("failed to render reservations", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to render"))
		return
	}

	log.Info("reservation created", slog.Int64("id", res.ID), slog.Int("list_count", len(list)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"message":      messages.ReservationCreated,
		"list_count":   len(list),
		"reservations": list,
		"list_html":    listHTML,
	}))
}
