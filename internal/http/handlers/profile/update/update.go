// Package update реализует HTTP-обработчик формы редактирования профиля.
// CreatedAt и аватар не трогаются; смена email перевыпускает активную
// сессию с новым значением в той же операции, повторный вход не нужен.
package update

import (
	"context"
	"errors"
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
	"github.com/nikaa770/noire-backend/internal/services/account"
)

// Service описывает интерфейс бизнес-логики профиля.
type Service interface {
	UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (*models.User, error)
}

// View отдаёт свежее состояние представления после мутации.
type View interface {
	Snapshot(ctx context.Context) models.ViewState
}

// Handler обрабатывает HTTP-запросы сохранения профиля.
type Handler struct {
	log      *slog.Logger
	account  Service
	view     View
	validate *validator.Validate
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, account Service, view View) *Handler {
	return &Handler{
		log:      log,
		account:  account,
		view:     view,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Сохранение профиля
// @Description Обновляет изменяемые поля учётной записи; смена email перевыпускает сессию.
// @Tags profile
// @Accept json
// @Produce json
// @Param request body models.UpdateProfileRequest true "Данные формы профиля"
// @Success 200 {object} response.Response "Сообщение и состояние представления"
// @Failure 404 {object} response.ErrorResponse "Учётная запись не найдена"
// @Router /profile [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.profile.update"

	log := h.log.With(
		sl.Op(op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.UpdateProfileRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	req.Password = strings.TrimSpace(req.Password)
	req.Phone = strings.TrimSpace(req.Phone)

	if err := h.validate.Struct(req); err != nil {
		log.Debug("required field is empty, skipping", sl.Err(err))
		render.JSON(w, r, response.OK())
		return
	}

	user, err := h.account.UpdateProfile(r.Context(), req)
	if err != nil {
		if errors.Is(err, account.ErrNoAccount) {
			log.Info("profile save without account")
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error(messages.NoAccount))
			return
		}
		log.Error("failed to update profile", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to save"))
		return
	}

	log.Info("profile saved", slog.String("email", user.Email))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"message":    messages.ProfileSaved,
		"view_state": h.view.Snapshot(r.Context()),
	}))
}
