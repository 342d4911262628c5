// Package login реализует HTTP-обработчик формы входа.
//
// Неудачный вход не меняет состояние: в ответ уходит только
// локализованное статусное сообщение — "нет аккаунта" или "неверные
// данные". При успехе сессия перевыпускается на email учётной записи,
// а в ответе — сообщение, состояние представления и redirect на профиль.
package login

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

const redirectDelayMS = 1200

// Request — структура входных данных формы входа.
type Request struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Service описывает интерфейс бизнес-логики входа.
type Service interface {
	Login(ctx context.Context, email, password string) (*models.User, error)
}

// View отдаёт свежее состояние представления после мутации.
type View interface {
	Snapshot(ctx context.Context) models.ViewState
}

// Handler обрабатывает HTTP-запросы входа.
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
// @Summary Вход посетителя
// @Description Сверяет email и пароль с локальной учётной записью. Неудача не меняет состояние.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body Request true "Данные формы входа"
// @Success 200 {object} response.Response "Сообщение, состояние представления и redirect"
// @Failure 401 {object} response.ErrorResponse "Неверные учетные данные"
// @Failure 404 {object} response.ErrorResponse "Учётная запись не найдена"
// @Router /login [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.login"

	log := h.log.With(
		sl.Op(op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	req.Password = strings.TrimSpace(req.Password)

	if err := h.validate.Struct(req); err != nil {
		log.Debug("required field is empty, skipping", sl.Err(err))
		render.JSON(w, r, response.OK())
		return
	}

	user, err := h.account.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, account.ErrNoAccount):
			log.Info("login attempt without account")
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error(messages.NoAccount))
		case errors.Is(err, account.ErrInvalidCredentials):
			log.Info("invalid credentials")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error(messages.InvalidCredentials))
		default:
			log.Error("failed to login", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to save"))
		}
		return
	}

	log.Info("login success", slog.String("email", user.Email))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"message":           messages.LoggedIn,
		"redirect":          "/profile.html",
		"redirect_after_ms": redirectDelayMS,
		"view_state":        h.view.Snapshot(r.Context()),
	}))
}
