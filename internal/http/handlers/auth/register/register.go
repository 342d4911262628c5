// Package register реализует HTTP-обработчик формы регистрации.
//
// Обязательные поля обрезаются от пробелов; если какое-то из них пусто,
// обработчик тихо выходит без мутаций и без статусного сообщения — так
// задумано. При успехе учётная запись безусловно перезаписывается,
// посетитель сразу логинится, а в ответ кладутся локализованное
// сообщение, свежее состояние представления и подсказка о переходе на
// страницу профиля с задержкой на чтение сообщения.
package register

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
)

// Задержка перед переходом на профиль, чтобы посетитель успел
// прочитать статусное сообщение.
const redirectDelayMS = 1200

// Service описывает интерфейс бизнес-логики учётной записи.
type Service interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.User, error)
}

// View отдаёт свежее состояние представления после мутации.
type View interface {
	Snapshot(ctx context.Context) models.ViewState
}

// Handler обрабатывает HTTP-запросы регистрации.
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
// @Summary Регистрация посетителя
// @Description Перезаписывает локальную учётную запись (последняя регистрация побеждает) и сразу логинит посетителя.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Данные формы регистрации"
// @Success 200 {object} response.Response "Сообщение, состояние представления и redirect"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 500 {object} response.ErrorResponse "Не удалось сохранить"
// @Router /register [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.register"

	log := h.log.With(
		sl.Op(op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.RegisterRequest
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
		var validateErr validator.ValidationErrors
		if errors.As(err, &validateErr) {
			// Пустое обязательное поле — тихий no-op без мутации.
			log.Debug("required field is empty, skipping", sl.Err(err))
			render.JSON(w, r, response.OK())
			return
		}
		log.Error("validation failed", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request"))
		return
	}

	user, err := h.account.Register(r.Context(), req)
	if err != nil {
		log.Error("failed to register", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to save"))
		return
	}

	log.Info("registered", slog.String("email", user.Email))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"message":           messages.Registered,
		"redirect":          "/profile.html",
		"redirect_after_ms": redirectDelayMS,
		"view_state":        h.view.Snapshot(r.Context()),
	}))
}
