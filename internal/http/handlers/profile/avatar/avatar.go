// Package avatar реализует HTTP-обработчик загрузки фото профиля.
// Файл принимается только с типом image/*, читается целиком и
// встраивается в учётную запись как data-URI — внешнего хранилища
// и ограничения размера нет. Чтение файла — единственная асинхронная
// граница исходной страницы; здесь побеждает последняя запись.
package avatar

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/nikaa770/noire-backend/internal/http/response"
	"github.com/nikaa770/noire-backend/internal/lib/messages"
	"github.com/nikaa770/noire-backend/internal/lib/sl"
	"github.com/nikaa770/noire-backend/internal/models"
	"github.com/nikaa770/noire-backend/internal/services/account"
)

// Service описывает интерфейс бизнес-логики аватара.
type Service interface {
	SetAvatar(ctx context.Context, contentType string, data []byte) (*models.User, error)
}

// View отдаёт свежее состояние представления после мутации.
type View interface {
	Snapshot(ctx context.Context) models.ViewState
}

// Handler обрабатывает загрузку аватара.
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
	const op = "handlers.profile.avatar"

	log := h.log.With(
		sl.Op(op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	file, header, err := r.FormFile("avatar")
	if err != nil {
		// Файл не выбран — тот же тихий no-op, что и пустое поле формы.
		log.Debug("no avatar file in request", sl.Err(err))
		render.JSON(w, r, response.OK())
		return
	}
	defer func() {
		_ = file.Close()
	}()

	data, err := io.ReadAll(file)
	if err != nil {
		log.Error("failed to read avatar file", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to save"))
		return
	}

	user, err := h.account.SetAvatar(r.Context(), header.Header.Get("Content-Type"), data)
	if err != nil {
		switch {
		case errors.Is(err, account.ErrInvalidFileType):
			log.Info("rejected non-image avatar", slog.String("content_type", header.Header.Get("Content-Type")))
			render.Status(r, http.StatusUnsupportedMediaType)
			render.JSON(w, r, response.Error(messages.InvalidFileType))
		case errors.Is(err, account.ErrNoAccount):
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error(messages.NoAccount))
		default:
			log.Error("failed to save avatar", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to save"))
		}
		return
	}

	log.Info("avatar saved", slog.Int("size_bytes", len(data)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"message":    messages.AvatarSaved,
		"avatar":     user.Avatar,
		"view_state": h.view.Snapshot(r.Context()),
	}))
}
