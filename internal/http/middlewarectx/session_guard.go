// Package middlewarectx содержит HTTP middleware приложения: охрану
// закрытых маршрутов по состоянию сессии и ограничение частоты запросов.
//
// SessionGuard пускает дальше только аутентифицированного посетителя:
// сессия активна и ссылается на существующую учётную запись. Никаких
// токенов нет — источником истины служат сохранённые записи.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/nikaa770/noire-backend/internal/http/response"
	"github.com/nikaa770/noire-backend/internal/lib/messages"
	"github.com/nikaa770/noire-backend/internal/lib/sl"
)

// Policy описывает политику сессии для охраны маршрутов.
type Policy interface {
	IsAuthenticated(ctx context.Context) bool
}

// SessionGuard возвращает middleware, пропускающий запрос только при
// действительной сессии, иначе — 401 со статусным сообщением.
func SessionGuard(policy Policy, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.SessionGuard"

			if !policy.IsAuthenticated(r.Context()) {
				log.Info("unauthenticated request rejected",
					sl.Op(op),
					slog.String("request_id", middleware.GetReqID(r.Context())),
					slog.String("path", r.URL.Path),
				)
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error(messages.NoAccount))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
