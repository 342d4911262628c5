// Package noirebackend предоставляет маршруты для основного приложения.
package noirebackend

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/nikaa770/noire-backend/internal/http/handlers/auth/login"
	"github.com/nikaa770/noire-backend/internal/http/handlers/auth/logout"
	"github.com/nikaa770/noire-backend/internal/http/handlers/auth/register"
	"github.com/nikaa770/noire-backend/internal/http/handlers/health"
	"github.com/nikaa770/noire-backend/internal/http/handlers/profile/avatar"
	profileupdate "github.com/nikaa770/noire-backend/internal/http/handlers/profile/update"
	reservationcreate "github.com/nikaa770/noire-backend/internal/http/handlers/reservation/create"
	reservationlist "github.com/nikaa770/noire-backend/internal/http/handlers/reservation/list"
	viewsync "github.com/nikaa770/noire-backend/internal/http/handlers/view/sync"
	"github.com/nikaa770/noire-backend/internal/http/middlewarectx"
	accountservice "github.com/nikaa770/noire-backend/internal/services/account"
	reservationservice "github.com/nikaa770/noire-backend/internal/services/reservation"
	viewservice "github.com/nikaa770/noire-backend/internal/services/view"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, accountService *accountservice.Service, viewService *viewservice.Service, reservationService *reservationservice.Service) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Get("/health", health.New())
		r.Get("/view", viewsync.New(logger, viewService).ServeHTTP)
		r.Get("/reservations", reservationlist.New(logger, reservationService).ServeHTTP)

		// Формы сайта с ограничением частоты
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.RateLimitMiddleware(logger))
			r.Post("/register", register.New(logger, accountService, viewService).ServeHTTP)
			r.Post("/login", login.New(logger, accountService, viewService).ServeHTTP)
			r.Post("/logout", logout.New(logger, accountService, viewService).ServeHTTP)
			r.Post("/reservations", reservationcreate.New(logger, reservationService).ServeHTTP)

			// Закрытая группа: только при действительной сессии
			r.Group(func(r chi.Router) {
				r.Use(middlewarectx.SessionGuard(accountService, logger))
				r.Put("/profile", profileupdate.New(logger, accountService, viewService).ServeHTTP)
				r.Post("/profile/avatar", avatar.New(logger, accountService, viewService).ServeHTTP)
			})
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
