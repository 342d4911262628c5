// Package noirebackend собирает приложение: хранилище, кэш, брокер
// событий, сервисы и HTTP-сервер.
package noirebackend

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/nikaa770/noire-backend/internal/cache"
	"github.com/nikaa770/noire-backend/internal/config"
	"github.com/nikaa770/noire-backend/internal/lib/sl"
	"github.com/nikaa770/noire-backend/internal/migrations"
	"github.com/nikaa770/noire-backend/internal/rabbitmq"
	accountservice "github.com/nikaa770/noire-backend/internal/services/account"
	reservationservice "github.com/nikaa770/noire-backend/internal/services/reservation"
	viewservice "github.com/nikaa770/noire-backend/internal/services/view"
	"github.com/nikaa770/noire-backend/internal/storage"
	"github.com/nikaa770/noire-backend/internal/stores"
)

// App держит HTTP-сервер и ресурсы, которые нужно закрыть при остановке.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *storage.Storage
}

// New создаёт приложение по конфигу: подключает PostgreSQL и применяет
// миграции, поднимает redis-кэш поверх хранилища, подключается к
// RabbitMQ (его отсутствие не фатально — публикация событий просто
// выключается), собирает сервисы и маршруты.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := storage.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}
	kv := storage.NewCached(db, cacheRedis, logger)

	var publisher *rabbitmq.Publisher
	if cfg.URLRabbit != "" {
		conn, err := rabbitmq.Connect(cfg.URLRabbit, cfg.ConnectRetries, cfg.ConnectDelay)
		if err != nil {
			logger.Warn("rabbitmq unavailable, reservation events disabled", sl.Err(err))
		} else {
			ch, err := rabbitmq.SetupChannel(conn, rabbitmq.GetReservationQueues())
			if err != nil {
				logger.Warn("rabbitmq channel setup failed, reservation events disabled", sl.Err(err))
			} else {
				publisher = rabbitmq.NewPublisher(ch)
			}
		}
	}

	userStore := stores.NewUserStore(kv, logger)
	sessionStore := stores.NewSessionStore(kv, logger)
	reservationStore := stores.NewReservationStore(kv, logger)

	accountService := accountservice.NewService(userStore, sessionStore, logger)
	viewService := viewservice.NewService(accountService, logger)

	var events reservationservice.EventPublisher
	if publisher != nil {
		events = publisher
	}
	reservationService := reservationservice.NewService(reservationStore, events, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, accountService, viewService, reservationService)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
	}, nil
}

// Run запускает HTTP-сервер и останавливает его по отмене контекста.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		_ = a.db.DB.Close()
		return err
	}
}
