// Package reservation содержит бизнес-логику бронирования столиков.
// Список хранится целиком как одна запись, новые заявки вставляются
// в голову — свежие всегда сверху. Заявки не редактируются и не
// удаляются, срока жизни у них нет.
package reservation

import (
	"context"
	"log/slog"
	"time"

	"github.com/nikaa770/noire-backend/internal/lib/sl"
	"github.com/nikaa770/noire-backend/internal/models"
)

// Reservations определяет методы хранилища списка бронирований.
type Reservations interface {
	// Get возвращает список бронирований, свежие в голове.
	Get(ctx context.Context) []models.Reservation
	// Set перезаписывает список целиком.
	Set(ctx context.Context, list []models.Reservation) error
}

// EventPublisher публикует событие о новой заявке для внешних
// потребителей (уведомления персоналу).
type EventPublisher interface {
	PublishReservationCreated(res models.Reservation) error
}

// Service реализует операции над списком бронирований.
type Service struct {
	repo   Reservations
	events EventPublisher // nil — публикация выключена
	log    *slog.Logger
}

// NewService создает новый экземпляр Service.
func NewService(repo Reservations, events EventPublisher, log *slog.Logger) *Service {
	return &Service{repo: repo, events: events, log: log}
}

// Create добавляет заявку в голову списка и возвращает её вместе с
// обновлённым списком. ID — таймштамп создания, наружу не показывается.
// Публикация события — best-effort: недоступный брокер не ломает заявку.
func (s *Service) Create(ctx context.Context, req models.CreateReservationRequest) (models.Reservation, []models.Reservation, error) {
	res := models.Reservation{
		ID:     time.Now().UnixMilli(),
		Name:   req.Name,
		Guests: req.Guests,
		Date:   req.Date,
		Time:   req.Time,
		Notes:  req.Notes,
	}

	list := s.repo.Get(ctx)
	list = append([]models.Reservation{res}, list...)
	if err := s.repo.Set(ctx, list); err != nil {
		return models.Reservation{}, nil, err
	}

	s.log.Info("created reservation", slog.Int64("id", res.ID), slog.Int("total", len(list)))

	if s.events != nil {
		if err := s.events.PublishReservationCreated(res); err != nil {
			s.log.Warn("failed to publish reservation event", sl.Err(err))
		}
	}

	return res, list, nil
}

// List возвращает все заявки, свежие сверху.
func (s *Service) List(ctx context.Context) []models.Reservation {
	return s.repo.Get(ctx)
}
