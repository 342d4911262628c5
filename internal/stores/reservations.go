package stores

import (
	"context"
	"log/slog"

	"github.com/nikaa770/noire-backend/internal/lib/sl"
	"github.com/nikaa770/noire-backend/internal/models"
	"github.com/nikaa770/noire-backend/internal/storage"
)

// ReservationStore — хранилище упорядоченного списка бронирований,
// свежие записи в голове списка.
type ReservationStore struct {
	kv  storage.Adapter
	log *slog.Logger
}

// NewReservationStore создает хранилище бронирований поверх адаптера.
func NewReservationStore(kv storage.Adapter, log *slog.Logger) *ReservationStore {
	return &ReservationStore{kv: kv, log: log}
}

// Get возвращает список бронирований, при отсутствии или повреждении
// данных — пустой список.
func (s *ReservationStore) Get(ctx context.Context) []models.Reservation {
	var list []models.Reservation
	found, err := s.kv.Get(ctx, ReservationsKey, &list)
	if err != nil {
		s.log.Warn("masking corrupt reservations record", sl.Err(err))
		return []models.Reservation{}
	}
	if !found || list == nil {
		return []models.Reservation{}
	}
	return list
}

// Set перезаписывает список целиком.
func (s *ReservationStore) Set(ctx context.Context, list []models.Reservation) error {
	return s.kv.Set(ctx, ReservationsKey, list)
}
