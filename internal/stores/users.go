// Package stores реализует три типизированных хранилища записей сайта
// поверх storage.Adapter: учётную запись (синглтон), сессию (синглтон)
// и список бронирований. Схемная валидация не выполняется: повреждённые
// данные маскируются fallback-значением и никогда не чинятся.
package stores

import (
	"context"
	"log/slog"

	"github.com/nikaa770/noire-backend/internal/lib/sl"
	"github.com/nikaa770/noire-backend/internal/models"
	"github.com/nikaa770/noire-backend/internal/storage"
)

// Ключи записей в долговременном хранилище.
const (
	UserKey         = "noire_user"
	SessionKey      = "noire_session"
	ReservationsKey = "noire_reservations"
)

// UserStore — хранилище единственной учётной записи.
type UserStore struct {
	kv  storage.Adapter
	log *slog.Logger
}

// NewUserStore создает хранилище учётной записи поверх адаптера.
func NewUserStore(kv storage.Adapter, log *slog.Logger) *UserStore {
	return &UserStore{kv: kv, log: log}
}

// Get возвращает сохранённую учётную запись или nil, если её нет
// либо сохранённые данные не читаются.
func (s *UserStore) Get(ctx context.Context) *models.User {
	var user models.User
	found, err := s.kv.Get(ctx, UserKey, &user)
	if err != nil {
		s.log.Warn("masking corrupt user record", sl.Err(err))
		return nil
	}
	if !found {
		return nil
	}
	return &user
}

// Set перезаписывает учётную запись.
func (s *UserStore) Set(ctx context.Context, user models.User) error {
	return s.kv.Set(ctx, UserKey, user)
}
