package stores

import (
	"context"
	"log/slog"

	"github.com/nikaa770/noire-backend/internal/lib/sl"
	"github.com/nikaa770/noire-backend/internal/models"
	"github.com/nikaa770/noire-backend/internal/storage"
)

// SessionStore — хранилище единственной сессии. Get никогда не
// возвращает "ничего": fallback — пустая сессия.
type SessionStore struct {
	kv  storage.Adapter
	log *slog.Logger
}

// NewSessionStore создает хранилище сессии поверх адаптера.
func NewSessionStore(kv storage.Adapter, log *slog.Logger) *SessionStore {
	return &SessionStore{kv: kv, log: log}
}

// Get возвращает сохранённую сессию, а при её отсутствии или
// повреждении — пустую.
func (s *SessionStore) Get(ctx context.Context) models.Session {
	var session models.Session
	found, err := s.kv.Get(ctx, SessionKey, &session)
	if err != nil {
		s.log.Warn("masking corrupt session record", sl.Err(err))
		return models.EmptySession()
	}
	if !found {
		return models.EmptySession()
	}
	return session
}

// Set перезаписывает сессию.
func (s *SessionStore) Set(ctx context.Context, session models.Session) error {
	return s.kv.Set(ctx, SessionKey, session)
}
