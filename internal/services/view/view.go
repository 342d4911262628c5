// Package view вычисляет состояние представления и рендерит
// HTML-фрагменты, через которые страницы сайта синхронизируются
// с текущей сессией. Это единственная точка, в которой мутации
// учётной записи и сессии становятся видимыми: каждый мутирующий
// обработчик берёт свежий Snapshot и кладёт его в ответ.
package view

import (
	"context"
	"log/slog"

	"github.com/nikaa770/noire-backend/internal/models"
)

// Policy описывает политику сессии, по которой строится представление.
type Policy interface {
	// IsAuthenticated сообщает, считается ли посетитель вошедшим.
	IsAuthenticated(ctx context.Context) bool
	// CurrentUser возвращает учётную запись или nil.
	CurrentUser(ctx context.Context) *models.User
}

// Service строит состояние представления по текущим записям.
type Service struct {
	policy Policy
	log    *slog.Logger
}

// NewService создает новый экземпляр Service.
func NewService(policy Policy, log *slog.Logger) *Service {
	return &Service{policy: policy, log: log}
}

// Snapshot заново вычисляет аутентификацию и текущего пользователя
// и возвращает видимость каждого фрагмента: плашка пользователя и
// кнопка выхода видны вошедшему, гостевые элементы — обратное.
// Функция чистая относительно состояния хранилищ, повторный вызов
// без мутаций даёт идентичный результат.
func (s *Service) Snapshot(ctx context.Context) models.ViewState {
	authenticated := s.policy.IsAuthenticated(ctx)
	user := s.policy.CurrentUser(ctx)

	state := models.ViewState{
		Authenticated: authenticated,
		ShowChip:      authenticated && user != nil,
		ShowGuest:     !authenticated,
		ShowLogout:    authenticated,
	}
	if state.ShowChip {
		state.Name = user.Username
		state.Avatar = user.Avatar
	}
	return state
}
