// Package account содержит бизнес-логику учётной записи и сессии:
// регистрацию, вход, выход, редактирование профиля и правило
// "аутентифицирован ли посетитель". Сессия действительна только когда
// флаг LoggedIn поднят и её email совпадает с email сохранённого
// пользователя; изменение email через профиль перевыпускает сессию
// с новым значением в той же операции.
package account

import (
	"context"
	"encoding/base64"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/nikaa770/noire-backend/internal/models"
)

var (
	// ErrNoAccount — учётная запись ещё не создана.
	ErrNoAccount = errors.New("no account registered")
	// ErrInvalidCredentials — email или пароль не совпали с сохранёнными.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidFileType — файл аватара не является изображением.
	ErrInvalidFileType = errors.New("avatar file is not an image")
)

// Users определяет методы хранилища учётной записи.
type Users interface {
	// Get возвращает учётную запись или nil, если её нет.
	Get(ctx context.Context) *models.User
	// Set перезаписывает учётную запись.
	Set(ctx context.Context, user models.User) error
}

// Sessions определяет методы хранилища сессии.
type Sessions interface {
	// Get возвращает сессию, при отсутствии — пустую.
	Get(ctx context.Context) models.Session
	// Set перезаписывает сессию.
	Set(ctx context.Context, session models.Session) error
}

// Service реализует политику сессии поверх хранилищ записей.
type Service struct {
	users    Users
	sessions Sessions
	log      *slog.Logger
}

// NewService создает новый экземпляр Service.
func NewService(users Users, sessions Sessions, log *slog.Logger) *Service {
	return &Service{users: users, sessions: sessions, log: log}
}

// CurrentUser возвращает сохранённую учётную запись или nil.
func (s *Service) CurrentUser(ctx context.Context) *models.User {
	return s.users.Get(ctx)
}

// IsAuthenticated сообщает, считается ли посетитель вошедшим:
// сессия активна, пользователь существует и email сессии равен
// email пользователя (оба уже в нижнем регистре).
func (s *Service) IsAuthenticated(ctx context.Context) bool {
	session := s.sessions.Get(ctx)
	if !session.LoggedIn {
		return false
	}
	user := s.users.Get(ctx)
	if user == nil {
		return false
	}
	return session.Email == user.Email
}

// Register безусловно перезаписывает учётную запись — последняя
// регистрация побеждает, проверки "уже существует" нет — и сразу
// логинит нового пользователя. Бронирования при этом не трогаются,
// они не привязаны к учётной записи.
func (s *Service) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	username := req.Username
	if username == "" {
		username = req.Name
	}
	user := models.User{
		Name:      req.Name,
		Username:  username,
		Email:     strings.ToLower(req.Email),
		Password:  req.Password,
		Phone:     req.Phone,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.users.Set(ctx, user); err != nil {
		return nil, err
	}
	if err := s.sessions.Set(ctx, models.Session{LoggedIn: true, Email: user.Email}); err != nil {
		return nil, err
	}

	s.log.Info("registered new account", slog.String("email", user.Email))
	return &user, nil
}

// Login сверяет email и пароль с сохранённой учётной записью.
// Пароль сравнивается дословно: это мок-аккаунт в локальном
// хранилище, настоящей аутентификации у сайта нет.
func (s *Service) Login(ctx context.Context, email, password string) (*models.User, error) {
	user := s.users.Get(ctx)
	if user == nil {
		return nil, ErrNoAccount
	}
	if strings.ToLower(email) != user.Email || password != user.Password {
		return nil, ErrInvalidCredentials
	}

	if err := s.sessions.Set(ctx, models.Session{LoggedIn: true, Email: user.Email}); err != nil {
		return nil, err
	}

	s.log.Info("logged in", slog.String("email", user.Email))
	return user, nil
}

// Logout сбрасывает сессию в исходное состояние независимо от того,
// была ли она активна.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.sessions.Set(ctx, models.EmptySession()); err != nil {
		return err
	}
	s.log.Info("logged out")
	return nil
}

// UpdateProfile обновляет изменяемые поля учётной записи. CreatedAt и
// аватар сохраняются как были. При смене email активная сессия тут же
// перевыпускается с новым значением, чтобы посетителю не пришлось
// логиниться заново.
func (s *Service) UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (*models.User, error) {
	user := s.users.Get(ctx)
	if user == nil {
		return nil, ErrNoAccount
	}

	username := req.Username
	if username == "" {
		username = req.Name
	}
	newEmail := strings.ToLower(req.Email)
	emailChanged := newEmail != user.Email

	user.Name = req.Name
	user.Username = username
	user.Email = newEmail
	user.Password = req.Password
	user.Phone = req.Phone

	if err := s.users.Set(ctx, *user); err != nil {
		return nil, err
	}

	if emailChanged {
		session := s.sessions.Get(ctx)
		if session.LoggedIn {
			session.Email = newEmail
			if err := s.sessions.Set(ctx, session); err != nil {
				return nil, err
			}
			s.log.Info("session re-issued after email change", slog.String("email", newEmail))
		}
	}

	return user, nil
}

// SetAvatar встраивает загруженный файл в учётную запись как data-URI.
// Принимаются только файлы с типом image/*; ограничения на размер нет,
// внешнего хранилища у аватаров нет.
func (s *Service) SetAvatar(ctx context.Context, contentType string, data []byte) (*models.User, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return nil, ErrInvalidFileType
	}
	user := s.users.Get(ctx)
	if user == nil {
		return nil, ErrNoAccount
	}

	user.Avatar = "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data)
	if err := s.users.Set(ctx, *user); err != nil {
		return nil, err
	}

	s.log.Info("avatar updated", slog.Int("size_bytes", len(data)))
	return user, nil
}
