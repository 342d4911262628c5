// Package models содержит доменные структуры сайта ресторана Noire:
// учётную запись посетителя, сессию, бронирования столиков и состояние
// представления, по которому фронтенд синхронизирует свои фрагменты.
package models

import "time"

// User представляет единственную локальную учётную запись посетителя.
// Email всегда приводится к нижнему регистру до сохранения и сравнения.
// Password хранится как есть и сравнивается дословно — это мок-аккаунт
// без настоящей аутентификации. CreatedAt выставляется один раз при
// регистрации и далее не меняется.
type User struct {
	Name      string    `json:"name"`
	Username  string    `json:"username"` // отображаемый псевдоним, по умолчанию равен Name
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	Phone     string    `json:"phone"`
	Avatar    string    `json:"avatar,omitempty"` // URI или data-URI
	CreatedAt time.Time `json:"created_at"`
}

// RegisterRequest используется для приёма данных формы регистрации,
// прежде чем из них будет собран User. Username необязателен —
// при пустом значении подставляется Name.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Username string `json:"username"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
}

// UpdateProfileRequest используется для приёма данных формы редактирования
// профиля. Email и пароль изменяемы, CreatedAt — нет.
type UpdateProfileRequest struct {
	Name     string `json:"name" validate:"required"`
	Username string `json:"username"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
}
