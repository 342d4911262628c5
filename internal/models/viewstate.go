package models

// ViewState — явное состояние представления, по которому фронтенд
// показывает или прячет свои фрагменты: плашку пользователя
// (data-user-chip), гостевые элементы (data-auth-guest) и кнопки
// выхода (data-logout). Вычисляется заново после каждой мутации
// пользователя или сессии и возвращается в ответе каждой из них.
type ViewState struct {
	Authenticated bool   `json:"authenticated"`
	ShowChip      bool   `json:"show_chip"`
	ShowGuest     bool   `json:"show_guest"`
	ShowLogout    bool   `json:"show_logout"`
	Name          string `json:"name,omitempty"`
	Avatar        string `json:"avatar,omitempty"`
}
