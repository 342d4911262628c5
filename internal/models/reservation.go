package models

// Reservation — одна заявка на бронирование столика. ID — таймштамп
// создания в миллисекундах, используется только для уникальности и
// порядка, наружу не показывается. Guests хранится строкой как ввёл
// посетитель, без числовой валидации. Записи не изменяются и не
// удаляются, новые вставляются в голову списка.
type Reservation struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Guests string `json:"guests"`
	Date   string `json:"date"`
	Time   string `json:"time"`
	Notes  string `json:"notes,omitempty"`
}

// CreateReservationRequest используется для приёма данных формы
// бронирования. Notes необязательны.
type CreateReservationRequest struct {
	Name   string `json:"name" validate:"required"`
	Guests string `json:"guests" validate:"required"`
	Date   string `json:"date" validate:"required"`
	Time   string `json:"time" validate:"required"`
	Notes  string `json:"notes"`
}
