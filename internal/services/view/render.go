package view

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/nikaa770/noire-backend/internal/lib/messages"
	"github.com/nikaa770/noire-backend/internal/models"
)

// Фрагмент шапки: плашка пользователя, гостевая ссылка и кнопка выхода.
// Атрибуты data-* — контракт между бэкендом и скриптами страницы,
// скрытие делается атрибутом hidden, чтобы повторный рендер того же
// состояния давал байт-в-байт тот же фрагмент.
var chipTmpl = template.Must(template.New("chip").Parse(
	`<div class="user-chip" data-user-chip{{if not .ShowChip}} hidden{{end}}>` +
		`<img data-user-chip-img src="{{.Avatar}}" alt="{{.Name}}">` +
		`<span data-user-chip-name>{{.Name}}</span>` +
		`</div>` +
		`<a class="nav-link auth-link" data-auth-guest{{if not .ShowGuest}} hidden{{end}} href="/login.html">შესვლა</a>` +
		`<button class="logout-btn" data-logout{{if not .ShowLogout}} hidden{{end}} type="button">გასვლა</button>`))

var reservationsTmpl = template.Must(template.New("reservations").Parse(
	`{{if .}}<ul class="reservations-list">{{range .}}` +
		`<li class="reservation-item"><span class="reservation-name">{{.Name}}</span>` +
		`<span class="reservation-when">{{.Date}} {{.Time}}</span>` +
		`<span class="reservation-guests">{{.Guests}}</span>` +
		`{{if .Notes}}<span class="reservation-notes">{{.Notes}}</span>{{end}}</li>` +
		`{{end}}</ul>{{else}}<p class="reservations-empty">` + messages.ReservationsEmpty + `</p>{{end}}`))

// RenderChip рендерит фрагмент шапки для переданного состояния.
func RenderChip(state models.ViewState) (string, error) {
	const op = "view.RenderChip"
	var buf bytes.Buffer
	if err := chipTmpl.Execute(&buf, state); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return buf.String(), nil
}

// RenderReservations рендерит список бронирований, свежие сверху.
// Для пустого списка возвращается плейсхолдер и ни одного элемента.
func RenderReservations(list []models.Reservation) (string, error) {
	const op = "view.RenderReservations"
	var buf bytes.Buffer
	if err := reservationsTmpl.Execute(&buf, list); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return buf.String(), nil
}
