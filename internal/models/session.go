package models

// Session — запись о текущем визите. Сессия действительна только если
// LoggedIn равен true и Email совпадает с email сохранённого пользователя.
// Пустой Email соответствует отсутствию привязанной учётной записи.
type Session struct {
	LoggedIn bool   `json:"loggedIn"`
	Email    string `json:"email"`
}

// EmptySession возвращает сессию в исходном состоянии: не залогинен,
// без привязки к учётной записи. Используется как fallback при чтении
// и как результат выхода из аккаунта.
func EmptySession() Session {
	return Session{LoggedIn: false, Email: ""}
}
