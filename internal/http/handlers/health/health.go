// Package health реализует проверку живости сервиса.
package health

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/nikaa770/noire-backend/internal/http/response"
)

// New возвращает обработчик проверки живости.
func New() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, response.StatusOKWithData(map[string]any{
			"status": "healthy",
		}))
	}
}
