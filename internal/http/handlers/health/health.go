// Package health предоставляет HTTP‑обработчик проверки живости сервиса.
package health

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/magabrotheeeer/vehicle-inventory/internal/http/response"
)

// New возвращает обработчик, подтверждающий работоспособность API.
func New() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, response.StatusOKWithData(map[string]any{
			"message": "vehicle inventory API is running",
		}))
	}
}
