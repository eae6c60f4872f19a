package middlewarectx

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/vehicle-inventory/internal/http/response"
)

// AdminMiddleware возвращает HTTP middleware, который требует роли
// администратора. Должен стоять после JWTMiddleware: отсутствующие в
// контексте claims, как и роль наблюдателя, дают 403.
func AdminMiddleware(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.AdminMiddleware"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			isAdmin, ok := r.Context().Value(UserIsAdmin).(bool)
			if !ok || !isAdmin {
				log.Error("admin privileges required")
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("admin privileges required"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
