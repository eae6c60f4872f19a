// Package userrole предоставляет HTTP‑обработчик переключения роли
// пользователя между администратором и наблюдателем.
package userrole

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/google/uuid"

	"github.com/magabrotheeeer/vehicle-inventory/internal/http/response"
	"github.com/magabrotheeeer/vehicle-inventory/internal/lib/sl"
	"github.com/magabrotheeeer/vehicle-inventory/internal/models"
	"github.com/magabrotheeeer/vehicle-inventory/internal/storage/repository"
)

// Service описывает интерфейс переключения роли.
type Service interface {
	ToggleRole(ctx context.Context, uid string) (*models.User, error)
}

// Handler обрабатывает запрос переключения роли.
type Handler struct {
	log          *slog.Logger
	adminService Service
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, adminService Service) *Handler {
	return &Handler{
		log:          log,
		adminService: adminService,
	}
}

// ServeHTTP godoc
// @Summary Переключить роль пользователя
// @Description Безусловно переключает признак администратора и возвращает обновлённую запись.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Уникальный uid пользователя"
// @Success 200 {object} response.Response "Обновлённый пользователь"
// @Failure 403 {object} response.ErrorResponse "Требуется роль администратора"
// @Failure 404 {object} response.ErrorResponse "Пользователь не найден"
// @Router /admin/users/{id}/role [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.userrole"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	uid, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		log.Error("failed to decode id from url", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid user id"))
		return
	}

	res, err := h.adminService.ToggleRole(r.Context(), uid.String())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			log.Error("user not found", slog.String("uid", uid.String()))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("user not found"))
			return
		}
		log.Error("failed to toggle user role", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to toggle user role"))
		return
	}

	log.Info("user role toggled",
		slog.String("uid", res.UID),
		slog.Bool("is_admin", res.IsAdmin))
	render.JSON(w, r, response.StatusOKWithData(res))
}
