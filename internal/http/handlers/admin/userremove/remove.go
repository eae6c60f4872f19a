// Package userremove предоставляет HTTP‑обработчик удаления пользователя.
//
// Удаление необратимо; ранее выданные токены удалённого пользователя
// остаются действительными до естественного истечения срока.
package userremove

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
	"github.com/magabrotheeeer/vehicle-inventory/internal/storage/repository"
)

// Service описывает интерфейс удаления пользователя.
type Service interface {
	DeleteUser(ctx context.Context, uid string) error
}

// Handler обрабатывает запрос удаления пользователя.
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
// @Summary Удалить пользователя по uid
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Уникальный uid пользователя"
// @Success 200 {object} response.Response "Подтверждение удаления"
// @Failure 403 {object} response.ErrorResponse "Требуется роль администратора"
// @Failure 404 {object} response.ErrorResponse "Пользователь не найден"
// @Router /admin/users/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.userremove"

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

	if err := h.adminService.DeleteUser(r.Context(), uid.String()); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			log.Error("user not found", slog.String("uid", uid.String()))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("user not found"))
			return
		}
		log.Error("failed to delete user", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to delete user"))
		return
	}

	log.Info("user deleted", slog.String("uid", uid.String()))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"message": "user deleted successfully",
	}))
}
