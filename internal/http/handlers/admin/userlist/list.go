// Package userlist предоставляет HTTP‑обработчик списка пользователей
// для панели администрирования. Хэш пароля никогда не сериализуется.
package userlist

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/vehicle-inventory/internal/http/response"
	"github.com/magabrotheeeer/vehicle-inventory/internal/lib/sl"
	"github.com/magabrotheeeer/vehicle-inventory/internal/models"
)

// Service описывает интерфейс получения списка пользователей.
type Service interface {
	ListUsers(ctx context.Context) ([]*models.User, error)
}

// Handler обрабатывает запрос списка пользователей.
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
// @Summary Получить список всех пользователей
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response "count: число, users: массив пользователей без хэша пароля"
// @Failure 403 {object} response.ErrorResponse "Требуется роль администратора"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /admin/users [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.userlist"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	res, err := h.adminService.ListUsers(r.Context())
	if err != nil {
		log.Error("failed to list users", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list users"))
		return
	}
	if res == nil {
		res = []*models.User{}
	}

	log.Info("users listed", slog.Int("count", len(res)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"count": len(res),
		"users": res,
	}))
}
