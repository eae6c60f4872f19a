// Package remove предоставляет HTTP‑обработчик удаления карточки инвентаря по её uid.
package remove

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

// Service описывает интерфейс удаления карточки.
type Service interface {
	Delete(ctx context.Context, uid string) error
}

// Handler обрабатывает запрос удаления карточки.
type Handler struct {
	log            *slog.Logger
	productService Service
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, productService Service) *Handler {
	return &Handler{
		log:            log,
		productService: productService,
	}
}

// ServeHTTP godoc
// @Summary Удалить карточку инвентаря по uid
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param id path string true "Уникальный uid карточки"
// @Success 200 {object} response.Response "Подтверждение удаления"
// @Failure 403 {object} response.ErrorResponse "Требуется роль администратора"
// @Failure 404 {object} response.ErrorResponse "Карточка не найдена"
// @Router /products/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.product.remove"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	uid, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		log.Error("failed to decode id from url", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid product id"))
		return
	}

	if err := h.productService.Delete(r.Context(), uid.String()); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			log.Error("product not found", slog.String("uid", uid.String()))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("product not found"))
			return
		}
		log.Error("failed to remove product", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to remove product"))
		return
	}

	log.Info("product removed", slog.String("uid", uid.String()))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"message": "product deleted successfully",
	}))
}
