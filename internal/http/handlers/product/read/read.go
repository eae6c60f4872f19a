// Package read предоставляет HTTP‑обработчик для получения карточки по её uid.
package read

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

// Service описывает интерфейс получения одной карточки.
type Service interface {
	Get(ctx context.Context, uid string) (*models.Product, error)
}

// Handler обрабатывает запрос одной карточки.
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
// @Summary Получить карточку по uid
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param id path string true "Уникальный uid карточки"
// @Success 200 {object} response.Response "Карточка"
// @Failure 400 {object} response.ErrorResponse "Некорректный uid"
// @Failure 404 {object} response.ErrorResponse "Карточка не найдена"
// @Router /products/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.product.read"

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

	res, err := h.productService.Get(r.Context(), uid.String())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			log.Error("product not found", slog.String("uid", uid.String()))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("product not found"))
			return
		}
		log.Error("failed to read product", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to read product"))
		return
	}

	render.JSON(w, r, response.StatusOKWithData(res))
}
