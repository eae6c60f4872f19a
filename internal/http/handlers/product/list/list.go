// Package list предоставляет HTTP‑обработчик для получения всего инвентаря.
package list

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

// Service описывает интерфейс получения списка карточек.
type Service interface {
	List(ctx context.Context) ([]*models.Product, error)
}

// Handler обрабатывает запрос списка инвентаря.
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
// @Summary Получить список всех карточек
// @Tags products
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response "count: число, products: массив карточек"
// @Failure 401 {object} response.ErrorResponse "Нет токена"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /products [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.product.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	res, err := h.productService.List(r.Context())
	if err != nil {
		log.Error("failed to list products", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list products"))
		return
	}
	if res == nil {
		res = []*models.Product{}
	}

	log.Info("products listed", slog.Int("count", len(res)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"count":    len(res),
		"products": res,
	}))
}
