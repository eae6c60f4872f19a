// Package filter предоставляет HTTP‑обработчик ограниченного фильтра инвентаря.
//
// Критерии приходят в query string (q, minPrice, maxPrice, minStock),
// независимы и объединяются через AND. Числовой критерий, который не
// удаётся привести к числу, трактуется как отсутствующий; запрос без
// критериев возвращает тот же набор, что и список.
package filter

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/vehicle-inventory/internal/http/response"
	"github.com/magabrotheeeer/vehicle-inventory/internal/lib/sl"
	"github.com/magabrotheeeer/vehicle-inventory/internal/models"
)

// Service описывает интерфейс фильтрации карточек.
type Service interface {
	Filter(ctx context.Context, filter models.FilterProducts) ([]*models.Product, error)
}

// Handler обрабатывает запрос фильтрации инвентаря.
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

// parseCriteria собирает фильтр из query string запроса.
func parseCriteria(r *http.Request) models.FilterProducts {
	q := r.URL.Query()

	filter := models.FilterProducts{
		Query: q.Get("q"),
	}
	if v, err := strconv.ParseFloat(q.Get("minPrice"), 64); err == nil {
		filter.MinPrice = &v
	}
	if v, err := strconv.ParseFloat(q.Get("maxPrice"), 64); err == nil {
		filter.MaxPrice = &v
	}
	if v, err := strconv.Atoi(q.Get("minStock")); err == nil {
		filter.MinStock = &v
	}
	return filter
}

// ServeHTTP godoc
// @Summary Отфильтровать карточки инвентаря
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param q query string false "Подстрока названия без учета регистра"
// @Param minPrice query number false "Нижняя граница цены (включительно)"
// @Param maxPrice query number false "Верхняя граница цены (включительно)"
// @Param minStock query integer false "Нижняя граница остатка (включительно)"
// @Success 200 {object} response.Response "count: число, products: массив карточек"
// @Failure 401 {object} response.ErrorResponse "Нет токена"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /products/filter [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.product.filter"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	criteria := parseCriteria(r)

	res, err := h.productService.Filter(r.Context(), criteria)
	if err != nil {
		log.Error("failed to filter products", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to filter products"))
		return
	}
	if res == nil {
		res = []*models.Product{}
	}

	log.Info("products filtered", slog.Int("count", len(res)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"count":    len(res),
		"products": res,
	}))
}
