// Package update предоставляет HTTP‑обработчик обновления карточки инвентаря.
//
// Обновление перезаписывает все поля карточки; нарушение инвариантов
// отклоняется, предыдущие значения остаются без изменений.
package update

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"
	"github.com/google/uuid"

	"github.com/magabrotheeeer/vehicle-inventory/internal/http/response"
	"github.com/magabrotheeeer/vehicle-inventory/internal/lib/sl"
	"github.com/magabrotheeeer/vehicle-inventory/internal/models"
	productservice "github.com/magabrotheeeer/vehicle-inventory/internal/services/product"
	"github.com/magabrotheeeer/vehicle-inventory/internal/storage/repository"
)

// Service описывает интерфейс обновления карточки.
type Service interface {
	Update(ctx context.Context, uid string, dummy models.DummyProduct) (*models.Product, error)
}

// Handler обрабатывает запрос обновления карточки.
type Handler struct {
	log            *slog.Logger
	productService Service
	validate       *validator.Validate
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, productService Service) *Handler {
	return &Handler{
		log:            log,
		productService: productService,
		validate:       validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Обновить карточку инвентаря
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Уникальный uid карточки"
// @Param request body models.DummyProduct true "Поля карточки"
// @Success 200 {object} response.Response "Обновлённая карточка"
// @Failure 400 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 403 {object} response.ErrorResponse "Требуется роль администратора"
// @Failure 404 {object} response.ErrorResponse "Карточка не найдена"
// @Router /products/{id} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.product.update"

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

	var req models.DummyProduct
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	res, err := h.productService.Update(r.Context(), uid.String(), req)
	if err != nil {
		switch {
		case errors.Is(err, productservice.ErrInvalidProduct):
			log.Error("invalid product data", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
		case errors.Is(err, repository.ErrNotFound):
			log.Error("product not found", slog.String("uid", uid.String()))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("product not found"))
		default:
			log.Error("failed to update product", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to update product"))
		}
		return
	}

	log.Info("product updated", slog.String("uid", res.UID))
	render.JSON(w, r, response.StatusOKWithData(res))
}
