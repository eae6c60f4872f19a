// Package create предоставляет HTTP‑обработчик создания карточки инвентаря.
//
// Тело запроса отображается в явную структуру DummyProduct: неизвестные
// поля отбрасываются и никогда не сохраняются. Нарушение инвариантов
// (отрицательная цена или остаток) отклоняется до изменения хранилища.
package create

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/vehicle-inventory/internal/http/response"
	"github.com/magabrotheeeer/vehicle-inventory/internal/lib/sl"
	"github.com/magabrotheeeer/vehicle-inventory/internal/models"
	productservice "github.com/magabrotheeeer/vehicle-inventory/internal/services/product"
)

// Service описывает интерфейс создания карточки.
type Service interface {
	Create(ctx context.Context, dummy models.DummyProduct) (*models.Product, error)
}

// Handler обрабатывает запрос создания карточки.
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
// @Summary Создать карточку инвентаря
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.DummyProduct true "Поля карточки"
// @Success 201 {object} response.Response "Созданная карточка"
// @Failure 400 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 403 {object} response.ErrorResponse "Требуется роль администратора"
// @Router /products [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.product.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

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

	res, err := h.productService.Create(r.Context(), req)
	if err != nil {
		if errors.Is(err, productservice.ErrInvalidProduct) {
			log.Error("invalid product data", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}
		log.Error("failed to create product", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to create product"))
		return
	}

	log.Info("product created", slog.String("uid", res.UID))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, response.StatusOKWithData(res))
}
