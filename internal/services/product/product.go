// Package product содержит бизнес-логику работы с инвентарём:
// проверку инвариантов записи, преобразование входных данных
// и оркестрацию кэша горячих чтений.
package product

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/magabrotheeeer/vehicle-inventory/internal/lib/sl"
	"github.com/magabrotheeeer/vehicle-inventory/internal/models"
)

// dateLayout формат дат техосмотра и обслуживания во входных запросах.
const dateLayout = "2006-01-02"

// cacheTTL время жизни закэшированной карточки.
const cacheTTL = 5 * time.Minute

// ErrInvalidProduct запись нарушает инварианты модели данных
// (пустое название, отрицательная цена, отрицательный остаток).
var ErrInvalidProduct = errors.New("invalid product data")

// ProductRepository описывает контракт хранилища инвентаря.
type ProductRepository interface {
	CreateProduct(ctx context.Context, product models.Product) (*models.Product, error)
	GetProduct(ctx context.Context, uid string) (*models.Product, error)
	ListProducts(ctx context.Context) ([]*models.Product, error)
	FilterProducts(ctx context.Context, filter models.FilterProducts) ([]*models.Product, error)
	UpdateProduct(ctx context.Context, uid string, product models.Product) (*models.Product, error)
	DeleteProduct(ctx context.Context, uid string) error
}

// ProductCache описывает контракт кэша одиночных карточек.
type ProductCache interface {
	Get(key string, result any) (bool, error)
	Set(key string, value any, expiration time.Duration) error
	Invalidate(key string) error
}

// Service реализует операции над инвентарём поверх хранилища и кэша.
type Service struct {
	repo  ProductRepository
	cache ProductCache
	log   *slog.Logger
}

// NewService создает новый экземпляр Service.
func NewService(repo ProductRepository, cache ProductCache, log *slog.Logger) *Service {
	return &Service{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

func cacheKey(uid string) string {
	return fmt.Sprintf("product:%s", uid)
}

// buildProduct преобразует входной DTO в доменную модель, применяя
// инварианты записи. Нарушение возвращает ErrInvalidProduct, хранилище
// при этом не затрагивается.
func buildProduct(dummy models.DummyProduct) (*models.Product, error) {
	name := strings.TrimSpace(dummy.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is empty", ErrInvalidProduct)
	}
	if dummy.Price == nil || *dummy.Price < 0 {
		return nil, fmt.Errorf("%w: price must be >= 0", ErrInvalidProduct)
	}
	if dummy.Stock == nil || *dummy.Stock < 0 {
		return nil, fmt.Errorf("%w: stock must be >= 0", ErrInvalidProduct)
	}
	p := &models.Product{
		Name:        name,
		Price:       *dummy.Price,
		Stock:       *dummy.Stock,
		Description: strings.TrimSpace(dummy.Description),
		ImageURL:    dummy.ImageURL,
	}
	if dummy.Mileage != nil {
		if *dummy.Mileage < 0 {
			return nil, fmt.Errorf("%w: mileage must be >= 0", ErrInvalidProduct)
		}
		p.Mileage = *dummy.Mileage
	}
	if dummy.ITVDate != "" {
		itv, err := time.Parse(dateLayout, dummy.ITVDate)
		if err != nil {
			return nil, fmt.Errorf("%w: itv_date must be in format %s", ErrInvalidProduct, dateLayout)
		}
		p.ITVDate = &itv
	}
	if dummy.LastServiceDate != "" {
		service, err := time.Parse(dateLayout, dummy.LastServiceDate)
		if err != nil {
			return nil, fmt.Errorf("%w: last_service_date must be in format %s", ErrInvalidProduct, dateLayout)
		}
		p.LastServiceDate = &service
	}
	return p, nil
}

// Create проверяет инварианты и сохраняет новую карточку.
func (s *Service) Create(ctx context.Context, dummy models.DummyProduct) (*models.Product, error) {
	p, err := buildProduct(dummy)
	if err != nil {
		return nil, err
	}
	return s.repo.CreateProduct(ctx, *p)
}

// Get возвращает карточку по uid, используя кэш горячих чтений.
// Ошибки кэша логируются и не влияют на результат.
func (s *Service) Get(ctx context.Context, uid string) (*models.Product, error) {
	var cached models.Product
	found, err := s.cache.Get(cacheKey(uid), &cached)
	if err != nil {
		s.log.Warn("product cache read failed", sl.Err(err))
	}
	if found {
		return &cached, nil
	}

	p, err := s.repo.GetProduct(ctx, uid)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(cacheKey(uid), p, cacheTTL); err != nil {
		s.log.Warn("product cache write failed", sl.Err(err))
	}
	return p, nil
}

// List возвращает все карточки инвентаря.
func (s *Service) List(ctx context.Context) ([]*models.Product, error) {
	return s.repo.ListProducts(ctx)
}

// Filter возвращает карточки, удовлетворяющие всем заданным критериям.
// Пустой фильтр эквивалентен List.
func (s *Service) Filter(ctx context.Context, filter models.FilterProducts) ([]*models.Product, error) {
	return s.repo.FilterProducts(ctx, filter)
}

// Update перезаписывает карточку и инвалидирует её в кэше.
func (s *Service) Update(ctx context.Context, uid string, dummy models.DummyProduct) (*models.Product, error) {
	p, err := buildProduct(dummy)
	if err != nil {
		return nil, err
	}
	updated, err := s.repo.UpdateProduct(ctx, uid, *p)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Invalidate(cacheKey(uid)); err != nil {
		s.log.Warn("product cache invalidation failed", sl.Err(err))
	}
	return updated, nil
}

// Delete удаляет карточку и инвалидирует её в кэше.
func (s *Service) Delete(ctx context.Context, uid string) error {
	if err := s.repo.DeleteProduct(ctx, uid); err != nil {
		return err
	}
	if err := s.cache.Invalidate(cacheKey(uid)); err != nil {
		s.log.Warn("product cache invalidation failed", sl.Err(err))
	}
	return nil
}
