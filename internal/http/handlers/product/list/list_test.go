package list_test

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/magabrotheeeer/vehicle-inventory/internal/http/handlers/product/list"
	"github.com/magabrotheeeer/vehicle-inventory/internal/models"
)

type mockProductService struct {
	ListFunc func(ctx context.Context) ([]*models.Product, error)
}

func (m *mockProductService) List(ctx context.Context) ([]*models.Product, error) {
	return m.ListFunc(ctx)
}

type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return discardHandler{} }
func (discardHandler) WithGroup(string) slog.Handler             { return discardHandler{} }

func TestListHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		service := &mockProductService{
			ListFunc: func(context.Context) ([]*models.Product, error) {
				return []*models.Product{
					{UID: "550e8400-e29b-41d4-a716-446655440000", Name: "Toyota Corolla", Stock: 3, Available: true},
					{UID: "550e8400-e29b-41d4-a716-446655440001", Name: "Ford Transit", Stock: 0},
				}, nil
			},
		}
		handler := list.New(slog.New(discardHandler{}), service)

		req := httptest.NewRequest(http.MethodGet, "/products", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"count":2`)
		assert.Contains(t, w.Body.String(), "Toyota Corolla")
		assert.Contains(t, w.Body.String(), "Ford Transit")
	})

	t.Run("empty inventory renders empty array", func(t *testing.T) {
		service := &mockProductService{
			ListFunc: func(context.Context) ([]*models.Product, error) {
				return nil, nil
			},
		}
		handler := list.New(slog.New(discardHandler{}), service)

		req := httptest.NewRequest(http.MethodGet, "/products", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"count":0`)
		assert.Contains(t, w.Body.String(), `"products":[]`)
	})

	t.Run("storage failure", func(t *testing.T) {
		service := &mockProductService{
			ListFunc: func(context.Context) ([]*models.Product, error) {
				return nil, errors.New("connection refused")
			},
		}
		handler := list.New(slog.New(discardHandler{}), service)

		req := httptest.NewRequest(http.MethodGet, "/products", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "failed to list products")
	})
}
