package userlist_test

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/magabrotheeeer/vehicle-inventory/internal/http/handlers/admin/userlist"
	"github.com/magabrotheeeer/vehicle-inventory/internal/models"
)

type mockAdminService struct {
	ListUsersFunc func(ctx context.Context) ([]*models.User, error)
}

func (m *mockAdminService) ListUsers(ctx context.Context) ([]*models.User, error) {
	return m.ListUsersFunc(ctx)
}

type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return discardHandler{} }
func (discardHandler) WithGroup(string) slog.Handler             { return discardHandler{} }

func TestUserListHandler(t *testing.T) {
	t.Run("success without password hashes", func(t *testing.T) {
		service := &mockAdminService{
			ListUsersFunc: func(context.Context) ([]*models.User, error) {
				return []*models.User{
					{
						UID:          "550e8400-e29b-41d4-a716-446655440000",
						Email:        "admin@example.com",
						PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
						IsAdmin:      true,
						CreatedAt:    time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC),
					},
					{
						UID:          "550e8400-e29b-41d4-a716-446655440001",
						Email:        "viewer@example.com",
						PasswordHash: "$2a$10$vutsrqponmlkjihgfedcba",
					},
				}, nil
			},
		}
		handler := userlist.New(slog.New(discardHandler{}), service)

		req := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"count":2`)
		assert.Contains(t, w.Body.String(), "admin@example.com")
		assert.Contains(t, w.Body.String(), `"is_admin":true`)
		// хэш исключается на уровне сериализации модели
		assert.NotContains(t, w.Body.String(), "$2a$10$")
		assert.NotContains(t, w.Body.String(), "password")
	})

	t.Run("empty list renders empty array", func(t *testing.T) {
		service := &mockAdminService{
			ListUsersFunc: func(context.Context) ([]*models.User, error) {
				return nil, nil
			},
		}
		handler := userlist.New(slog.New(discardHandler{}), service)

		req := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"count":0`)
		assert.Contains(t, w.Body.String(), `"users":[]`)
	})

	t.Run("storage failure", func(t *testing.T) {
		service := &mockAdminService{
			ListUsersFunc: func(context.Context) ([]*models.User, error) {
				return nil, errors.New("connection refused")
			},
		}
		handler := userlist.New(slog.New(discardHandler{}), service)

		req := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "failed to list users")
	})
}
