package login_test

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/magabrotheeeer/vehicle-inventory/internal/http/handlers/auth/login"
	authservice "github.com/magabrotheeeer/vehicle-inventory/internal/services/auth"
)

type mockAuthService struct {
	LoginFunc func(ctx context.Context, email, password string) (string, bool, error)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (string, bool, error) {
	return m.LoginFunc(ctx, email, password)
}

type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return discardHandler{} }
func (discardHandler) WithGroup(string) slog.Handler             { return discardHandler{} }

func TestLoginHandler(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		loginFunc  func(ctx context.Context, email, password string) (string, bool, error)
		wantStatus int
		wantBody   []string
	}{
		{
			name: "admin login",
			body: `{"email": "admin@example.com", "password": "rootpass"}`,
			loginFunc: func(_ context.Context, email, password string) (string, bool, error) {
				assert.Equal(t, "admin@example.com", email)
				assert.Equal(t, "rootpass", password)
				return "signed.jwt.token", true, nil
			},
			wantStatus: http.StatusOK,
			wantBody:   []string{`"token":"signed.jwt.token"`, `"is_admin":true`},
		},
		{
			name: "viewer login",
			body: `{"email": "user@example.com", "password": "secret1"}`,
			loginFunc: func(context.Context, string, string) (string, bool, error) {
				return "signed.jwt.token", false, nil
			},
			wantStatus: http.StatusOK,
			wantBody:   []string{`"is_admin":false`},
		},
		{
			name: "unknown email or wrong password",
			body: `{"email": "user@example.com", "password": "wrong"}`,
			loginFunc: func(context.Context, string, string) (string, bool, error) {
				return "", false, authservice.ErrInvalidCredentials
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   []string{"invalid credentials"},
		},
		{
			name:       "missing fields",
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   []string{"field Email is a required field", "field Password is a required field"},
		},
		{
			name:       "invalid json",
			body:       `not-json`,
			wantStatus: http.StatusBadRequest,
			wantBody:   []string{"invalid request body"},
		},
		{
			name: "storage failure",
			body: `{"email": "user@example.com", "password": "secret1"}`,
			loginFunc: func(context.Context, string, string) (string, bool, error) {
				return "", false, errors.New("connection refused")
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   []string{"internal error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := &mockAuthService{
				LoginFunc: func(ctx context.Context, email, password string) (string, bool, error) {
					if tt.loginFunc == nil {
						t.Fatal("service should not be called")
					}
					return tt.loginFunc(ctx, email, password)
				},
			}
			handler := login.New(slog.New(discardHandler{}), service)

			req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			for _, want := range tt.wantBody {
				assert.Contains(t, w.Body.String(), want)
			}
		})
	}
}
