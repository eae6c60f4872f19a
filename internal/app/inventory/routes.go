// Package inventory предоставляет маршруты для основного приложения.
package inventory

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/vehicle-inventory/internal/config"
	"github.com/magabrotheeeer/vehicle-inventory/internal/http/handlers/admin/userlist"
	"github.com/magabrotheeeer/vehicle-inventory/internal/http/handlers/admin/userremove"
	"github.com/magabrotheeeer/vehicle-inventory/internal/http/handlers/admin/userrole"
	"github.com/magabrotheeeer/vehicle-inventory/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/vehicle-inventory/internal/http/handlers/auth/register"
	"github.com/magabrotheeeer/vehicle-inventory/internal/http/handlers/health"
	"github.com/magabrotheeeer/vehicle-inventory/internal/http/handlers/product/create"
	"github.com/magabrotheeeer/vehicle-inventory/internal/http/handlers/product/filter"
	"github.com/magabrotheeeer/vehicle-inventory/internal/http/handlers/product/list"
	"github.com/magabrotheeeer/vehicle-inventory/internal/http/handlers/product/read"
	"github.com/magabrotheeeer/vehicle-inventory/internal/http/handlers/product/remove"
	"github.com/magabrotheeeer/vehicle-inventory/internal/http/handlers/product/update"
	"github.com/magabrotheeeer/vehicle-inventory/internal/http/middlewarectx"
	adminservice "github.com/magabrotheeeer/vehicle-inventory/internal/services/admin"
	authservice "github.com/magabrotheeeer/vehicle-inventory/internal/services/auth"
	productservice "github.com/magabrotheeeer/vehicle-inventory/internal/services/product"
)

// RegisterRoutes регистрирует все маршруты приложения.
//
// Чтение инвентаря доступно любому аутентифицированному пользователю;
// мутации инвентаря и все операции администрирования требуют роли
// администратора, проверки компонуются как независимые middleware.
func RegisterRoutes(r chi.Router, logger *slog.Logger, cfg *config.Config,
	jwtMaker middlewarectx.TokenParser, authService *authservice.AuthService,
	productService *productservice.Service, adminService *adminservice.Service) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Get("/health", health.New())
		r.Post("/register", register.New(logger, authService).ServeHTTP)
		r.Post("/login", login.New(logger, authService).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(jwtMaker, logger))
			r.Get("/products", list.New(logger, productService).ServeHTTP)
			r.Get("/products/filter", filter.New(logger, productService).ServeHTTP)
			r.Get("/products/{id}", read.New(logger, productService).ServeHTTP)

			// Мутации и администрирование только для администраторов
			r.Group(func(r chi.Router) {
				r.Use(middlewarectx.AdminMiddleware(logger))
				r.Post("/products", create.New(logger, productService).ServeHTTP)
				r.Put("/products/{id}", update.New(logger, productService).ServeHTTP)
				r.Delete("/products/{id}", remove.New(logger, productService).ServeHTTP)

				r.Get("/admin/users", userlist.New(logger, adminService).ServeHTTP)
				r.Put("/admin/users/{id}/role", userrole.New(logger, adminService).ServeHTTP)
				r.Delete("/admin/users/{id}", userremove.New(logger, adminService).ServeHTTP)
			})
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
