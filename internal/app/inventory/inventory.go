// Package inventory собирает приложение: хранилище, миграции, кэш,
// сервисы, маршруты и жизненный цикл HTTP-сервера.
package inventory

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/vehicle-inventory/internal/cache"
	"github.com/magabrotheeeer/vehicle-inventory/internal/config"
	"github.com/magabrotheeeer/vehicle-inventory/internal/lib/jwt"
	"github.com/magabrotheeeer/vehicle-inventory/internal/lib/sl"
	"github.com/magabrotheeeer/vehicle-inventory/internal/migrations"
	adminservice "github.com/magabrotheeeer/vehicle-inventory/internal/services/admin"
	authservice "github.com/magabrotheeeer/vehicle-inventory/internal/services/auth"
	productservice "github.com/magabrotheeeer/vehicle-inventory/internal/services/product"
	"github.com/magabrotheeeer/vehicle-inventory/internal/services/seed"
	"github.com/magabrotheeeer/vehicle-inventory/internal/storage/repository"
)

type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
	cache  *cache.Cache
}

func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}
	if err = repository.CheckDatabaseReady(db); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	jwtMaker := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)

	authService := authservice.NewAuthService(db, jwtMaker)
	productService := productservice.NewService(db, cacheRedis, logger)
	adminService := adminservice.NewService(db)

	// Одноразовый посев администратора; сбой логируется и не прерывает запуск.
	seed.EnsureAdmin(ctx, logger, db, cfg.AdminEmail, cfg.AdminPassword)

	router := chi.NewRouter()

	RegisterRoutes(router, logger, cfg, jwtMaker, authService, productService, adminService)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
		cache:  cacheRedis,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		a.close()
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		a.close()
		return err
	}
}

// close освобождает соединения с базой данных и Redis.
func (a *App) close() {
	if err := a.db.DB.Close(); err != nil {
		a.logger.Error("failed to close database connection", sl.Err(err))
	}
	if err := a.cache.Close(); err != nil {
		a.logger.Error("failed to close redis connection", sl.Err(err))
	}
}
