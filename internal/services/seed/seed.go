// Package seed гарантирует существование стартового администратора.
// Посев выполняется один раз при старте процесса; сбой посева
// логируется и не прерывает запуск.
package seed

import (
	"context"
	"errors"
	"log/slog"

	"github.com/magabrotheeeer/vehicle-inventory/internal/lib/password"
	"github.com/magabrotheeeer/vehicle-inventory/internal/lib/sl"
	"github.com/magabrotheeeer/vehicle-inventory/internal/models"
	"github.com/magabrotheeeer/vehicle-inventory/internal/storage/repository"
)

// UserRepository описывает контракт хранилища для посева администратора.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (string, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// EnsureAdmin идемпотентно создает администратора с заданными учетными
// данными. Пустой email или пароль отключают посев. Существующая запись
// с таким email оставляется без изменений.
func EnsureAdmin(ctx context.Context, log *slog.Logger, users UserRepository, adminEmail, adminPassword string) {
	const op = "seed.EnsureAdmin"

	log = log.With(slog.String("op", op))

	if adminEmail == "" || adminPassword == "" {
		log.Info("admin seed credentials are not set, skipping")
		return
	}

	_, err := users.GetUserByEmail(ctx, adminEmail)
	if err == nil {
		log.Info("admin seed user already exists")
		return
	}
	if !errors.Is(err, repository.ErrNotFound) {
		log.Error("admin seed lookup failed", sl.Err(err))
		return
	}

	hashed, err := password.GetHash(adminPassword)
	if err != nil {
		log.Error("admin seed hashing failed", sl.Err(err))
		return
	}

	if _, err := users.CreateUser(ctx, models.User{
		Email:        adminEmail,
		PasswordHash: hashed,
		IsAdmin:      true,
	}); err != nil {
		log.Error("admin seed creation failed", sl.Err(err))
		return
	}
	log.Info("admin seed user created", slog.String("email", adminEmail))
}
