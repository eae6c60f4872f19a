// Package auth содержит логику бизнес-уровня для регистрации и
// аутентификации пользователей.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/magabrotheeeer/vehicle-inventory/internal/lib/jwt"
	"github.com/magabrotheeeer/vehicle-inventory/internal/lib/password"
	"github.com/magabrotheeeer/vehicle-inventory/internal/models"
	"github.com/magabrotheeeer/vehicle-inventory/internal/storage/repository"
)

// ErrInvalidCredentials общая ошибка входа: неизвестный email и неверный
// пароль неразличимы, чтобы не раскрывать зарегистрированные адреса.
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// CreateUser сохраняет нового пользователя и возвращает его uid.
	CreateUser(ctx context.Context, user models.User) (string, error)

	// GetUserByEmail возвращает пользователя по email или ошибку, если не найден.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// AuthService отвечает за регистрацию, авторизацию и выпуск JWT.
type AuthService struct {
	users    UserRepository
	jwtMaker jwt.Maker
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(users UserRepository, jwtMaker jwt.Maker) *AuthService {
	return &AuthService{
		users:    users,
		jwtMaker: jwtMaker,
	}
}

// Register создает нового пользователя с хэшированием пароля.
// Новые пользователи всегда получают роль наблюдателя (is_admin = false).
func (s *AuthService) Register(ctx context.Context, email, rawPassword string) (string, error) {
	const op = "auth.Register"
	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	user := models.User{
		Email:        strings.TrimSpace(email),
		PasswordHash: hashed,
		IsAdmin:      false,
	}
	return s.users.CreateUser(ctx, user)
}

// Login проверяет пароль пользователя и генерирует JWT с uid, email и
// признаком администратора в claims.
func (s *AuthService) Login(ctx context.Context, email, rawPassword string) (string, bool, error) {
	const op = "auth.Login"
	user, err := s.users.GetUserByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", false, ErrInvalidCredentials
		}
		return "", false, fmt.Errorf("%s: %w", op, err)
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return "", false, ErrInvalidCredentials
	}
	token, err := s.jwtMaker.GenerateToken(user.UID, user.Email, user.IsAdmin)
	if err != nil {
		return "", false, fmt.Errorf("%s: %w", op, err)
	}
	return token, user.IsAdmin, nil
}
