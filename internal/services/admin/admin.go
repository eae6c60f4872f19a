// Package admin содержит операции администрирования пользователей:
// список, переключение роли и удаление. Все операции предполагают,
// что роль вызывающего уже проверена шлюзом доступа.
package admin

import (
	"context"

	"github.com/magabrotheeeer/vehicle-inventory/internal/models"
)

// UserRepository описывает контракт хранилища пользователей.
type UserRepository interface {
	ListUsers(ctx context.Context) ([]*models.User, error)
	ToggleUserRole(ctx context.Context, uid string) (*models.User, error)
	DeleteUser(ctx context.Context, uid string) error
}

// Service реализует операции администрирования поверх хранилища.
type Service struct {
	users UserRepository
}

// NewService создает новый экземпляр Service.
func NewService(users UserRepository) *Service {
	return &Service{users: users}
}

// ListUsers возвращает всех пользователей. Хэш пароля никогда не попадает
// в сериализованный ответ (json:"-" в модели).
func (s *Service) ListUsers(ctx context.Context) ([]*models.User, error) {
	return s.users.ListUsers(ctx)
}

// ToggleRole безусловно переключает признак администратора и возвращает
// обновлённую запись. Защиты от самопонижения или понижения последнего
// администратора нет.
func (s *Service) ToggleRole(ctx context.Context, uid string) (*models.User, error) {
	return s.users.ToggleUserRole(ctx, uid)
}

// DeleteUser удаляет пользователя навсегда.
func (s *Service) DeleteUser(ctx context.Context, uid string) error {
	return s.users.DeleteUser(ctx, uid)
}
