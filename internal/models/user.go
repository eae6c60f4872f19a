// Package models содержит доменные структуры приложения:
// пользователей и карточки транспортных средств.
package models

import "time"

// User представляет зарегистрированного пользователя системы.
//
// PasswordHash никогда не сериализуется в JSON‑ответы.
type User struct {
	UID          string    `json:"uid"`      // Уникальный идентификатор пользователя
	Email        string    `json:"email"`    // Электронная почта (уникальная)
	PasswordHash string    `json:"-"`        // Хэш пароля пользователя
	IsAdmin      bool      `json:"is_admin"` // Признак администратора, по умолчанию false
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
