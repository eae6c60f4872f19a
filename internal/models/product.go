// Package models содержит доменные структуры приложения,
// а также вспомогательные типы для приёма данных из JSON-запросов.
package models

import "time"

// Product представляет карточку транспортного средства в инвентаре.
//
// Инварианты: Price >= 0 и Stock >= 0 после каждой записи;
// нарушающие записи отклоняются, а не обрезаются.
type Product struct {
	UID             string     `json:"uid"`               // Уникальный идентификатор
	Name            string     `json:"name"`              // Название, непустое после trim
	Price           float64    `json:"price"`             // Цена, >= 0
	Stock           int        `json:"stock"`             // Остаток на складе, >= 0
	Available       bool       `json:"available"`         // Производное состояние: stock > 0
	Description     string     `json:"description"`       // Описание, по умолчанию пустое
	ImageURL        string     `json:"image_url"`         // Ссылка на изображение, по умолчанию пустая
	Mileage         float64    `json:"mileage"`           // Пробег, >= 0, по умолчанию 0
	ITVDate         *time.Time `json:"itv_date"`          // Дата техосмотра, nil если не задана
	LastServiceDate *time.Time `json:"last_service_date"` // Дата последнего обслуживания, nil если не задана
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// DummyProduct используется для приёма данных из JSON-запроса,
// прежде чем конвертировать их в Product. Даты приходят в виде строк,
// чтобы их можно было валидировать и парсить вручную.
// Неизвестные поля запроса отбрасываются и никогда не сохраняются.
type DummyProduct struct {
	Name            string   `json:"name" validate:"required"`                          // Название
	Price           *float64 `json:"price" validate:"required,gte=0"`                   // Цена (>= 0)
	Stock           *int     `json:"stock" validate:"required,gte=0"`                   // Остаток (>= 0)
	Description     string   `json:"description,omitempty" validate:"omitempty"`       // Описание (опционально)
	ImageURL        string   `json:"image_url,omitempty" validate:"omitempty"`         // Изображение (опционально)
	Mileage         *float64 `json:"mileage,omitempty" validate:"omitempty,gte=0"`     // Пробег (опционально, >= 0)
	ITVDate         string   `json:"itv_date,omitempty" validate:"omitempty"`          // Дата техосмотра в формате 2006-01-02
	LastServiceDate string   `json:"last_service_date,omitempty" validate:"omitempty"` // Дата обслуживания в формате 2006-01-02
}

// FilterProducts представляет параметры фильтрации, которые передаются
// в слой доступа к данным. Критерии независимы и объединяются через AND;
// nil‑поле не накладывает ограничения.
type FilterProducts struct {
	Query    string   // Подстрока названия, без учета регистра
	MinPrice *float64 // Нижняя граница цены (включительно)
	MaxPrice *float64 // Верхняя граница цены (включительно)
	MinStock *int     // Нижняя граница остатка (включительно)
}
