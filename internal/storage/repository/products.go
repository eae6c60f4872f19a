package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/magabrotheeeer/vehicle-inventory/internal/models"
)

const productColumns = `uid, name, price, stock, description, image_url,
			      mileage, itv_date, last_service_date, created_at, updated_at`

// scanProduct читает одну строку таблицы products и вычисляет производное
// поле Available (stock > 0).
func scanProduct(row interface{ Scan(dest ...any) error }) (*models.Product, error) {
	p := &models.Product{}
	var itvDate, lastServiceDate sql.NullTime
	if err := row.Scan(&p.UID, &p.Name, &p.Price, &p.Stock, &p.Description,
		&p.ImageURL, &p.Mileage, &itvDate, &lastServiceDate,
		&p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	if itvDate.Valid {
		p.ITVDate = &itvDate.Time
	}
	if lastServiceDate.Valid {
		p.LastServiceDate = &lastServiceDate.Time
	}
	p.Available = p.Stock > 0
	return p, nil
}

// CreateProduct сохраняет новую карточку и возвращает созданную запись.
func (s *Storage) CreateProduct(ctx context.Context, product models.Product) (*models.Product, error) {
	const op = "storage.CreateProduct"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO products (name, price, stock, description, image_url,
			      mileage, itv_date, last_service_date)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  RETURNING ` + productColumns
	row := s.DB.QueryRowContext(ctx, query,
		product.Name, product.Price, product.Stock, product.Description,
		product.ImageURL, product.Mileage, product.ITVDate, product.LastServiceDate)
	created, err := scanProduct(row)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return created, nil
}

// GetProduct возвращает карточку по её uid.
func (s *Storage) GetProduct(ctx context.Context, uid string) (*models.Product, error) {
	const op = "storage.GetProduct"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + productColumns + ` FROM products WHERE uid = $1`
	row := s.DB.QueryRowContext(ctx, query, uid)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

// ListProducts возвращает все карточки инвентаря.
func (s *Storage) ListProducts(ctx context.Context) ([]*models.Product, error) {
	return s.FilterProducts(ctx, models.FilterProducts{})
}

// escapeLike экранирует метасимволы шаблона LIKE, чтобы критерий
// подстроки совпадал буквально, а не как маска.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// FilterProducts возвращает карточки, удовлетворяющие всем заданным
// критериям одновременно. Отсутствующий критерий не накладывает
// ограничения; пустой фильтр эквивалентен ListProducts.
func (s *Storage) FilterProducts(ctx context.Context, filter models.FilterProducts) ([]*models.Product, error) {
	const op = "storage.FilterProducts"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + productColumns + ` FROM products WHERE 1=1`
	var args []any
	if filter.Query != "" {
		args = append(args, "%"+escapeLike(filter.Query)+"%")
		query += fmt.Sprintf(` AND name ILIKE $%d ESCAPE '\'`, len(args))
	}
	if filter.MinPrice != nil {
		args = append(args, *filter.MinPrice)
		query += fmt.Sprintf(" AND price >= $%d", len(args))
	}
	if filter.MaxPrice != nil {
		args = append(args, *filter.MaxPrice)
		query += fmt.Sprintf(" AND price <= $%d", len(args))
	}
	if filter.MinStock != nil {
		args = append(args, *filter.MinStock)
		query += fmt.Sprintf(" AND stock >= $%d", len(args))
	}
	query += " ORDER BY created_at"

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()
	var result []*models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateProduct перезаписывает все поля карточки и возвращает обновлённую
// запись. При нарушении инвариантов запись не изменяется.
func (s *Storage) UpdateProduct(ctx context.Context, uid string, product models.Product) (*models.Product, error) {
	const op = "storage.UpdateProduct"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE products
			  SET name = $2,
			      price = $3,
			      stock = $4,
			      description = $5,
			      image_url = $6,
			      mileage = $7,
			      itv_date = $8,
			      last_service_date = $9,
			      updated_at = now()
			  WHERE uid = $1
			  RETURNING ` + productColumns
	row := s.DB.QueryRowContext(ctx, query, uid,
		product.Name, product.Price, product.Stock, product.Description,
		product.ImageURL, product.Mileage, product.ITVDate, product.LastServiceDate)
	updated, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return updated, nil
}

// DeleteProduct удаляет карточку по uid.
func (s *Storage) DeleteProduct(ctx context.Context, uid string) error {
	const op = "storage.DeleteProduct"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM products WHERE uid = $1`
	res, err := s.DB.ExecContext(ctx, query, uid)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return nil
}
