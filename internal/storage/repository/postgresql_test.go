package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/vehicle-inventory/internal/models"
)

func TestStorage_Users(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	verify := NewTestVerification(storage)
	ctx := context.Background()

	t.Run("create and get by email", func(t *testing.T) {
		uid, err := storage.CreateUser(ctx, models.User{
			Email:        "user@example.com",
			PasswordHash: "hashedpassword",
			IsAdmin:      false,
		})
		require.NoError(t, err)
		require.NotEmpty(t, uid)

		user, err := storage.GetUserByEmail(ctx, "user@example.com")
		require.NoError(t, err)
		assert.Equal(t, uid, user.UID)
		assert.Equal(t, "user@example.com", user.Email)
		assert.Equal(t, "hashedpassword", user.PasswordHash)
		assert.False(t, user.IsAdmin)
		assert.False(t, user.CreatedAt.IsZero())
	})

	t.Run("duplicate email returns ErrUserExists", func(t *testing.T) {
		_, err := storage.CreateUser(ctx, models.User{
			Email:        "user@example.com",
			PasswordHash: "anotherhash",
		})
		require.ErrorIs(t, err, ErrUserExists)
		verify.VerifyUserCount(t, "user@example.com", 1)
	})

	t.Run("get unknown email returns ErrNotFound", func(t *testing.T) {
		_, err := storage.GetUserByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("list users", func(t *testing.T) {
		factory.CreateUser(t, "admin@example.com", "hashedpassword", true)

		users, err := storage.ListUsers(ctx)
		require.NoError(t, err)
		require.Len(t, users, 2)
		assert.Equal(t, "user@example.com", users[0].Email)
		assert.Equal(t, "admin@example.com", users[1].Email)
		assert.True(t, users[1].IsAdmin)
	})

	t.Run("toggle role flips both ways", func(t *testing.T) {
		uid := factory.CreateUser(t, "viewer@example.com", "hashedpassword", false)

		toggled, err := storage.ToggleUserRole(ctx, uid)
		require.NoError(t, err)
		assert.True(t, toggled.IsAdmin)

		toggled, err = storage.ToggleUserRole(ctx, uid)
		require.NoError(t, err)
		assert.False(t, toggled.IsAdmin)
	})

	t.Run("toggle unknown uid returns ErrNotFound", func(t *testing.T) {
		_, err := storage.ToggleUserRole(ctx, uuid.New().String())
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("delete user", func(t *testing.T) {
		uid := factory.CreateUser(t, "temp@example.com", "hashedpassword", false)

		require.NoError(t, storage.DeleteUser(ctx, uid))
		verify.VerifyUserCount(t, "temp@example.com", 0)

		err := storage.DeleteUser(ctx, uid)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("database readiness", func(t *testing.T) {
		require.NoError(t, CheckDatabaseReady(storage))

		_, err := storage.DB.Exec(`DROP TABLE products CASCADE`)
		require.NoError(t, err)

		assert.Error(t, CheckDatabaseReady(storage))
	})
}

func TestStorage_Products(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	verify := NewTestVerification(storage)
	ctx := context.Background()

	t.Run("create returns full record", func(t *testing.T) {
		created, err := storage.CreateProduct(ctx, GetTestProduct())
		require.NoError(t, err)

		assert.NotEmpty(t, created.UID)
		assert.Equal(t, "Toyota Corolla", created.Name)
		assert.Equal(t, 18500.50, created.Price)
		assert.Equal(t, 3, created.Stock)
		assert.True(t, created.Available)
		assert.Equal(t, "well maintained", created.Description)
		assert.Equal(t, 42000.0, created.Mileage)
		assert.Nil(t, created.ITVDate)
		assert.False(t, created.CreatedAt.IsZero())
	})

	t.Run("get by uid", func(t *testing.T) {
		created, err := storage.CreateProduct(ctx, models.Product{Name: "Ford Transit", Price: 26000, Stock: 0})
		require.NoError(t, err)

		got, err := storage.GetProduct(ctx, created.UID)
		require.NoError(t, err)
		assert.Equal(t, "Ford Transit", got.Name)
		// остаток 0 означает недоступность
		assert.False(t, got.Available)
	})

	t.Run("get unknown uid returns ErrNotFound", func(t *testing.T) {
		_, err := storage.GetProduct(ctx, uuid.New().String())
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("update overwrites all fields", func(t *testing.T) {
		created, err := storage.CreateProduct(ctx, models.Product{
			Name:        "Honda Civic",
			Price:       15000,
			Stock:       2,
			Description: "old description",
		})
		require.NoError(t, err)

		updated, err := storage.UpdateProduct(ctx, created.UID, models.Product{
			Name:  "Honda Civic Type R",
			Price: 32000,
			Stock: 1,
		})
		require.NoError(t, err)
		assert.Equal(t, "Honda Civic Type R", updated.Name)
		assert.Equal(t, 32000.0, updated.Price)
		assert.Equal(t, 1, updated.Stock)
		// необновлённых полей не бывает, перезапись полная
		assert.Empty(t, updated.Description)
	})

	t.Run("update unknown uid returns ErrNotFound", func(t *testing.T) {
		_, err := storage.UpdateProduct(ctx, uuid.New().String(), GetTestProduct())
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("delete product", func(t *testing.T) {
		created, err := storage.CreateProduct(ctx, models.Product{Name: "Temp", Price: 1, Stock: 1})
		require.NoError(t, err)

		require.NoError(t, storage.DeleteProduct(ctx, created.UID))
		verify.VerifyProductDeleted(t, created.UID)

		err = storage.DeleteProduct(ctx, created.UID)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestStorage_FilterProducts(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	ctx := context.Background()

	factory.CreateProduct(t, "Toyota Corolla", 18500, 3)
	factory.CreateProduct(t, "Toyota Yaris", 14000, 0)
	factory.CreateProduct(t, "Ford Transit", 26000, 5)
	factory.CreateProduct(t, "Honda Civic", 15000, 2)
	factory.CreateProduct(t, "Deal 50% off", 16000, 1)
	factory.CreateProduct(t, "Discount 500 series", 17000, 1)
	factory.CreateProduct(t, "Van_Cargo", 17500, 1)
	factory.CreateProduct(t, "VanoCargo", 18000, 1)

	ptrFloat := func(v float64) *float64 { return &v }
	ptrInt := func(v int) *int { return &v }

	tests := []struct {
		name      string
		filter    models.FilterProducts
		wantNames []string
	}{
		{
			name:   "empty filter returns everything",
			filter: models.FilterProducts{},
			wantNames: []string{
				"Toyota Corolla", "Toyota Yaris", "Ford Transit", "Honda Civic",
				"Deal 50% off", "Discount 500 series", "Van_Cargo", "VanoCargo",
			},
		},
		{
			name:      "substring is case-insensitive",
			filter:    models.FilterProducts{Query: "toyota"},
			wantNames: []string{"Toyota Corolla", "Toyota Yaris"},
		},
		{
			name:      "substring matches middle of name",
			filter:    models.FilterProducts{Query: "oro"},
			wantNames: []string{"Toyota Corolla"},
		},
		{
			name:      "min price inclusive",
			filter:    models.FilterProducts{MinPrice: ptrFloat(18500)},
			wantNames: []string{"Toyota Corolla", "Ford Transit"},
		},
		{
			name:      "max price inclusive",
			filter:    models.FilterProducts{MaxPrice: ptrFloat(15000)},
			wantNames: []string{"Toyota Yaris", "Honda Civic"},
		},
		{
			name:      "min stock",
			filter:    models.FilterProducts{MinStock: ptrInt(3)},
			wantNames: []string{"Toyota Corolla", "Ford Transit"},
		},
		{
			name: "criteria combine with AND",
			filter: models.FilterProducts{
				Query:    "toyota",
				MinPrice: ptrFloat(15000),
				MinStock: ptrInt(1),
			},
			wantNames: []string{"Toyota Corolla"},
		},
		{
			name:      "percent sign matches literally, not as a wildcard",
			filter:    models.FilterProducts{Query: "50%"},
			wantNames: []string{"Deal 50% off"},
		},
		{
			name:      "underscore matches literally, not as a wildcard",
			filter:    models.FilterProducts{Query: "_Cargo"},
			wantNames: []string{"Van_Cargo"},
		},
		{
			name:      "no matches returns empty set",
			filter:    models.FilterProducts{Query: "tesla"},
			wantNames: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := storage.FilterProducts(ctx, tt.filter)
			require.NoError(t, err)

			names := make([]string, 0, len(res))
			for _, p := range res {
				names = append(names, p.Name)
			}
			assert.ElementsMatch(t, tt.wantNames, names)
		})
	}
}
