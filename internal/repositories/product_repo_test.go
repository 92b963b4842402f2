package repositories_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/RicardoPBJ/Vemynd-Store/internal/models"
	"github.com/RicardoPBJ/Vemynd-Store/internal/repositories"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// A uniquely named shared-cache database keeps each test isolated
	// while surviving across pooled connections.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Product{}))
	return db
}

func catalogProduct(name string) models.Product {
	return models.Product{
		Name:        name,
		Price:       1500.99,
		Weight:      1.8,
		ReleaseDate: time.Date(2023, time.May, 1, 0, 0, 0, 0, time.UTC),
	}
}

// repositoriesUnderTest lets the same suite run against every implementation.
func repositoriesUnderTest(t *testing.T) map[string]repositories.ProductRepository {
	return map[string]repositories.ProductRepository{
		"gorm":     repositories.NewGORMProductRepository(newTestDB(t)),
		"inmemory": repositories.NewInMemoryProductRepository(),
	}
}

func TestProductRepository_CreateAssignsIncreasingIDs(t *testing.T) {
	for name, repo := range repositoriesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			first := catalogProduct("Notebook A")
			second := catalogProduct("Notebook B")

			require.NoError(t, repo.Create(&first))
			require.NoError(t, repo.Create(&second))

			assert.Greater(t, first.ID, uint(0))
			assert.Greater(t, second.ID, first.ID)
		})
	}
}

func TestProductRepository_GetByIDRoundTrip(t *testing.T) {
	for name, repo := range repositoriesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			created := catalogProduct("Notebook A")
			created.Brand = "Dell"
			created.IsTouchscreen = true
			created.DisplayResolution = "Full HD"
			require.NoError(t, repo.Create(&created))

			fetched, err := repo.GetByID(created.ID)
			require.NoError(t, err)
			require.NotNil(t, fetched)

			assert.Equal(t, created.ID, fetched.ID)
			assert.Equal(t, created.Name, fetched.Name)
			assert.Equal(t, created.Brand, fetched.Brand)
			assert.True(t, fetched.IsTouchscreen)
			assert.Equal(t, created.Price, fetched.Price)
			assert.Equal(t, created.Weight, fetched.Weight)
		})
	}
}

func TestProductRepository_GetByIDAbsent(t *testing.T) {
	for name, repo := range repositoriesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			fetched, err := repo.GetByID(9999)
			assert.NoError(t, err)
			assert.Nil(t, fetched)
		})
	}
}

func TestProductRepository_GetAllOrderedByID(t *testing.T) {
	for name, repo := range repositoriesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			for _, productName := range []string{"Notebook C", "Notebook A", "Notebook B"} {
				p := catalogProduct(productName)
				require.NoError(t, repo.Create(&p))
			}

			products, err := repo.GetAll()
			require.NoError(t, err)
			require.Len(t, products, 3)

			assert.True(t, products[0].ID < products[1].ID)
			assert.True(t, products[1].ID < products[2].ID)
		})
	}
}

func TestProductRepository_GetAllEmpty(t *testing.T) {
	for name, repo := range repositoriesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			products, err := repo.GetAll()
			assert.NoError(t, err)
			assert.NotNil(t, products)
			assert.Empty(t, products)
		})
	}
}

func TestProductRepository_Update(t *testing.T) {
	for name, repo := range repositoriesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			created := catalogProduct("Notebook A")
			created.Description = "Original"
			require.NoError(t, repo.Create(&created))

			created.Description = ""
			created.Price = 1999.90
			require.NoError(t, repo.Update(&created))

			fetched, err := repo.GetByID(created.ID)
			require.NoError(t, err)
			require.NotNil(t, fetched)
			assert.Equal(t, "", fetched.Description, "zero values must overwrite")
			assert.Equal(t, 1999.90, fetched.Price)
		})
	}
}

func TestProductRepository_Delete(t *testing.T) {
	for name, repo := range repositoriesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			created := catalogProduct("Notebook A")
			require.NoError(t, repo.Create(&created))

			require.NoError(t, repo.Delete(&created))

			fetched, err := repo.GetByID(created.ID)
			assert.NoError(t, err)
			assert.Nil(t, fetched)
		})
	}
}

func TestProductRepository_ExistsByName(t *testing.T) {
	for name, repo := range repositoriesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			created := catalogProduct("Notebook A")
			require.NoError(t, repo.Create(&created))

			exists, err := repo.ExistsByName("Notebook A")
			require.NoError(t, err)
			assert.True(t, exists)

			// Exact match only.
			exists, err = repo.ExistsByName("notebook a")
			require.NoError(t, err)
			assert.False(t, exists)

			exists, err = repo.ExistsByName("Notebook B")
			require.NoError(t, err)
			assert.False(t, exists)
		})
	}
}
