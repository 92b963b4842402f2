package repositories

import (
	"github.com/RicardoPBJ/Vemynd-Store/internal/models"
)

// ProductRepository defines the interface for product data access.
// GetByID returns (nil, nil) when no product has the given ID; absence is
// a normal outcome, not an error.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id uint) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(product *models.Product) error
	ExistsByName(name string) (bool, error)
}
