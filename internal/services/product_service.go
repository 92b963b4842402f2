package services

import (
	"log"

	"github.com/RicardoPBJ/Vemynd-Store/internal/apperrors"
	"github.com/RicardoPBJ/Vemynd-Store/internal/models"
	"github.com/RicardoPBJ/Vemynd-Store/internal/repositories"
	"github.com/RicardoPBJ/Vemynd-Store/pkg/rabbitmq"
)

// Business-rule rejection messages, surfaced verbatim to API clients.
const (
	MsgDuplicateName   = "Já existe um produto com esse nome cadastrado."
	MsgProductNotFound = "Produto não encontrado."
)

// EventPublisher publishes catalog change events. A nil publisher
// disables publication without disabling the service.
type EventPublisher interface {
	PublishProductEvent(event rabbitmq.ProductEvent) error
}

// ProductService enforces the catalog business rules on top of the
// persistence gateway.
type ProductService struct {
	repo      repositories.ProductRepository
	publisher EventPublisher
}

// NewProductService creates a new ProductService. publisher may be nil.
func NewProductService(repo repositories.ProductRepository, publisher EventPublisher) *ProductService {
	return &ProductService{
		repo:      repo,
		publisher: publisher,
	}
}

// GetAllProducts retrieves all products, never nil.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	products, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}

// GetProductByID retrieves a single product by its ID. A missing product
// is (nil, nil); the HTTP layer decides what absence means.
func (s *ProductService) GetProductByID(id uint) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// CreateProduct persists a new product. A name already present in the
// store is rejected before anything is inserted.
func (s *ProductService) CreateProduct(product *models.Product) error {
	exists, err := s.repo.ExistsByName(product.Name)
	if err != nil {
		return err
	}
	if exists {
		return apperrors.NewDuplicateName(MsgDuplicateName)
	}

	if err := s.repo.Create(product); err != nil {
		return err
	}

	s.publishEvent(rabbitmq.EventProductCreated, product.ID, product.Name)
	return nil
}

// UpdateProduct overwrites every mutable field of an existing product.
// The target must exist, and a changed name must not collide with
// another product.
func (s *ProductService) UpdateProduct(product *models.Product) (*models.Product, error) {
	existing, err := s.repo.GetByID(product.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperrors.NewNotFound(MsgProductNotFound)
	}

	if existing.Name != product.Name {
		exists, err := s.repo.ExistsByName(product.Name)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, apperrors.NewDuplicateName(MsgDuplicateName)
		}
	}

	existing.Name = product.Name
	existing.Description = product.Description
	existing.Price = product.Price
	existing.ImageURL = product.ImageURL
	existing.Brand = product.Brand
	existing.Model = product.Model
	existing.Processor = product.Processor
	existing.ProcessorGeneration = product.ProcessorGeneration
	existing.Ram = product.Ram
	existing.StorageType = product.StorageType
	existing.StorageCapacity = product.StorageCapacity
	existing.GraphicsCard = product.GraphicsCard
	existing.OperatingSystem = product.OperatingSystem
	existing.DisplaySize = product.DisplaySize
	existing.DisplayResolution = product.DisplayResolution
	existing.IsTouchscreen = product.IsTouchscreen
	existing.HasOpticalDrive = product.HasOpticalDrive
	existing.Connectivity = product.Connectivity
	existing.Weight = product.Weight
	existing.ReleaseDate = product.ReleaseDate

	if err := s.repo.Update(existing); err != nil {
		return nil, err
	}

	s.publishEvent(rabbitmq.EventProductUpdated, existing.ID, existing.Name)
	return existing, nil
}

// DeleteProduct removes a product by its ID. Deleting a missing ID is
// not an error; it reports false.
func (s *ProductService) DeleteProduct(id uint) (bool, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return false, err
	}
	if product == nil {
		return false, nil
	}

	if err := s.repo.Delete(product); err != nil {
		return false, err
	}

	s.publishEvent(rabbitmq.EventProductDeleted, product.ID, product.Name)
	return true, nil
}

// publishEvent emits a catalog event when a publisher is configured.
// Publication failures are logged and never surfaced to the caller.
func (s *ProductService) publishEvent(eventType string, productID uint, name string) {
	if s.publisher == nil {
		return
	}
	event := rabbitmq.NewProductEvent(eventType, productID, name)
	if err := s.publisher.PublishProductEvent(event); err != nil {
		log.Printf("Warning: failed to publish %s event for product %d: %v", eventType, productID, err)
	}
}
