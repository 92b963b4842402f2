package handlers

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/RicardoPBJ/Vemynd-Store/internal/models"
	"github.com/RicardoPBJ/Vemynd-Store/internal/services"
	"github.com/RicardoPBJ/Vemynd-Store/internal/validators"
)

// MsgIDMismatch rejects an update whose path and body IDs disagree.
const MsgIDMismatch = "ID do produto não confere com o corpo da requisição."

// ProductHandler handles HTTP requests for the product catalog.
// Business-rule rejections are returned as errors and translated by the
// app's error handler; only field validation and absence are decided here.
type ProductHandler struct {
	service  *services.ProductService
	validate *validators.ProductValidator
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: validators.NewProductValidator(),
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Get("/:id", h.HandleGetProductByID)
	productRoutes.Post("/", h.HandleCreateProduct)
	productRoutes.Put("/:id", h.HandleUpdateProduct)
	productRoutes.Delete("/:id", h.HandleDeleteProduct)
}

// HandleGetProducts retrieves the full catalog, possibly empty.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts()
	if err != nil {
		return err
	}
	return c.JSON(products)
}

// HandleGetProductByID retrieves a single product or responds 404.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid product ID",
		})
	}

	product, err := h.service.GetProductByID(uint(id))
	if err != nil {
		return err
	}
	if product == nil {
		return c.SendStatus(fiber.StatusNotFound)
	}
	return c.JSON(product)
}

// HandleCreateProduct creates a new product. The response carries the
// stored product with its assigned ID and a Location header pointing at
// the get-by-id endpoint.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		log.Printf("Error parsing create product request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if violations := h.validate.Validate(product); len(violations) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  violationMap(violations),
		})
	}

	if err := h.service.CreateProduct(&product); err != nil {
		return err
	}

	c.Set(fiber.HeaderLocation, fmt.Sprintf("/api/products/%d", product.ID))
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleUpdateProduct overwrites an existing product. The body must carry
// the same ID as the path.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid product ID",
		})
	}

	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		log.Printf("Error parsing update product request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if uint(id) != product.ID {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": MsgIDMismatch,
		})
	}

	if violations := h.validate.Validate(product); len(violations) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  violationMap(violations),
		})
	}

	updated, err := h.service.UpdateProduct(&product)
	if err != nil {
		return err
	}
	return c.JSON(updated)
}

// HandleDeleteProduct removes a product, responding 204 on success and
// 404 when the ID does not exist.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid product ID",
		})
	}

	removed, err := h.service.DeleteProduct(uint(id))
	if err != nil {
		return err
	}
	if !removed {
		return c.SendStatus(fiber.StatusNotFound)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// violationMap reshapes violations into the per-field error map clients
// receive on a 400.
func violationMap(violations []validators.FieldError) map[string]string {
	errorMessages := make(map[string]string, len(violations))
	for _, v := range violations {
		errorMessages[v.Field] = v.Message
	}
	return errorMessages
}
