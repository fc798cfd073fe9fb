package handlers

import (
	"errors"
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"catalog/internal/apperrors"
	"catalog/internal/models"
	"catalog/internal/services"
)

// ProductHandler handles HTTP requests for the product catalog. It only
// translates DTOs and status codes; all catalog logic lives in the service.
type ProductHandler struct {
	service  *services.ProductService
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleListProducts)
	productRoutes.Get("/:term", h.HandleGetProduct)
	productRoutes.Post("/", h.HandleCreateProduct)
	productRoutes.Patch("/:id", h.HandleUpdateProduct)
	productRoutes.Delete("/:term", h.HandleDeleteProduct)
}

// HandleListProducts returns a paginated window of the catalog.
func (h *ProductHandler) HandleListProducts(c *fiber.Ctx) error {
	var page models.Pagination
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid pagination parameters",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(page); err != nil {
		return writeValidationError(c, err)
	}

	products, err := h.service.List(page)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(products)
}

// HandleGetProduct resolves a product by surrogate id, title or slug.
func (h *ProductHandler) HandleGetProduct(c *fiber.Ctx) error {
	product, err := h.service.ResolveFlat(c.Params("term"))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(product)
}

// HandleCreateProduct creates a product from a validated draft.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var input models.CreateProductInput
	if err := c.BodyParser(&input); err != nil {
		log.Printf("Error parsing create product request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(input); err != nil {
		return writeValidationError(c, err)
	}

	product, err := h.service.Create(&input)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleUpdateProduct applies a partial patch to the product with the
// given id.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	var input models.UpdateProductInput
	if err := c.BodyParser(&input); err != nil {
		log.Printf("Error parsing update product request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(input); err != nil {
		return writeValidationError(c, err)
	}

	product, err := h.service.Update(c.Params("id"), &input)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(product)
}

// HandleDeleteProduct removes a product by id, title or slug.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	if err := h.service.Remove(c.Params("term")); err != nil {
		return writeServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// writeValidationError renders a field-by-field validation failure.
func writeValidationError(c *fiber.Ctx, err error) error {
	validationErrors := err.(validator.ValidationErrors)
	errorMessages := make(map[string]string)
	for _, e := range validationErrors {
		errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Validation failed",
		"errors":  errorMessages,
	})
}

// writeServiceError maps the domain error taxonomy to HTTP status codes.
// Internal failures stay opaque; their detail is logged server-side only.
func writeServiceError(c *fiber.Ctx, err error) error {
	var notFound *apperrors.NotFoundError
	var unique *apperrors.UniqueViolationError
	switch {
	case errors.As(err, &notFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": notFound.Error(),
		})
	case errors.As(err, &unique):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": unique.Detail,
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": err.Error(),
		})
	}
}
