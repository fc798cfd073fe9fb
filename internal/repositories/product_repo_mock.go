package repositories

import (
	"strings"
	"sync"

	"github.com/google/uuid"

	"catalog/internal/apperrors"
	"catalog/internal/models"
)

// MockProductRepository is an in-memory implementation of
// ProductRepository. It keeps insertion order and enforces slug uniqueness
// so it can stand in for the GORM repository in tests and local runs.
type MockProductRepository struct {
	products []models.Product
	mu       sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{}
}

// List returns a window of products in insertion order.
func (r *MockProductRepository) List(offset, limit int) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if offset >= len(r.products) {
		return []models.Product{}, nil
	}
	end := offset + limit
	if end > len(r.products) {
		end = len(r.products)
	}
	window := make([]models.Product, 0, end-offset)
	for _, p := range r.products[offset:end] {
		window = append(window, *copyProduct(&p))
	}
	return window, nil
}

// GetByID returns a product by its surrogate key.
func (r *MockProductRepository) GetByID(id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.products {
		if r.products[i].ID == id {
			return copyProduct(&r.products[i]), nil
		}
	}
	return nil, &apperrors.NotFoundError{Term: id}
}

// GetByNaturalKey returns the first product whose title matches the term
// case-insensitively or whose slug equals the lowercased term.
func (r *MockProductRepository) GetByNaturalKey(term string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.products {
		p := &r.products[i]
		if strings.EqualFold(p.Title, term) || p.Slug == strings.ToLower(term) {
			return copyProduct(p), nil
		}
	}
	return nil, &apperrors.NotFoundError{Term: term}
}

// Create adds a new product, rejecting duplicate slugs the way the real
// storage engine would.
func (r *MockProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	for i := range r.products {
		if r.products[i].Slug == product.Slug {
			return &apperrors.UniqueViolationError{Detail: "duplicate slug " + product.Slug}
		}
	}
	for i := range product.Images {
		product.Images[i].ProductID = product.ID
	}
	r.products = append(r.products, *copyProduct(product))
	return nil
}

// Save replaces the stored product with the merged one. The image set is
// only swapped when replaceImages is set.
func (r *MockProductRepository) Save(product *models.Product, replaceImages bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.products {
		if r.products[i].Slug == product.Slug && r.products[i].ID != product.ID {
			return &apperrors.UniqueViolationError{Detail: "duplicate slug " + product.Slug}
		}
	}
	for i := range r.products {
		if r.products[i].ID != product.ID {
			continue
		}
		stored := copyProduct(product)
		if !replaceImages {
			stored.Images = r.products[i].Images
		}
		for j := range stored.Images {
			stored.Images[j].ProductID = product.ID
		}
		r.products[i] = *stored
		return nil
	}
	return &apperrors.NotFoundError{Term: product.ID}
}

// Delete removes a product and its images.
func (r *MockProductRepository) Delete(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.products {
		if r.products[i].ID == product.ID {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return &apperrors.NotFoundError{Term: product.ID}
}

// DeleteAll wipes the catalog.
func (r *MockProductRepository) DeleteAll() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.products = nil
	return nil
}

// copyProduct clones a product so callers never alias the stored slices.
func copyProduct(p *models.Product) *models.Product {
	clone := *p
	clone.Sizes = append([]string(nil), p.Sizes...)
	clone.Tags = append([]string(nil), p.Tags...)
	clone.Images = append([]models.ProductImage(nil), p.Images...)
	return &clone
}
