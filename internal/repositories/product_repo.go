package repositories

import (
	"catalog/internal/models"
)

// ProductRepository defines the interface for catalog data access. All
// lookups return products with their images loaded; all errors are already
// translated to the apperrors taxonomy.
type ProductRepository interface {
	// List returns a stable, insertion-ordered window of products.
	List(offset, limit int) ([]models.Product, error)
	// GetByID looks a product up by its surrogate key.
	GetByID(id string) (*models.Product, error)
	// GetByNaturalKey looks a product up by case-insensitive title or by
	// lowercased slug in a single query.
	GetByNaturalKey(term string) (*models.Product, error)
	// Create inserts a product together with its image rows as one
	// durable unit.
	Create(product *models.Product) error
	// Save persists an already-merged product. With replaceImages set,
	// the stored image rows are dropped and the rows attached to the
	// in-memory product inserted instead, atomically with the parent
	// update.
	Save(product *models.Product, replaceImages bool) error
	// Delete removes a product and its image rows.
	Delete(product *models.Product) error
	// DeleteAll unconditionally wipes the catalog. Seeding only.
	DeleteAll() error
}
