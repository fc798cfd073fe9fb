package repositories

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"catalog/internal/apperrors"
	"catalog/internal/models"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
// It expects a *gorm.DB opened with TranslateError enabled so unique
// constraint failures surface as gorm.ErrDuplicatedKey on every driver.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// List retrieves a window of products in insertion order, images included.
func (r *GORMProductRepository) List(offset, limit int) ([]models.Product, error) {
	var products []models.Product
	err := r.db.
		Preload("Images").
		Order("created_at, id").
		Offset(offset).
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, apperrors.Translate("list products", err)
	}
	return products, nil
}

// GetByID retrieves a single product by its surrogate key.
func (r *GORMProductRepository) GetByID(id string) (*models.Product, error) {
	var product models.Product
	err := r.db.Preload("Images").First(&product, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &apperrors.NotFoundError{Term: id}
	}
	if err != nil {
		return nil, apperrors.Translate("get product by id", err)
	}
	return &product, nil
}

// GetByNaturalKey retrieves a single product matching the term against the
// title (case-insensitive) or the slug, in one query with images eagerly
// loaded. Natural keys are expected unique; should duplicate titles ever
// qualify, the first row wins.
func (r *GORMProductRepository) GetByNaturalKey(term string) (*models.Product, error) {
	var product models.Product
	err := r.db.
		Preload("Images").
		Where("UPPER(title) = ? OR slug = ?", strings.ToUpper(term), strings.ToLower(term)).
		First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &apperrors.NotFoundError{Term: term}
	}
	if err != nil {
		return nil, apperrors.Translate("get product by natural key", err)
	}
	return &product, nil
}

// Create inserts a product and its image rows. GORM writes the parent and
// the children inside one implicit transaction, so a constraint failure
// leaves no partial rows behind.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if err := r.db.Create(product).Error; err != nil {
		return apperrors.Translate("create product", err)
	}
	return nil
}

// Save persists a merged product. Image replacement and the parent update
// run as explicit statements inside one transaction: a reader must never
// observe the post-delete, pre-insert window.
func (r *GORMProductRepository) Save(product *models.Product, replaceImages bool) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if replaceImages {
			if err := tx.Where("product_id = ?", product.ID).Delete(&models.ProductImage{}).Error; err != nil {
				return fmt.Errorf("failed to delete images of product %s: %w", product.ID, err)
			}
			if len(product.Images) > 0 {
				for i := range product.Images {
					product.Images[i].ID = 0
					product.Images[i].ProductID = product.ID
				}
				if err := tx.Create(&product.Images).Error; err != nil {
					return err
				}
			}
		}
		return tx.Omit(clause.Associations).Save(product).Error
	})
	if err != nil {
		return apperrors.Translate("update product", err)
	}
	return nil
}

// Delete removes a product and cascades to its image rows.
func (r *GORMProductRepository) Delete(product *models.Product) error {
	err := r.db.Select(clause.Associations).Delete(product).Error
	if err != nil {
		return apperrors.Translate("delete product", err)
	}
	return nil
}

// DeleteAll wipes every product and image row. Children go first so the
// foreign key holds regardless of driver-level cascade support.
func (r *GORMProductRepository) DeleteAll() error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.ProductImage{}).Error; err != nil {
			return fmt.Errorf("failed to delete image rows: %w", err)
		}
		if err := tx.Where("1 = 1").Delete(&models.Product{}).Error; err != nil {
			return fmt.Errorf("failed to delete product rows: %w", err)
		}
		return nil
	})
	if err != nil {
		return apperrors.Translate("delete all products", err)
	}
	return nil
}
