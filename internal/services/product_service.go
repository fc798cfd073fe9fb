package services

import (
	"errors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"catalog/internal/apperrors"
	"catalog/internal/models"
	"catalog/internal/repositories"
	"catalog/pkg/rabbitmq"
)

// DefaultPageSize is the list window size used when the caller supplies no
// limit.
const DefaultPageSize = 10

// ProductService orchestrates catalog persistence: slug derivation,
// dual-mode identifier resolution, transactional image replacement and
// the bulk reset used by seeding all funnel through here.
type ProductService struct {
	repo     repositories.ProductRepository
	logger   logrus.FieldLogger
	mqClient *rabbitmq.Client
}

// NewProductService creates a new ProductService. The logger is required;
// mqClient may be nil, in which case no catalog events are published.
func NewProductService(repo repositories.ProductRepository, logger logrus.FieldLogger, mqClient *rabbitmq.Client) *ProductService {
	return &ProductService{
		repo:     repo,
		logger:   logger,
		mqClient: mqClient,
	}
}

// Create persists a draft product together with its image URLs as one
// durable unit and returns the flattened read of the stored record. The
// slug falls back to a normalized form of the title when the draft does
// not carry one.
func (s *ProductService) Create(input *models.CreateProductInput) (*models.FlatProduct, error) {
	product := &models.Product{
		ID:     uuid.New().String(),
		Title:  input.Title,
		Slug:   models.Slugify(input.Title),
		Sizes:  input.Sizes,
		Gender: input.Gender,
		Tags:   input.Tags,
	}
	if input.Slug != nil {
		product.Slug = *input.Slug
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Stock != nil {
		product.Stock = *input.Stock
	}
	if product.Tags == nil {
		product.Tags = []string{}
	}
	for _, url := range input.Images {
		product.Images = append(product.Images, models.ProductImage{URL: url})
	}

	if err := s.repo.Create(product); err != nil {
		s.logFailure("create", product.ID, err)
		return nil, err
	}
	s.publish("product.created", product)
	return product.Flatten(), nil
}

// List returns a stable window of products with images flattened to URL
// strings. Offset defaults to 0, limit to DefaultPageSize.
func (s *ProductService) List(page models.Pagination) ([]*models.FlatProduct, error) {
	offset, limit := page.Offset, page.Limit
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = DefaultPageSize
	}

	products, err := s.repo.List(offset, limit)
	if err != nil {
		s.logFailure("list", "", err)
		return nil, err
	}
	flat := make([]*models.FlatProduct, 0, len(products))
	for i := range products {
		flat = append(flat, products[i].Flatten())
	}
	return flat, nil
}

// Resolve looks a product up by a single term. A term in canonical UUID
// form is treated as the surrogate key; anything else matches the title
// (case-insensitive) or the slug. Images come back eagerly loaded.
func (s *ProductService) Resolve(term string) (*models.Product, error) {
	var (
		product *models.Product
		err     error
	)
	if _, uuidErr := uuid.Parse(term); uuidErr == nil {
		product, err = s.repo.GetByID(term)
	} else {
		product, err = s.repo.GetByNaturalKey(term)
	}
	if err != nil {
		s.logFailure("resolve", term, err)
		return nil, err
	}
	return product, nil
}

// ResolveFlat is the externally consumed read contract: Resolve with the
// images flattened to URL strings.
func (s *ProductService) ResolveFlat(term string) (*models.FlatProduct, error) {
	product, err := s.Resolve(term)
	if err != nil {
		return nil, err
	}
	return product.Flatten(), nil
}

// Update applies a partial patch to the product with the given id. Scalar
// fields are merged onto a copy of the stored record before anything is
// written; a missing product fails NotFound without opening a transaction.
// A non-nil image list replaces the owned image set in full inside one
// transaction with the parent write. The returned record is re-fetched so
// the caller observes committed state, not in-memory state.
func (s *ProductService) Update(id string, input *models.UpdateProductInput) (*models.FlatProduct, error) {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		s.logFailure("update", id, err)
		return nil, err
	}

	merged := *existing
	applyPatch(&merged, input)

	replaceImages := input.Images != nil
	if replaceImages {
		merged.Images = make([]models.ProductImage, 0, len(*input.Images))
		for _, url := range *input.Images {
			merged.Images = append(merged.Images, models.ProductImage{URL: url, ProductID: id})
		}
	}

	if err := s.repo.Save(&merged, replaceImages); err != nil {
		s.logFailure("update", id, err)
		return nil, err
	}
	s.publish("product.updated", &merged)

	fresh, err := s.repo.GetByID(id)
	if err != nil {
		s.logFailure("update", id, err)
		return nil, err
	}
	return fresh.Flatten(), nil
}

// Remove resolves a product by id or natural key and deletes it together
// with its images.
func (s *ProductService) Remove(term string) error {
	product, err := s.Resolve(term)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(product); err != nil {
		s.logFailure("remove", product.ID, err)
		return err
	}
	s.publish("product.deleted", product)
	return nil
}

// ResetAll unconditionally removes every product. It exists for the
// seeding workflow and is not safe to run concurrently with other catalog
// mutations.
func (s *ProductService) ResetAll() error {
	if err := s.repo.DeleteAll(); err != nil {
		s.logFailure("reset", "", err)
		return err
	}
	return nil
}

// applyPatch merges the non-nil scalar fields of a patch onto a copy of
// the stored product. Images are handled by the caller.
func applyPatch(product *models.Product, patch *models.UpdateProductInput) {
	if patch.Title != nil {
		product.Title = *patch.Title
	}
	if patch.Slug != nil {
		product.Slug = *patch.Slug
	}
	if patch.Price != nil {
		product.Price = *patch.Price
	}
	if patch.Description != nil {
		product.Description = *patch.Description
	}
	if patch.Stock != nil {
		product.Stock = *patch.Stock
	}
	if patch.Sizes != nil {
		product.Sizes = *patch.Sizes
	}
	if patch.Gender != nil {
		product.Gender = *patch.Gender
	}
	if patch.Tags != nil {
		product.Tags = *patch.Tags
	}
}

// logFailure records internal storage failures with operation context.
// Client-correctable errors (NotFound, unique violations) are not logged
// here; they travel back to the caller as-is.
func (s *ProductService) logFailure(op, subject string, err error) {
	var internal *apperrors.InternalError
	if !errors.As(err, &internal) {
		return
	}
	entry := s.logger.WithField("op", op)
	if subject != "" {
		entry = entry.WithField("product", subject)
	}
	entry.WithError(internal.Unwrap()).Error("storage failure")
}

// publish sends a catalog change event. Publish failures are logged and
// never fail the catalog operation itself.
func (s *ProductService) publish(event string, product *models.Product) {
	if s.mqClient == nil {
		return
	}
	err := s.mqClient.PublishProductEvent(event, map[string]interface{}{
		"productID": product.ID,
		"slug":      product.Slug,
		"title":     product.Title,
	})
	if err != nil {
		s.logger.WithField("event", event).WithError(err).Warn("failed to publish catalog event")
	}
}
