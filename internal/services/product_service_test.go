package services_test

import (
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"catalog/internal/apperrors"
	"catalog/internal/models"
	"catalog/internal/services"
)

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) List(offset, limit int) ([]models.Product, error) {
	args := m.Called(offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(id string) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByNaturalKey(term string) (*models.Product, error) {
	args := m.Called(term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Create(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Save(product *models.Product, replaceImages bool) error {
	args := m.Called(product, replaceImages)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) DeleteAll() error {
	args := m.Called()
	return args.Error(0)
}

func newTestService(repo *MockProductRepository) *services.ProductService {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return services.NewProductService(repo, logger, nil)
}

func TestProductService_CreateDerivesSlugAndImages(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := newTestService(mockRepo)

	mockRepo.On("Create", mock.MatchedBy(func(p *models.Product) bool {
		return p.Slug == "blue-hat" && len(p.Images) == 1 && p.Images[0].URL == "http://x/1.png"
	})).Return(nil).Once()

	flat, err := service.Create(&models.CreateProductInput{
		Title:  "Blue Hat",
		Gender: models.GenderUnisex,
		Sizes:  []string{"S", "M"},
		Images: []string{"http://x/1.png"},
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, flat.ID)
	assert.Equal(t, "blue-hat", flat.Slug)
	assert.Equal(t, []string{"http://x/1.png"}, flat.Images)
	assert.Equal(t, []string{}, flat.Tags)
	mockRepo.AssertExpectations(t)
}

func TestProductService_CreateKeepsExplicitSlug(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := newTestService(mockRepo)

	mockRepo.On("Create", mock.MatchedBy(func(p *models.Product) bool {
		return p.Slug == "custom_slug"
	})).Return(nil).Once()

	slug := "custom_slug"
	flat, err := service.Create(&models.CreateProductInput{
		Title:  "Blue Hat",
		Slug:   &slug,
		Gender: models.GenderMen,
		Sizes:  []string{"M"},
	})

	assert.NoError(t, err)
	assert.Equal(t, "custom_slug", flat.Slug)
	assert.Empty(t, flat.Images)
	mockRepo.AssertExpectations(t)
}

func TestProductService_CreateSurfacesUniqueViolation(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := newTestService(mockRepo)

	mockRepo.On("Create", mock.Anything).
		Return(&apperrors.UniqueViolationError{Detail: "duplicate slug blue-hat"}).Once()

	flat, err := service.Create(&models.CreateProductInput{
		Title:  "Blue Hat",
		Gender: models.GenderMen,
		Sizes:  []string{"M"},
	})

	assert.Nil(t, flat)
	assert.True(t, apperrors.IsUniqueViolation(err))
	mockRepo.AssertExpectations(t)
}

func TestProductService_ListAppliesDefaults(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := newTestService(mockRepo)

	mockRepo.On("List", 0, services.DefaultPageSize).Return([]models.Product{
		{ID: "1", Title: "A", Images: []models.ProductImage{{URL: "http://x/a.png"}}},
		{ID: "2", Title: "B"},
	}, nil).Once()

	products, err := service.List(models.Pagination{})

	assert.NoError(t, err)
	assert.Len(t, products, 2)
	assert.Equal(t, []string{"http://x/a.png"}, products[0].Images)
	assert.Empty(t, products[1].Images)
	mockRepo.AssertExpectations(t)
}

func TestProductService_ResolveByUUIDUsesSurrogateLookup(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := newTestService(mockRepo)

	id := "a3bb189e-8bf9-3888-9912-ace4e6543002"
	mockRepo.On("GetByID", id).Return(&models.Product{ID: id, Title: "Blue Hat"}, nil).Once()

	product, err := service.Resolve(id)

	assert.NoError(t, err)
	assert.Equal(t, id, product.ID)
	mockRepo.AssertNotCalled(t, "GetByNaturalKey", mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestProductService_ResolveByTermUsesNaturalKeyLookup(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := newTestService(mockRepo)

	mockRepo.On("GetByNaturalKey", "Blue Hat").
		Return(&models.Product{ID: "1", Title: "Blue Hat", Slug: "blue-hat"}, nil).Once()

	product, err := service.Resolve("Blue Hat")

	assert.NoError(t, err)
	assert.Equal(t, "blue-hat", product.Slug)
	mockRepo.AssertNotCalled(t, "GetByID", mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestProductService_ResolveFlatNotFound(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := newTestService(mockRepo)

	mockRepo.On("GetByNaturalKey", "nonexistent-term").
		Return(nil, &apperrors.NotFoundError{Term: "nonexistent-term"}).Once()

	flat, err := service.ResolveFlat("nonexistent-term")

	assert.Nil(t, flat)
	assert.True(t, apperrors.IsNotFound(err))
	assert.Contains(t, err.Error(), "nonexistent-term")
	mockRepo.AssertExpectations(t)
}

func TestProductService_UpdateFailsNotFoundBeforeSave(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := newTestService(mockRepo)

	mockRepo.On("GetByID", "missing-id").
		Return(nil, &apperrors.NotFoundError{Term: "missing-id"}).Once()

	title := "New Title"
	flat, err := service.Update("missing-id", &models.UpdateProductInput{Title: &title})

	assert.Nil(t, flat)
	assert.True(t, apperrors.IsNotFound(err))
	mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestProductService_UpdateMergesScalarsWithoutTouchingImages(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := newTestService(mockRepo)

	existing := &models.Product{
		ID:    "1",
		Title: "Blue Hat",
		Slug:  "blue-hat",
		Price: 20,
		Images: []models.ProductImage{
			{ID: 1, URL: "http://x/1.png", ProductID: "1"},
		},
	}
	mockRepo.On("GetByID", "1").Return(existing, nil).Twice()
	mockRepo.On("Save", mock.MatchedBy(func(p *models.Product) bool {
		return p.Price == 35 && p.Title == "Blue Hat"
	}), false).Return(nil).Once()

	price := 35.0
	flat, err := service.Update("1", &models.UpdateProductInput{Price: &price})

	assert.NoError(t, err)
	assert.Equal(t, []string{"http://x/1.png"}, flat.Images)
	mockRepo.AssertExpectations(t)
}

func TestProductService_UpdateReplacesImagesInFull(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := newTestService(mockRepo)

	existing := &models.Product{ID: "1", Title: "Blue Hat", Slug: "blue-hat"}
	mockRepo.On("GetByID", "1").Return(existing, nil).Twice()
	mockRepo.On("Save", mock.MatchedBy(func(p *models.Product) bool {
		return len(p.Images) == 2 &&
			p.Images[0].URL == "http://x/2.png" &&
			p.Images[1].URL == "http://x/3.png"
	}), true).Return(nil).Once()

	images := []string{"http://x/2.png", "http://x/3.png"}
	_, err := service.Update("1", &models.UpdateProductInput{Images: &images})

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestProductService_RemoveResolvesThenDeletes(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := newTestService(mockRepo)

	product := &models.Product{ID: "1", Title: "Blue Hat", Slug: "blue-hat"}
	mockRepo.On("GetByNaturalKey", "blue-hat").Return(product, nil).Once()
	mockRepo.On("Delete", product).Return(nil).Once()

	assert.NoError(t, service.Remove("blue-hat"))
	mockRepo.AssertExpectations(t)
}

func TestProductService_RemoveNotFound(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := newTestService(mockRepo)

	mockRepo.On("GetByNaturalKey", "missing").
		Return(nil, &apperrors.NotFoundError{Term: "missing"}).Once()

	err := service.Remove("missing")

	assert.True(t, apperrors.IsNotFound(err))
	mockRepo.AssertNotCalled(t, "Delete", mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestProductService_ResetAll(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := newTestService(mockRepo)

	mockRepo.On("DeleteAll").Return(nil).Once()
	assert.NoError(t, service.ResetAll())

	mockRepo.On("DeleteAll").Return(errors.New("disk gone")).Once()
	assert.Error(t, service.ResetAll())
	mockRepo.AssertExpectations(t)
}
