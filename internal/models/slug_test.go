package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"catalog/internal/models"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Blue Hat", "blue-hat"},
		{"Men's Chill Crew Neck Sweatshirt", "men-s-chill-crew-neck-sweatshirt"},
		{"  Padded  Vest  ", "padded-vest"},
		{"HOODIE", "hoodie"},
		{"plain", "plain"},
		{"", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, models.Slugify(tc.title), "title %q", tc.title)
	}
}

func TestSlugifyIsDeterministic(t *testing.T) {
	assert.Equal(t, models.Slugify("Blue Hat"), models.Slugify("Blue Hat"))
}

func TestFlatten(t *testing.T) {
	product := &models.Product{
		ID:    "id-1",
		Title: "Blue Hat",
		Slug:  "blue-hat",
		Price: 20,
		Images: []models.ProductImage{
			{ID: 1, URL: "http://x/1.png", ProductID: "id-1"},
			{ID: 2, URL: "http://x/2.png", ProductID: "id-1"},
		},
	}

	flat := product.Flatten()
	assert.Equal(t, "id-1", flat.ID)
	assert.Equal(t, []string{"http://x/1.png", "http://x/2.png"}, flat.Images)
}

func TestFlattenWithoutImages(t *testing.T) {
	flat := (&models.Product{ID: "id-2", Title: "Plain Tee"}).Flatten()
	assert.NotNil(t, flat.Images)
	assert.Empty(t, flat.Images)
}
