package services

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"catalog/internal/models"
)

// SeedService rebuilds the catalog from a fixed dataset. Running it wipes
// every existing product first, so it is only meant for controlled
// environments; it is not guarded against concurrent catalog mutation.
type SeedService struct {
	products *ProductService
}

// NewSeedService creates a new SeedService.
func NewSeedService(products *ProductService) *SeedService {
	return &SeedService{
		products: products,
	}
}

// Run resets the catalog and inserts the seed drafts concurrently. The
// first insert failure aborts the run.
func (s *SeedService) Run() error {
	if err := s.products.ResetAll(); err != nil {
		return fmt.Errorf("failed to reset catalog before seeding: %w", err)
	}

	var g errgroup.Group
	for _, draft := range seedDrafts() {
		draft := draft
		g.Go(func() error {
			_, err := s.products.Create(&draft)
			return err
		})
	}
	return g.Wait()
}

// Count returns how many products a full seed run inserts.
func (s *SeedService) Count() int {
	return len(seedDrafts())
}

func seedDrafts() []models.CreateProductInput {
	return []models.CreateProductInput{
		{
			Title:       "Men's Chill Crew Neck Sweatshirt",
			Price:       ptr(75.0),
			Description: ptr("Introducing the softest crew neck in the lineup, with a relaxed fit and premium fleece."),
			Sizes:       []string{"XS", "S", "M", "L", "XL", "XXL"},
			Gender:      models.GenderMen,
			Tags:        []string{"sweatshirt"},
			Images:      []string{"https://cdn.example.com/products/1740176-00-A_0_2000.jpg", "https://cdn.example.com/products/1740176-00-A_1.jpg"},
		},
		{
			Title:       "Men's Quilted Shirt Jacket",
			Price:       ptr(200.0),
			Description: ptr("A quilted shirt jacket featuring insulated panels and a durable outer shell."),
			Stock:       ptr(5),
			Sizes:       []string{"XS", "S", "M", "XL", "XXL"},
			Gender:      models.GenderMen,
			Tags:        []string{"jacket"},
			Images:      []string{"https://cdn.example.com/products/1740507-00-A_0_2000.jpg"},
		},
		{
			Title:       "Women's Cropped Puffer Jacket",
			Price:       ptr(225.0),
			Description: ptr("A cropped silhouette with a fixed hood and lightweight insulation."),
			Stock:       ptr(85),
			Sizes:       []string{"XS", "S", "M"},
			Gender:      models.GenderWomen,
			Tags:        []string{"jacket", "puffer"},
			Images:      []string{"https://cdn.example.com/products/1740535-00-A_0_2000.jpg", "https://cdn.example.com/products/1740535-00-A_1.jpg"},
		},
		{
			Title:       "Women's T Logo Short Sleeve Scoop Neck Tee",
			Price:       ptr(35.0),
			Description: ptr("Soft and light short sleeve tee with a scoop neck and tonal logo."),
			Stock:       ptr(30),
			Sizes:       []string{"XS", "S", "M", "L", "XL", "XXL"},
			Gender:      models.GenderWomen,
			Tags:        []string{"shirt"},
			Images:      []string{"https://cdn.example.com/products/8765090-00-A_0_2000.jpg"},
		},
		{
			Title:       "Kids Checkered Tee",
			Price:       ptr(30.0),
			Description: ptr("A classic tee in a playful all-over checkered print."),
			Stock:       ptr(10),
			Sizes:       []string{"XS", "S", "M"},
			Gender:      models.GenderKids,
			Tags:        []string{"shirt"},
			Images:      []string{"https://cdn.example.com/products/8529312-00-A_0_2000.jpg"},
		},
		{
			Title:       "Cybertruck Graffiti Hoodie",
			Price:       ptr(60.0),
			Description: ptr("A relaxed unisex hoodie with a bold graffiti-style print across the chest."),
			Stock:       ptr(13),
			Sizes:       []string{"XS", "S", "M", "L", "XL", "XXL"},
			Gender:      models.GenderUnisex,
			Tags:        []string{"hoodie"},
			Images:      []string{"https://cdn.example.com/products/7654420-00-A_0_2000.jpg", "https://cdn.example.com/products/7654420-00-A_1_2000.jpg"},
		},
	}
}

func ptr[T any](v T) *T {
	return &v
}
