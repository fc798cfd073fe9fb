package models

import "time"

// Genders a product can be tagged with.
const (
	GenderMen    = "men"
	GenderWomen  = "women"
	GenderKids   = "kids"
	GenderUnisex = "unisex"
)

// Product represents a catalog entry. The image rows are owned exclusively
// by the product and are removed together with it.
type Product struct {
	ID          string         `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Title       string         `json:"title" gorm:"type:varchar(255);not null"`
	Slug        string         `json:"slug" gorm:"type:varchar(255);not null;uniqueIndex"`
	Price       float64        `json:"price"`
	Description string         `json:"description" gorm:"type:text"`
	Stock       int            `json:"stock"`
	Sizes       []string       `json:"sizes" gorm:"serializer:json"`
	Gender      string         `json:"gender" gorm:"type:varchar(10)"`
	Tags        []string       `json:"tags" gorm:"serializer:json"`
	Images      []ProductImage `json:"images" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// ProductImage holds one image URL belonging to a product. It is never
// addressed on its own by external callers.
type ProductImage struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	URL       string `json:"url" gorm:"type:varchar(500);not null"`
	ProductID string `json:"-" gorm:"type:varchar(36);not null;index"`
}

// FlatProduct is the read shape handed to external callers: the image rows
// are reduced to their URL strings.
type FlatProduct struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	Price       float64  `json:"price"`
	Description string   `json:"description"`
	Stock       int      `json:"stock"`
	Sizes       []string `json:"sizes"`
	Gender      string   `json:"gender"`
	Tags        []string `json:"tags"`
	Images      []string `json:"images"`
}

// Flatten converts a product to its external read shape. Images is never
// nil so the JSON rendering stays a list.
func (p *Product) Flatten() *FlatProduct {
	images := make([]string, 0, len(p.Images))
	for _, image := range p.Images {
		images = append(images, image.URL)
	}
	return &FlatProduct{
		ID:          p.ID,
		Title:       p.Title,
		Slug:        p.Slug,
		Price:       p.Price,
		Description: p.Description,
		Stock:       p.Stock,
		Sizes:       p.Sizes,
		Gender:      p.Gender,
		Tags:        p.Tags,
		Images:      images,
	}
}
