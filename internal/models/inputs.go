package models

// CreateProductInput is a product draft as accepted from the transport
// layer. Validation tags are checked once at the handler boundary; the
// service only ever sees structurally valid drafts.
type CreateProductInput struct {
	Title       string   `json:"title" validate:"required,min=1"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	Description *string  `json:"description"`
	Slug        *string  `json:"slug"`
	Tags        []string `json:"tags" validate:"omitempty,dive,min=1"`
	Stock       *int     `json:"stock" validate:"omitempty,gte=0"`
	Sizes       []string `json:"sizes" validate:"required,dive,min=1"`
	Gender      string   `json:"gender" validate:"required,oneof=men women kids unisex"`
	Images      []string `json:"images" validate:"omitempty,dive,min=1"`
}

// UpdateProductInput is a partial patch. Nil fields are left untouched on
// the stored product. A non-nil Images list replaces the owned image set
// in full; there is no partial image patching.
type UpdateProductInput struct {
	Title       *string   `json:"title" validate:"omitempty,min=1"`
	Price       *float64  `json:"price" validate:"omitempty,gte=0"`
	Description *string   `json:"description"`
	Slug        *string   `json:"slug"`
	Tags        *[]string `json:"tags" validate:"omitempty,dive,min=1"`
	Stock       *int      `json:"stock" validate:"omitempty,gte=0"`
	Sizes       *[]string `json:"sizes" validate:"omitempty,dive,min=1"`
	Gender      *string   `json:"gender" validate:"omitempty,oneof=men women kids unisex"`
	Images      *[]string `json:"images" validate:"omitempty,dive,min=1"`
}

// Pagination carries list window parameters. Zero values fall back to the
// service defaults (offset 0, limit 10).
type Pagination struct {
	Offset int `json:"offset" query:"offset" validate:"gte=0"`
	Limit  int `json:"limit" query:"limit" validate:"gte=0"`
}
