package models

import "strings"

type ProductCategory string

const (
	CategoryPlant      ProductCategory = "cayTrong"
	CategoryPot        ProductCategory = "chauCayTrong"
	CategoryAccessory  ProductCategory = "phuKien"
	CategoryCareCombos ProductCategory = "comboChamSoc"
)

var categoryNames = map[ProductCategory]string{
	CategoryPlant:      "Cây trồng",
	CategoryPot:        "Chậu cây trồng",
	CategoryAccessory:  "Phụ kiện",
	CategoryCareCombos: "Combo chăm sóc",
}

// DisplayName returns the storefront label for the category, or the raw value
// when the category is unknown.
func (c ProductCategory) DisplayName() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}

	return string(c)
}

type ProductDetails struct {
	Size   string `json:"size"`
	Origin string `json:"origin"`
	Status string `json:"status"`
}

// Product is the one canonical product shape. Price is kept as the backend's
// display string ("250.000đ"); use utils.ParsePrice for arithmetic.
type Product struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Price        string          `json:"price"`
	Image        string          `json:"image"`
	Description  string          `json:"description,omitempty"`
	Category     ProductCategory `json:"category"`
	CategoryName string          `json:"categoryName,omitempty"`
	Label        string          `json:"label,omitempty"`
	Details      *ProductDetails `json:"details,omitempty"`
	Quantity     int             `json:"quantity,omitempty"`
}

// NormalizeProduct reconciles the loosely typed variants the backend has served
// over time into the canonical shape.
func NormalizeProduct(p Product) Product {
	p.ID = strings.TrimSpace(p.ID)
	p.Name = strings.TrimSpace(p.Name)
	p.Price = strings.TrimSpace(p.Price)
	p.Image = strings.TrimSpace(p.Image)
	p.Description = strings.TrimSpace(p.Description)
	p.Label = strings.TrimSpace(p.Label)
	p.Category = ProductCategory(strings.TrimSpace(string(p.Category)))
	p.CategoryName = p.Category.DisplayName()

	if p.Quantity < 0 {
		p.Quantity = 0
	}

	if p.Details != nil && *p.Details == (ProductDetails{}) {
		p.Details = nil
	}

	return p
}

func NormalizeProducts(products []Product) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		out = append(out, NormalizeProduct(p))
	}

	return out
}

type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required,min=2,max=200"`
	Price       string          `json:"price" validate:"required"`
	Image       string          `json:"image" validate:"required"`
	Description string          `json:"description,omitempty"`
	Category    ProductCategory `json:"category" validate:"required,oneof=cayTrong chauCayTrong phuKien comboChamSoc"`
	Label       string          `json:"label,omitempty"`
	Details     *ProductDetails `json:"details,omitempty"`
	Quantity    int             `json:"quantity" validate:"gte=0"`
}
