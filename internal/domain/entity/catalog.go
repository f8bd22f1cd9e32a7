package entity

import "github.com/shopspring/decimal"

// Brand groups products by manufacturer.
type Brand struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Img  string `json:"img"` // public path of the stored image
}

// Category groups products by kind.
type Category struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Img  string `json:"img"`
}

// Product is a catalog item. CategoryName and BrandName are only filled on read views.
type Product struct {
	ID           uint            `json:"id"`
	Name         string          `json:"name"`
	Img          string          `json:"img"`
	Price        decimal.Decimal `json:"price"`
	CategoryID   uint            `json:"category_id"`
	BrandID      *uint           `json:"brand_id"`
	CategoryName *string         `json:"category_name,omitempty"`
	BrandName    *string         `json:"brand_name,omitempty"`
	Details      []ProductDetail `json:"details,omitzero"` // nil outside GetProduct
}

// ProductDetail is a free-form name/value attribute of a product.
type ProductDetail struct {
	ID          uint   `json:"id"`
	ProductID   uint   `json:"product_id,omitempty"`
	DetailName  string `json:"detail_name"`
	DetailValue string `json:"detail_value"`
}
