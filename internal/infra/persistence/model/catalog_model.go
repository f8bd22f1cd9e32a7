// Package model holds the GORM-specific table structs.
package model

import "github.com/shopspring/decimal"

// BrandModel is the GORM-specific struct for the 'brands' table.
type BrandModel struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"type:varchar(255);not null"`
	Img  string `gorm:"type:varchar(255)"`
}

// TableName explicitly sets the table name for GORM.
func (BrandModel) TableName() string {
	return "brands"
}

// CategoryModel is the GORM-specific struct for the 'categories' table.
type CategoryModel struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"type:varchar(255);not null"`
	Img  string `gorm:"type:varchar(255)"`
}

func (CategoryModel) TableName() string {
	return "categories"
}

// ProductModel is the GORM-specific struct for the 'products' table.
type ProductModel struct {
	ID         uint            `gorm:"primaryKey"`
	Name       string          `gorm:"type:varchar(255);not null"`
	Img        string          `gorm:"type:varchar(255)"`
	Price      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CategoryID uint            `gorm:"not null;index"`
	BrandID    *uint           `gorm:"index"`
}

func (ProductModel) TableName() string {
	return "products"
}

// ProductDetailModel is the GORM-specific struct for the 'product_details' table.
type ProductDetailModel struct {
	ID          uint   `gorm:"primaryKey"`
	ProductID   uint   `gorm:"not null;index"`
	DetailName  string `gorm:"type:varchar(255);not null"`
	DetailValue string `gorm:"type:text"`
}

func (ProductDetailModel) TableName() string {
	return "product_details"
}
