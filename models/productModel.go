package models

import "gorm.io/gorm"

const (
	StockStatusIn  = "in_stock"
	StockStatusOut = "out_of_stock"
)

type ProductImage struct {
	gorm.Model
	Url       string `json:"url" binding:"required"`
	ProductID int    `json:"productId"`
}

type Product struct {
	gorm.Model
	Name        string         `json:"name" binding:"required"`
	Price       int            `json:"price" binding:"required"`
	Category    string         `json:"category" binding:"required"`
	Description string         `json:"description"`
	StockStatus string         `json:"stockStatus"`
	ImageUrl    string         `json:"imageUrl"`
	Images      []ProductImage `json:"images" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}
