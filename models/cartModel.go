package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CartItem is a product snapshot captured at add-to-cart time. Repeated adds
// of the same product produce duplicate entries, quantity is implicitly one.
type CartItem struct {
	ProductID uint   `json:"id" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Price     int    `json:"price" binding:"required"`
	ImageUrl  string `json:"imageUrl,omitempty"`
}

// Cart persists a user's item snapshots as a single JSON document so the
// list survives reloads and round-trips through an explicit
// serialize/deserialize boundary.
type Cart struct {
	gorm.Model
	UserID uint           `json:"userId" gorm:"uniqueIndex"`
	Items  datatypes.JSON `json:"items"`
}
