package services

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/XidanAbds29/huehouse-api/models"
)

// Cart mutation helpers. The item list is an ordered snapshot: adds append
// (duplicates allowed), removal takes out only the first entry matching the
// product id.

func AddCartItem(items []models.CartItem, product models.Product) []models.CartItem {
	imageUrl := product.ImageUrl
	if imageUrl == "" && len(product.Images) > 0 {
		imageUrl = product.Images[0].Url
	}
	return append(items, models.CartItem{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		ImageUrl:  imageUrl,
	})
}

func RemoveCartItem(items []models.CartItem, productID uint) []models.CartItem {
	for i, item := range items {
		if item.ProductID == productID {
			return append(items[:i:i], items[i+1:]...)
		}
	}
	return items
}

func EncodeCartItems(items []models.CartItem) (datatypes.JSON, error) {
	if items == nil {
		items = []models.CartItem{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("encode cart items: %w", err)
	}
	return datatypes.JSON(raw), nil
}

func DecodeCartItems(raw datatypes.JSON) ([]models.CartItem, error) {
	if len(raw) == 0 {
		return []models.CartItem{}, nil
	}
	var items []models.CartItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode cart items: %w", err)
	}
	return items, nil
}
