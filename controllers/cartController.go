package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/XidanAbds29/huehouse-api/initializers"
	"github.com/XidanAbds29/huehouse-api/middlewares"
	"github.com/XidanAbds29/huehouse-api/models"
	"github.com/XidanAbds29/huehouse-api/services"
)

func getOrCreateCart(userID uint) (models.Cart, error) {
	var cart models.Cart
	err := initializers.DB.Where("user_id = ?", userID).First(&cart).Error
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return cart, err
	}

	empty, err := services.EncodeCartItems(nil)
	if err != nil {
		return cart, err
	}
	cart = models.Cart{UserID: userID, Items: empty}
	return cart, initializers.DB.Create(&cart).Error
}

func saveCartItems(cart *models.Cart, items []models.CartItem) error {
	encoded, err := services.EncodeCartItems(items)
	if err != nil {
		return err
	}
	cart.Items = encoded
	return initializers.DB.Model(cart).Update("items", encoded).Error
}

func GetCart(ctx *gin.Context) {
	userID, ok := middlewares.CurrentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	cart, err := getOrCreateCart(userID)
	if err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch cart")
		return
	}

	items, err := services.DecodeCartItems(cart.Items)
	if err != nil {
		log.Println("Cart decode error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to read cart")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"items": items})
}

// AddToCart snapshots the product into the cart. Adding the same product
// twice produces two entries.
func AddToCart(ctx *gin.Context) {
	userID, ok := middlewares.CurrentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	var body struct {
		ProductID uint `json:"productId" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		log.Println("Bind error:", err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid input")
		return
	}

	var product models.Product
	if err := initializers.DB.Preload("Images").First(&product, body.ProductID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Product not found")
		} else {
			log.Println("Database error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch product")
		}
		return
	}

	if product.StockStatus != models.StockStatusIn {
		sendErrorResponse(ctx, http.StatusBadRequest, "Product is out of stock")
		return
	}

	cart, err := getOrCreateCart(userID)
	if err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch cart")
		return
	}

	items, err := services.DecodeCartItems(cart.Items)
	if err != nil {
		log.Println("Cart decode error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to read cart")
		return
	}

	items = services.AddCartItem(items, product)
	if err := saveCartItems(&cart, items); err != nil {
		log.Println("Cart save error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to update cart")
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message": product.Name + " added to cart",
		"items":   items,
	})
}

// RemoveCartItem deletes the first entry matching the product id; later
// duplicates stay.
func RemoveCartItem(ctx *gin.Context) {
	userID, ok := middlewares.CurrentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	productId, err := strconv.Atoi(ctx.Param("productId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid product ID")
		return
	}

	cart, err := getOrCreateCart(userID)
	if err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch cart")
		return
	}

	items, err := services.DecodeCartItems(cart.Items)
	if err != nil {
		log.Println("Cart decode error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to read cart")
		return
	}

	items = services.RemoveCartItem(items, uint(productId))
	if err := saveCartItems(&cart, items); err != nil {
		log.Println("Cart save error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to update cart")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"items": items})
}

func ClearCart(ctx *gin.Context) {
	userID, ok := middlewares.CurrentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	cart, err := getOrCreateCart(userID)
	if err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch cart")
		return
	}

	if err := saveCartItems(&cart, nil); err != nil {
		log.Println("Cart save error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to clear cart")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Cart cleared"})
}
