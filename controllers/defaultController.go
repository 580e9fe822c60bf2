package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the HueHouse API. Enjoy seamless interaction with this API.

The following are the endpoints for this API:

AUTH
- POST "/auth/signup" - Create account
- POST "/auth/login" - Access account
- GET "/profile" - Saved checkout profile

PRODUCT
- GET "/products" - Browse in-stock artwork
- GET "/products/:id" - Get product by ID

CART
- GET "/cart" - Get cart items
- POST "/cart" - Add product to cart
- DELETE "/cart/items/:productId" - Remove one item
- DELETE "/cart" - Clear cart

ORDER
- POST "/checkout" - Place an order
- GET "/orders" - Your orders
- GET "/orders/:orderNumber/invoice" - Invoice data

ADMIN
- GET "/admin/products" - All products
- POST "/admin/products" - Create product
- PUT "/admin/products/:id" - Update product
- DELETE "/admin/products/:id" - Delete product
- POST "/admin/products/:id/images" - Upload product images
- GET "/admin/orders" - All orders
- PATCH "/admin/orders/:orderId/status" - Update order status
- DELETE "/admin/orders/:orderId" - Mark order deleted
- POST "/admin/orders/:orderId/courier" - Retry courier booking`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
