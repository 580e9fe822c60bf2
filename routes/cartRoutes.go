package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/XidanAbds29/huehouse-api/controllers"
	"github.com/XidanAbds29/huehouse-api/middlewares"
)

func CartRoutes(server *gin.Engine) {
	cart := server.Group("/cart", middlewares.RequireAuth())
	{
		cart.GET("", controllers.GetCart)
		cart.POST("", controllers.AddToCart)
		cart.DELETE("/items/:productId", controllers.RemoveCartItem)
		cart.DELETE("", controllers.ClearCart)
	}
}
