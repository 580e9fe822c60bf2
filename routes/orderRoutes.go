package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/XidanAbds29/huehouse-api/controllers"
	"github.com/XidanAbds29/huehouse-api/middlewares"
)

func OrderRoutes(server *gin.Engine) {
	server.POST("/checkout", middlewares.OptionalAuth(), controllers.Checkout)
	server.GET("/orders", middlewares.RequireAuth(), controllers.GetMyOrders)
	server.GET("/orders/:orderNumber/invoice", controllers.GetOrderInvoice)
}
