package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/XidanAbds29/huehouse-api/controllers"
	"github.com/XidanAbds29/huehouse-api/middlewares"
)

func AdminRoutes(server *gin.Engine) {
	admin := server.Group("/admin", middlewares.RequireAuth(), middlewares.RequireAdmin())
	{
		admin.GET("/products", controllers.GetAllProducts)
		admin.POST("/products", controllers.CreateProduct)
		admin.PUT("/products/:id", controllers.UpdateProduct)
		admin.DELETE("/products/:id", controllers.DeleteProduct)
		admin.POST("/products/:id/images", controllers.UploadProductImages)

		admin.GET("/orders", controllers.GetOrders)
		admin.PATCH("/orders/:orderId/status", controllers.UpdateOrderStatus)
		admin.DELETE("/orders/:orderId", controllers.DeleteOrder)
		admin.POST("/orders/:orderId/courier", controllers.RetryCourierSync)
	}
}
