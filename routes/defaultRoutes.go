package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/XidanAbds29/huehouse-api/controllers"
)

func DefaultRoutes(server *gin.Engine) {
	server.GET("/", controllers.GetHome)
}
