package routes

import (
	"backend/core/controllers"
	"backend/core/services"

	"github.com/gin-gonic/gin"
)

func SetupDocsRoutes(router *gin.Engine) {
	svc := services.NewDocsSvc()
	ctrl := controllers.NewDocsCtrl(svc)

	router.GET("/docs", ctrl.GetDocs)
	router.GET("/openapi.json", ctrl.GetOpenAPI)
}
