package routes

import (
	"backend/core/controllers"
	"backend/core/services"

	"github.com/gin-gonic/gin"
)

func SetupSysRoutes(router *gin.Engine, rg *gin.RouterGroup) {
	svc := services.NewSysSvc()
	ctrl := controllers.NewSysCtrl(svc)

	// Health lives under the versioned prefix; the welcome message sits at
	// the bare root where humans land first.
	rg.GET("/health", ctrl.GetHealth)
	router.GET("/", ctrl.GetRoot)
}
