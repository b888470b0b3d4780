package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"backend/core/middlewares"
)

// NewRouter assembles the engine exactly as it is served: tests run
// against the same middleware chain and route table as production.
func NewRouter(log zerolog.Logger, corsCfg middlewares.CORSConfig) *gin.Engine {
	router := gin.New()

	// Wrong method on a known path should be a 405, not a 404.
	router.HandleMethodNotAllowed = true

	router.Use(
		gin.Recovery(),
		middlewares.RequestID(),
		middlewares.Logger(log),
		middlewares.CORS(corsCfg),
	)

	v1 := router.Group("/api/v1")

	// Register Domain Routes
	SetupSysRoutes(router, v1)
	SetupDocsRoutes(router)

	return router
}
