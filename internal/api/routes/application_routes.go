package routes

import (
	"hirely-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterApplicationRoutes registers all routes related to applications.
// The literal routes (/user, /admin) must be declared before the :jobId
// parameter route so gin resolves them first.
func RegisterApplicationRoutes(
	rg *gin.RouterGroup,
	applicationHandler handlers.ApplicationHandlerInterface,
	authMiddleware gin.HandlerFunc,
	adminMiddleware gin.HandlerFunc,
) {
	apps := rg.Group("/applications")
	apps.Use(authMiddleware)
	{
		apps.GET("/user", applicationHandler.ListMine)
		apps.GET("/admin", adminMiddleware, applicationHandler.ListAll)
		apps.POST("/:jobId", applicationHandler.Apply)
		apps.PATCH("/:id/status", adminMiddleware, applicationHandler.UpdateStatus)
	}
}
