package routes

import (
	"hirely-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterJobRoutes registers all routes related to the job catalog.
// Reads are public; mutations run the auth stage then the admin stage.
func RegisterJobRoutes(
	rg *gin.RouterGroup,
	jobHandler handlers.JobHandlerInterface,
	authMiddleware gin.HandlerFunc,
	adminMiddleware gin.HandlerFunc,
) {
	jobs := rg.Group("/jobs")
	{
		jobs.GET("", jobHandler.ListJobs)
		jobs.GET("/:id", jobHandler.GetJobByID)
		jobs.POST("", authMiddleware, adminMiddleware, jobHandler.CreateJob)
		jobs.PUT("/:id", authMiddleware, adminMiddleware, jobHandler.UpdateJob)
		jobs.DELETE("/:id", authMiddleware, adminMiddleware, jobHandler.DeleteJob)
	}
}
