package handlers

import "github.com/gin-gonic/gin"

// AuthHandlerInterface lists the auth/account endpoints.
type AuthHandlerInterface interface {
	Register(c *gin.Context)
	Login(c *gin.Context)
	Refresh(c *gin.Context)
	Logout(c *gin.Context)
	UpdateProfile(c *gin.Context)
	DeleteProfile(c *gin.Context)
}

// JobHandlerInterface lists the job catalog endpoints.
type JobHandlerInterface interface {
	ListJobs(c *gin.Context)
	GetJobByID(c *gin.Context)
	CreateJob(c *gin.Context)
	UpdateJob(c *gin.Context)
	DeleteJob(c *gin.Context)
}

// ApplicationHandlerInterface lists the application ledger endpoints.
type ApplicationHandlerInterface interface {
	Apply(c *gin.Context)
	ListMine(c *gin.Context)
	ListAll(c *gin.Context)
	UpdateStatus(c *gin.Context)
}
