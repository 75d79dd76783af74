package v1

import (
	"github.com/gin-gonic/gin"
)

// HealthCheck handles the health check endpoint
func HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status": "healthy",
	})
}

// Root handles the API banner endpoint
func Root(c *gin.Context) {
	c.JSON(200, gin.H{
		"message": "Welcome to Bugify API",
		"version": "1.0.0",
	})
}
