// Package controllers controllers/health_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campus-teams/logger"
)

// Health responds to load-balancer health checks.
func Health(c *gin.Context) {
	logger.Debug.Println("Health: health check requested")
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}
