package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health responde siempre; no consulta la base de datos
func Health(service string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": service})
	}
}
