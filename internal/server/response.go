package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func respondData(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"data": data})
}

func respondFailure(c *gin.Context, status int, reason string) {
	c.JSON(status, gin.H{"success": false, "error": reason})
}
