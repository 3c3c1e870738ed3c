package health

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthCheck answers the liveness probe.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
