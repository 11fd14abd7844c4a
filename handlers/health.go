package handlers

import (
	"net/http"

	"cityconnect/utils"

	"github.com/gin-gonic/gin"
)

// Health reports liveness plus the last backend health snapshot.
func Health(c *gin.Context) {
	status := utils.GetHealthStatus()
	healthy := true
	for _, ok := range status.Services {
		healthy = healthy && ok
	}
	state := "ok"
	if !healthy {
		state = "degraded"
	}
	c.JSON(http.StatusOK, gin.H{
		"status":    state,
		"message":   "Hi, I'm City Connect",
		"services":  status.Services,
		"checkedAt": status.CheckedAt,
	})
}
