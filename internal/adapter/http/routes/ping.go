package routes

import (
	"net/http"

	"cotacao_ia/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathHealth = "/health"
	PathPing   = "/ping"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathHealth, handlers.Health)
	rg.GET(PathPing, func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
}
