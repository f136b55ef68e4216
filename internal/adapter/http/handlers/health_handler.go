package handlers

import (
	"net/http"

	response "cotacao_ia/internal/adapter/http/dto/response"

	"github.com/gin-gonic/gin"
)

const serviceName = "Cotação com IA - Vidda Seguros"

// BuildTimestamp is reported by the health check. Override at build time:
//
//	go build -ldflags "-X cotacao_ia/internal/adapter/http/handlers.BuildTimestamp=$(date -u +%FT%T)"
var BuildTimestamp = "2025-09-29T01:04:51.232132"

// Health godoc
// @Summary  Health check
// @Tags     health
// @Produce  json
// @Success  200  {object}  response.HealthResponse
// @Router   /health [get]
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, response.HealthResponse{
		Service:   serviceName,
		Status:    "OK",
		Timestamp: BuildTimestamp,
	})
}
