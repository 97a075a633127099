package server

import (
	"net/http"

	"github.com/Afresh-Revolution/Knowrist/internal/api"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Health reports service liveness.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, api.HealthResponse{Status: "ok"})
}

// Metrics exposes Prometheus metrics in text format.
func Metrics() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
