package handler

import (
	"context"
	"net/http"
	"time"

	"kyc-credential-gateway/internal/core/ports"

	"github.com/gin-gonic/gin"
)

// HealthCheck returns a handler reporting service and dependency health.
// Responds 503 when any dependency is unreachable so load balancers stop
// routing webhooks to a node that cannot persist them.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		status := "healthy"
		httpStatus := http.StatusOK
		deps := make(map[string]string, len(checkers))

		for _, checker := range checkers {
			if err := checker.Ping(ctx); err != nil {
				deps[checker.Name()] = "unhealthy: " + err.Error()
				status = "degraded"
				httpStatus = http.StatusServiceUnavailable
			} else {
				deps[checker.Name()] = "healthy"
			}
		}

		c.JSON(httpStatus, gin.H{
			"status":       status,
			"dependencies": deps,
			"timestamp":    time.Now().UTC().Format(time.RFC3339),
		})
	}
}
