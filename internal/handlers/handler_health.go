package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthChecker reports whether a dependency is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// healthHandler godoc
// @Summary Health check
// @Description Answers 200 when the store responds within a second
// @Tags health
// @Produce  plain
// @Success 200 {string} string "OK"
// @Failure 503 {object} dto.Result "Storage unavailable"
// @Router /health [get]
func healthHandler(store HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if store == nil {
			c.String(http.StatusOK, "OK")
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
		defer cancel()
		if err := store.Ping(ctx); err != nil {
			respondError(c, err)
			return
		}
		c.String(http.StatusOK, "OK")
	}
}
