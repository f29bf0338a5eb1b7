package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/treasury_ledger/internal/core/ports/services"
	"github.com/SscSPs/treasury_ledger/internal/middleware"
	"github.com/SscSPs/treasury_ledger/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// metrics may be nil, in which case /metrics is not served.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	store HealthChecker,
	metrics http.Handler,
	apiMiddleware ...gin.HandlerFunc,
) {
	r.GET("/health", healthHandler(store))
	if metrics != nil {
		r.GET("/metrics", gin.WrapH(metrics))
	}

	setupAPIV1Routes(r, cfg, services, apiMiddleware...)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	apiMiddleware ...gin.HandlerFunc,
) {
	chain := append([]gin.HandlerFunc{}, apiMiddleware...)
	chain = append(chain, middleware.AuthMiddleware(cfg.JWTSecret))
	v1 := r.Group("/api/v1", chain...)

	RegisterAccountRoutes(v1, services.Account)
	RegisterTreasuryRoutes(v1, services.Treasury)
	RegisterReconciliationRoutes(v1, services.Reconciliation)
}
