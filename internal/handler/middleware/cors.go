package middleware

import (
	"log/slog"
	"slices"

	"travel-checkout/internal/pkg/config"
	"travel-checkout/internal/pkg/requestid"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware treats a "*" origin as allow-all. Credentials are never
// combined with a wildcard origin.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    cfg.ExposeHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	if len(cfg.AllowOrigins) == 0 || slices.Contains(cfg.AllowOrigins, "*") {
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	} else {
		corsCfg.AllowOrigins = cfg.AllowOrigins
	}
	if !slices.Contains(corsCfg.ExposeHeaders, requestid.Header) {
		corsCfg.ExposeHeaders = append(corsCfg.ExposeHeaders, requestid.Header)
	}

	slog.Info("CORS middleware initialized",
		"allow_origins", cfg.AllowOrigins,
		"allow_all_origins", corsCfg.AllowAllOrigins)
	return cors.New(corsCfg)
}
