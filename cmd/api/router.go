package main

import (
	"LawHub_LegalAssistant/internal/auth"
	"LawHub_LegalAssistant/internal/config"
	"LawHub_LegalAssistant/internal/handler"
	"LawHub_LegalAssistant/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	ginprometheus "github.com/zsais/go-gin-prometheus"
	"go.uber.org/zap"
)

// newRouter builds the gin engine. Middleware must be attached before routes:
// gin only applies it to routes registered after the Use call.
func newRouter(cfg *config.Config, h *handler.Handler, tokens *auth.TokenManager, log *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(middleware.ZapLogger(log))
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if origins := cfg.AllowedOrigins(); len(origins) > 0 {
		corsConfig.AllowOrigins = origins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))
	router.Use(middleware.RateLimit(cfg.RateLimitPerSecond, cfg.RateLimitBurst))

	if cfg.MetricsEnabled {
		p := ginprometheus.NewPrometheus("gin")
		p.Use(router)
	}

	h.RegisterRoutes(router, middleware.AuthMiddleware(tokens))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	return router
}
