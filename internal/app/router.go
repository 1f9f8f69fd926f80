package app

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"planwise.io/planwise/internal/api/handlers"
	"planwise.io/planwise/internal/api/middleware"
	"planwise.io/planwise/internal/config"
)

func newRouter(cfg *config.Config, server *handlers.Server, jwtCfg middleware.JWTConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.ErrorHandler())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = cfg.CORS.AllowOrigins
	corsCfg.AllowCredentials = cfg.CORS.AllowCredentials
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization", middleware.RequestIDHeader)
	router.Use(cors.New(corsCfg))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	server.RegisterRoutes(router, middleware.JWTAuth(jwtCfg.SigningKey))
	return router
}
