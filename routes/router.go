package routes

import (
	"io"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"interviewhub/config"
	"interviewhub/demo"
	"interviewhub/middlewares"
	"interviewhub/services"
)

// SetupRouter wires every endpoint of the service.
func SetupRouter(cfg *config.Config, evaluator *services.Evaluator, demoClient *demo.Client, log *zap.Logger) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(
		gin.CustomRecoveryWithWriter(io.Discard, recoveryHandler(log)),
		middlewares.RequestID(),
		middlewares.RequestLogger(log),
	)

	router.Use(cors.New(corsConfig(cfg.Server.AllowOrigins)))

	api := router.Group("/api")
	{
		api.POST("/evaluate", EvaluateRouteHandler(evaluator))
		api.GET("/evaluate", MethodNotAllowedHandler)
		api.GET("/health", HealthRouteHandler(cfg))
	}

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if demoClient != nil {
		SetupDemoRoutes(router, demoClient, cfg.Service.Name)
	}

	router.NoMethod(MethodNotAllowedHandler)
	return router
}

// corsConfig never rejects simple requests when "*" is configured, so
// endpoint behaviour does not depend on the Origin header.
func corsConfig(origins []string) cors.Config {
	corsCfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", middlewares.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", middlewares.RequestIDHeader},
	}
	for _, origin := range origins {
		if origin == "*" {
			corsCfg.AllowAllOrigins = true
			return corsCfg
		}
	}
	corsCfg.AllowOrigins = origins
	return corsCfg
}
