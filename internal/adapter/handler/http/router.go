package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/sm8ta/registration_microservice/internal/config"
	"github.com/sm8ta/registration_microservice/internal/core/ports"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Router struct {
	*gin.Engine
	server *http.Server
}

func NewRouter(
	config *config.HTTP,
	logger ports.LoggerPort,
	metrics http.Handler,
	userHandler *UserHandler,
	authHandler *AuthHandler,
) (*Router, error) {
	if config.Env == "prod" || config.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// CORS
	corsConfig := cors.DefaultConfig()
	var origins []string
	for _, origin := range strings.Split(config.AllowedOrigins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = origins
		corsConfig.AllowCredentials = true
	}

	router := gin.New()
	router.Use(gin.Logger(), RecoveryMiddleware(logger), cors.New(corsConfig))

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Metrics
	if metrics == nil {
		metrics = promhttp.Handler()
	}
	router.GET("/metrics", gin.WrapH(metrics))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.POST("/register", userHandler.Register)
	router.POST("/login", authHandler.Login)

	return &Router{
		Engine: router,
	}, nil
}

// Starts the HTTP server
func (r *Router) Serve(listenAddr string) error {
	r.server = &http.Server{
		Addr:    listenAddr,
		Handler: r.Engine,
	}
	if err := r.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (r *Router) Shutdown(ctx context.Context) error {
	if r.server == nil {
		return nil
	}
	return r.server.Shutdown(ctx)
}
