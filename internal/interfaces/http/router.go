// Package http wires the HTTP API: middleware, routes and handler dependencies.
//
// @title Shop API
// @version 1.0
// @description Products, subscribers and the links between them.
// @BasePath /api
package http

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"shop/internal/infrastructure/config"
	"shop/internal/interfaces/http/middleware"
	"shop/internal/interfaces/http/routes"
	"shop/internal/shared/logger"

	_ "shop/docs"
)

// Router represents the HTTP router configuration
type Router struct {
	*Container
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Router, error) {
	c, err := NewContainer(db, cfg, log)
	if err != nil {
		return nil, err
	}
	return &Router{Container: c}, nil
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.RequestID(r.log))
	r.engine.Use(middleware.Logger(r.log))
	r.engine.Use(middleware.Recovery(r.log))
	r.engine.Use(middleware.ErrorHandler(r.log))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))

	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.engine.GET("/health", r.hdlrs.healthHandler.HealthCheck)

	api := r.engine.Group("/api")
	if r.rateLimiter != nil {
		api.Use(middleware.RateLimit(r.rateLimiter, r.log))
	}

	routes.SetupProductRoutes(api, &routes.ProductRouteConfig{
		ProductHandler: r.hdlrs.productHandler,
	})
	routes.SetupSubscriberRoutes(api, &routes.SubscriberRouteConfig{
		SubscriberHandler: r.hdlrs.subscriberHandler,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
