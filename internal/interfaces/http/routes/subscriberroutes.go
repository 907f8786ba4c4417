package routes

import (
	"github.com/gin-gonic/gin"

	"shop/internal/interfaces/http/handlers/subscriber"
)

// SubscriberRouteConfig holds dependencies for subscriber routes.
type SubscriberRouteConfig struct {
	SubscriberHandler *subscriber.Handler
}

// SetupSubscriberRoutes configures subscriber routes.
func SetupSubscriberRoutes(api *gin.RouterGroup, cfg *SubscriberRouteConfig) {
	subscribers := api.Group("/subscribers")
	{
		subscribers.POST("", cfg.SubscriberHandler.AddSubscriber)
		subscribers.GET("", cfg.SubscriberHandler.ListSubscribers)
		subscribers.GET("/total", cfg.SubscriberHandler.CountSubscribers)

		subscribers.GET("/:id", cfg.SubscriberHandler.GetSubscriber)
		subscribers.PUT("/:id", cfg.SubscriberHandler.UpdateSubscriber)
		subscribers.DELETE("/:id", cfg.SubscriberHandler.DeleteSubscriber)

		subscribers.POST("/:id/products/:productId", cfg.SubscriberHandler.LinkProduct)
	}
}
