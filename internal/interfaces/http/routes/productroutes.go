package routes

import (
	"github.com/gin-gonic/gin"

	"shop/internal/interfaces/http/handlers/product"
)

// ProductRouteConfig holds dependencies for product routes.
type ProductRouteConfig struct {
	ProductHandler *product.Handler
}

// SetupProductRoutes configures product routes.
func SetupProductRoutes(api *gin.RouterGroup, cfg *ProductRouteConfig) {
	products := api.Group("/products")
	{
		products.POST("", cfg.ProductHandler.AddProduct)
		products.GET("", cfg.ProductHandler.ListProducts)

		// Static segments take precedence over /:id
		products.GET("/total", cfg.ProductHandler.CountProducts)
		products.GET("/total/sold", cfg.ProductHandler.CountSoldProducts)
		products.GET("/total/active", cfg.ProductHandler.CountActiveProducts)
		products.GET("/total/popular", cfg.ProductHandler.ListPopularProducts)
		products.GET("/date-range", cfg.ProductHandler.ListProductsCreatedBetween)

		products.GET("/:id", cfg.ProductHandler.GetProduct)
		products.PUT("/:id", cfg.ProductHandler.UpdateProduct)
		products.DELETE("/:id", cfg.ProductHandler.DeleteProduct)
	}
}
