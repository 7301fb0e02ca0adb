// internal/router/router.go
package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"github.com/javajoker/seller-products/internal/config"
	"github.com/javajoker/seller-products/internal/database"
	"github.com/javajoker/seller-products/internal/handlers"
	"github.com/javajoker/seller-products/internal/middleware"
	"github.com/javajoker/seller-products/internal/repository"
	"github.com/javajoker/seller-products/internal/services"
)

const healthCheckTimeout = 2 * time.Second

// Initialize builds the engine. The returned stop func releases background work
// started by the middleware and must be called once the server has shut down.
func Initialize(db *gorm.DB, cfg *config.Config) (*gin.Engine, func()) {
	// Initialize repositories and services
	sellerRepository := repository.NewSellerRepository(db)
	productRepository := repository.NewProductRepository(db)
	productService := services.NewProductService(sellerRepository, productRepository)

	// Initialize handlers
	productHandler := handlers.NewProductHandler(productService)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(logrus.StandardLogger()))
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	r.Use(middleware.I18nMiddleware(cfg.I18n.DefaultLocale))
	stop := func() {}
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimit.RPS), cfg.RateLimit.Burst)
		r.Use(limiter.Middleware())
		stop = limiter.Stop
	}

	// Health check
	r.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
		defer cancel()

		if err := database.Ping(ctx, db); err != nil {
			logrus.WithError(err).Warn("Health check failed")
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"database": "unreachable",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"database": "ok",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		products := v1.Group("/sellers/:sellerId/products")
		if cfg.Auth.Enabled {
			products.Use(middleware.SellerAuth())
		}
		{
			products.POST("", productHandler.CreateProducts)
			products.GET("", productHandler.GetProducts)
			products.PATCH("", productHandler.UpdateProducts)
			products.DELETE("", productHandler.DeleteProducts)
			products.GET("/:productId", productHandler.GetProduct)
			products.PATCH("/:productId", productHandler.UpdateProduct)
			products.DELETE("/:productId", productHandler.DeleteProduct)
		}
	}

	return r, stop
}
