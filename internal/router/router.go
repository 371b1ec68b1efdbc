// internal/router/router.go
package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/javajoker/dukan-admin/internal/config"
	"github.com/javajoker/dukan-admin/internal/handlers"
	"github.com/javajoker/dukan-admin/internal/middleware"
	"github.com/javajoker/dukan-admin/internal/services"
)

// Services are the dependencies the routes dispatch to.
type Services struct {
	Products *services.ProductService
	Orders   *services.OrderService
	Posters  *services.PosterService
}

// Initialize builds the engine. Background work started here, such as rate
// limiter cleanup, stops when ctx is done.
func Initialize(ctx context.Context, cfg *config.Config, svc Services) *gin.Engine {
	productHandler := handlers.NewProductHandler(svc.Products)
	orderHandler := handlers.NewOrderHandler(svc.Orders)
	posterHandler := handlers.NewPosterHandler(svc.Posters)

	generalLimiter := middleware.NewRateLimiter(middleware.PerSecond(cfg.Server.RateLimit), cfg.Server.RateBurst)
	uploadLimiter := middleware.NewRateLimiter(rate.Every(time.Minute/10), 10) // 10 uploads per minute
	go generalLimiter.Cleanup(ctx)
	go uploadLimiter.Cleanup(ctx)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	r.Use(middleware.I18nMiddleware(cfg.I18n.DefaultLocale))
	r.Use(generalLimiter.Middleware())
	r.Use(middleware.Session())
	r.Use(middleware.AuditLog())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Product routes
		products := v1.Group("/products")
		{
			products.GET("", productHandler.GetProducts)
			products.GET("/form", productHandler.GetForm)
			products.POST("/form", productHandler.StartCreate)
			products.PATCH("/form", productHandler.UpdateForm)
			products.DELETE("/form", productHandler.CancelForm)
			products.POST("/form/image", uploadLimiter.Middleware(), productHandler.UploadImage)
			products.POST("/form/submit", productHandler.SubmitForm)
			products.POST("/:id/form", productHandler.StartEdit)
			products.DELETE("/:id", productHandler.DeleteProduct)
		}

		// Order routes
		orders := v1.Group("/orders")
		{
			orders.GET("", orderHandler.GetOrders)
			orders.DELETE("/drawer", orderHandler.CloseDrawer)
			orders.GET("/:id/items/:itemId", orderHandler.OpenDrawer)

			item := orders.Group("/:id/items/:itemId")
			item.Use(middleware.SessionRequired())
			{
				item.PUT("/status", orderHandler.UpdateStatus)
				item.POST("/cancel", orderHandler.RequestCancel)
				item.DELETE("/cancel", orderHandler.AbortCancel)
				item.POST("/cancel/confirm", orderHandler.ConfirmCancel)
			}
		}

		// Poster routes
		posters := v1.Group("/posters")
		{
			posters.GET("", posterHandler.GetPosters)
			posters.GET("/:kind", posterHandler.GetPostersOfKind)
			posters.GET("/:kind/form", posterHandler.GetForm)

			manage := posters.Group("/:kind")
			manage.Use(middleware.SessionRequired())
			{
				manage.POST("/form", posterHandler.StartCreate)
				manage.PATCH("/form", posterHandler.UpdateForm)
				manage.DELETE("/form", posterHandler.CancelForm)
				manage.POST("/form/image", uploadLimiter.Middleware(), posterHandler.UploadImage)
				manage.POST("/form/submit", posterHandler.SubmitForm)
				manage.POST("/:id/form", posterHandler.StartEdit)
				manage.DELETE("/:id", posterHandler.DeletePoster)
			}
		}
	}

	return r
}
