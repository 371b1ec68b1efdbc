// cmd/server/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/dukan-admin/internal/api"
	"github.com/javajoker/dukan-admin/internal/config"
	"github.com/javajoker/dukan-admin/internal/i18n"
	"github.com/javajoker/dukan-admin/internal/router"
	"github.com/javajoker/dukan-admin/internal/services"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("Failed to load configuration: ", err)
	}

	setupLogging(cfg)

	// Initialize i18n
	if err := i18n.Initialize(cfg.I18n.DefaultLocale); err != nil {
		logrus.Fatal("Failed to initialize i18n: ", err)
	}

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	client, err := api.NewClient(api.Options{
		BaseURL:   cfg.API.BaseURL,
		Timeout:   cfg.API.TimeoutDuration(),
		RateLimit: cfg.API.RateLimit,
		RateBurst: cfg.API.RateBurst,
	})
	if err != nil {
		logrus.Fatal("Failed to create shop API client: ", err)
	}

	productImages, err := services.NewImageStore(cfg, "products")
	if err != nil {
		logrus.Fatal("Failed to initialize image storage: ", err)
	}
	posterImages, err := services.NewImageStore(cfg, "posters")
	if err != nil {
		logrus.Fatal("Failed to initialize image storage: ", err)
	}

	svc := router.Services{
		Products: services.NewProductService(client, productImages),
		Orders:   services.NewOrderService(client),
		Posters:  services.NewPosterService(client, posterImages),
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// Warm the lists; one that fails here is fetched again on its first GET.
	loadCtx, cancelLoad := context.WithTimeout(ctx, cfg.API.TimeoutDuration())
	svc.Products.Refresh(loadCtx)
	svc.Orders.Refresh(loadCtx)
	svc.Posters.Refresh(loadCtx)
	cancelLoad()

	// Initialize router
	r := router.Initialize(ctx, cfg, svc)

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logrus.WithFields(logrus.Fields{
			"addr": srv.Addr,
			"api":  client.BaseURL(),
		}).Info("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatal("Failed to start server: ", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down server...")
	stop()

	// Create a deadline for shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown server
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Fatal("Server forced to shutdown: ", err)
	}

	logrus.Info("Server exited")
}

func setupLogging(cfg *config.Config) {
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	if cfg.Log.Format == "json" || cfg.IsProduction() {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}
