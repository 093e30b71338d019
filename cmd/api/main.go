package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/streetsupply/marketplace-api/internal/config"
	"github.com/streetsupply/marketplace-api/internal/handler"
	"github.com/streetsupply/marketplace-api/internal/middleware"
	"github.com/streetsupply/marketplace-api/internal/model"
	"github.com/streetsupply/marketplace-api/internal/store"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Error("load config", "error", err)
		os.Exit(1)
	}

	// One store per process: the marketplace state lives in memory and is
	// scoped to this session, nothing survives a restart.
	st := store.New()

	// Handlers
	accountH := handler.NewAccountHandler(st)
	supplierH := handler.NewSupplierHandler(st)
	productH := handler.NewProductHandler(st)
	cartH := handler.NewCartHandler(st)
	orderH := handler.NewOrderHandler(st, cfg.Checkout.Delay)
	healthH := handler.NewHealthHandler(st)

	// Router
	router := gin.Default()
	router.GET("/healthz", healthH.Healthz)
	router.GET("/readyz", healthH.Readyz)

	v1 := router.Group("/api/v1")
	{
		v1.POST("/vendors", accountH.RegisterVendor)
		v1.POST("/suppliers", accountH.RegisterSupplier)
		v1.POST("/login", accountH.Login)
		v1.GET("/session", accountH.Session)

		v1.GET("/suppliers", supplierH.List)
		v1.GET("/suppliers/:id", supplierH.GetByID)

		v1.GET("/products", productH.List)
		v1.GET("/products/:id", productH.GetByID)

		catalog := v1.Group("", middleware.RequireRole(st, model.RoleSupplier))
		catalog.POST("/suppliers/:id/products", productH.Create)
		catalog.PUT("/products/:id", productH.Update)
		catalog.DELETE("/products/:id", productH.Delete)

		cart := v1.Group("/cart")
		cart.GET("", cartH.GetCart)
		cart.POST("/items", cartH.AddItem)
		cart.PUT("/items/:id", cartH.UpdateItem)
		cart.DELETE("/items/:id", cartH.DeleteItem)
		cart.DELETE("", cartH.Clear)

		orders := v1.Group("/orders", middleware.RequireSession(st))
		orders.POST("", orderH.PlaceOrder)
		orders.GET("", orderH.ListOrders)
		orders.GET("/:id", orderH.GetOrder)
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info("starting HTTP server", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown", "error", err)
	}
	log.Info("server stopped")
}
