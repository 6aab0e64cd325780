package handlers

import (
	"fmt"
	"net/http"

	"ferry-pricing-api/config"
	"ferry-pricing-api/middleware"
	"ferry-pricing-api/services"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

// RouterDeps carries everything the route table needs. The composition root
// constructs each dependency once and injects it here.
type RouterDeps struct {
	DB          *gorm.DB
	Cache       *services.CacheService
	Store       *services.PredictionStore
	Warehouse   *services.WarehouseService
	Source      services.BookingSource
	Engine      *services.PricingEngine
	Generator   *services.SyntheticGenerator
	Catalog     *services.CatalogService
	AuthService *services.AuthService
}

func SetupRouter(cfg *config.Config, deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		respondError(c, http.StatusInternalServerError,
			"internal server error", fmt.Sprintf("%v", recovered))
	}))
	r.Use(middleware.SetupCORS(cfg.CORS))

	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		respondError(c, http.StatusMethodNotAllowed, "method not allowed", "")
	})
	r.NoRoute(func(c *gin.Context) {
		respondError(c, http.StatusNotFound, "not found", "")
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "UP",
			"message": "Ferry Pricing API is running",
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	predictionHandler := NewPredictionHandler(deps.Store, deps.Source, deps.Engine)
	historicalHandler := NewHistoricalHandler(deps.Store, deps.Generator)
	routesHandler := NewRoutesHandler(deps.Store, deps.Generator)
	bookingsHandler := NewBookingsHandler(deps.Warehouse)
	occupancyHandler := NewOccupancyHandler(deps.Warehouse)
	catalogHandler := NewCatalogHandler(deps.Catalog)
	authHandler := NewAuthHandler(deps.DB, deps.AuthService)

	api := r.Group("/api")
	{
		api.POST("/predictions", predictionHandler.CreatePrediction)
		api.GET("/historical/:route/:days", historicalHandler.GetHistorical)
		api.GET("/routes/:origin/:destination", routesHandler.GetRoute)

		bigquery := api.Group("/bigquery")
		{
			bigquery.POST("/fstaf00", bookingsHandler.QueryBookings)
			bigquery.GET("/ports", bookingsHandler.GetPorts)
			bigquery.GET("/tariffs", bookingsHandler.GetTariffs)
			bigquery.GET("/tariffs/:destinationId", bookingsHandler.GetTariffs)
			bigquery.GET("/vessels", bookingsHandler.GetVessels)
			bigquery.GET("/vessels/:originId", bookingsHandler.GetVessels)
			bigquery.GET("/vessels/:originId/:destinationId", bookingsHandler.GetVessels)
			bigquery.GET("/routes", bookingsHandler.GetRoutes)
			bigquery.GET("/stats", bookingsHandler.GetStats)
		}

		api.GET("/occupancy", occupancyHandler.GetOccupancy)

		api.GET("/service-groups", catalogHandler.GetServiceGroups)
		api.GET("/service-groups/pricing-rules", catalogHandler.GetPricingRules)

		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
		}

		api.GET("/live", LiveWebSocket(deps.Cache, deps.AuthService))
	}

	return r
}
