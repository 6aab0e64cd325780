package main

import (
	"fmt"
	"log"

	"ferry-pricing-api/config"
	"ferry-pricing-api/handlers"
	"ferry-pricing-api/services"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := gorm.Open(postgres.Open(cfg.Database.GetDSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get sql db handle: %v", err)
	}
	if err := sqlDB.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	cache, err := services.NewCacheService(cfg.Redis)
	if err != nil {
		// The store degrades to miss-on-every-read; predictions still work.
		log.Printf("Redis unavailable, running without document store: %v", err)
	}

	warehouse := services.NewWarehouseService(db, cfg.Warehouse.BookingsTable, cfg.Warehouse.DefaultLimit)
	generator := services.NewSyntheticGenerator()

	var source services.BookingSource = services.NewWarehouseSource(warehouse)
	if cfg.Warehouse.SyntheticFallback {
		source = services.NewFallbackSource(source, services.NewSyntheticSource(generator))
	}

	deps := handlers.RouterDeps{
		DB:          db,
		Cache:       cache,
		Store:       services.NewPredictionStore(cache),
		Warehouse:   warehouse,
		Source:      source,
		Engine:      services.NewPricingEngine(),
		Generator:   generator,
		Catalog:     services.NewCatalogService(),
		AuthService: services.NewAuthService(cfg.JWT),
	}

	router := handlers.SetupRouter(cfg, deps)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Starting server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
