package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"ferry-pricing-api/models"
)

const (
	predictionTTL = 1 * time.Hour
	historicalTTL = 24 * time.Hour
	routeTTL      = 24 * time.Hour

	// LiveChannel carries freshly saved predictions to websocket clients.
	LiveChannel = "ferry:predictions"
)

// PredictionStore keys prediction, historical and route documents in Redis.
// Reads distinguish "never written" (nil, nil) from real failures; writes
// are best-effort and only log.
type PredictionStore struct {
	cache *CacheService
}

func NewPredictionStore(cache *CacheService) *PredictionStore {
	return &PredictionStore{cache: cache}
}

func predictionKey(origin, destination, date, travelType, tariffClass, model string) string {
	return fmt.Sprintf("prediction:%s:%s:%s:%s:%s:%s",
		origin, destination, date, travelType, tariffClass, model)
}

func historicalKey(route string) string {
	return "historical:" + route
}

func routeKey(origin, destination string) string {
	return fmt.Sprintf("route:%s:%s", origin, destination)
}

// GetPrediction returns the stored record for the exact composite key, or
// (nil, nil) on a miss.
func (s *PredictionStore) GetPrediction(ctx context.Context, req models.PredictionRequest) (*models.PricePrediction, error) {
	key := predictionKey(req.Origin, req.Destination, req.Date, req.TravelType, req.TariffClass, req.Model)

	var p models.PricePrediction
	err := s.cache.Get(ctx, key, &p)
	if errors.Is(err, ErrCacheMiss) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// SavePrediction persists the record and publishes it on the live channel.
// Failures are logged, never returned: the caller's response does not
// depend on the write.
func (s *PredictionStore) SavePrediction(ctx context.Context, p models.PricePrediction) {
	key := predictionKey(p.Origin, p.Destination, p.Date, p.TravelType, p.TariffClass, p.Model)

	if err := s.cache.Set(ctx, key, p, predictionTTL); err != nil {
		log.Printf("prediction store: save %s failed: %v", key, err)
		return
	}
	if err := s.cache.Publish(ctx, LiveChannel, p); err != nil {
		log.Printf("prediction store: publish failed: %v", err)
	}
}

// GetHistorical returns the stored record list for a route, or (nil, nil)
// when the route has never been written.
func (s *PredictionStore) GetHistorical(ctx context.Context, route string) ([]models.HistoricalRecord, error) {
	var records []models.HistoricalRecord
	err := s.cache.Get(ctx, historicalKey(route), &records)
	if errors.Is(err, ErrCacheMiss) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (s *PredictionStore) SaveHistorical(ctx context.Context, route string, records []models.HistoricalRecord) {
	if err := s.cache.Set(ctx, historicalKey(route), records, historicalTTL); err != nil {
		log.Printf("prediction store: save historical %s failed: %v", route, err)
	}
}

func (s *PredictionStore) GetRoute(ctx context.Context, origin, destination string) (*models.RouteInfo, error) {
	var info models.RouteInfo
	err := s.cache.Get(ctx, routeKey(origin, destination), &info)
	if errors.Is(err, ErrCacheMiss) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &info, nil
}

func (s *PredictionStore) SaveRoute(ctx context.Context, info models.RouteInfo) {
	if err := s.cache.Set(ctx, routeKey(info.Origin, info.Destination), info, routeTTL); err != nil {
		log.Printf("prediction store: save route %s-%s failed: %v", info.Origin, info.Destination, err)
	}
}
