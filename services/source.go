package services

import (
	"context"

	"ferry-pricing-api/models"
)

// BookingSource supplies historical booking rows for a route. The pricing
// handler does not care whether rows come from the warehouse or a generator;
// the composition root picks the strategy once at startup.
type BookingSource interface {
	HistoricalForRoute(ctx context.Context, origin, destination string, limit int) []models.Booking
}

// WarehouseSource reads real rows. A failed query degrades to an empty row
// set so the heuristic falls back to its rule-based estimate.
type WarehouseSource struct {
	warehouse *WarehouseService
}

func NewWarehouseSource(warehouse *WarehouseService) *WarehouseSource {
	return &WarehouseSource{warehouse: warehouse}
}

func (s *WarehouseSource) HistoricalForRoute(ctx context.Context, origin, destination string, limit int) []models.Booking {
	result := s.warehouse.QueryBookings(ctx, models.BookingFilters{
		Origin:      origin,
		Destination: destination,
		Limit:       limit,
	})
	if !result.Success {
		return nil
	}
	return result.Data
}

// SyntheticSource generates deterministic rows from static route tables.
type SyntheticSource struct {
	generator *SyntheticGenerator
}

func NewSyntheticSource(generator *SyntheticGenerator) *SyntheticSource {
	return &SyntheticSource{generator: generator}
}

func (s *SyntheticSource) HistoricalForRoute(ctx context.Context, origin, destination string, limit int) []models.Booking {
	return s.generator.Bookings(origin, destination, limit)
}

// FallbackSource tries the primary source and falls back when it yields
// nothing, counting each fallback.
type FallbackSource struct {
	primary  BookingSource
	fallback BookingSource
}

func NewFallbackSource(primary, fallback BookingSource) *FallbackSource {
	return &FallbackSource{primary: primary, fallback: fallback}
}

func (s *FallbackSource) HistoricalForRoute(ctx context.Context, origin, destination string, limit int) []models.Booking {
	rows := s.primary.HistoricalForRoute(ctx, origin, destination, limit)
	if len(rows) > 0 {
		return rows
	}
	syntheticFallbacks.Inc()
	return s.fallback.HistoricalForRoute(ctx, origin, destination, limit)
}
