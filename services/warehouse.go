package services

import (
	"context"
	"log"
	"strings"

	"ferry-pricing-api/models"

	"gorm.io/gorm"
)

// QueryResult is the typed envelope every warehouse call returns. A failed
// query yields Success=false with empty Data so callers can degrade instead
// of aborting the request.
type QueryResult[T any] struct {
	Success   bool   `json:"success"`
	Data      []T    `json:"data"`
	Error     string `json:"error,omitempty"`
	TotalRows int    `json:"totalRows"`
}

func ok[T any](data []T) QueryResult[T] {
	return QueryResult[T]{Success: true, Data: data, TotalRows: len(data)}
}

func fail[T any](err error) QueryResult[T] {
	warehouseQueryFailures.Inc()
	return QueryResult[T]{Success: false, Data: []T{}, Error: err.Error()}
}

// OccupancyFilters narrow the occupancy aggregate feed.
type OccupancyFilters struct {
	Origin       string
	Destination  string
	ServiceGroup string
	DateFrom     string
	DateTo       string
	Limit        int
}

type WarehouseService struct {
	db           *gorm.DB
	table        string
	defaultLimit int
}

func NewWarehouseService(db *gorm.DB, table string, defaultLimit int) *WarehouseService {
	if table == "" {
		table = "bookings"
	}
	if defaultLimit <= 0 {
		defaultLimit = 1000
	}
	return &WarehouseService{db: db, table: table, defaultLimit: defaultLimit}
}

// QueryBookings returns raw booking rows matching the ANDed filters, newest
// departures first.
func (s *WarehouseService) QueryBookings(ctx context.Context, f models.BookingFilters) QueryResult[models.Booking] {
	limit := f.Limit
	if limit <= 0 {
		limit = s.defaultLimit
	}

	query := s.db.WithContext(ctx).Table(s.table).Order("departure DESC").Limit(limit)
	if f.Origin != "" {
		query = query.Where("origin = ?", f.Origin)
	}
	if f.Destination != "" {
		query = query.Where("destination = ?", f.Destination)
	}
	if f.DateFrom != "" {
		query = query.Where("departure >= ?", f.DateFrom)
	}
	if f.DateTo != "" {
		query = query.Where("departure <= ?", f.DateTo)
	}
	if f.Tariff != "" {
		query = query.Where("tariff = ?", f.Tariff)
	}
	if f.Vessel != "" {
		query = query.Where("vessel = ?", f.Vessel)
	}

	var rows []models.Booking
	if err := query.Find(&rows).Error; err != nil {
		log.Printf("warehouse: bookings query failed: %v", err)
		return fail[models.Booking](err)
	}
	return ok(rows)
}

// PortStats aggregates bookings per origin port.
func (s *WarehouseService) PortStats(ctx context.Context) QueryResult[models.PortStat] {
	var stats []models.PortStat
	err := s.db.WithContext(ctx).Raw(`
		SELECT origin AS port,
		       COUNT(*) AS bookings,
		       AVG(fare) AS avg_fare,
		       SUM(amount_paid) AS total_revenue
		FROM ` + s.table + `
		GROUP BY origin
		ORDER BY bookings DESC
	`).Scan(&stats).Error
	if err != nil {
		log.Printf("warehouse: port stats failed: %v", err)
		return fail[models.PortStat](err)
	}
	return ok(stats)
}

// TariffStats aggregates fares per tariff, optionally scoped to a destination.
func (s *WarehouseService) TariffStats(ctx context.Context, destination string) QueryResult[models.TariffStat] {
	var conditions []string
	var args []interface{}
	if destination != "" {
		conditions = append(conditions, "destination = ?")
		args = append(args, destination)
	}

	query := `
		SELECT tariff,
		       COUNT(*) AS bookings,
		       AVG(fare) AS avg_fare,
		       MIN(fare) AS min_fare,
		       MAX(fare) AS max_fare,
		       COALESCE(STDDEV(fare), 0) AS stddev_fare
		FROM ` + s.table + whereClause(conditions) + `
		GROUP BY tariff
		ORDER BY tariff`

	var stats []models.TariffStat
	if err := s.db.WithContext(ctx).Raw(query, args...).Scan(&stats).Error; err != nil {
		log.Printf("warehouse: tariff stats failed: %v", err)
		return fail[models.TariffStat](err)
	}
	return ok(stats)
}

// VesselStats aggregates load per vessel, optionally scoped to a route leg.
func (s *WarehouseService) VesselStats(ctx context.Context, origin, destination string) QueryResult[models.VesselStat] {
	var conditions []string
	var args []interface{}
	if origin != "" {
		conditions = append(conditions, "origin = ?")
		args = append(args, origin)
	}
	if destination != "" {
		conditions = append(conditions, "destination = ?")
		args = append(args, destination)
	}

	query := `
		SELECT vessel,
		       COUNT(*) AS bookings,
		       AVG(passengers) AS avg_passengers,
		       AVG(fare) AS avg_fare
		FROM ` + s.table + whereClause(conditions) + `
		GROUP BY vessel
		ORDER BY bookings DESC`

	var stats []models.VesselStat
	if err := s.db.WithContext(ctx).Raw(query, args...).Scan(&stats).Error; err != nil {
		log.Printf("warehouse: vessel stats failed: %v", err)
		return fail[models.VesselStat](err)
	}
	return ok(stats)
}

// RouteStats aggregates bookings per (origin, destination) pair.
func (s *WarehouseService) RouteStats(ctx context.Context) QueryResult[models.RouteStat] {
	var stats []models.RouteStat
	err := s.db.WithContext(ctx).Raw(`
		SELECT origin,
		       destination,
		       COUNT(*) AS bookings,
		       AVG(fare) AS avg_fare,
		       SUM(amount_paid) AS total_revenue
		FROM ` + s.table + `
		GROUP BY origin, destination
		ORDER BY bookings DESC
	`).Scan(&stats).Error
	if err != nil {
		log.Printf("warehouse: route stats failed: %v", err)
		return fail[models.RouteStat](err)
	}
	return ok(stats)
}

// OverallStats computes fleet-wide fare statistics in one row.
func (s *WarehouseService) OverallStats(ctx context.Context) QueryResult[models.OverallStats] {
	var stats models.OverallStats
	err := s.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) AS total_bookings,
		       COALESCE(AVG(fare), 0) AS avg_fare,
		       COALESCE(MIN(fare), 0) AS min_fare,
		       COALESCE(MAX(fare), 0) AS max_fare,
		       COALESCE(STDDEV(fare), 0) AS stddev_fare,
		       COALESCE(SUM(amount_paid), 0) AS total_revenue
		FROM ` + s.table + `
	`).Scan(&stats).Error
	if err != nil {
		log.Printf("warehouse: overall stats failed: %v", err)
		return fail[models.OverallStats](err)
	}
	return ok([]models.OverallStats{stats})
}

// Occupancy aggregates passenger load against vessel capacity. Granularity
// selects the GROUP BY bucket: route ("general"), tariff ("service-group")
// or departure hour ("hourly").
func (s *WarehouseService) Occupancy(ctx context.Context, granularity string, f OccupancyFilters) QueryResult[models.OccupancyStat] {
	var bucket string
	switch granularity {
	case "general", "":
		bucket = "origin || '-' || destination"
	case "service-group":
		bucket = "tariff"
	case "hourly":
		bucket = "CAST(EXTRACT(HOUR FROM departure) AS TEXT)"
	default:
		return QueryResult[models.OccupancyStat]{
			Success: false,
			Data:    []models.OccupancyStat{},
			Error:   "unknown occupancy granularity: " + granularity,
		}
	}

	var conditions []string
	var args []interface{}
	if f.Origin != "" {
		conditions = append(conditions, "origin = ?")
		args = append(args, f.Origin)
	}
	if f.Destination != "" {
		conditions = append(conditions, "destination = ?")
		args = append(args, f.Destination)
	}
	if f.ServiceGroup != "" {
		conditions = append(conditions, "tariff = ?")
		args = append(args, f.ServiceGroup)
	}
	if f.DateFrom != "" {
		conditions = append(conditions, "departure >= ?")
		args = append(args, f.DateFrom)
	}
	if f.DateTo != "" {
		conditions = append(conditions, "departure <= ?")
		args = append(args, f.DateTo)
	}

	limit := f.Limit
	if limit <= 0 {
		limit = s.defaultLimit
	}

	query := `
		SELECT ` + bucket + ` AS bucket,
		       COUNT(*) AS trips,
		       AVG(passengers) AS avg_passengers,
		       AVG(passengers::float / ?) AS avg_occupancy
		FROM ` + s.table + whereClause(conditions) + `
		GROUP BY bucket
		ORDER BY trips DESC
		LIMIT ?`

	// Placeholders bind in query order: capacity, filters, limit.
	ordered := make([]interface{}, 0, len(args)+2)
	ordered = append(ordered, VesselCapacity)
	ordered = append(ordered, args...)
	ordered = append(ordered, limit)

	var stats []models.OccupancyStat
	if err := s.db.WithContext(ctx).Raw(query, ordered...).Scan(&stats).Error; err != nil {
		log.Printf("warehouse: occupancy stats failed: %v", err)
		return fail[models.OccupancyStat](err)
	}
	return ok(stats)
}

func whereClause(conditions []string) string {
	if len(conditions) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(conditions, " AND ")
}
