package services

import (
	"fmt"
	"hash/fnv"
	"math/rand"
	"sort"
	"strings"
	"time"

	"ferry-pricing-api/models"

	"github.com/google/uuid"
)

// Static route geometry for routes the warehouse knows nothing about.
// Distances are nautical miles, durations minutes.
var routeGeometry = map[string]struct {
	Distance float64
	Duration int
}{
	"denia-ibiza":      {54, 120},
	"ibiza-denia":      {54, 120},
	"denia-palma":      {120, 300},
	"palma-denia":      {120, 300},
	"valencia-palma":   {140, 420},
	"palma-valencia":   {140, 420},
	"valencia-ibiza":   {85, 290},
	"ibiza-valencia":   {85, 290},
	"barcelona-palma":  {132, 440},
	"palma-barcelona":  {132, 440},
	"barcelona-ibiza":  {150, 480},
	"ibiza-barcelona":  {150, 480},
	"palma-ibiza":      {45, 110},
	"ibiza-palma":      {45, 110},
	"algeciras-tanger": {16, 60},
	"tanger-algeciras": {16, 60},
}

var weatherLabels = []string{"sunny", "cloudy", "windy", "rainy", "stormy"}

// SyntheticGenerator produces plausible, deterministic stand-in data when
// the warehouse or store has nothing for a route. Determinism comes from
// seeding on the (route, date) key, so repeated requests agree.
type SyntheticGenerator struct {
	now func() time.Time
}

func NewSyntheticGenerator() *SyntheticGenerator {
	return &SyntheticGenerator{now: time.Now}
}

func NewSyntheticGeneratorAt(now func() time.Time) *SyntheticGenerator {
	return &SyntheticGenerator{now: now}
}

func seedFor(parts ...string) int64 {
	h := fnv.New64a()
	for _, p := range parts {
		h.Write([]byte(p))
		h.Write([]byte{0})
	}
	return int64(h.Sum64())
}

// Historical generates one record per day, going back the requested number
// of days from today.
func (g *SyntheticGenerator) Historical(route string, days int) []models.HistoricalRecord {
	base := baseRoutePrices[route]
	if base == 0 {
		base = defaultBasePrice
	}

	today := g.now()
	records := make([]models.HistoricalRecord, 0, days)
	for i := days; i >= 1; i-- {
		day := today.AddDate(0, 0, -i)
		date := day.Format("2006-01-02")
		rng := rand.New(rand.NewSource(seedFor(route, date)))

		season := getSeason(day)
		seasonal := seasonalMultipliers[season]
		holiday := IsHoliday(date)

		occupancy := clamp(defaultOccupancy(season)+rng.Float64()*0.3-0.15, 0.1, 1.0)
		if holiday {
			occupancy = clamp(occupancy+0.15, 0.1, 1.0)
		}
		price := round2(base * seasonal * (0.9 + rng.Float64()*0.3))
		demand := round2(occupancy * VesselCapacity)

		records = append(records, models.HistoricalRecord{
			ID:        uuid.NewString(),
			Route:     route,
			Date:      date,
			Price:     price,
			Occupancy: round2(occupancy),
			Revenue:   round2(price * occupancy * VesselCapacity),
			Demand:    demand,
			Weather:   weatherLabels[rng.Intn(len(weatherLabels))],
			Season:    season,
			IsHoliday: holiday,
		})
	}
	return records
}

// Bookings generates raw booking rows for the pricing heuristic, one per
// day backwards from today, capped at limit.
func (g *SyntheticGenerator) Bookings(origin, destination string, limit int) []models.Booking {
	route := origin + "-" + destination
	base := baseRoutePrices[route]
	if base == 0 {
		base = defaultBasePrice
	}
	if limit <= 0 || limit > 365 {
		limit = 90
	}

	today := g.now()
	tariffs := []string{"tourist", "tourist", "tourist", "business", "premium"}
	rows := make([]models.Booking, 0, limit)
	for i := limit; i >= 1; i-- {
		day := today.AddDate(0, 0, -i)
		date := day.Format("2006-01-02")
		rng := rand.New(rand.NewSource(seedFor(route, date)))

		season := getSeason(day)
		seasonal := seasonalMultipliers[season]
		occupancy := clamp(defaultOccupancy(season)+rng.Float64()*0.3-0.15, 0.1, 1.0)
		passengers := int(occupancy * VesselCapacity)
		fare := round2(base * seasonal * (0.9 + rng.Float64()*0.3))

		rows = append(rows, models.Booking{
			ID:          int64(i),
			Origin:      origin,
			Destination: destination,
			Departure:   day,
			Vessel:      fmt.Sprintf("vessel-%d", rng.Intn(4)+1),
			Tariff:      tariffs[rng.Intn(len(tariffs))],
			Fare:        fare,
			Passengers:  passengers,
			Vehicles:    rng.Intn(40),
			AmountPaid:  round2(fare * float64(passengers)),
		})
	}
	return rows
}

// Route builds RouteInfo from the static geometry tables. Unknown routes get
// a generic placeholder so the endpoint never 404s.
func (g *SyntheticGenerator) Route(origin, destination string) models.RouteInfo {
	route := origin + "-" + destination
	base := baseRoutePrices[route]
	if base == 0 {
		base = defaultBasePrice
	}

	geometry, known := routeGeometry[route]
	if !known {
		geometry.Distance = 80
		geometry.Duration = 240
	}

	var competitors []string
	for other := range routeGeometry {
		if other != route && strings.HasPrefix(other, origin+"-") {
			competitors = append(competitors, other)
		}
	}
	sort.Strings(competitors)

	return models.RouteInfo{
		ID:               uuid.NewString(),
		Origin:           origin,
		Destination:      destination,
		Distance:         geometry.Distance,
		Duration:         geometry.Duration,
		IsActive:         known,
		BasePrice:        base,
		CompetitorRoutes: competitors,
	}
}
