package services

import (
	"math"
	"sort"
	"time"

	"ferry-pricing-api/models"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/stat"
)

// VesselCapacity is the assumed passenger capacity used for every occupancy
// ratio in the system.
const VesselCapacity = 150.0

const (
	defaultBasePrice = 50.0
	trendMinRows     = 10
	trendWindow      = 20
)

// Static per-route base prices for the rule-based estimate. Routes not
// listed fall back to defaultBasePrice.
var baseRoutePrices = map[string]float64{
	"denia-ibiza":      45,
	"ibiza-denia":      45,
	"denia-palma":      55,
	"palma-denia":      55,
	"valencia-palma":   50,
	"palma-valencia":   50,
	"valencia-ibiza":   48,
	"ibiza-valencia":   48,
	"barcelona-palma":  60,
	"palma-barcelona":  60,
	"barcelona-ibiza":  58,
	"ibiza-barcelona":  58,
	"palma-ibiza":      35,
	"ibiza-palma":      35,
	"algeciras-tanger": 40,
	"tanger-algeciras": 40,
}

var seasonalMultipliers = map[string]float64{
	"spring": 1.0,
	"summer": 1.3,
	"autumn": 0.95,
	"winter": 0.85,
}

var tariffFactors = map[string]float64{
	"tourist":  1.0,
	"business": 1.4,
	"premium":  1.8,
}

var travelTypeFactors = map[string]float64{
	"passenger": 1.0,
	"vehicle":   2.5,
}

// PricingEngine computes price recommendations. The clock is injectable so
// lead-time dependent output is deterministic under test.
type PricingEngine struct {
	now func() time.Time
}

func NewPricingEngine() *PricingEngine {
	return &PricingEngine{now: time.Now}
}

// NewPricingEngineAt pins "today" for deterministic output.
func NewPricingEngineAt(now func() time.Time) *PricingEngine {
	return &PricingEngine{now: now}
}

// Predict maps a request plus optional historical rows to a recommendation.
// It never fails: malformed dates and empty row sets degrade to documented
// defaults at every stage.
func (e *PricingEngine) Predict(req models.PredictionRequest, rows []models.Booking) models.PricePrediction {
	defer predictionsComputed.Inc()

	departure := parseDate(req.Date, e.now())
	season := getSeason(departure)
	days := e.daysUntilDeparture(departure)
	holiday := IsHoliday(req.Date)

	if len(rows) == 0 {
		return e.ruleBasedEstimate(req, season, days, holiday)
	}
	return e.advancedEstimate(req, rows, season, days, holiday)
}

// ruleBasedEstimate prices from static tables only.
func (e *PricingEngine) ruleBasedEstimate(req models.PredictionRequest, season string, days int, holiday bool) models.PricePrediction {
	basePrice := baseRoutePrices[req.Route()]
	if basePrice == 0 {
		basePrice = defaultBasePrice
	}

	seasonal := seasonalMultipliers[season]
	if seasonal == 0 {
		seasonal = 1.0
	}
	demand := demandByLeadTime(days, holiday, 1.0)

	optimal := round2(basePrice * seasonal * demand * tariffFactor(req.TariffClass) * travelTypeFactor(req.TravelType))
	occupancy := defaultOccupancy(season)

	return models.PricePrediction{
		ID:              uuid.NewString(),
		Route:           req.Route(),
		Origin:          req.Origin,
		Destination:     req.Destination,
		Date:            req.Date,
		TravelType:      req.TravelType,
		TariffClass:     req.TariffClass,
		Model:           req.Model,
		OptimalPrice:    optimal,
		ExpectedRevenue: round2(optimal * occupancy),
		CurrentPrice:    round2(optimal * 0.92),
		CompetitorPrice: round2(optimal * 1.05),
		Confidence:      0.6,
		Timestamp:       e.now(),
		InfluenceFactors: models.InfluenceFactors{
			DaysUntilDeparture: days,
			CurrentOccupancy:   occupancy,
			CompetitorAvgPrice: round2(optimal * 1.05),
			IsHoliday:          holiday,
			BaseDemand:         demand,
			WeatherFactor:      1.0,
			SeasonalityFactor:  seasonal,
		},
	}
}

// advancedEstimate derives every factor from the historical rows.
func (e *PricingEngine) advancedEstimate(req models.PredictionRequest, rows []models.Booking, season string, days int, holiday bool) models.PricePrediction {
	basePrice := averageFare(rows)
	seasonal := seasonalFactor(rows, season)
	occupancyRatio := meanOccupancy(rows)
	demand := demandFactor(occupancyRatio)
	occupancy := occupancyFactor(occupancyRatio)
	trend := priceTrendFactor(rows)
	expectedOcc := expectedOccupancy(rows, season)
	competitor := competitorFactor(rows)

	optimal := round2(basePrice * seasonal * demand * occupancy *
		tariffFactor(req.TariffClass) * travelTypeFactor(req.TravelType) *
		trend * demandByLeadTime(days, holiday, demand))

	return models.PricePrediction{
		ID:              uuid.NewString(),
		Route:           req.Route(),
		Origin:          req.Origin,
		Destination:     req.Destination,
		Date:            req.Date,
		TravelType:      req.TravelType,
		TariffClass:     req.TariffClass,
		Model:           req.Model,
		OptimalPrice:    optimal,
		ExpectedRevenue: round2(optimal * expectedOcc),
		CurrentPrice:    round2(optimal * 0.92),
		CompetitorPrice: round2(optimal * competitor),
		Confidence:      confidence(rows, expectedOcc),
		Timestamp:       e.now(),
		InfluenceFactors: models.InfluenceFactors{
			DaysUntilDeparture: days,
			CurrentOccupancy:   expectedOcc,
			CompetitorAvgPrice: round2(basePrice * competitor),
			IsHoliday:          holiday,
			BaseDemand:         demand,
			WeatherFactor:      1.0,
			SeasonalityFactor:  seasonal,
		},
	}
}

// averageFare is the mean fare across rows, defaulting to defaultBasePrice
// for an empty set.
func averageFare(rows []models.Booking) float64 {
	if len(rows) == 0 {
		return defaultBasePrice
	}
	return stat.Mean(fares(rows), nil)
}

// seasonalFactor compares the seasonal mean fare against the overall mean.
// 1.0 when no row matches the season or the overall mean is zero.
func seasonalFactor(rows []models.Booking, season string) float64 {
	overall := stat.Mean(fares(rows), nil)
	if overall == 0 {
		return 1.0
	}

	var seasonal []float64
	for _, r := range rows {
		if getSeason(r.Departure) == season {
			seasonal = append(seasonal, r.Fare)
		}
	}
	if len(seasonal) == 0 {
		return 1.0
	}
	return stat.Mean(seasonal, nil) / overall
}

// demandFactor steps on the mean per-trip occupancy ratio.
func demandFactor(occupancyRatio float64) float64 {
	switch {
	case occupancyRatio > 0.8:
		return 1.2
	case occupancyRatio > 0.6:
		return 1.1
	case occupancyRatio > 0.4:
		return 1.0
	default:
		return 0.9
	}
}

// occupancyFactor steps on the same ratio with finer thresholds.
func occupancyFactor(occupancyRatio float64) float64 {
	switch {
	case occupancyRatio > 0.85:
		return 1.15
	case occupancyRatio > 0.75:
		return 1.10
	case occupancyRatio > 0.65:
		return 1.05
	case occupancyRatio > 0.45:
		return 1.00
	default:
		return 0.95
	}
}

// priceTrendFactor compares recent fares against the earliest ones. Needs at
// least trendMinRows rows; the ratio is clamped to [0.8, 1.2].
func priceTrendFactor(rows []models.Booking) float64 {
	if len(rows) < trendMinRows {
		return 1.0
	}

	sorted := make([]models.Booking, len(rows))
	copy(sorted, rows)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Departure.Before(sorted[j].Departure)
	})

	window := trendWindow
	if window > len(sorted) {
		window = len(sorted)
	}

	early := stat.Mean(fares(sorted[:window]), nil)
	recent := stat.Mean(fares(sorted[len(sorted)-window:]), nil)
	if early == 0 {
		return 1.0
	}
	return clamp(recent/early, 0.8, 1.2)
}

// expectedOccupancy is the occupancy ratio over rows matching the target
// season, falling back to the whole set when the season has no rows.
func expectedOccupancy(rows []models.Booking, season string) float64 {
	var seasonal []models.Booking
	for _, r := range rows {
		if getSeason(r.Departure) == season {
			seasonal = append(seasonal, r)
		}
	}
	if len(seasonal) == 0 {
		seasonal = rows
	}
	return clamp(meanOccupancy(seasonal), 0, 1)
}

// competitorFactor maps fare dispersion (coefficient of variation) to a
// markup. Dispersed fares mean competitors have pricing room.
func competitorFactor(rows []models.Booking) float64 {
	if len(rows) == 0 {
		return 1.05
	}
	cv := fareCV(rows)
	switch {
	case cv > 0.3:
		return 1.10
	case cv > 0.2:
		return 1.05
	default:
		return 1.0
	}
}

// confidence is the heuristic's self-reported reliability, clamped to
// [0.6, 0.95]. More rows, stable fares and mid-band occupancy raise it.
func confidence(rows []models.Booking, expectedOcc float64) float64 {
	c := 0.7 + 0.2*math.Min(1, float64(len(rows))/1000.0)

	cv := fareCV(rows)
	if cv > 0.3 {
		c -= 0.05
	} else if cv < 0.15 {
		c += 0.05
	}

	if expectedOcc > 0.7 && expectedOcc < 0.9 {
		c += 0.05
	}

	return clamp(c, 0.6, 0.95)
}

// demandByLeadTime steps on days until departure. Past or same-day dates sit
// in the tightest band. A holiday departure and an already-hot route both
// amplify the factor.
func demandByLeadTime(days int, holiday bool, demandFactor float64) float64 {
	var f float64
	switch {
	case days <= 1:
		f = 1.3
	case days <= 3:
		f = 1.2
	case days <= 7:
		f = 1.1
	case days <= 14:
		f = 1.05
	case days <= 30:
		f = 1.0
	default:
		f = 0.95
	}
	if holiday {
		f *= 1.25
	}
	if demandFactor > 1.1 && days <= 7 {
		f *= 1.05
	}
	return f
}

// daysUntilDeparture is ceil(departure - today) in days. Negative for past
// dates, which are propagated rather than rejected.
func (e *PricingEngine) daysUntilDeparture(departure time.Time) int {
	diff := departure.Sub(e.now())
	return int(math.Ceil(diff.Hours() / 24))
}

// getSeason maps months to seasons, Northern-hemisphere convention.
func getSeason(t time.Time) string {
	switch t.Month() {
	case time.March, time.April, time.May:
		return "spring"
	case time.June, time.July, time.August:
		return "summer"
	case time.September, time.October, time.November:
		return "autumn"
	default:
		return "winter"
	}
}

func defaultOccupancy(season string) float64 {
	switch season {
	case "summer":
		return 0.85
	case "spring":
		return 0.70
	case "autumn":
		return 0.65
	default:
		return 0.55
	}
}

func tariffFactor(tariffClass string) float64 {
	if f, ok := tariffFactors[tariffClass]; ok {
		return f
	}
	return 1.0
}

func travelTypeFactor(travelType string) float64 {
	if f, ok := travelTypeFactors[travelType]; ok {
		return f
	}
	return 1.0
}

func fares(rows []models.Booking) []float64 {
	out := make([]float64, len(rows))
	for i, r := range rows {
		out[i] = r.Fare
	}
	return out
}

func meanOccupancy(rows []models.Booking) float64 {
	if len(rows) == 0 {
		return 0
	}
	ratios := make([]float64, len(rows))
	for i, r := range rows {
		ratios[i] = float64(r.Passengers) / VesselCapacity
	}
	return stat.Mean(ratios, nil)
}

func fareCV(rows []models.Booking) float64 {
	if len(rows) < 2 {
		return 0
	}
	fs := fares(rows)
	mean := stat.Mean(fs, nil)
	if mean == 0 {
		return 0
	}
	return stat.StdDev(fs, nil) / mean
}

// parseDate accepts YYYY-MM-DD; anything else falls back to today so the
// heuristic never raises on malformed input.
func parseDate(s string, fallback time.Time) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return fallback
	}
	return t
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
