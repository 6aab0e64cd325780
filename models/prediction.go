package models

import "time"

// PredictionRequest is the analyst's query: which route, when, and for
// which fare class. Model is a label carried through to the response; no
// external model is executed.
type PredictionRequest struct {
	Origin      string `json:"origin" binding:"required"`
	Destination string `json:"destination" binding:"required"`
	Date        string `json:"date" binding:"required"`
	TravelType  string `json:"travelType" binding:"required"`
	TariffClass string `json:"tariffClass" binding:"required"`
	Model       string `json:"model"`
}

// Route returns the composite "origin-destination" route key.
func (r PredictionRequest) Route() string {
	return r.Origin + "-" + r.Destination
}

// InfluenceFactors records the inputs that shaped a recommendation, so the
// dashboard can explain the number it shows.
type InfluenceFactors struct {
	DaysUntilDeparture int     `json:"daysUntilDeparture"`
	CurrentOccupancy   float64 `json:"currentOccupancy"`
	CompetitorAvgPrice float64 `json:"competitorAvgPrice"`
	IsHoliday          bool    `json:"isHoliday"`
	BaseDemand         float64 `json:"baseDemand"`
	WeatherFactor      float64 `json:"weatherFactor"`
	SeasonalityFactor  float64 `json:"seasonalityFactor"`
}

// PricePrediction is the heuristic's output record. Immutable once created;
// a newer record with a later timestamp supersedes it.
type PricePrediction struct {
	ID               string           `json:"id"`
	Route            string           `json:"route"`
	Origin           string           `json:"origin"`
	Destination      string           `json:"destination"`
	Date             string           `json:"date"`
	TravelType       string           `json:"travelType"`
	TariffClass      string           `json:"tariffClass"`
	Model            string           `json:"model"`
	OptimalPrice     float64          `json:"optimalPrice"`
	ExpectedRevenue  float64          `json:"expectedRevenue"`
	CurrentPrice     float64          `json:"currentPrice"`
	CompetitorPrice  float64          `json:"competitorPrice"`
	Confidence       float64          `json:"confidence"`
	Timestamp        time.Time        `json:"timestamp"`
	InfluenceFactors InfluenceFactors `json:"influenceFactors"`
}
