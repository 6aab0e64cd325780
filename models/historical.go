package models

// HistoricalRecord is one day of route performance, either aggregated from
// warehouse rows or generated synthetically when none exist. One record per
// (route, date).
type HistoricalRecord struct {
	ID        string  `json:"id"`
	Route     string  `json:"route"`
	Date      string  `json:"date"`
	Price     float64 `json:"price"`
	Occupancy float64 `json:"occupancy"`
	Revenue   float64 `json:"revenue"`
	Demand    float64 `json:"demand"`
	Weather   string  `json:"weather"`
	Season    string  `json:"season"`
	IsHoliday bool    `json:"isHoliday"`
}
