package models

// RouteInfo describes a ferry connection. Distance is nautical miles,
// duration minutes.
type RouteInfo struct {
	ID               string   `json:"id"`
	Origin           string   `json:"origin"`
	Destination      string   `json:"destination"`
	Distance         float64  `json:"distance"`
	Duration         int      `json:"duration"`
	IsActive         bool     `json:"isActive"`
	BasePrice        float64  `json:"basePrice"`
	CompetitorRoutes []string `json:"competitorRoutes"`
}
