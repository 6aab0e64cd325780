package models

// Aggregate rows scanned from warehouse GROUP BY queries. These feed the
// dashboard's charts directly and never enter the pricing heuristic.

type PortStat struct {
	Port         string  `json:"port"`
	Bookings     int64   `json:"bookings"`
	AvgFare      float64 `json:"avgFare"`
	TotalRevenue float64 `json:"totalRevenue"`
}

type TariffStat struct {
	Tariff     string  `json:"tariff"`
	Bookings   int64   `json:"bookings"`
	AvgFare    float64 `json:"avgFare"`
	MinFare    float64 `json:"minFare"`
	MaxFare    float64 `json:"maxFare"`
	StddevFare float64 `json:"stddevFare"`
}

type VesselStat struct {
	Vessel        string  `json:"vessel"`
	Bookings      int64   `json:"bookings"`
	AvgPassengers float64 `json:"avgPassengers"`
	AvgFare       float64 `json:"avgFare"`
}

type RouteStat struct {
	Origin       string  `json:"origin"`
	Destination  string  `json:"destination"`
	Bookings     int64   `json:"bookings"`
	AvgFare      float64 `json:"avgFare"`
	TotalRevenue float64 `json:"totalRevenue"`
}

type OverallStats struct {
	TotalBookings int64   `json:"totalBookings"`
	AvgFare       float64 `json:"avgFare"`
	MinFare       float64 `json:"minFare"`
	MaxFare       float64 `json:"maxFare"`
	StddevFare    float64 `json:"stddevFare"`
	TotalRevenue  float64 `json:"totalRevenue"`
}

// OccupancyStat is one bucket of the occupancy feed. Bucket holds the route
// for general aggregation, the tariff for service-group aggregation, or the
// "15" style hour label for hourly aggregation.
type OccupancyStat struct {
	Bucket        string  `json:"bucket"`
	Trips         int64   `json:"trips"`
	AvgPassengers float64 `json:"avgPassengers"`
	AvgOccupancy  float64 `json:"avgOccupancy"`
}
