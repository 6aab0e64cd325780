package models

import "time"

// Booking is one historical ticket sale in the warehouse. Rows are
// append-only; the API only ever reads them.
type Booking struct {
	ID          int64     `gorm:"column:id;primaryKey" json:"id"`
	Origin      string    `gorm:"column:origin" json:"origin"`
	Destination string    `gorm:"column:destination" json:"destination"`
	Departure   time.Time `gorm:"column:departure" json:"departure"`
	Vessel      string    `gorm:"column:vessel" json:"vessel"`
	Tariff      string    `gorm:"column:tariff" json:"tariff"`
	Fare        float64   `gorm:"column:fare" json:"fare"`
	Passengers  int       `gorm:"column:passengers" json:"passengers"`
	Vehicles    int       `gorm:"column:vehicles" json:"vehicles"`
	AmountPaid  float64   `gorm:"column:amount_paid" json:"amount_paid"`
}

func (Booking) TableName() string { return "bookings" }

// BookingFilters narrows a warehouse query. Zero values mean "not filtered".
type BookingFilters struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	DateFrom    string `json:"dateFrom"`
	DateTo      string `json:"dateTo"`
	Tariff      string `json:"tariff"`
	Vessel      string `json:"vessel"`
	Limit       int    `json:"limit"`
}
