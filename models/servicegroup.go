package models

// ServiceGroup is a cabin/seat class sold on a vessel.
type ServiceGroup struct {
	ID          string `json:"id"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Capacity    int    `json:"capacity"`
	Active      bool   `json:"active"`
}

// PricingRule bounds what a tariff class may charge within a service group.
type PricingRule struct {
	ID             string  `json:"id"`
	ServiceGroupID string  `json:"serviceGroupId"`
	TariffClass    string  `json:"tariffClass"`
	Multiplier     float64 `json:"multiplier"`
	MinPrice       float64 `json:"minPrice"`
	MaxPrice       float64 `json:"maxPrice"`
	Active         bool    `json:"active"`
}
