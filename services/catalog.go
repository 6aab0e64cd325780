package services

import "ferry-pricing-api/models"

// The service-group catalog is a fixed lookup table: cabin and seat classes
// change with fleet refits, not at runtime.
var serviceGroups = []models.ServiceGroup{
	{ID: "sg-1", Code: "BUT", Name: "Butaca", Description: "Standard reclining seat", Capacity: 90, Active: true},
	{ID: "sg-2", Code: "CAB2", Name: "Camarote doble", Description: "Two-berth cabin", Capacity: 24, Active: true},
	{ID: "sg-3", Code: "CAB4", Name: "Camarote familiar", Description: "Four-berth cabin", Capacity: 20, Active: true},
	{ID: "sg-4", Code: "SUP", Name: "Butaca superior", Description: "Premium lounge seat", Capacity: 16, Active: true},
	{ID: "sg-5", Code: "PET", Name: "Camarote mascota", Description: "Pet-friendly cabin", Capacity: 8, Active: false},
}

var pricingRules = []models.PricingRule{
	{ID: "pr-1", ServiceGroupID: "sg-1", TariffClass: "tourist", Multiplier: 1.0, MinPrice: 20, MaxPrice: 120, Active: true},
	{ID: "pr-2", ServiceGroupID: "sg-1", TariffClass: "business", Multiplier: 1.4, MinPrice: 30, MaxPrice: 170, Active: true},
	{ID: "pr-3", ServiceGroupID: "sg-2", TariffClass: "tourist", Multiplier: 1.6, MinPrice: 45, MaxPrice: 220, Active: true},
	{ID: "pr-4", ServiceGroupID: "sg-2", TariffClass: "premium", Multiplier: 2.2, MinPrice: 60, MaxPrice: 320, Active: true},
	{ID: "pr-5", ServiceGroupID: "sg-3", TariffClass: "tourist", Multiplier: 1.9, MinPrice: 60, MaxPrice: 280, Active: true},
	{ID: "pr-6", ServiceGroupID: "sg-4", TariffClass: "business", Multiplier: 1.8, MinPrice: 40, MaxPrice: 210, Active: true},
	{ID: "pr-7", ServiceGroupID: "sg-4", TariffClass: "premium", Multiplier: 2.4, MinPrice: 55, MaxPrice: 300, Active: true},
}

// CatalogService serves the cabin/seat-class catalog and its pricing rules.
type CatalogService struct{}

func NewCatalogService() *CatalogService {
	return &CatalogService{}
}

func (s *CatalogService) ServiceGroups() []models.ServiceGroup {
	out := make([]models.ServiceGroup, len(serviceGroups))
	copy(out, serviceGroups)
	return out
}

// PricingRules returns the rules for one service group, or all rules when
// serviceGroupID is empty.
func (s *CatalogService) PricingRules(serviceGroupID string) []models.PricingRule {
	if serviceGroupID == "" {
		out := make([]models.PricingRule, len(pricingRules))
		copy(out, pricingRules)
		return out
	}

	out := make([]models.PricingRule, 0)
	for _, r := range pricingRules {
		if r.ServiceGroupID == serviceGroupID {
			out = append(out, r)
		}
	}
	return out
}
