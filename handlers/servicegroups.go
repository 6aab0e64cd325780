package handlers

import (
	"ferry-pricing-api/services"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalog *services.CatalogService
}

func NewCatalogHandler(catalog *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

func (h *CatalogHandler) GetServiceGroups(c *gin.Context) {
	groups := h.catalog.ServiceGroups()
	respondRows(c, groups, len(groups))
}

func (h *CatalogHandler) GetPricingRules(c *gin.Context) {
	rules := h.catalog.PricingRules(c.Query("serviceGroupId"))
	respondRows(c, rules, len(rules))
}
