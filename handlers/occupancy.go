package handlers

import (
	"net/http"

	"ferry-pricing-api/services"

	"github.com/gin-gonic/gin"
)

type OccupancyHandler struct {
	warehouse *services.WarehouseService
}

func NewOccupancyHandler(warehouse *services.WarehouseService) *OccupancyHandler {
	return &OccupancyHandler{warehouse: warehouse}
}

// GetOccupancy serves the occupancy aggregate feed. type selects the
// aggregation bucket: general (route), service-group (tariff) or hourly.
func (h *OccupancyHandler) GetOccupancy(c *gin.Context) {
	granularity := c.DefaultQuery("type", "general")
	switch granularity {
	case "general", "service-group", "hourly":
	default:
		respondError(c, http.StatusBadRequest,
			"type must be one of general, service-group, hourly; got "+granularity, "")
		return
	}

	filters := services.OccupancyFilters{
		Origin:       c.Query("origin"),
		Destination:  c.Query("destination"),
		ServiceGroup: c.Query("serviceGroup"),
		DateFrom:     c.Query("dateFrom"),
		DateTo:       c.Query("dateTo"),
		Limit:        parseLimit(c),
	}

	c.JSON(http.StatusOK, h.warehouse.Occupancy(c.Request.Context(), granularity, filters))
}
