package handlers

import (
	"net/http"

	"ferry-pricing-api/models"
	"ferry-pricing-api/services"

	"github.com/gin-gonic/gin"
)

type BookingsHandler struct {
	warehouse *services.WarehouseService
}

func NewBookingsHandler(warehouse *services.WarehouseService) *BookingsHandler {
	return &BookingsHandler{warehouse: warehouse}
}

// QueryBookings serves raw booking rows for an arbitrary filter body.
// Warehouse failure still answers 200 with a success=false envelope so the
// dashboard can degrade instead of erroring.
func (h *BookingsHandler) QueryBookings(c *gin.Context) {
	var filters models.BookingFilters
	if err := c.ShouldBindJSON(&filters); err != nil {
		respondError(c, http.StatusBadRequest, "invalid filter body", err.Error())
		return
	}

	result := h.warehouse.QueryBookings(c.Request.Context(), filters)
	c.JSON(http.StatusOK, result)
}

func (h *BookingsHandler) GetPorts(c *gin.Context) {
	c.JSON(http.StatusOK, h.warehouse.PortStats(c.Request.Context()))
}

func (h *BookingsHandler) GetTariffs(c *gin.Context) {
	destination := c.Param("destinationId")
	c.JSON(http.StatusOK, h.warehouse.TariffStats(c.Request.Context(), destination))
}

func (h *BookingsHandler) GetVessels(c *gin.Context) {
	origin := c.Param("originId")
	destination := c.Param("destinationId")
	c.JSON(http.StatusOK, h.warehouse.VesselStats(c.Request.Context(), origin, destination))
}

func (h *BookingsHandler) GetRoutes(c *gin.Context) {
	c.JSON(http.StatusOK, h.warehouse.RouteStats(c.Request.Context()))
}

func (h *BookingsHandler) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.warehouse.OverallStats(c.Request.Context()))
}
