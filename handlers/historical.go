package handlers

import (
	"context"
	"log"
	"net/http"
	"strconv"

	"ferry-pricing-api/services"

	"github.com/gin-gonic/gin"
)

type HistoricalHandler struct {
	store     *services.PredictionStore
	generator *services.SyntheticGenerator
}

func NewHistoricalHandler(store *services.PredictionStore, generator *services.SyntheticGenerator) *HistoricalHandler {
	return &HistoricalHandler{store: store, generator: generator}
}

// GetHistorical serves the stored record list for a route, generating it
// when the store holds nothing or fewer days than requested. days must be a
// positive integer; anything else is rejected before generation.
func (h *HistoricalHandler) GetHistorical(c *gin.Context) {
	route := c.Param("route")

	days, err := strconv.Atoi(c.Param("days"))
	if err != nil || days <= 0 {
		respondError(c, http.StatusBadRequest,
			"days must be a positive integer, got "+c.Param("days"), "")
		return
	}

	records, err := h.store.GetHistorical(c.Request.Context(), route)
	if err != nil {
		log.Printf("historical: store read failed, regenerating: %v", err)
	}

	if len(records) < days {
		records = h.generator.Historical(route, days)
		go h.store.SaveHistorical(context.Background(), route, records)
	} else if len(records) > days {
		records = records[len(records)-days:]
	}

	respondRows(c, records, len(records))
}
