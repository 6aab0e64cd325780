package handlers

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"ferry-pricing-api/models"
	"ferry-pricing-api/services"

	"github.com/gin-gonic/gin"
)

type PredictionHandler struct {
	store  *services.PredictionStore
	source services.BookingSource
	engine *services.PricingEngine
}

func NewPredictionHandler(store *services.PredictionStore, source services.BookingSource, engine *services.PricingEngine) *PredictionHandler {
	return &PredictionHandler{store: store, source: source, engine: engine}
}

// CreatePrediction validates the request, checks the document store, and on
// a miss computes a fresh recommendation and persists it best-effort.
func (h *PredictionHandler) CreatePrediction(c *gin.Context) {
	var req models.PredictionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// Echo the field values back so the analyst can see what arrived.
		respondError(c, http.StatusBadRequest,
			fmt.Sprintf("missing required fields: origin=%q destination=%q date=%q travelType=%q tariffClass=%q",
				req.Origin, req.Destination, req.Date, req.TravelType, req.TariffClass),
			err.Error())
		return
	}
	if req.Model == "" {
		req.Model = "heuristic-v1"
	}

	cached, err := h.store.GetPrediction(c.Request.Context(), req)
	if err != nil {
		log.Printf("predictions: store read failed, recomputing: %v", err)
	}
	if cached != nil {
		services.CountCacheHit()
		respondOK(c, cached)
		return
	}

	rows := h.source.HistoricalForRoute(c.Request.Context(), req.Origin, req.Destination, 0)
	prediction := h.engine.Predict(req, rows)

	go h.store.SavePrediction(context.Background(), prediction)

	respondOK(c, prediction)
}
