package handlers

import (
	"context"
	"log"

	"ferry-pricing-api/services"

	"github.com/gin-gonic/gin"
)

type RoutesHandler struct {
	store     *services.PredictionStore
	generator *services.SyntheticGenerator
}

func NewRoutesHandler(store *services.PredictionStore, generator *services.SyntheticGenerator) *RoutesHandler {
	return &RoutesHandler{store: store, generator: generator}
}

// GetRoute serves RouteInfo for an (origin, destination) pair, generating it
// from the static tables on a miss.
func (h *RoutesHandler) GetRoute(c *gin.Context) {
	origin := c.Param("origin")
	destination := c.Param("destination")

	info, err := h.store.GetRoute(c.Request.Context(), origin, destination)
	if err != nil {
		log.Printf("routes: store read failed, regenerating: %v", err)
	}

	if info == nil {
		generated := h.generator.Route(origin, destination)
		info = &generated
		go h.store.SaveRoute(context.Background(), generated)
	}

	respondOK(c, info)
}
