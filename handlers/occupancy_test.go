package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestGetOccupancyRejectsUnknownType(t *testing.T) {
	// The type check fires before any warehouse query, so no database is
	// needed here.
	h := NewOccupancyHandler(nil)
	r := gin.New()
	r.GET("/api/occupancy", h.GetOccupancy)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/occupancy?type=bogus", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	resp := decodeEnvelope(t, w)
	if resp.Success {
		t.Error("success should be false")
	}
	if !strings.Contains(resp.Error, "bogus") {
		t.Errorf("error = %q, should echo the received type", resp.Error)
	}
}
