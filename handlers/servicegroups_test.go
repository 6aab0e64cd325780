package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"ferry-pricing-api/services"

	"github.com/gin-gonic/gin"
)

func catalogRouter() *gin.Engine {
	h := NewCatalogHandler(services.NewCatalogService())
	r := gin.New()
	r.GET("/api/service-groups", h.GetServiceGroups)
	r.GET("/api/service-groups/pricing-rules", h.GetPricingRules)
	return r
}

func TestGetServiceGroups(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/service-groups", nil)
	catalogRouter().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	resp := decodeEnvelope(t, w)
	if resp.TotalRows == nil || *resp.TotalRows != 5 {
		t.Errorf("totalRows = %v, want 5", resp.TotalRows)
	}
}

func TestGetPricingRulesFiltered(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/service-groups/pricing-rules?serviceGroupId=sg-1", nil)
	catalogRouter().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	resp := decodeEnvelope(t, w)
	if resp.TotalRows == nil || *resp.TotalRows != 2 {
		t.Errorf("totalRows = %v, want 2", resp.TotalRows)
	}
}

func TestGetPricingRulesAll(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/service-groups/pricing-rules", nil)
	catalogRouter().ServeHTTP(w, req)

	resp := decodeEnvelope(t, w)
	if resp.TotalRows == nil || *resp.TotalRows != 7 {
		t.Errorf("totalRows = %v, want 7", resp.TotalRows)
	}
}
