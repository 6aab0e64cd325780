package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func routesRouter() *gin.Engine {
	h := NewRoutesHandler(testStore(), testGenerator())
	r := gin.New()
	r.GET("/api/routes/:origin/:destination", h.GetRoute)
	return r
}

func TestGetRouteKnownRoute(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/routes/denia/ibiza", nil)
	routesRouter().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", w.Code, w.Body.String())
	}
	resp := decodeEnvelope(t, w)
	data, ok := resp.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("data is %T, want object", resp.Data)
	}
	if data["origin"] != "denia" || data["destination"] != "ibiza" {
		t.Errorf("route = %v-%v, want denia-ibiza", data["origin"], data["destination"])
	}
	if base, _ := data["basePrice"].(float64); base != 45 {
		t.Errorf("basePrice = %v, want 45", data["basePrice"])
	}
	if active, _ := data["isActive"].(bool); !active {
		t.Error("known route should be active")
	}
}

func TestGetRouteUnknownStillResponds(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/routes/nowhere/elsewhere", nil)
	routesRouter().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	resp := decodeEnvelope(t, w)
	data, ok := resp.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("data is %T, want object", resp.Data)
	}
	if base, _ := data["basePrice"].(float64); base != 50 {
		t.Errorf("basePrice = %v, want default 50", data["basePrice"])
	}
	if active, _ := data["isActive"].(bool); active {
		t.Error("unknown route should be inactive")
	}
}
